package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/christopherLang/easylog/sinks"
)

func TestChecksumVerify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.log")
	if err := os.WriteFile(path, []byte("INFO - hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	sum, err := sinks.ChecksumFile(path)
	if err != nil {
		t.Fatalf("ChecksumFile failed: %v", err)
	}

	cmd := checksumCmd()
	cmd.SetArgs([]string{path, "--expect", fmt.Sprintf("%016x", sum)})
	if err := cmd.Execute(); err != nil {
		t.Errorf("checksum verify failed: %v", err)
	}
}

func TestChecksumMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.log")
	if err := os.WriteFile(path, []byte("INFO - hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := checksumCmd()
	cmd.SetArgs([]string{path, "--expect", "deadbeefdeadbeef"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Error("checksum verify passed with a wrong digest")
	}
}

func TestLogCommandWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.log")

	cmd := logCmd()
	cmd.SetArgs([]string{"--no-console", "--file", path, "--level", "warning", "hello", "world"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("log command failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	if want := " - easylog - WARNING - hello world\n"; !strings.HasSuffix(line, want) {
		t.Errorf("file line = %q, want suffix %q", line, want)
	}
}
