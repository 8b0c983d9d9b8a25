package easylog

import (
	"errors"
	"testing"

	"github.com/willibrandon/mtlog/core"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{"critical lower", "critical", LevelCritical, false},
		{"error lower", "error", LevelError, false},
		{"warning lower", "warning", LevelWarning, false},
		{"info lower", "info", LevelInfo, false},
		{"debug lower", "debug", LevelDebug, false},
		{"critical upper", "CRITICAL", LevelCritical, false},
		{"warning mixed", "WaRnInG", LevelWarning, false},
		{"info upper", "INFO", LevelInfo, false},
		{"empty", "", 0, true},
		{"unknown", "verbose", 0, true},
		{"misspelled", "warn", 0, true},
		{"whitespace", " info", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLevel(%q) succeeded, want error", tt.input)
				}
				if !errors.Is(err, ErrInvalidLevel) {
					t.Errorf("ParseLevel(%q) error = %v, want ErrInvalidLevel", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarning, "WARNING"},
		{LevelError, "ERROR"},
		{LevelCritical, "CRITICAL"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelCoreRoundTrip(t *testing.T) {
	levels := []Level{LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical}
	for _, lvl := range levels {
		if got := levelFor(lvl.coreLevel()); got != lvl {
			t.Errorf("levelFor(%v.coreLevel()) = %v", lvl, got)
		}
	}

	// Verbose has no facade equivalent and collapses into debug.
	if got := levelFor(core.VerboseLevel); got != LevelDebug {
		t.Errorf("levelFor(VerboseLevel) = %v, want LevelDebug", got)
	}
}

func TestLevelOrdering(t *testing.T) {
	ordered := []Level{LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].coreLevel() >= ordered[i].coreLevel() {
			t.Errorf("%v should rank below %v", ordered[i-1], ordered[i])
		}
	}
}
