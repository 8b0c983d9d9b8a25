package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/christopherLang/easylog/sinks"
)

func checksumCmd() *cobra.Command {
	var expect string

	cmd := &cobra.Command{
		Use:   "checksum <file>...",
		Short: "Print the xxhash64 digest of log files",
		Long: `Print the xxhash64 digest of one or more log files.

With --expect, verify a single file against a known digest instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if expect != "" {
				if len(args) != 1 {
					return fmt.Errorf("--expect verifies exactly one file")
				}
				want, err := strconv.ParseUint(expect, 16, 64)
				if err != nil {
					return fmt.Errorf("invalid digest %q: %w", expect, err)
				}
				got, err := sinks.ChecksumFile(args[0])
				if err != nil {
					return err
				}
				if got != want {
					return fmt.Errorf("digest mismatch for %s: got %016x, want %016x", args[0], got, want)
				}
				fmt.Printf("%s: OK\n", args[0])
				return nil
			}

			for _, path := range args {
				sum, err := sinks.ChecksumFile(path)
				if err != nil {
					return err
				}
				fmt.Printf("%016x  %s\n", sum, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&expect, "expect", "", "expected digest in hex; verify instead of print")

	return cmd
}
