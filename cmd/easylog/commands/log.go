package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/christopherLang/easylog"
)

func logCmd() *cobra.Command {
	var (
		level      string
		name       string
		tmpl       string
		dateFormat string
		encoding   string
		files      []string
		truncate   bool
		lazy       bool
		noConsole  bool
	)

	cmd := &cobra.Command{
		Use:   "log [flags] <message>...",
		Short: "Log a one-shot message",
		Long: `Log a message to the console and to any number of log files.

Multiple message arguments are joined with spaces, like logger(1).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := easylog.ParseLevel(level)
			if err != nil {
				return err
			}

			opts := []easylog.Option{easylog.WithName(name)}
			if noConsole {
				opts = append(opts, easylog.WithoutConsole())
			}
			lg, err := easylog.New(opts...)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer func() { _ = lg.Close() }()

			for _, path := range files {
				var hOpts []easylog.HandlerOption
				if tmpl != "" {
					hOpts = append(hOpts, easylog.WithFormat(tmpl))
				}
				if dateFormat != "" {
					hOpts = append(hOpts, easylog.WithDateFormat(dateFormat))
				}
				if encoding != "" {
					hOpts = append(hOpts, easylog.WithEncoding(encoding))
				}
				if truncate {
					hOpts = append(hOpts, easylog.WithTruncate())
				}
				if lazy {
					hOpts = append(hOpts, easylog.WithLazyOpen())
				}
				if err := lg.AddFile(path, hOpts...); err != nil {
					return fmt.Errorf("failed to add file handler for %s: %w", path, err)
				}
			}

			lg.Log(lvl, strings.Join(args, " "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "info", "severity: critical, error, warning, info or debug")
	cmd.Flags().StringVarP(&name, "name", "n", "easylog", "logger name used in file lines")
	cmd.Flags().StringVar(&tmpl, "format", "", "message format template for file handlers")
	cmd.Flags().StringVar(&dateFormat, "date-format", "", "timestamp layout for file handlers")
	cmd.Flags().StringVar(&encoding, "encoding", "", "text encoding for file handlers (IANA name)")
	cmd.Flags().StringSliceVarP(&files, "file", "f", nil, "log file to write to (repeatable)")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "truncate log files instead of appending")
	cmd.Flags().BoolVar(&lazy, "lazy", false, "defer creating log files until the first write")
	cmd.Flags().BoolVar(&noConsole, "no-console", false, "skip the default console handler")

	return cmd
}

func levelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List severity levels, least to most severe",
		Run: func(cmd *cobra.Command, args []string) {
			for _, lvl := range []easylog.Level{
				easylog.LevelDebug,
				easylog.LevelInfo,
				easylog.LevelWarning,
				easylog.LevelError,
				easylog.LevelCritical,
			} {
				fmt.Println(strings.ToLower(lvl.String()))
			}
		},
	}
}
