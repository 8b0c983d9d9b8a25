// Package format renders log events into output lines from a small
// placeholder template: {Timestamp}, {Logger}, {Level} and {Message}.
package format

import (
	"strings"

	"github.com/willibrandon/mtlog/core"
)

// Default templates per destination kind. Console lines carry only the
// severity label and message; file lines add timestamp and logger name.
const (
	ConsoleTemplate = "{Level} - {Message}"
	FileTemplate    = "{Timestamp} - {Logger} - {Level} - {Message}"

	// ConsoleDateFormat is a 12-hour wall clock.
	ConsoleDateFormat = "03:04:05 PM"
	// FileDateFormat is an ISO-like timestamp without zone.
	FileDateFormat = "2006-01-02T15:04:05"
)

// Formatter renders events using a fixed template and date layout.
type Formatter struct {
	template   string
	dateFormat string
}

// New creates a Formatter for the given template and date layout.
func New(template, dateFormat string) *Formatter {
	return &Formatter{template: template, dateFormat: dateFormat}
}

// Template returns the message template.
func (f *Formatter) Template() string { return f.template }

// DateFormat returns the timestamp layout.
func (f *Formatter) DateFormat() string { return f.dateFormat }

// Render produces one newline-terminated output line for the event.
func (f *Formatter) Render(ev *core.LogEvent, logger string) []byte {
	r := strings.NewReplacer(
		"{Timestamp}", ev.Timestamp.Format(f.dateFormat),
		"{Logger}", logger,
		"{Level}", LevelLabel(ev.Level),
		"{Message}", ev.MessageTemplate,
	)
	return []byte(r.Replace(f.template) + "\n")
}

// LevelLabel returns the printed severity label for a backend event level.
func LevelLabel(lvl core.LogEventLevel) string {
	switch {
	case lvl >= core.FatalLevel:
		return "CRITICAL"
	case lvl >= core.ErrorLevel:
		return "ERROR"
	case lvl >= core.WarningLevel:
		return "WARNING"
	case lvl >= core.InformationLevel:
		return "INFO"
	default:
		return "DEBUG"
	}
}
