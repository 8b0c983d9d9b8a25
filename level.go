package easylog

import (
	"fmt"
	"strings"

	"github.com/willibrandon/mtlog/core"
)

// Level is the severity of a log message, ordered from least to most severe.
type Level int

const (
	// LevelDebug is for detailed diagnostic output.
	LevelDebug Level = iota
	// LevelInfo is for routine operational messages.
	LevelInfo
	// LevelWarning is for unusual but non-failing conditions.
	LevelWarning
	// LevelError is for failures of individual operations.
	LevelError
	// LevelCritical is for failures that threaten the whole process.
	LevelCritical
)

// ParseLevel converts a severity name to a Level. Matching is
// case-insensitive; unrecognized names fail with ErrInvalidLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "critical":
		return LevelCritical, nil
	default:
		return 0, fmt.Errorf("%w: %q (want critical, error, warning, info or debug)", ErrInvalidLevel, s)
	}
}

// String returns the upper-case label used in rendered log lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// coreLevel maps a Level to the backend's event level.
func (l Level) coreLevel() core.LogEventLevel {
	switch l {
	case LevelDebug:
		return core.DebugLevel
	case LevelInfo:
		return core.InformationLevel
	case LevelWarning:
		return core.WarningLevel
	case LevelError:
		return core.ErrorLevel
	case LevelCritical:
		return core.FatalLevel
	default:
		return core.InformationLevel
	}
}

// levelFor maps a backend event level back to a Level. Verbose collapses
// into debug; nothing in this package emits it.
func levelFor(lvl core.LogEventLevel) Level {
	switch {
	case lvl >= core.FatalLevel:
		return LevelCritical
	case lvl >= core.ErrorLevel:
		return LevelError
	case lvl >= core.WarningLevel:
		return LevelWarning
	case lvl >= core.InformationLevel:
		return LevelInfo
	default:
		return LevelDebug
	}
}
