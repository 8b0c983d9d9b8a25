// Package easylog provides fast and easy leveled logging on top of mtlog.
package easylog

import "errors"

var (
	// ErrInvalidLevel is returned when a severity string is not one of
	// critical, error, warning, info or debug.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrDuplicateName is returned when an explicit handler name collides
	// with an already registered handler.
	ErrDuplicateName = errors.New("handler name already in use")

	// ErrNoHandlers is returned when a handler operation is attempted
	// against an empty registry.
	ErrNoHandlers = errors.New("no handlers defined")

	// ErrHandlerNotFound is returned when no registered handler matches
	// the requested name.
	ErrHandlerNotFound = errors.New("handler not found")

	// ErrLoggerClosed is returned when registering handlers on a closed logger.
	ErrLoggerClosed = errors.New("logger is closed")
)
