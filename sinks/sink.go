// Package sinks implements the output destinations log lines are written to.
package sinks

import (
	"errors"
	"fmt"
)

// ErrSinkClosed is returned when writing to a closed sink.
var ErrSinkClosed = errors.New("sink is closed")

// Sink is a destination for rendered log lines.
type Sink interface {
	// Write writes one rendered line to the destination.
	Write(line []byte) error

	// Close releases the destination. Further writes fail.
	Close() error
}

// SinkError wraps a failure in a sink operation.
type SinkError struct {
	Err  error
	Sink string
	Op   string
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("sink %s: %s: %v", e.Sink, e.Op, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
