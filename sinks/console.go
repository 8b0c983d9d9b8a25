package sinks

import (
	"io"
	"os"
	"sync"
)

// ConsoleSink writes log lines to a stream, os.Stdout by default.
type ConsoleSink struct {
	mu     sync.Mutex
	w      io.Writer
	closed bool
}

// Ensure we implement the interface
var _ Sink = (*ConsoleSink)(nil)

// NewConsoleSink creates a console sink bound to w. A nil w binds to
// os.Stdout.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{w: w}
}

// Write writes one line to the bound stream.
func (s *ConsoleSink) Write(line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return &SinkError{Sink: "console", Op: "write", Err: ErrSinkClosed}
	}
	if _, err := s.w.Write(line); err != nil {
		return &SinkError{Sink: "console", Op: "write", Err: err}
	}
	return nil
}

// Close marks the sink closed. The stream itself is owned by the caller
// and is not closed here.
func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
