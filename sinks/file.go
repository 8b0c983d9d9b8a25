package sinks

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// WriteMode controls how an existing log file is opened.
type WriteMode int

const (
	// ModeAppend appends to an existing file.
	ModeAppend WriteMode = iota
	// ModeTruncate truncates an existing file on open.
	ModeTruncate
)

// FileSink writes log lines to a file, optionally re-encoded from UTF-8.
type FileSink struct {
	mu     sync.Mutex
	path   string
	mode   WriteMode
	lazy   bool
	enc    encoding.Encoding // nil means plain UTF-8
	file   *os.File
	w      io.Writer
	closer io.Closer // transform writer, when an encoder is in use
	digest *xxhash.Digest
	closed bool
}

// Ensure we implement the interface
var _ Sink = (*FileSink)(nil)

// FileOption configures a FileSink.
type FileOption func(*FileSink) error

// WithMode sets the write mode for an existing file. Default is append.
func WithMode(mode WriteMode) FileOption {
	return func(s *FileSink) error {
		if mode != ModeAppend && mode != ModeTruncate {
			return fmt.Errorf("unknown write mode %d", mode)
		}
		s.mode = mode
		return nil
	}
}

// WithEncoding sets the text encoding the file is written in, by IANA
// name. Default is UTF-8, written as-is.
func WithEncoding(name string) FileOption {
	return func(s *FileSink) error {
		enc, err := lookupEncoding(name)
		if err != nil {
			return err
		}
		s.enc = enc
		return nil
	}
}

// WithLazyOpen defers creating the file until the first write.
func WithLazyOpen() FileOption {
	return func(s *FileSink) error {
		s.lazy = true
		return nil
	}
}

// NewFileSink creates a file sink at path. Unless lazy open is requested
// the file is created (or opened) immediately.
func NewFileSink(path string, opts ...FileOption) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("file sink path is required")
	}

	s := &FileSink{
		path:   path,
		digest: xxhash.New(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("invalid file sink option: %w", err)
		}
	}

	if !s.lazy {
		if err := s.open(); err != nil {
			return nil, &SinkError{Sink: "file", Op: "open", Err: err}
		}
	}
	return s, nil
}

// Path returns the destination path.
func (s *FileSink) Path() string { return s.path }

// Write writes one line to the file, opening it first if the sink is lazy.
func (s *FileSink) Write(line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return &SinkError{Sink: "file", Op: "write", Err: ErrSinkClosed}
	}
	if s.file == nil {
		if err := s.open(); err != nil {
			return &SinkError{Sink: "file", Op: "open", Err: err}
		}
	}

	// The digest tracks the UTF-8 line as rendered, before any re-encoding.
	_, _ = s.digest.Write(line)

	if _, err := s.w.Write(line); err != nil {
		return &SinkError{Sink: "file", Op: "write", Err: err}
	}
	return nil
}

// Sum64 returns the xxhash digest of every line written through this sink.
func (s *FileSink) Sum64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.digest.Sum64()
}

// Close flushes any encoder state and closes the file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			return &SinkError{Sink: "file", Op: "close", Err: err}
		}
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			return &SinkError{Sink: "file", Op: "close", Err: err}
		}
	}
	return nil
}

func (s *FileSink) open() error {
	flags := os.O_CREATE | os.O_WRONLY
	if s.mode == ModeTruncate {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}

	f, err := os.OpenFile(s.path, flags, 0o644)
	if err != nil {
		return err
	}
	s.file = f

	if s.enc != nil {
		tw := transform.NewWriter(f, s.enc.NewEncoder())
		s.w = tw
		s.closer = tw
	} else {
		s.w = f
	}
	return nil
}

// lookupEncoding resolves an IANA charset name. Empty and UTF-8 names
// mean no re-encoding.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

// ChecksumFile returns the xxhash digest of a file's contents. It pairs
// with FileSink.Sum64 for verifying files written from empty in append
// mode without re-encoding.
func ChecksumFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("checksum %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	d := xxhash.New()
	if _, err := io.Copy(d, f); err != nil {
		return 0, fmt.Errorf("checksum %s: %w", path, err)
	}
	return d.Sum64(), nil
}
