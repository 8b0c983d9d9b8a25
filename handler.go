package easylog

import (
	"fmt"
	"io"

	"github.com/christopherLang/easylog/format"
	"github.com/christopherLang/easylog/sinks"
)

// Kind is the destination type of a handler.
type Kind string

const (
	// KindConsole writes to a stream, os.Stdout by default.
	KindConsole Kind = "console"
	// KindFile writes to a log file.
	KindFile Kind = "file"
)

// Handler is the record of one registered output destination. Records are
// created by AddConsole and AddFile and reformatted in place by SetFormat;
// they are never removed.
type Handler struct {
	sink       sinks.Sink
	formatter  *format.Formatter
	name       string
	kind       Kind
	level      Level
	tmpl       string
	dateFormat string
}

// Name returns the handler's registered name.
func (h *Handler) Name() string { return h.name }

// Kind returns the destination type.
func (h *Handler) Kind() Kind { return h.kind }

// Level returns the severity threshold.
func (h *Handler) Level() Level { return h.level }

// Format returns the message format template.
func (h *Handler) Format() string { return h.tmpl }

// DateFormat returns the timestamp layout.
func (h *Handler) DateFormat() string { return h.dateFormat }

// handlerConfig collects the per-registration parameters before they are
// resolved against the facade's defaults.
type handlerConfig struct {
	name       string
	level      Level
	levelSet   bool
	tmpl       string
	dateFormat string
	stream     io.Writer
	encoding   string
	truncate   bool
	lazy       bool
}

// HandlerOption configures a single AddConsole or AddFile call.
type HandlerOption func(*handlerConfig) error

// WithHandlerName names the handler explicitly instead of auto-generating
// console{N} or file{N}.
func WithHandlerName(name string) HandlerOption {
	return func(c *handlerConfig) error {
		if name == "" {
			return fmt.Errorf("handler name must not be empty")
		}
		c.name = name
		return nil
	}
}

// WithLevel sets the handler's severity threshold instead of the facade's
// global level. Unrecognized names fail with ErrInvalidLevel.
func WithLevel(level string) HandlerOption {
	return func(c *handlerConfig) error {
		lvl, err := ParseLevel(level)
		if err != nil {
			return err
		}
		c.level = lvl
		c.levelSet = true
		return nil
	}
}

// WithFormat sets the message format template. Placeholders: {Timestamp},
// {Logger}, {Level} and {Message}.
func WithFormat(template string) HandlerOption {
	return func(c *handlerConfig) error {
		c.tmpl = template
		return nil
	}
}

// WithDateFormat sets the timestamp layout used by {Timestamp}.
func WithDateFormat(layout string) HandlerOption {
	return func(c *handlerConfig) error {
		c.dateFormat = layout
		return nil
	}
}

// WithStream binds a console handler to a stream other than os.Stdout.
// Console handlers only.
func WithStream(w io.Writer) HandlerOption {
	return func(c *handlerConfig) error {
		c.stream = w
		return nil
	}
}

// WithEncoding sets the text encoding a file handler writes in, by IANA
// name. File handlers only; default UTF-8.
func WithEncoding(name string) HandlerOption {
	return func(c *handlerConfig) error {
		c.encoding = name
		return nil
	}
}

// WithTruncate truncates an existing log file instead of appending.
// File handlers only.
func WithTruncate() HandlerOption {
	return func(c *handlerConfig) error {
		c.truncate = true
		return nil
	}
}

// WithLazyOpen defers creating the log file until the first write.
// File handlers only.
func WithLazyOpen() HandlerOption {
	return func(c *handlerConfig) error {
		c.lazy = true
		return nil
	}
}
