package easylog

import (
	"fmt"
	"io"
)

// Option configures the logger facade.
type Option func(*Config) error

// Config holds the facade configuration.
type Config struct {
	// Name is the logger identity used in rendered file lines.
	Name string

	// GlobalLevel is the default severity for handlers registered
	// without an explicit level.
	GlobalLevel Level

	// Console controls whether a default console handler is registered
	// at construction.
	Console bool

	// ConsoleStream is the stream of the default console handler.
	// Nil means os.Stdout.
	ConsoleStream io.Writer

	// FailureHandler is called when a handler write fails.
	FailureHandler FailureHandler
}

// FailureHandler is called with the handler name when a write fails
// during dispatch.
type FailureHandler func(handler string, err error)

// WithName sets the logger identity.
func WithName(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return fmt.Errorf("logger name must not be empty")
		}
		c.Name = name
		return nil
	}
}

// WithGlobalLevel sets the default severity for new handlers. The name is
// case-insensitive; unrecognized names fail with ErrInvalidLevel.
func WithGlobalLevel(level string) Option {
	return func(c *Config) error {
		lvl, err := ParseLevel(level)
		if err != nil {
			return err
		}
		c.GlobalLevel = lvl
		return nil
	}
}

// WithoutConsole suppresses the default console handler.
func WithoutConsole() Option {
	return func(c *Config) error {
		c.Console = false
		return nil
	}
}

// WithConsoleStream binds the default console handler to w instead of
// os.Stdout.
func WithConsoleStream(w io.Writer) Option {
	return func(c *Config) error {
		c.ConsoleStream = w
		return nil
	}
}

// WithFailureHandler sets a custom handler for write failures during
// dispatch. The default prints to stderr.
func WithFailureHandler(handler FailureHandler) Option {
	return func(c *Config) error {
		c.FailureHandler = handler
		return nil
	}
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	return &Config{
		Name:        "easylog",
		GlobalLevel: LevelInfo,
		Console:     true,
	}
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	if c.Name == "" {
		return fmt.Errorf("logger name is required")
	}
	return nil
}
