package easylog

import (
	"fmt"
	"os"
	"sync"

	"github.com/willibrandon/mtlog"
	"github.com/willibrandon/mtlog/core"

	"github.com/christopherLang/easylog/format"
	"github.com/christopherLang/easylog/monitoring"
	"github.com/christopherLang/easylog/sinks"
)

// Logger is a convenience facade over mtlog. It owns one underlying named
// logger and any number of console and file handlers, each with its own
// severity threshold and format. The underlying logger is pinned to the
// most verbose level so that per-handler thresholds, not the logger's own
// threshold, govern filtering.
type Logger struct {
	mu          sync.RWMutex
	name        string
	global      Level
	counters    map[Kind]int
	dateFormats map[Kind]string
	handlers    []*Handler
	logger      core.Logger
	onError     FailureHandler
	closed      bool
}

// New creates a logger facade. Unless WithoutConsole is given, a default
// console handler named console0 is registered immediately.
func New(opts ...Option) (*Logger, error) {
	config := defaultConfig()

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	onError := config.FailureHandler
	if onError == nil {
		onError = func(handler string, err error) {
			fmt.Fprintf(os.Stderr, "easylog: handler %s write error: %v\n", handler, err)
		}
	}

	l := &Logger{
		name:     config.Name,
		global:   config.GlobalLevel,
		counters: map[Kind]int{KindConsole: 0, KindFile: 0},
		dateFormats: map[Kind]string{
			KindConsole: format.ConsoleDateFormat,
			KindFile:    format.FileDateFormat,
		},
		onError: onError,
	}
	l.logger = mtlog.New(
		mtlog.WithSink(&dispatchSink{l: l}),
		mtlog.WithMinimumLevel(core.VerboseLevel),
	)

	if config.Console {
		if err := l.AddConsole(WithStream(config.ConsoleStream)); err != nil {
			return nil, fmt.Errorf("default console handler: %w", err)
		}
	}

	return l, nil
}

// Name returns the logger identity.
func (l *Logger) Name() string {
	return l.name
}

// GlobalLevel returns the default severity assigned to handlers registered
// without an explicit level.
func (l *Logger) GlobalLevel() Level {
	return l.global
}

// AddConsole registers a console handler. Name, level, format, date format
// and stream all default when not given: auto-generated console{N} name,
// the facade's global level, "{Level} - {Message}", a 12-hour clock, and
// os.Stdout.
func (l *Logger) AddConsole(opts ...HandlerOption) error {
	cfg := &handlerConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return fmt.Errorf("invalid console handler option: %w", err)
		}
	}
	if cfg.encoding != "" || cfg.truncate || cfg.lazy {
		return fmt.Errorf("console handler: file options are not valid here")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrLoggerClosed
	}
	name, err := l.resolveName(KindConsole, cfg.name)
	if err != nil {
		return err
	}

	l.commit(&Handler{
		sink: sinks.NewConsoleSink(cfg.stream),
		name: name,
		kind: KindConsole,
	}, cfg, format.ConsoleTemplate)
	return nil
}

// AddFile registers a file handler for path. Defaults follow AddConsole
// except that the format also carries timestamp and logger name, the date
// format is ISO-like, and the file is opened immediately in append mode
// writing UTF-8.
func (l *Logger) AddFile(path string, opts ...HandlerOption) error {
	cfg := &handlerConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return fmt.Errorf("invalid file handler option: %w", err)
		}
	}
	if cfg.stream != nil {
		return fmt.Errorf("file handler: the stream option is not valid here")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrLoggerClosed
	}
	name, err := l.resolveName(KindFile, cfg.name)
	if err != nil {
		return err
	}

	var fileOpts []sinks.FileOption
	if cfg.encoding != "" {
		fileOpts = append(fileOpts, sinks.WithEncoding(cfg.encoding))
	}
	if cfg.truncate {
		fileOpts = append(fileOpts, sinks.WithMode(sinks.ModeTruncate))
	}
	if cfg.lazy {
		fileOpts = append(fileOpts, sinks.WithLazyOpen())
	}
	sink, err := sinks.NewFileSink(path, fileOpts...)
	if err != nil {
		return err
	}

	l.commit(&Handler{
		sink: sink,
		name: name,
		kind: KindFile,
	}, cfg, format.FileTemplate)
	return nil
}

// HandlerNames returns the registered handler names in insertion order.
func (l *Logger) HandlerNames() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, len(l.handlers))
	for i, h := range l.handlers {
		names[i] = h.name
	}
	return names
}

// Handler returns the record registered under name.
func (l *Logger) Handler(name string) (*Handler, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	h := l.lookup(name)
	return h, h != nil
}

// SetFormat reformats a registered handler in place. An empty dateFormat
// keeps the handler's existing one. Fails with ErrNoHandlers when nothing
// is registered and ErrHandlerNotFound when no record matches name.
func (l *Logger) SetFormat(name, template, dateFormat string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.handlers) == 0 {
		return ErrNoHandlers
	}
	h := l.lookup(name)
	if h == nil {
		return fmt.Errorf("%w: %q", ErrHandlerNotFound, name)
	}

	if dateFormat == "" {
		dateFormat = h.dateFormat
	}
	h.tmpl = template
	h.dateFormat = dateFormat
	h.formatter = format.New(template, dateFormat)
	return nil
}

// Critical logs msg at critical severity.
func (l *Logger) Critical(msg string) { l.logger.Fatal(msg) }

// Error logs msg at error severity.
func (l *Logger) Error(msg string) { l.logger.Error(msg) }

// Warning logs msg at warning severity.
func (l *Logger) Warning(msg string) { l.logger.Warn(msg) }

// Info logs msg at info severity.
func (l *Logger) Info(msg string) { l.logger.Info(msg) }

// Debug logs msg at debug severity.
func (l *Logger) Debug(msg string) { l.logger.Debug(msg) }

// Log logs msg at the given severity.
func (l *Logger) Log(level Level, msg string) {
	switch level {
	case LevelCritical:
		l.Critical(msg)
	case LevelError:
		l.Error(msg)
	case LevelWarning:
		l.Warning(msg)
	case LevelDebug:
		l.Debug(msg)
	default:
		l.Info(msg)
	}
}

// Close closes all handler sinks. The logger accepts no registrations
// afterwards; Close is idempotent.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	var firstErr error
	for _, h := range l.handlers {
		if err := h.sink.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close handler %s: %w", h.name, err)
		}
		monitoring.HandlersRegistered.WithLabelValues(string(h.kind)).Dec()
	}
	return firstErr
}

// dispatchSink adapts the facade's handler fan-out to the backend's sink
// interface.
type dispatchSink struct {
	l *Logger
}

// Ensure we implement the interface
var _ core.LogEventSink = (*dispatchSink)(nil)

func (d *dispatchSink) Emit(event *core.LogEvent) {
	d.l.dispatch(event)
}

func (d *dispatchSink) Close() error {
	return nil
}

// dispatch renders and writes one event through every handler whose
// threshold admits its level.
func (l *Logger) dispatch(ev *core.LogEvent) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return
	}
	monitoring.EventsLogged.WithLabelValues(l.name, levelFor(ev.Level).String()).Inc()

	for _, h := range l.handlers {
		if ev.Level < h.level.coreLevel() {
			continue
		}
		if err := h.sink.Write(h.formatter.Render(ev, l.name)); err != nil {
			monitoring.HandlerWrites.WithLabelValues(h.name, string(h.kind), "error").Inc()
			l.onError(h.name, err)
			continue
		}
		monitoring.HandlerWrites.WithLabelValues(h.name, string(h.kind), "ok").Inc()
	}
}

// resolveName picks the handler name, auto-generating {kind}{N} when no
// explicit name is given. Counters only advance; a generated name that an
// explicit registration already took is skipped, never reused.
func (l *Logger) resolveName(kind Kind, explicit string) (string, error) {
	if explicit != "" {
		if l.lookup(explicit) != nil {
			return "", fmt.Errorf("%w: %q", ErrDuplicateName, explicit)
		}
		return explicit, nil
	}
	for {
		name := fmt.Sprintf("%s%d", kind, l.counters[kind])
		l.counters[kind]++
		if l.lookup(name) == nil {
			return name, nil
		}
	}
}

func (l *Logger) lookup(name string) *Handler {
	for _, h := range l.handlers {
		if h.name == name {
			return h
		}
	}
	return nil
}

// commit resolves the remaining handler settings against the facade's
// defaults and appends the record. Called with l.mu held.
func (l *Logger) commit(h *Handler, cfg *handlerConfig, defaultTmpl string) {
	h.level = l.global
	if cfg.levelSet {
		h.level = cfg.level
	}
	h.tmpl = defaultTmpl
	if cfg.tmpl != "" {
		h.tmpl = cfg.tmpl
	}
	h.dateFormat = l.dateFormats[h.kind]
	if cfg.dateFormat != "" {
		h.dateFormat = cfg.dateFormat
	}
	h.formatter = format.New(h.tmpl, h.dateFormat)

	l.handlers = append(l.handlers, h)
	monitoring.HandlersRegistered.WithLabelValues(string(h.kind)).Inc()
}
