package logger

import (
	"fmt"
	"sync"
	"time"

	"github.com/driftlog/drift/core"
	"github.com/driftlog/drift/drain"
)

// Logger pairs a context chain node with a shared drain handle. It is
// immutable and freely shareable across goroutines; child loggers
// created with With share the drain and the ancestor chain.
//
// Logger performs no severity gating of its own: filtering is a drain
// concern (drain.FilterLevel), which is what lets filtered-out records
// skip lazy field evaluation entirely.
type Logger struct {
	drain         drain.Drain
	chain         *core.Chain
	hook          *errHook
	includeCaller bool
	callerSkip    int
	coarseClock   bool
}

// errHook is the out-of-band channel for drain failures. It is shared
// by a whole logger family so that LastError on any member reflects the
// most recent failure anywhere in the hierarchy.
type errHook struct {
	mu   sync.Mutex
	fn   func(error)
	last error
}

func (h *errHook) report(err error) {
	h.mu.Lock()
	h.last = err
	fn := h.fn
	h.mu.Unlock()
	if fn != nil {
		fn(err)
	}
}

func (h *errHook) lastError() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	drain         drain.Drain
	fields        []core.Field
	errFn         func(error)
	includeCaller bool
	callerSkip    int
	coarseClock   bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		callerSkip: 3, // Default skip for core.GetCaller
	}
}

// WithDrain sets the drain
func (b *Builder) WithDrain(d drain.Drain) *Builder {
	b.drain = d
	return b
}

// WithFields adds root context fields inherited by all log calls
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCoarseClock trades timestamp precision (500µs) for cheaper
// timestamps on hot paths
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	return b
}

// WithErrorHandler sets a callback invoked with every drain failure,
// in addition to the LastError slot
func (b *Builder) WithErrorHandler(fn func(error)) *Builder {
	b.errFn = fn
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	if b.coarseClock {
		core.StartCoarseClock()
	}
	return &Logger{
		drain:         b.drain,
		chain:         core.NewChain(nil, b.fields...),
		hook:          &errHook{fn: b.errFn},
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		coarseClock:   b.coarseClock,
	}
}

// New creates a Logger over d with optional root fields; shorthand for
// the Builder with defaults.
func New(d drain.Drain, fields ...core.Field) *Logger {
	return NewBuilder().WithDrain(d).WithFields(fields...).Build()
}

// With creates a child Logger carrying additional context fields. Pure
// data composition: the child shares the drain handle and the parent's
// chain, and costs O(len(fields)) regardless of ancestor depth.
func (l *Logger) With(fields ...core.Field) *Logger {
	if len(fields) == 0 {
		return l
	}
	child := *l
	child.chain = core.NewChain(l.chain, fields...)
	return &child
}

// Log emits a record at the given level. Drain errors never reach the
// caller; they are recorded in the shared error hook.
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	l.log(level, msg, fields)
}

// log builds the record, assembles the lazy field view (call-site
// pairs, then the chain nearest-first), and invokes the drain.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	if l.drain == nil {
		return
	}

	rec := core.GetRecord()
	if l.coarseClock {
		rec.Time = core.CoarseNow()
	} else {
		rec.Time = time.Now()
	}
	rec.Level = level
	rec.Message = msg
	if l.includeCaller {
		rec.Caller = core.GetCaller(l.callerSkip)
	}

	view := core.NewFields(rec.Snapshot(), fields, l.chain)
	if err := l.drain.Log(rec, view); err != nil {
		l.hook.report(err)
	}

	// Safe to recycle: drains must not retain the pointer past Log
	// (Async copies the value).
	core.PutRecord(rec)
}

// LastError returns the most recent drain failure observed by this
// logger family, or nil.
func (l *Logger) LastError() error {
	return l.hook.lastError()
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	l.log(core.ErrorLevel, msg, fields)
}

// Crit logs a critical message
func (l *Logger) Crit(msg string, fields ...core.Field) {
	l.log(core.CritLevel, msg, fields)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Critf logs a critical message with formatting
func (l *Logger) Critf(format string, args ...interface{}) {
	l.log(core.CritLevel, fmt.Sprintf(format, args...), nil)
}

// Close closes the logger's drain
func (l *Logger) Close() error {
	if l.drain != nil {
		return l.drain.Close()
	}
	return nil
}
