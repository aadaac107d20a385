// Package logger is the public API of drift. Most users only need to
// import this package and drain.
//
// A Logger is immutable: it pairs a context chain node with a shared
// drain handle, set once and never modified. This makes Logger
// inherently safe for concurrent use without any locking on the read
// path. Child loggers created via With share the drain and the parent's
// context without copying it:
//
//	log := logger.New(drain.NewTerm(os.Stdout),
//	    logger.String("service", "api"))
//	reqLog := log.With(logger.String("request_id", id))
//
// There is deliberately no package-level default logger and no ambient
// registry; every component receives its Logger explicitly. Severity
// filtering lives in the drain tree (drain.NewFilterLevel), not in the
// Logger, so that records dropped by a filter never pay for lazy field
// evaluation:
//
//	log := logger.New(drain.NewFilterLevel(logger.InfoLevel, sink))
//	log.Debug("noisy", logger.Lazy("dump", expensiveDump)) // free
//
// Drain errors never interrupt application control flow. Log swallows
// them; operators inspect them through LastError or the Builder's
// WithErrorHandler callback.
package logger
