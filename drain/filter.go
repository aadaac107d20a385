package drain

import (
	"sync/atomic"

	"github.com/driftlog/drift/core"
)

// FilterLevel forwards records at or above a minimum severity and
// short-circuits everything below it without touching the field view,
// so lazy fields of filtered records are never evaluated. The threshold
// can be adjusted at runtime.
type FilterLevel struct {
	min   atomic.Int32
	inner Drain
}

// NewFilterLevel creates a level filter in front of inner.
func NewFilterLevel(min core.Level, inner Drain) *FilterLevel {
	f := &FilterLevel{inner: inner}
	f.min.Store(int32(min))
	return f
}

// Log forwards the record when its level is at least the threshold.
func (f *FilterLevel) Log(rec *core.Record, fields core.Fields) error {
	if int32(rec.Level) < f.min.Load() {
		return nil
	}
	return f.inner.Log(rec, fields)
}

// SetMinLevel atomically adjusts the threshold for subsequent calls.
func (f *FilterLevel) SetMinLevel(min core.Level) {
	f.min.Store(int32(min))
}

// MinLevel returns the current threshold.
func (f *FilterLevel) MinLevel() core.Level {
	return core.Level(f.min.Load())
}

// Close closes the inner drain.
func (f *FilterLevel) Close() error {
	return f.inner.Close()
}

// Filter forwards records for which the predicate returns true and
// short-circuits the rest, preserving the same laziness guarantee as
// FilterLevel. The predicate sees only the record, never the fields,
// and must be safe for concurrent calls.
type Filter struct {
	pred  func(*core.Record) bool
	inner Drain
}

// NewFilter creates a predicate filter in front of inner.
func NewFilter(pred func(*core.Record) bool, inner Drain) *Filter {
	return &Filter{pred: pred, inner: inner}
}

// Log forwards the record when the predicate accepts it.
func (f *Filter) Log(rec *core.Record, fields core.Fields) error {
	if !f.pred(rec) {
		return nil
	}
	return f.inner.Log(rec, fields)
}

// Close closes the inner drain.
func (f *Filter) Close() error {
	return f.inner.Close()
}
