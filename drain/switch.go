package drain

import (
	"sync/atomic"

	"github.com/driftlog/drift/core"
)

// AtomicSwitch wraps a replaceable inner drain behind an atomic
// reference. Log reads one consistent snapshot of the current inner at
// call entry and uses it for the entire call, even when Set races
// concurrently; Set installs a new inner for subsequent calls without
// blocking readers. The previous inner stays alive for any in-flight
// call that still holds it and is collected once unreferenced.
type AtomicSwitch struct {
	cur atomic.Pointer[Drain]
}

// NewAtomicSwitch creates a switch initially routing to d. A nil d is
// replaced by Discard.
func NewAtomicSwitch(d Drain) *AtomicSwitch {
	s := &AtomicSwitch{}
	s.Set(d)
	return s
}

// Log forwards to the drain installed at call entry.
func (s *AtomicSwitch) Log(rec *core.Record, fields core.Fields) error {
	return (*s.cur.Load()).Log(rec, fields)
}

// Set atomically installs d as the target of subsequent Log calls.
// In-flight calls keep the snapshot they loaded.
func (s *AtomicSwitch) Set(d Drain) {
	if d == nil {
		d = Discard()
	}
	s.cur.Store(&d)
}

// Current returns the currently installed drain.
func (s *AtomicSwitch) Current() Drain {
	return *s.cur.Load()
}

// Close closes the currently installed drain.
func (s *AtomicSwitch) Close() error {
	return (*s.cur.Load()).Close()
}
