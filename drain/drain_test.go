package drain

import (
	"sync"
	"sync/atomic"

	"github.com/driftlog/drift/core"
)

// Shared test stubs for the combinator suites.

// countDrain counts Log calls without touching the field view.
type countDrain struct {
	calls  atomic.Int64
	closed atomic.Bool
}

func (d *countDrain) Log(*core.Record, core.Fields) error {
	d.calls.Add(1)
	return nil
}

func (d *countDrain) Close() error {
	d.closed.Store(true)
	return nil
}

// failDrain always fails with the given error.
type failDrain struct {
	err   error
	calls atomic.Int64
}

func (d *failDrain) Log(*core.Record, core.Fields) error {
	d.calls.Add(1)
	return d.err
}

func (d *failDrain) Close() error { return nil }

// captureDrain records messages in arrival order and realizes the
// field view, standing in for a serializing sink.
type captureDrain struct {
	mu       sync.Mutex
	messages []string
	fields   [][]core.Field
	closed   bool
}

func (d *captureDrain) Log(rec *core.Record, fields core.Fields) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, rec.Message)
	d.fields = append(d.fields, fields.Append(nil))
	return nil
}

func (d *captureDrain) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

func (d *captureDrain) Messages() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.messages))
	copy(out, d.messages)
	return out
}

// testRecord builds a record without the pool so tests control its
// lifetime.
func testRecord(level core.Level, msg string) *core.Record {
	r := core.GetRecord()
	r.Level = level
	r.Message = msg
	return r
}

func testFields(fields ...core.Field) core.Fields {
	return core.NewFields(core.Snapshot{}, fields, nil)
}
