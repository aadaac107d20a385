package drain

import (
	"errors"

	"github.com/driftlog/drift/core"
)

// Drain is the sink capability every combinator and terminal sink
// implements. Log consumes one record and its lazy field view; what
// success means (written, enqueued, forwarded) is the implementation's
// choice. A drain must tolerate concurrent Log calls from any number of
// goroutines unless it is wrapped by Async, whose worker serializes
// calls to its inner drain.
//
// The *Record is valid only for the duration of the call; drains that
// defer processing must copy the value.
type Drain interface {
	Log(rec *core.Record, fields core.Fields) error

	// Close flushes and releases resources. Pure combinators forward
	// it to their inner drains.
	Close() error
}

// ErrClosed is returned by Log on a drain that has been closed.
var ErrClosed = errors.New("drift: drain closed")
