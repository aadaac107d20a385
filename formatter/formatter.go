package formatter

import (
	"bytes"

	"github.com/driftlog/drift/core"
)

// Formatter serializes one record and its field view into a buffer.
// Formatters are the point where lazy fields get forced: iterating
// fields resolves deferred values, so no formatter may run for records
// a combinator has already discarded.
type Formatter interface {
	Format(rec *core.Record, fields core.Fields, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
	// Color enables ANSI level coloring (text formatter only)
	Color bool
}
