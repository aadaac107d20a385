// Package formatter provides encoders that turn a record and its field
// view into bytes.
//
// TextFormatter writes human-readable lines with optional ANSI level
// coloring; JSONFormatter writes one manually-encoded JSON object per
// line. Both iterate the field view lazily, which is the only place in
// the pipeline where deferred field values are computed.
package formatter
