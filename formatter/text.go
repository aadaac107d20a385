package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/driftlog/drift/core"
)

// TextFormatter renders records as human-readable text:
//
//	2026-01-15T12:00:00Z [INFO] [main.go:42] message key=value ...
type TextFormatter struct {
	Config
	brackets *[core.NumLevels]string
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	f := &TextFormatter{Config: cfg, brackets: &levelBrackets}
	if cfg.Color {
		f.brackets = &levelBracketsColor
	}
	return f
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [core.NumLevels]string{
	core.TraceLevel: " [TRACE] ",
	core.DebugLevel: " [DEBUG] ",
	core.InfoLevel:  " [INFO] ",
	core.WarnLevel:  " [WARN] ",
	core.ErrorLevel: " [ERROR] ",
	core.CritLevel:  " [CRIT] ",
}

var levelBracketsColor = [core.NumLevels]string{
	core.TraceLevel: " \x1b[90m[TRACE]\x1b[0m ",
	core.DebugLevel: " \x1b[36m[DEBUG]\x1b[0m ",
	core.InfoLevel:  " \x1b[32m[INFO]\x1b[0m ",
	core.WarnLevel:  " \x1b[33m[WARN]\x1b[0m ",
	core.ErrorLevel: " \x1b[31m[ERROR]\x1b[0m ",
	core.CritLevel:  " \x1b[1;31m[CRIT]\x1b[0m ",
}

// Format writes the formatted record into the given buffer
func (f *TextFormatter) Format(rec *core.Record, fields core.Fields, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if int(rec.Level) < core.NumLevels && rec.Level >= 0 {
		buf.WriteString(f.brackets[rec.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	if f.IncludeCaller && rec.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(rec.Caller.ShortFile)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(rec.Caller.Line))
		buf.WriteString("] ")
	}

	buf.WriteString(rec.Message)

	for field := range fields.All() {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
}
