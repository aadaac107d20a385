// Package slogbridge adapts a drift logger hierarchy to the standard
// library's log/slog. It is a thin facade holding one root Logger and
// introduces no global state; programs that want an ambient slog front
// end over a drain tree install it themselves:
//
//	slog.SetDefault(slog.New(slogbridge.NewHandler(root, logger.InfoLevel)))
package slogbridge

import (
	"context"
	"log/slog"

	"github.com/driftlog/drift/core"
	"github.com/driftlog/drift/logger"
)

// Handler implements slog.Handler on top of a drift Logger.
type Handler struct {
	log   *logger.Logger
	min   core.Level
	group string
}

// NewHandler creates a slog.Handler forwarding to log, gating on min.
func NewHandler(log *logger.Logger, min core.Level) *Handler {
	return &Handler{log: log, min: min}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= h.min
}

// Handle converts the slog.Record's attrs to fields and forwards the
// message through the wrapped Logger.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	fields := make([]core.Field, 0, record.NumAttrs())
	record.Attrs(func(a slog.Attr) bool {
		fields = appendAttrFields(fields, h.group, a)
		return true
	})
	h.log.Log(slogLevelToCore(record.Level), record.Message, fields...)
	return nil
}

// WithAttrs returns a Handler over a child Logger carrying the attrs as
// context fields.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := make([]core.Field, 0, len(attrs))
	for _, a := range attrs {
		fields = appendAttrFields(fields, h.group, a)
	}
	return &Handler{
		log:   h.log.With(fields...),
		min:   h.min,
		group: h.group,
	}
}

// WithGroup returns a Handler that dot-prefixes subsequent attr keys
// with the group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &Handler{
		log:   h.log,
		min:   h.min,
		group: group,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttrFields converts a slog.Attr to core.Fields, prepending the
// group prefix if present. Group attrs flatten to dot-prefixed fields,
// one per member; empty groups contribute nothing.
func appendAttrFields(fields []core.Field, group string, a slog.Attr) []core.Field {
	key := a.Key
	if group != "" {
		if key == "" {
			// Inline group: members keep the enclosing prefix.
			key = group
		} else {
			key = group + "." + a.Key
		}
	}

	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindString:
		return append(fields, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(fields, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(fields, core.Field{Key: key, Type: core.Uint64Type, Int64: int64(a.Value.Uint64())})
	case slog.KindFloat64:
		return append(fields, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		val := int64(0)
		if a.Value.Bool() {
			val = 1
		}
		return append(fields, core.Field{Key: key, Type: core.BoolType, Int64: val})
	case slog.KindTime:
		return append(fields, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	case slog.KindDuration:
		return append(fields, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	case slog.KindGroup:
		for _, member := range a.Value.Group() {
			fields = appendAttrFields(fields, key, member)
		}
		return fields
	default:
		return append(fields, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()})
	}
}
