package core

import "time"

// Snapshot is a read-only copy of a record's context handed to lazy
// field computations. It is a plain value, safe to move across
// goroutines.
type Snapshot struct {
	Time    time.Time
	Level   Level
	Message string
}

// LazyFunc computes a field value on demand. It runs only when a drain
// serializes the record, possibly on a different goroutine than the one
// that logged (the async worker), so any state it captures must be safe
// for cross-goroutine sharing.
type LazyFunc func(Snapshot) interface{}

// resolveLazy invokes a lazy field's computation and converts the
// result into an eager field under the same key.
func resolveLazy(f Field, snap Snapshot) Field {
	fn, ok := f.Any.(LazyFunc)
	if !ok {
		// Not actually lazy; treat the payload as an opaque value.
		return Field{Key: f.Key, Type: AnyType, Any: f.Any}
	}
	return fieldOf(f.Key, fn(snap))
}

// fieldOf converts an arbitrary scalar into the tightest Field encoding.
func fieldOf(key string, v interface{}) Field {
	switch val := v.(type) {
	case string:
		return Field{Key: key, Type: StringType, Str: val}
	case int:
		return Field{Key: key, Type: IntType, Int64: int64(val)}
	case int64:
		return Field{Key: key, Type: Int64Type, Int64: val}
	case uint64:
		return Field{Key: key, Type: Uint64Type, Int64: int64(val)}
	case float64:
		return Field{Key: key, Type: Float64Type, Float64: val}
	case bool:
		i := int64(0)
		if val {
			i = 1
		}
		return Field{Key: key, Type: BoolType, Int64: i}
	case time.Time:
		return Field{Key: key, Type: TimeType, Int64: val.UnixNano()}
	case time.Duration:
		return Field{Key: key, Type: DurationType, Int64: int64(val)}
	case error:
		return Field{Key: key, Type: ErrorType, Str: val.Error()}
	default:
		return Field{Key: key, Type: AnyType, Any: v}
	}
}
