package drain

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftlog/drift/core"
)

func TestFilterLevel_Gate(t *testing.T) {
	inner := &countDrain{}
	f := NewFilterLevel(core.InfoLevel, inner)

	pass := []core.Level{core.InfoLevel, core.WarnLevel, core.ErrorLevel, core.CritLevel}
	drop := []core.Level{core.TraceLevel, core.DebugLevel}

	for _, lvl := range pass {
		require.NoError(t, f.Log(testRecord(lvl, "m"), testFields()))
	}
	for _, lvl := range drop {
		require.NoError(t, f.Log(testRecord(lvl, "m"), testFields()))
	}

	assert.Equal(t, int64(len(pass)), inner.calls.Load(),
		"inner drain must see exactly the records at or above the threshold")
}

func TestFilterLevel_ShortCircuitSkipsLazy(t *testing.T) {
	var evals atomic.Int32
	sink := &captureDrain{}
	f := NewFilterLevel(core.InfoLevel, sink)

	fields := testFields(core.Field{
		Key:  "dump",
		Type: core.LazyType,
		Any: core.LazyFunc(func(core.Snapshot) interface{} {
			evals.Add(1)
			return "expensive"
		}),
	})

	// Debug record is dropped: the sink's logic and the lazy
	// computation must both run zero times.
	require.NoError(t, f.Log(testRecord(core.DebugLevel, "noisy"), fields))
	assert.Zero(t, evals.Load())
	assert.Empty(t, sink.Messages())

	// The same fields pass at Error level and resolve exactly once.
	require.NoError(t, f.Log(testRecord(core.ErrorLevel, "boom"), fields))
	assert.Equal(t, int32(1), evals.Load())
	assert.Equal(t, []string{"boom"}, sink.Messages())
}

func TestFilterLevel_SetMinLevel(t *testing.T) {
	inner := &countDrain{}
	f := NewFilterLevel(core.ErrorLevel, inner)

	require.NoError(t, f.Log(testRecord(core.InfoLevel, "m"), testFields()))
	assert.Zero(t, inner.calls.Load())

	f.SetMinLevel(core.InfoLevel)
	assert.Equal(t, core.InfoLevel, f.MinLevel())

	require.NoError(t, f.Log(testRecord(core.InfoLevel, "m"), testFields()))
	assert.Equal(t, int64(1), inner.calls.Load())
}

func TestFilter_Predicate(t *testing.T) {
	inner := &countDrain{}
	f := NewFilter(func(rec *core.Record) bool {
		return rec.Message != "skip"
	}, inner)

	require.NoError(t, f.Log(testRecord(core.InfoLevel, "skip"), testFields()))
	require.NoError(t, f.Log(testRecord(core.InfoLevel, "keep"), testFields()))

	assert.Equal(t, int64(1), inner.calls.Load())
}

func TestFilter_CloseForwards(t *testing.T) {
	inner := &countDrain{}
	require.NoError(t, NewFilter(func(*core.Record) bool { return true }, inner).Close())
	assert.True(t, inner.closed.Load())

	inner2 := &countDrain{}
	require.NoError(t, NewFilterLevel(core.InfoLevel, inner2).Close())
	assert.True(t, inner2.closed.Load())
}

func TestDiscard(t *testing.T) {
	d := Discard()
	var evals atomic.Int32
	fields := testFields(core.Field{
		Key:  "never",
		Type: core.LazyType,
		Any:  core.LazyFunc(func(core.Snapshot) interface{} { evals.Add(1); return 1 }),
	})

	require.NoError(t, d.Log(testRecord(core.CritLevel, "m"), fields))
	require.NoError(t, d.Close())
	assert.Zero(t, evals.Load(), "Discard must never read the field view")
}
