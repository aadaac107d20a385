package drain

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/driftlog/drift/core"
)

func TestAsync_OrderPreservedAndFlushedOnClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	inner := &captureDrain{}
	a := NewAsync(inner, AsyncConfig{BufferSize: 8})

	require.NoError(t, a.Log(testRecord(core.InfoLevel, "r1"), testFields()))
	require.NoError(t, a.Log(testRecord(core.InfoLevel, "r2"), testFields()))
	require.NoError(t, a.Log(testRecord(core.InfoLevel, "r3"), testFields()))

	// Close drains everything already accepted before returning.
	require.NoError(t, a.Close())

	assert.Equal(t, []string{"r1", "r2", "r3"}, inner.Messages())
	assert.True(t, inner.closed)
	assert.Equal(t, uint64(3), a.Stats().Processed)
}

func TestAsync_RecordCopiedAcrossQueue(t *testing.T) {
	defer goleak.VerifyNone(t)

	inner := &captureDrain{}
	a := NewAsync(inner, AsyncConfig{BufferSize: 8})

	rec := testRecord(core.InfoLevel, "original")
	require.NoError(t, a.Log(rec, testFields()))
	// The producer recycles its record immediately; the queued copy
	// must be unaffected.
	rec.Message = "mutated"
	core.PutRecord(rec)

	require.NoError(t, a.Close())
	assert.Equal(t, []string{"original"}, inner.Messages())
}

func TestAsync_LazyResolvedOnWorker(t *testing.T) {
	defer goleak.VerifyNone(t)

	var evals int32
	var mu sync.Mutex
	inner := &captureDrain{}
	a := NewAsync(inner, AsyncConfig{BufferSize: 8})

	fields := testFields(core.Field{
		Key:  "deferred",
		Type: core.LazyType,
		Any: core.LazyFunc(func(core.Snapshot) interface{} {
			mu.Lock()
			evals++
			mu.Unlock()
			return "late"
		}),
	})

	require.NoError(t, a.Log(testRecord(core.InfoLevel, "m"), fields))
	require.NoError(t, a.Close())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, int32(1), evals, "lazy field resolved exactly once, by the worker")
}

func TestAsync_LogAfterCloseReturnsErrClosed(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := NewAsync(&captureDrain{}, AsyncConfig{BufferSize: 4})
	require.NoError(t, a.Close())
	require.NoError(t, a.Close(), "Close is idempotent")

	err := a.Log(testRecord(core.InfoLevel, "late"), testFields())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestAsync_CloseRacingProducersLosesNoAcceptedRecord(t *testing.T) {
	defer goleak.VerifyNone(t)

	inner := &captureDrain{}
	a := NewAsync(inner, AsyncConfig{BufferSize: 2})

	const producers = 4
	const perProducer = 100

	var accepted atomic.Int64
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				if err := a.Log(testRecord(core.InfoLevel, "m"), testFields()); err == nil {
					accepted.Add(1)
				}
			}
		}()
	}

	// Close while producers may still be enqueueing; accepted records
	// must all come out the other side.
	closeErr := a.Close()
	wg.Wait()

	require.NoError(t, closeErr)
	assert.Equal(t, accepted.Load(), int64(len(inner.Messages())),
		"every record accepted before Close must reach the inner drain")
}

func TestAsync_WorkerErrorsReachHandlerNotProducer(t *testing.T) {
	defer goleak.VerifyNone(t)

	sinkErr := errors.New("sink broken")
	var mu sync.Mutex
	var seen []error
	a := NewAsync(&failDrain{err: sinkErr}, AsyncConfig{
		BufferSize: 4,
		ErrorHandler: func(err error) {
			mu.Lock()
			seen = append(seen, err)
			mu.Unlock()
		},
	})

	// The producer call must succeed even though the sink fails.
	require.NoError(t, a.Log(testRecord(core.ErrorLevel, "m"), testFields()))
	require.NoError(t, a.Close())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 1)
	assert.ErrorIs(t, seen[0], sinkErr)
	assert.Zero(t, a.Stats().Processed)
}

func TestAsync_DropNewestWhenFull(t *testing.T) {
	defer goleak.VerifyNone(t)

	// A blocking inner drain keeps the queue full deterministically.
	release := make(chan struct{})
	inner := &gateDrain{gate: release}
	a := NewAsync(inner, AsyncConfig{BufferSize: 1, Policy: DropNewest})

	// First record occupies the worker, second fills the queue; the
	// rest are dropped.
	for i := 0; i < 5; i++ {
		require.NoError(t, a.Log(testRecord(core.DebugLevel, "m"), testFields()))
	}
	close(release)
	require.NoError(t, a.Close())

	stats := a.Stats()
	assert.NotZero(t, stats.Dropped[core.DebugLevel])
	assert.Equal(t, uint64(5), stats.Processed+stats.Dropped[core.DebugLevel])
}

func TestAsync_DropOldestEvicts(t *testing.T) {
	defer goleak.VerifyNone(t)

	release := make(chan struct{})
	inner := &gateDrain{gate: release}
	a := NewAsync(inner, AsyncConfig{BufferSize: 1, Policy: DropOldest})

	for i := 0; i < 5; i++ {
		require.NoError(t, a.Log(testRecord(core.InfoLevel, "m"), testFields()))
	}
	close(release)
	require.NoError(t, a.Close())

	stats := a.Stats()
	assert.NotZero(t, stats.Dropped[core.InfoLevel])
	assert.Equal(t, uint64(5), stats.Processed+stats.Dropped[core.InfoLevel])
}

func TestAsync_BlockPolicyNeverDrops(t *testing.T) {
	defer goleak.VerifyNone(t)

	inner := &captureDrain{}
	a := NewAsync(inner, AsyncConfig{BufferSize: 1, Policy: Block})

	const n = 200
	for i := 0; i < n; i++ {
		require.NoError(t, a.Log(testRecord(core.InfoLevel, "m"), testFields()))
	}
	require.NoError(t, a.Close())

	assert.Len(t, inner.Messages(), n)
	assert.Zero(t, a.Stats().Dropped[core.InfoLevel])
}

// gateDrain blocks its first Log until the gate closes, letting tests
// fill the async queue deterministically.
type gateDrain struct {
	gate <-chan struct{}
	once sync.Once
}

func (d *gateDrain) Log(*core.Record, core.Fields) error {
	d.once.Do(func() { <-d.gate })
	return nil
}

func (d *gateDrain) Close() error { return nil }
