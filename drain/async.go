package drain

import (
	"sync"

	"github.com/driftlog/drift/core"
)

// AsyncConfig holds configuration for the async combinator
type AsyncConfig struct {
	// BufferSize is the queue capacity (default: 1000)
	BufferSize int
	// Policy defines producer behavior on a full queue (default: Block)
	Policy OverflowPolicy
	// ErrorHandler receives inner-drain failures from the worker. The
	// producer call has already returned by then, so this is the only
	// channel for worker-side errors. Called from the worker goroutine.
	ErrorHandler func(error)
}

func applyAsyncDefaults(cfg *AsyncConfig) {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
}

// asyncItem carries one accepted record across the goroutine boundary.
// The record is a value copy; the field view stays lazy, sharing the
// immutable chain data and the per-call memo table.
type asyncItem struct {
	rec    core.Record
	fields core.Fields
}

// Async decouples producers from a slow inner drain. Log copies the
// record onto a bounded queue and returns without waiting; a single
// worker goroutine dequeues in arrival order and calls the inner drain
// synchronously, so the inner drain is only ever invoked from one
// goroutine and need not be concurrency-safe on its own.
//
// Close stops intake, drains every already-accepted item through the
// worker, then closes the inner drain. Records accepted before Close
// are never lost; Log calls that lose the race return ErrClosed.
type Async struct {
	inner  Drain
	queue  chan asyncItem
	stats  *Stats
	policy OverflowPolicy
	errFn  func(error)

	// mu guards closed and the queue channel: producers send under the
	// read lock, Close flips closed and closes the channel under the
	// write lock. A producer blocked on a full queue keeps its read
	// lock, so Close cannot close the channel out from under it; the
	// worker keeps draining meanwhile, so the producer always finishes.
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewAsync creates an async drain in front of inner and starts its
// worker goroutine.
func NewAsync(inner Drain, cfg AsyncConfig) *Async {
	applyAsyncDefaults(&cfg)
	a := &Async{
		inner:  inner,
		queue:  make(chan asyncItem, cfg.BufferSize),
		stats:  NewStats(),
		policy: cfg.Policy,
		errFn:  cfg.ErrorHandler,
	}
	a.wg.Add(1)
	go a.run()
	return a
}

// Log enqueues the record and returns without waiting for the inner
// drain. Inner errors are never surfaced here; they reach the
// ErrorHandler from the worker.
func (a *Async) Log(rec *core.Record, fields core.Fields) error {
	it := asyncItem{rec: *rec, fields: fields}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return ErrClosed
	}

	switch a.policy {
	case DropOldest:
		select {
		case a.queue <- it:
			return nil
		default:
		}
		// Queue full - evict the oldest, then retry once
		select {
		case old := <-a.queue:
			a.stats.incrementDropped(old.rec.Level)
		default:
		}
		select {
		case a.queue <- it:
			return nil
		default:
			a.stats.incrementDropped(it.rec.Level)
			return nil
		}

	case DropNewest:
		select {
		case a.queue <- it:
			return nil
		default:
			a.stats.incrementDropped(it.rec.Level)
			return nil
		}

	case Block:
		fallthrough
	default:
		select {
		case a.queue <- it:
			return nil
		default:
		}
		a.stats.incrementBlocked()
		a.queue <- it
		return nil
	}
}

// run is the single consumer. It preserves arrival order and exits
// only once the queue is closed and fully drained, which is what makes
// Close a guaranteed flush.
func (a *Async) run() {
	defer a.wg.Done()
	for it := range a.queue {
		if err := a.inner.Log(&it.rec, it.fields); err != nil {
			if a.errFn != nil {
				a.errFn(err)
			}
			continue
		}
		a.stats.incrementProcessed()
	}
}

// Close stops intake, waits for the worker to drain every accepted
// record through the inner drain, then closes the inner drain.
// Subsequent Log calls return ErrClosed. Safe to call more than once.
func (a *Async) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	close(a.queue)
	a.mu.Unlock()

	a.wg.Wait()
	return a.inner.Close()
}

// Stats returns a snapshot of the drain's counters.
func (a *Async) Stats() Snapshot {
	return a.stats.GetSnapshot()
}
