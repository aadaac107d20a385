package core

import (
	"iter"
	"sync"
)

// Fields is the lazy view over one log call's key-value pairs, ordered
// most-specific-first: call-site pairs, then the emitting logger's own
// chain pairs, then each ancestor's pairs nearest-first. Duplicate keys
// are preserved; drains see every pair the caller supplied.
//
// Iteration resolves lazy fields at yield time and memoizes the result,
// so a lazy computation runs at most once per log call even when the
// same view is traversed by several sinks (Duplicate) or from another
// goroutine (Async). A drain that abandons iteration never evaluates
// the unvisited pairs.
//
// Fields is a small value; copying it (as the async queue does) shares
// the underlying immutable data and the memo table.
type Fields struct {
	snap  Snapshot
	call  []Field
	chain *Chain
	memo  *lazyMemo
}

// lazyMemo caches resolved lazy fields keyed by their position in the
// iteration order. Guarded by a mutex because Duplicate over two async
// drains may traverse the same view from two workers.
type lazyMemo struct {
	mu   sync.Mutex
	vals map[int]Field
}

// NewFields assembles the field view for one log call. The call slice
// is retained, not copied; the logger hands over ownership. The memo
// table is allocated only when a lazy field exists somewhere in the
// view, so calls without lazy fields pay nothing.
func NewFields(snap Snapshot, call []Field, chain *Chain) Fields {
	f := Fields{snap: snap, call: call, chain: chain}
	if chain.HasLazy() {
		f.memo = &lazyMemo{}
		return f
	}
	for _, fd := range call {
		if fd.Type == LazyType {
			f.memo = &lazyMemo{}
			break
		}
	}
	return f
}

// All returns an iterator over the pairs, most-specific-first. Breaking
// out of the loop abandons the traversal without materializing or
// resolving the remaining pairs.
func (f Fields) All() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		i := 0
		for _, fd := range f.call {
			if !yield(f.resolve(i, fd)) {
				return
			}
			i++
		}
		for c := f.chain; c != nil; c = c.parent {
			for _, fd := range c.own {
				if !yield(f.resolve(i, fd)) {
					return
				}
				i++
			}
		}
	}
}

// Len returns the number of pairs in the view without resolving any
// lazy values.
func (f Fields) Len() int {
	return len(f.call) + f.chain.Len()
}

// Append realizes the view into dst and returns the extended slice.
// Lazy fields are resolved (and memoized) in the process.
func (f Fields) Append(dst []Field) []Field {
	for fd := range f.All() {
		dst = append(dst, fd)
	}
	return dst
}

// resolve returns the field as-is for eager pairs and the memoized
// computation result for lazy ones. The position i is stable across
// traversals because the view is immutable.
func (f Fields) resolve(i int, fd Field) Field {
	if fd.Type != LazyType {
		return fd
	}
	m := f.memo
	if m == nil {
		return resolveLazy(fd, f.snap)
	}
	m.mu.Lock()
	if v, ok := m.vals[i]; ok {
		m.mu.Unlock()
		return v
	}
	v := resolveLazy(fd, f.snap)
	if m.vals == nil {
		m.vals = make(map[int]Field, 4)
	}
	m.vals[i] = v
	m.mu.Unlock()
	return v
}
