package core

// Chain is one node of a logger family's context chain: the node's own
// key-value pairs plus a shared reference to its parent. Nodes are
// immutable once created and hold no reference back to their children,
// so an arbitrary number of child loggers can share an ancestry without
// copying it and without cycles.
//
// A nil *Chain is the valid empty chain.
type Chain struct {
	own    []Field
	parent *Chain
	lazy   bool
}

// NewChain creates a child node holding the given pairs on top of
// parent. The fields slice is copied, so callers may reuse their
// argument. Cost is O(len(fields)), independent of ancestor depth.
func NewChain(parent *Chain, fields ...Field) *Chain {
	if len(fields) == 0 {
		return parent
	}
	own := make([]Field, len(fields))
	copy(own, fields)
	lazy := parent.HasLazy()
	if !lazy {
		for _, f := range own {
			if f.Type == LazyType {
				lazy = true
				break
			}
		}
	}
	return &Chain{own: own, parent: parent, lazy: lazy}
}

// Parent returns the ancestor node, or nil at the root.
func (c *Chain) Parent() *Chain {
	if c == nil {
		return nil
	}
	return c.parent
}

// HasLazy reports whether this node or any ancestor carries a lazy
// field. Precomputed at construction so per-call checks are O(1).
func (c *Chain) HasLazy() bool {
	return c != nil && c.lazy
}

// Len returns the total number of pairs reachable from this node.
func (c *Chain) Len() int {
	n := 0
	for ; c != nil; c = c.parent {
		n += len(c.own)
	}
	return n
}
