// Package core defines the shared types of the drift logging pipeline.
//
// Level orders the six severities used for emission and drain-side
// filtering. Field is a zero-allocation tagged key-value pair; its
// LazyType variant defers an expensive computation until a drain
// actually serializes the record. Record carries one log event's
// metadata and is pooled via GetRecord/PutRecord.
//
// Chain is the backbone of the logger hierarchy: an immutable,
// parent-shared node of owned pairs (a cactus stack). Creating a child
// costs only the child's own pairs; ancestors are shared, never copied,
// and never reference their children.
//
// Fields is the lazy view drains receive: call-site pairs first, then
// each chain node's pairs nearest-first. Lazy fields are resolved at
// yield time, memoized per log call, and never evaluated when a
// combinator abandons the traversal. This coupling of deferred
// evaluation to drain-level filtering is the package's central
// performance contract.
package core
