package incremental

import "hash"

// nodeState pairs a node's value with the fingerprint computed the last time
// the node was refreshed during a resolve. The hash is modified only during
// resolve; the value is mutated by input updates or by an operation.
type nodeState[T Value] struct {
	// The fingerprint of value as of the last refresh; NotHashed until the
	// node is first resolved.
	hash NodeHash
	// The value being wrapped.
	value T
}

func newNodeState[T Value](value T) *nodeState[T] {
	return &nodeState[T]{value: value}
}

// refreshHash re-fingerprints the value into the stored hash. After it runs
// during a resolve, subsequent reads in the same pass observe a hash
// consistent with the value.
func (s *nodeState[T]) refreshHash(h hash.Hash64) {
	s.hash = s.value.HashValue(h)
}

// A NodeRef is a shared read reference to a node's state, returned by
// resolving the node or reading an [InputNode]. Do not modify the value it
// exposes.
//
// Call Release when done with the reference. While any NodeRef to a node is
// outstanding, updates to that node fail with [ErrReadHeld], and a resolve
// that needs to recompute it fails likewise.
type NodeRef[T Value] struct {
	state *nodeState[T]
	cell  *borrowCell
}

// Value returns the referenced value. The value is shared: treat it as
// read-only.
func (r NodeRef[T]) Value() T {
	return r.state.value
}

// Hash returns the fingerprint stored when the node was last refreshed.
// Dependent edges compare it against their last observation to decide
// dirtiness.
func (r NodeRef[T]) Hash() NodeHash {
	return r.state.hash
}

// Release returns the reference. Releasing an already-released reference is
// a bug; the cell does not detect it.
func (r NodeRef[T]) Release() {
	r.cell.release()
}
