package incremental

import "sync/atomic"

// Global node IDs are kept in order to track execution across graphs: a
// visitor deduplicates visits by ID, so IDs must be unique across every node
// a single visitor may reach.
var nodeID atomic.Uint64

func nextNodeID() uint64 {
	return nodeID.Add(1) - 1
}

// A Resolver is any node that can be depth-first evaluated to a read
// reference on its state: an [InputNode], a [DerivedNode], or a caller
// supplied composite. Resolving the same node twice within one pass returns
// the same state without re-evaluating it; the visitor's visited set is what
// makes diamond-shaped graphs cheap.
type Resolver[T Value] interface {
	// Resolve evaluates the node and returns a read reference to its state.
	// The caller must Release the reference before updating any input that
	// feeds the node.
	Resolve(v Visitor) (NodeRef[T], error)
}

// ResolveRoot resolves the given node and clears the visitor's per-pass state
// on the way out, whether the resolve succeeded or failed. This is the
// intended entry point for typical use; diagnostic visitors that retain a
// traversal trail (such as the graphviz renderer) must be driven through
// [Resolver.Resolve] instead and cleared by the caller.
func ResolveRoot[T Value](node Resolver[T], v Visitor) (NodeRef[T], error) {
	defer v.Clear()
	return node.Resolve(v)
}
