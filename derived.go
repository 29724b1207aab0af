package incremental

import "fmt"

// A DerivedNode is an interior node of the graph: it caches a value of type T
// computed from its dependencies by an [Operation], and recomputes it only
// when a dependency reports a changed fingerprint.
//
// Dependencies can be a single edge or a Dependencies2..16 group; R is the
// resolved [Input] form the operation consumes. Because derived nodes
// implement [Resolver] themselves, graphs compose freely: any node that
// resolves to the dependency's value type can be an edge's child.
//
// Construct derived nodes with [NewDerived] and share the returned pointer
// between every edge that reads the value.
type DerivedNode[R Input, T Value] struct {
	// The dependencies of this node.
	deps Source[R]
	// How to transform the wrapped value when the dependencies change.
	op Operation[R, T]
	// The wrapped value and its fingerprint.
	state *nodeState[T]
	cell  borrowCell
	id    uint64
}

// NewDerived constructs a derived node over the given dependencies, applying
// op to value whenever they change. The value also serves as the node's
// initial cached state; it is reported to dependents as changed on the first
// resolve regardless, because no fingerprint has been observed yet.
func NewDerived[R Input, T Value](deps Source[R], op Operation[R, T], value T) *DerivedNode[R, T] {
	return &DerivedNode[R, T]{
		deps:  deps,
		op:    op,
		state: newNodeState(value),
		id:    nextNodeID(),
	}
}

// ID returns the node's unique runtime identifier.
func (n *DerivedNode[R, T]) ID() uint64 {
	return n.id
}

// Name returns the display name of the wrapped value.
func (n *DerivedNode[R, T]) Name() string {
	return n.state.value.Name()
}

// Resolve implements [Resolver].
//
// On the node's first visit in a pass, the engine takes exclusive access to
// the value, cleans it, and resolves the dependencies while that access is
// still held: a cyclic graph re-enters this node here and fails with a borrow
// conflict rather than recursing forever. If any edge is dirty the operation
// runs; exclusive access is then released, the dependency references are
// returned, and access is re-acquired briefly to refresh the fingerprint.
// When no edge is dirty the cached value and fingerprint are left untouched,
// so this node's own dependents observe it as clean.
//
// A node visited earlier in the same pass returns its cached read reference
// without touching its dependencies.
func (n *DerivedNode[R, T]) Resolve(v Visitor) (NodeRef[T], error) {
	v.Touch(n.id, n.Name(), n.op.Name())
	if v.Visit(n.id) {
		if err := n.cell.borrowMut(); err != nil {
			return NodeRef[T]{}, fmt.Errorf("derive %s: %w", n.Name(), err)
		}
		n.state.value.Clean()
		input, err := n.deps.Resolve(v)
		if err != nil {
			n.cell.releaseMut()
			return NodeRef[T]{}, err
		}
		if input.IsDirty() {
			if err := n.op.update(n.state.value, input); err != nil {
				input.Release()
				n.cell.releaseMut()
				return NodeRef[T]{}, fmt.Errorf("derive %s: %w", n.Name(), err)
			}
			// Free the dependency references before fingerprinting so the
			// children are readable again the moment their values settle.
			n.cell.releaseMut()
			input.Release()
			if err := n.cell.borrowMut(); err != nil {
				return NodeRef[T]{}, fmt.Errorf("derive %s: %w", n.Name(), err)
			}
			n.state.refreshHash(v.Hasher())
			n.cell.releaseMut()
			v.NotifyRecalculated(n.id)
		} else {
			n.cell.releaseMut()
			input.Release()
		}
	}
	v.Leave(n.id)
	if err := n.cell.borrow(); err != nil {
		return NodeRef[T]{}, fmt.Errorf("derive %s: %w", n.Name(), err)
	}
	return NodeRef[T]{state: n.state, cell: &n.cell}, nil
}

// Dep returns a new dependency edge reading this node. Every dependent needs
// its own edge; see [InputNode.Dep].
func (n *DerivedNode[R, T]) Dep() *Dependency[T] {
	return NewDependency[T](n)
}
