package incremental

import "fmt"

// inputState ensures pending updates are flushed at most once between calls
// to update.
type inputState uint8

const (
	// The node is accepting updates.
	stateUpdating inputState = iota
	// The node was read by a resolve and must be cleaned when next resolved
	// or updated.
	stateResolving
	// The node has been resolved and cleaned; no further cleaning is
	// necessary until it is updated again.
	stateResolved
)

// An InputNode is a leaf of the graph: it wraps a value of type T and exposes
// [InputNode.Update] to mutate it from outside the graph with deltas of type
// U.
//
// The three-state lifecycle defers the value's Clean hook until after at
// least one resolve has consumed its scratch state, so transient "recently
// changed" views remain visible for exactly one pass, then vanish. For any
// run of updates between two resolves, Clean runs exactly once.
//
// Construct input nodes with [NewInput] and share the returned pointer
// between every edge that reads the value.
type InputNode[T InputValue[U], U any] struct {
	resolveState inputState
	state        *nodeState[T]
	cell         borrowCell
	id           uint64
}

// NewInput wraps the given value in an input node. The update type cannot be
// inferred from the value, so name it explicitly:
//
//	counter := incremental.NewInput[int](&Counter{})
func NewInput[U any, T InputValue[U]](value T) *InputNode[T, U] {
	return &InputNode[T, U]{
		state: newNodeState(value),
		id:    nextNodeID(),
	}
}

// ID returns the node's unique runtime identifier.
func (n *InputNode[T, U]) ID() uint64 {
	return n.id
}

// Name returns the display name of the wrapped value.
func (n *InputNode[T, U]) Name() string {
	return n.state.value.Name()
}

// Update applies a delta to the wrapped value via its UpdateMut method. It
// fails with [ErrReadHeld] if a read reference to this node is currently
// outstanding.
//
// If the value was observed by a resolve and has not been cleaned since, it
// is cleaned before the delta is applied; together with the transition inside
// [InputNode.Resolve] this guarantees exactly one Clean per run of updates
// between two successive resolves.
func (n *InputNode[T, U]) Update(update U) error {
	if err := n.cell.borrowMut(); err != nil {
		return fmt.Errorf("update %s: %w", n.Name(), err)
	}
	defer n.cell.releaseMut()
	// Flush any changes observed by a previous resolve.
	if n.resolveState == stateResolving {
		n.state.value.Clean()
	}
	n.resolveState = stateUpdating
	n.state.value.UpdateMut(update)
	return nil
}

// Value returns a read reference to the wrapped value. It fails with
// [ErrWriteHeld] while the engine holds exclusive access, i.e. during a
// reentrant resolve.
func (n *InputNode[T, U]) Value() (NodeRef[T], error) {
	if err := n.cell.borrow(); err != nil {
		return NodeRef[T]{}, fmt.Errorf("read %s: %w", n.Name(), err)
	}
	return NodeRef[T]{state: n.state, cell: &n.cell}, nil
}

// Resolve implements [Resolver]. On the node's first visit in a pass it
// advances the clean lifecycle and refreshes the stored hash; subsequent
// visits return the same state untouched.
func (n *InputNode[T, U]) Resolve(v Visitor) (NodeRef[T], error) {
	v.Touch(n.id, n.Name(), "")
	if v.Visit(n.id) {
		if err := n.cell.borrowMut(); err != nil {
			return NodeRef[T]{}, fmt.Errorf("resolve %s: %w", n.Name(), err)
		}
		switch n.resolveState {
		case stateUpdating:
			n.resolveState = stateResolving
		case stateResolving:
			// The previous pass already read the value; clear the "what
			// changed" scratch so this pass sees a fresh window.
			n.state.value.Clean()
			n.resolveState = stateResolved
		case stateResolved:
		}
		// The hash is only refreshed when this node is being read.
		n.state.refreshHash(v.Hasher())
		n.cell.releaseMut()
	}
	v.Leave(n.id)
	if err := n.cell.borrow(); err != nil {
		return NodeRef[T]{}, fmt.Errorf("resolve %s: %w", n.Name(), err)
	}
	return NodeRef[T]{state: n.state, cell: &n.cell}, nil
}

// Dep returns a new dependency edge reading this node. Every derived node
// needs its own edge: the edge remembers the fingerprint it last observed,
// and sharing that memory between dependents would corrupt their dirtiness.
func (n *InputNode[T, U]) Dep() *Dependency[T] {
	return NewDependency[T](n)
}
