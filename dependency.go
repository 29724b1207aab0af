package incremental

//go:generate go run ./internal/gendeps -out dependencies.go

// A Dependency is a directed edge in the graph: it wraps a child node and
// remembers the fingerprint observed from it each time the edge is resolved.
// This is what lets a dependent node know whether the child has changed since
// the dependent last computed its own state.
//
// Edges are passive between resolves and belong to exactly one dependent
// node. Obtain one from the child's Dep method, or with [NewDependency] when
// the child is held as a [Resolver].
type Dependency[T Value] struct {
	// The fingerprint observed from the child when this edge was last
	// resolved; unset before the first resolve.
	observed NodeHash
	seen     bool
	// The wrapped child node, shared with every other edge reading it.
	child Resolver[T]
}

// NewDependency wraps a child node in a new edge.
func NewDependency[T Value](child Resolver[T]) *Dependency[T] {
	return &Dependency[T]{child: child}
}

// Resolve resolves the child, compares its current fingerprint to the one
// last observed over this edge, and returns the child's read reference
// labelled clean or dirty. A missing prior observation is always dirty, and a
// child reporting [NotHashed] is always dirty because NotHashed never equals
// itself.
func (d *Dependency[T]) Resolve(v Visitor) (DepRef[T], error) {
	ref, err := d.child.Resolve(v)
	if err != nil {
		return DepRef[T]{}, err
	}
	current := ref.Hash()
	if d.seen && d.observed.Equal(current) {
		return DepRef[T]{NodeRef: ref}, nil
	}
	d.observed = current
	d.seen = true
	return DepRef[T]{NodeRef: ref, dirty: true}, nil
}

// A DepRef is the read reference produced by resolving a single edge: the
// child's state plus whether the edge observed a changed fingerprint.
type DepRef[T Value] struct {
	NodeRef[T]
	dirty bool
}

// IsDirty reports whether the child's fingerprint changed since this edge
// last observed it.
func (r DepRef[T]) IsDirty() bool {
	return r.dirty
}

// An Input is the resolved form of a derived node's dependencies: one or more
// borrowed child references with an aggregated dirtiness flag. [DepRef] is
// the single-edge form; DepRef2 through DepRef16 bundle fixed arities.
type Input interface {
	// IsDirty reports whether any underlying edge observed a changed
	// fingerprint.
	IsDirty() bool
	// Release returns every borrowed child reference.
	Release()
}

// A Source resolves a derived node's dependencies to their [Input] form. It
// is implemented by [Dependency] for a single edge and by Dependencies2
// through Dependencies16 for fixed-arity groups.
type Source[R Input] interface {
	Resolve(v Visitor) (R, error)
}
