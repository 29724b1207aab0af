package incremental

import "hash"

// Value is the contract a type must satisfy to be wrapped by a node. Although
// the engine could work with any type, we guard against accidental use by
// requiring values to describe how they are named, fingerprinted and cleaned.
//
// Values are held by pointer so that input updates and derived operations can
// mutate them in place.
type Value interface {
	// Name returns the display name of the value's type. It labels nodes in
	// graph visualisations and error messages.
	Name() string
	// Clean clears any "what changed since the last resolve" scratch state
	// inside the value. The engine guarantees Clean is invoked at most once
	// per node per resolve pass. Values without scratch state implement it as
	// a no-op; embed [NoClean] for that.
	Clean()
	// HashValue digests the value's current state into the hasher supplied by
	// the visitor and returns the resulting fingerprint. Values whose identity
	// cannot be cheaply fingerprinted return [NotHashed], at the cost of
	// recomputing every dependent on every resolve.
	//
	// The hasher is deterministic across calls within one resolve pass, but
	// need not be stable across passes. Input nodes are re-fingerprinted on
	// every pass that visits them and derived nodes each time their operation
	// runs; a fingerprint that differs from the one an edge last observed only
	// marks that edge dirty.
	HashValue(h hash.Hash64) NodeHash
}

// InputValue is the contract for values wrapped by an [InputNode]. The update
// type U is the delta applied by [InputNode.Update].
type InputValue[U any] interface {
	Value
	// UpdateMut applies an externally supplied delta to the value. Scalar
	// values typically replace themselves; collection values typically append.
	UpdateMut(update U)
}

// NoClean implements a no-op Clean. Embed it in values without per-resolve
// scratch state.
type NoClean struct{}

// Clean does nothing.
func (NoClean) Clean() {}
