/*
Package graphtest provides ready-made values and operations for exercising
incremental computation graphs in tests.

The types here deliberately cover the interesting corners of the value
contract: replace semantics ([Number]), accumulate semantics ([Counter]),
update history with scratch state ([Record]), append-only collections with a
custom clean ([Sequence]), and values that refuse fingerprinting ([Opaque]).
*/
package graphtest

import (
	"hash"

	"github.com/go-incremental/go-incremental"
)

// A Number is an integer with replace-update semantics: the last update
// before a resolve wins.
type Number struct {
	incremental.NoClean
	Value int
}

// Name implements incremental.Value.
func (n *Number) Name() string { return "Number" }

// HashValue implements incremental.Value.
func (n *Number) HashValue(h hash.Hash64) incremental.NodeHash {
	return incremental.HashInt64(h, int64(n.Value))
}

// UpdateMut implements incremental.InputValue by replacing the value.
func (n *Number) UpdateMut(update int) { n.Value = update }

// A Counter is an integer with accumulate-update semantics: every update adds
// its delta, and all updates between two resolves are observed.
type Counter struct {
	incremental.NoClean
	Value int
}

// Name implements incremental.Value.
func (c *Counter) Name() string { return "Counter" }

// HashValue implements incremental.Value.
func (c *Counter) HashValue(h hash.Hash64) incremental.NodeHash {
	return incremental.HashInt64(h, int64(c.Value))
}

// UpdateMut implements incremental.InputValue by adding the delta.
func (c *Counter) UpdateMut(delta int) { c.Value += delta }

// A Record replaces its value on update and remembers the values it replaced
// since the last clean. The history is scratch state: Clean discards it, so
// dependents observe each replaced value for exactly one resolve.
type Record struct {
	Value int
	// The values replaced since the last clean.
	Recent []int
	// The number of times Clean ran; useful for asserting the engine's
	// clean-exactly-once guarantee.
	Cleans int
}

// NewRecord returns a record holding the given value with empty history.
func NewRecord(value int) *Record {
	return &Record{Value: value}
}

// Name implements incremental.Value.
func (r *Record) Name() string { return "Record" }

// Clean implements incremental.Value by discarding the replaced-value
// history.
func (r *Record) Clean() {
	r.Recent = nil
	r.Cleans++
}

// HashValue implements incremental.Value. Only the current value contributes
// to the fingerprint; the history is scratch.
func (r *Record) HashValue(h hash.Hash64) incremental.NodeHash {
	return incremental.HashInt64(h, int64(r.Value))
}

// UpdateMut implements incremental.InputValue by replacing the value and
// remembering the old one.
func (r *Record) UpdateMut(update int) {
	r.Recent = append(r.Recent, r.Value)
	r.Value = update
}

// A Sequence is an append-only collection that tracks which of its items are
// new since the last resolve. Dependents iterate [Sequence.NewItems] to
// process each item exactly once across resolves.
type Sequence struct {
	Items []int
	// Items before this index were observed by a previous resolve.
	dirtyFrom int
}

// Name implements incremental.Value.
func (s *Sequence) Name() string { return "Sequence" }

// Clean implements incremental.Value by marking every current item as
// observed.
func (s *Sequence) Clean() { s.dirtyFrom = len(s.Items) }

// HashValue implements incremental.Value by fingerprinting all items, so any
// append dirties dependent edges.
func (s *Sequence) HashValue(h hash.Hash64) incremental.NodeHash {
	incremental.WriteUint64(h, uint64(len(s.Items)))
	for _, item := range s.Items {
		incremental.WriteInt64(h, int64(item))
	}
	return incremental.Finish(h)
}

// UpdateMut implements incremental.InputValue by appending an item.
func (s *Sequence) UpdateMut(item int) { s.Items = append(s.Items, item) }

// NewItems returns the items appended since the last resolve observed this
// sequence.
func (s *Sequence) NewItems() []int { return s.Items[s.dirtyFrom:] }

// An Opaque wraps an integer but refuses fingerprinting: its hash is always
// NotHashed, so every dependent recomputes on every resolve.
type Opaque struct {
	incremental.NoClean
	Value int
}

// Name implements incremental.Value.
func (o *Opaque) Name() string { return "Opaque" }

// HashValue implements incremental.Value by declining to hash.
func (o *Opaque) HashValue(hash.Hash64) incremental.NodeHash {
	return incremental.NotHashed
}

// UpdateMut implements incremental.InputValue by replacing the value.
func (o *Opaque) UpdateMut(update int) { o.Value = update }

// Operations over the values above, named the way graph renderings expect.
var (
	// Square sets the target to the square of its single dependency.
	Square = incremental.NewOperation("Square",
		func(target *Number, input incremental.DepRef[*Number]) error {
			v := input.Value().Value
			target.Value = v * v
			return nil
		})

	// Cube sets the target to the cube of its single dependency.
	Cube = incremental.NewOperation("Cube",
		func(target *Number, input incremental.DepRef[*Number]) error {
			v := input.Value().Value
			target.Value = v * v * v
			return nil
		})

	// Sum sets the target to the sum of its two dependencies.
	Sum = incremental.NewOperation("Sum",
		func(target *Number, input incremental.DepRef2[*Number, *Number]) error {
			target.Value = input.D0.Value().Value + input.D1.Value().Value
			return nil
		})

	// Sum3 sets the target to the sum of its three dependencies. It renders
	// under the same label as Sum.
	Sum3 = incremental.NewOperation("Sum",
		func(target *Number, input incremental.DepRef3[*Number, *Number, *Number]) error {
			target.Value = input.D0.Value().Value + input.D1.Value().Value + input.D2.Value().Value
			return nil
		})

	// Multiply sets the target to the product of its two dependencies.
	Multiply = incremental.NewOperation("Multiply",
		func(target *Number, input incremental.DepRef2[*Number, *Number]) error {
			target.Value = input.D0.Value().Value * input.D1.Value().Value
			return nil
		})

	// Subtract sets the target to the first dependency minus the second.
	Subtract = incremental.NewOperation("Subtract",
		func(target *Number, input incremental.DepRef2[*Number, *Number]) error {
			target.Value = input.D0.Value().Value - input.D1.Value().Value
			return nil
		})
)
