package incremental_test

import (
	"fmt"
	"hash"

	"github.com/go-incremental/go-incremental"
)

// First, we define the value types of our graph. Input values are mutated
// from outside the graph; derived values are computed by operations.

// A Price is an externally updated number. Replace semantics: the last update
// before a resolve wins.
type Price struct {
	// Values without per-resolve scratch state embed NoClean.
	incremental.NoClean
	Value int
}

func (p *Price) Name() string { return "Price" }

func (p *Price) HashValue(h hash.Hash64) incremental.NodeHash {
	return incremental.HashInt64(h, int64(p.Value))
}

// UpdateMut makes Price usable as an input value with int deltas.
func (p *Price) UpdateMut(update int) { p.Value = update }

// A Total is computed by the graph; it needs no UpdateMut.
type Total struct {
	incremental.NoClean
	Value int
}

func (t *Total) Name() string { return "Total" }

func (t *Total) HashValue(h hash.Hash64) incremental.NodeHash {
	return incremental.HashInt64(h, int64(t.Value))
}

// Next, an operation combining two prices into a total. The operation's name
// labels edges in graph renderings.
var multiply = incremental.NewOperation("Multiply",
	func(target *Total, input incremental.DepRef2[*Price, *Price]) error {
		target.Value = input.D0.Value().Value * input.D1.Value().Value
		return nil
	})

// Finally, compose and resolve the graph. Only nodes downstream of an updated
// input recompute; everything else returns its cached value.
func Example() {
	price := incremental.NewInput[int](&Price{Value: 7})
	quantity := incremental.NewInput[int](&Price{Value: 6})
	total := incremental.NewDerived(
		incremental.NewDependencies2(price.Dep(), quantity.Dep()),
		multiply,
		&Total{},
	)

	// A visitor tracks which nodes have been visited during a resolve. Use
	// the same visitor for every resolve of a graph.
	visitor := incremental.NewHashVisitor()

	ref, err := incremental.ResolveRoot[*Total](total, visitor)
	if err != nil {
		panic(err)
	}
	fmt.Println(ref.Value().Value)
	// Release the result before feeding further updates.
	ref.Release()

	if err := price.Update(70); err != nil {
		panic(err)
	}
	ref, err = incremental.ResolveRoot[*Total](total, visitor)
	if err != nil {
		panic(err)
	}
	fmt.Println(ref.Value().Value)
	ref.Release()

	// Output:
	// 42
	// 420
}
