package incremental_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-incremental/go-incremental"
	"github.com/go-incremental/go-incremental/graphtest"
)

// TestIncrementalRecomputation builds the graph below and checks that each
// resolve recomputes exactly the nodes downstream of a changed input.
//
//	a ──┐
//	    ├─ ab = a*b ──┐
//	b ──┘             ├─ s1 ──┐
//	c ──┐             │       │
//	    ├─ dc = d-c ──┘       ├─ s2 ──┐
//	d ──┼─ dsq = d² ──────────│───────├─ s3 ── cube = s3³
//	    │                     │
//	e ──┴─ esq = e² ──────────┘
func TestIncrementalRecomputation(t *testing.T) {
	a := incremental.NewInput[int](&graphtest.Number{Value: 1})
	b := incremental.NewInput[int](&graphtest.Number{Value: 2})
	c := incremental.NewInput[int](&graphtest.Number{Value: 3})
	d := incremental.NewInput[int](&graphtest.Number{Value: 4})
	e := incremental.NewInput[int](&graphtest.Number{Value: 2})

	ab := incremental.NewDerived(
		incremental.NewDependencies2(a.Dep(), b.Dep()), graphtest.Multiply, &graphtest.Number{})
	dc := incremental.NewDerived(
		incremental.NewDependencies2(d.Dep(), c.Dep()), graphtest.Subtract, &graphtest.Number{})
	dsq := incremental.NewDerived(d.Dep(), graphtest.Square, &graphtest.Number{})
	esq := incremental.NewDerived(e.Dep(), graphtest.Square, &graphtest.Number{})
	s1 := incremental.NewDerived(
		incremental.NewDependencies2(ab.Dep(), dc.Dep()), graphtest.Sum, &graphtest.Number{})
	s2 := incremental.NewDerived(
		incremental.NewDependencies2(s1.Dep(), esq.Dep()), graphtest.Multiply, &graphtest.Number{})
	s3 := incremental.NewDerived(
		incremental.NewDependencies2(s2.Dep(), dsq.Dep()), graphtest.Subtract, &graphtest.Number{})
	cube := incremental.NewDerived(s3.Dep(), graphtest.Cube, &graphtest.Number{})

	visitor := incremental.NewDiagnosticVisitor()
	resolve := func(t *testing.T) int {
		t.Helper()
		ref, err := incremental.ResolveRoot[*graphtest.Number](cube, visitor)
		if err != nil {
			t.Fatalf("ResolveRoot() = %v", err)
		}
		defer ref.Release()
		return ref.Value().Value
	}

	// ab=2 dc=1 s1=3 esq=4 s2=12 dsq=16 s3=-4.
	if got := resolve(t); got != -64 {
		t.Errorf("first resolve = %d, want -64", got)
	}
	if got := len(visitor.Recalculated()); got != 8 {
		t.Errorf("first pass recalculated %d nodes, want all 8", got)
	}

	// Only the path through e recomputes: esq, s2, s3, cube.
	visitor.Reset()
	if err := e.Update(3); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if got := resolve(t); got != 1331 {
		t.Errorf("resolve after e=3 = %d, want 1331", got)
	}
	want := []uint64{esq.ID(), s2.ID(), s3.ID(), cube.ID()}
	if diff := cmp.Diff(want, visitor.Recalculated()); diff != "" {
		t.Errorf("recalculated after e=3 (-want +got):\n%s", diff)
	}

	// Swapping a and b recomputes their product to the same value, so the
	// change stops propagating immediately below them.
	visitor.Reset()
	if err := a.Update(2); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if err := b.Update(1); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if got := resolve(t); got != 1331 {
		t.Errorf("resolve after swap = %d, want 1331", got)
	}
	if diff := cmp.Diff([]uint64{ab.ID()}, visitor.Recalculated()); diff != "" {
		t.Errorf("recalculated after swap (-want +got):\n%s", diff)
	}
}

// TestDiamondResolvesSharedNodeOnce checks the deduplication guarantee on a
// diamond: a shared input is evaluated once per pass and both branches see a
// consistent state.
//
//	    ┌─ b = a² ──┐
//	a ──┤           ├─ d = b+c
//	    └─ c = a³ ──┘
func TestDiamondResolvesSharedNodeOnce(t *testing.T) {
	record := graphtest.NewRecord(2)
	a := incremental.NewInput[int](record)

	square := incremental.NewOperation("Square",
		func(target *graphtest.Number, input incremental.DepRef[*graphtest.Record]) error {
			v := input.Value().Value
			target.Value = v * v
			return nil
		})
	cube := incremental.NewOperation("Cube",
		func(target *graphtest.Number, input incremental.DepRef[*graphtest.Record]) error {
			v := input.Value().Value
			target.Value = v * v * v
			return nil
		})
	b := incremental.NewDerived(a.Dep(), square, &graphtest.Number{})
	c := incremental.NewDerived(a.Dep(), cube, &graphtest.Number{})
	d := incremental.NewDerived(
		incremental.NewDependencies2(b.Dep(), c.Dep()), graphtest.Sum, &graphtest.Number{})

	visitor := incremental.NewDiagnosticVisitor()
	ref, err := incremental.ResolveRoot[*graphtest.Number](d, visitor)
	if err != nil {
		t.Fatalf("ResolveRoot() = %v", err)
	}
	if got := ref.Value().Value; got != 12 {
		t.Errorf("2² + 2³ = %d, want 12", got)
	}
	ref.Release()

	want := []uint64{b.ID(), c.ID(), d.ID()}
	if diff := cmp.Diff(want, visitor.Recalculated()); diff != "" {
		t.Errorf("recalculated (-want +got):\n%s", diff)
	}

	// The pass read the shared input, so the next update flushes its history
	// before applying: only the value just replaced remains.
	if err := a.Update(3); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if diff := cmp.Diff([]int{2}, record.Recent); diff != "" {
		t.Errorf("shared input history (-want +got):\n%s", diff)
	}
}

// TestAppendSemantics follows an append-only sequence through several
// resolves: dependents observe each appended item in exactly one pass.
func TestAppendSemantics(t *testing.T) {
	seq := &graphtest.Sequence{}
	input := incremental.NewInput[int](seq)

	// The totals node accumulates only the items that are new this pass.
	var observed []int
	totals := incremental.NewOperation("Totals",
		func(target *graphtest.Number, input incremental.DepRef[*graphtest.Sequence]) error {
			observed = input.Value().NewItems()
			for _, item := range observed {
				target.Value += item
			}
			return nil
		})
	node := incremental.NewDerived(input.Dep(), totals, &graphtest.Number{})

	visitor := incremental.NewDiagnosticVisitor()
	resolve := func(t *testing.T) int {
		t.Helper()
		ref, err := incremental.ResolveRoot[*graphtest.Number](node, visitor)
		if err != nil {
			t.Fatalf("ResolveRoot() = %v", err)
		}
		defer ref.Release()
		return ref.Value().Value
	}

	for _, item := range []int{1, 2, 3} {
		if err := input.Update(item); err != nil {
			t.Fatalf("Update(%d) = %v", item, err)
		}
	}
	if got := resolve(t); got != 6 {
		t.Errorf("total after first batch = %d, want 6", got)
	}
	if len(observed) != 3 {
		t.Errorf("new items on first pass = %v, want 3 items", observed)
	}

	// No updates: the operation does not even run.
	visitor.Reset()
	if got := resolve(t); got != 6 {
		t.Errorf("total after quiescent pass = %d, want 6", got)
	}
	if got := len(visitor.Recalculated()); got != 0 {
		t.Errorf("quiescent pass recalculated %d nodes, want 0", got)
	}

	// Two more items: dependents see two, not five.
	for _, item := range []int{4, 5} {
		if err := input.Update(item); err != nil {
			t.Fatalf("Update(%d) = %v", item, err)
		}
	}
	if got := resolve(t); got != 15 {
		t.Errorf("total after second batch = %d, want 15", got)
	}
	if diff := cmp.Diff([]int{4, 5}, observed); diff != "" {
		t.Errorf("new items on third pass (-want +got):\n%s", diff)
	}
}
