package incremental_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-incremental/go-incremental"
	"github.com/go-incremental/go-incremental/graphtest"
)

func TestDerivedComputesAndCaches(t *testing.T) {
	a := incremental.NewInput[int](&graphtest.Number{Value: 7})
	b := incremental.NewInput[int](&graphtest.Number{Value: 6})
	c := incremental.NewDerived(
		incremental.NewDependencies2(a.Dep(), b.Dep()),
		graphtest.Multiply,
		&graphtest.Number{},
	)
	visitor := incremental.NewDiagnosticVisitor()

	resolve := func(t *testing.T) int {
		t.Helper()
		ref, err := incremental.ResolveRoot[*graphtest.Number](c, visitor)
		if err != nil {
			t.Fatalf("ResolveRoot() = %v", err)
		}
		defer ref.Release()
		return ref.Value().Value
	}

	if got := resolve(t); got != 42 {
		t.Errorf("first resolve = %d, want 42", got)
	}
	if got := len(visitor.Recalculated()); got != 1 {
		t.Errorf("recalculations on first pass = %d, want 1", got)
	}

	// Nothing changed: the cached value is returned and the operation does
	// not run.
	visitor.Reset()
	if got := resolve(t); got != 42 {
		t.Errorf("quiescent resolve = %d, want 42", got)
	}
	if got := len(visitor.Recalculated()); got != 0 {
		t.Errorf("recalculations on quiescent pass = %d, want 0", got)
	}

	visitor.Reset()
	if err := a.Update(70); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if got := resolve(t); got != 420 {
		t.Errorf("resolve after update = %d, want 420", got)
	}
	if got := len(visitor.Recalculated()); got != 1 {
		t.Errorf("recalculations after update = %d, want 1", got)
	}
}

func TestDerivedComposes(t *testing.T) {
	a := incremental.NewInput[int](&graphtest.Number{Value: 3})
	squared := incremental.NewDerived(a.Dep(), graphtest.Square, &graphtest.Number{})
	cubed := incremental.NewDerived(squared.Dep(), graphtest.Cube, &graphtest.Number{})
	visitor := incremental.NewHashVisitor()

	ref, err := incremental.ResolveRoot[*graphtest.Number](cubed, visitor)
	if err != nil {
		t.Fatalf("ResolveRoot() = %v", err)
	}
	if got := ref.Value().Value; got != 729 {
		t.Errorf("(3^2)^3 = %d, want 729", got)
	}
	ref.Release()
}

// TestDerivedIdentityUpdateStaysClean checks that a recomputation yielding the
// same value leaves dependents clean: the recomputed node's fingerprint is
// unchanged, so edges out of it observe no difference.
func TestDerivedIdentityUpdateStaysClean(t *testing.T) {
	a := incremental.NewInput[int](&graphtest.Number{Value: 2})
	b := incremental.NewInput[int](&graphtest.Number{Value: 3})
	product := incremental.NewDerived(
		incremental.NewDependencies2(a.Dep(), b.Dep()),
		graphtest.Multiply,
		&graphtest.Number{},
	)
	root := incremental.NewDerived(product.Dep(), graphtest.Square, &graphtest.Number{})
	visitor := incremental.NewDiagnosticVisitor()

	ref, err := incremental.ResolveRoot[*graphtest.Number](root, visitor)
	if err != nil {
		t.Fatalf("ResolveRoot() = %v", err)
	}
	ref.Release()

	// Swap the factors: the product recomputes to the same 6, so the square
	// must not.
	visitor.Reset()
	if err := a.Update(3); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if err := b.Update(2); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	ref, err = incremental.ResolveRoot[*graphtest.Number](root, visitor)
	if err != nil {
		t.Fatalf("ResolveRoot() = %v", err)
	}
	if got := ref.Value().Value; got != 36 {
		t.Errorf("root = %d, want 36", got)
	}
	ref.Release()
	recalculated := visitor.Recalculated()
	if len(recalculated) != 1 || recalculated[0] != product.ID() {
		t.Errorf("recalculated = %v, want exactly [%d] (the product)", recalculated, product.ID())
	}
}

func TestDerivedEarlyExit(t *testing.T) {
	orders := incremental.NewInput[int](&graphtest.Counter{})
	check := incremental.NewOperation("CheckRiskLimit",
		func(target *graphtest.Number, input incremental.DepRef[*graphtest.Counter]) error {
			if input.Value().Value >= 5 {
				return incremental.Exit("risk")
			}
			target.Value = input.Value().Value
			return nil
		})
	limited := incremental.NewDerived(orders.Dep(), check, &graphtest.Number{})
	visitor := incremental.NewHashVisitor()

	for i := 1; i <= 4; i++ {
		if err := orders.Update(1); err != nil {
			t.Fatalf("Update() = %v", err)
		}
		ref, err := incremental.ResolveRoot[*graphtest.Number](limited, visitor)
		if err != nil {
			t.Fatalf("resolve %d: ResolveRoot() = %v", i, err)
		}
		if got := ref.Value().Value; got != i {
			t.Errorf("resolve %d = %d, want %d", i, got, i)
		}
		ref.Release()
	}

	if err := orders.Update(1); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	_, err := incremental.ResolveRoot[*graphtest.Number](limited, visitor)
	var exit incremental.EarlyExit
	if !errors.As(err, &exit) {
		t.Fatalf("resolve 5: ResolveRoot() = %v, want EarlyExit", err)
	}
	if exit.Reason != "risk" {
		t.Errorf("EarlyExit reason = %q, want %q", exit.Reason, "risk")
	}
}

// reenter resolves a target chosen after construction, which is how a test
// can close a dependency cycle that the constructors otherwise rule out.
type reenter struct {
	target incremental.Resolver[*graphtest.Number]
}

func (r *reenter) Resolve(v incremental.Visitor) (incremental.NodeRef[*graphtest.Number], error) {
	return r.target.Resolve(v)
}

func TestDerivedCycleFailsWithBorrowConflict(t *testing.T) {
	loop := &reenter{}
	identity := incremental.NewOperation("Identity",
		func(target *graphtest.Number, input incremental.DepRef[*graphtest.Number]) error {
			target.Value = input.Value().Value
			return nil
		})
	node := incremental.NewDerived(
		incremental.NewDependency[*graphtest.Number](loop),
		identity,
		&graphtest.Number{},
	)
	loop.target = node

	visitor := incremental.NewHashVisitor()
	_, err := incremental.ResolveRoot[*graphtest.Number](node, visitor)
	if !errors.Is(err, incremental.ErrWriteHeld) {
		t.Fatalf("resolving a cyclic graph = %v, want ErrWriteHeld", err)
	}
}

func TestDerivedUnhashableDependencyRecomputesEveryPass(t *testing.T) {
	opaque := incremental.NewInput[int](&graphtest.Opaque{Value: 2})
	runs := 0
	double := incremental.NewOperation("Double",
		func(target *graphtest.Number, input incremental.DepRef[*graphtest.Opaque]) error {
			runs++
			target.Value = 2 * input.Value().Value
			return nil
		})
	node := incremental.NewDerived(opaque.Dep(), double, &graphtest.Number{})
	visitor := incremental.NewHashVisitor()

	for pass := 1; pass <= 3; pass++ {
		ref, err := incremental.ResolveRoot[*graphtest.Number](node, visitor)
		if err != nil {
			t.Fatalf("pass %d: ResolveRoot() = %v", pass, err)
		}
		if got := ref.Value().Value; got != 4 {
			t.Errorf("pass %d = %d, want 4", pass, got)
		}
		ref.Release()
		if runs != pass {
			t.Errorf("operation runs after pass %d = %d, want %d", pass, runs, pass)
		}
	}
}

func ExampleExit() {
	err := fmt.Errorf("derive Number: %w", incremental.Exit("risk limit exceeded"))
	var exit incremental.EarlyExit
	fmt.Println(errors.As(err, &exit), exit.Reason)
	// Output: true risk limit exceeded
}
