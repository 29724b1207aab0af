package graphviz_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-incremental/go-incremental"
	"github.com/go-incremental/go-incremental/graphtest"
	"github.com/go-incremental/go-incremental/graphviz"
)

// TestRender resolves the graph for c² + (a+b) + (a + d*e) and checks the DOT
// rendering: nodes in declaration order, edges under their destination in
// dependency-group declaration order, class attributes only on multi-edge
// groups.
func TestRender(t *testing.T) {
	a := incremental.NewInput[int](&graphtest.Number{Value: 1})
	b := incremental.NewInput[int](&graphtest.Number{Value: 2})
	c := incremental.NewInput[int](&graphtest.Number{Value: 3})
	d := incremental.NewInput[int](&graphtest.Number{Value: 4})
	e := incremental.NewInput[int](&graphtest.Number{Value: 5})

	squared := incremental.NewDerived(c.Dep(), graphtest.Square, &graphtest.Number{})
	sum := incremental.NewDerived(
		incremental.NewDependencies2(a.Dep(), b.Dep()), graphtest.Sum, &graphtest.Number{})
	product := incremental.NewDerived(
		incremental.NewDependencies2(d.Dep(), e.Dep()), graphtest.Multiply, &graphtest.Number{})
	offset := incremental.NewDerived(
		incremental.NewDependencies2(a.Dep(), product.Dep()), graphtest.Sum, &graphtest.Number{})
	answer := incremental.NewDerived(
		incremental.NewDependencies3(squared.Dep(), sum.Dep(), offset.Dep()),
		graphtest.Sum3, &graphtest.Number{})

	visitor := graphviz.New()

	if _, ok := visitor.Render(); ok {
		t.Fatalf("Render() before any traversal reports a graph")
	}

	// Resolve through the plain Resolve entry point: ResolveRoot would clear
	// the visitor and discard the traversal trail.
	ref, err := answer.Resolve(visitor)
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	if got := ref.Value().Value; got != 9+3+21 {
		t.Errorf("answer = %d, want 33", got)
	}
	ref.Release()

	got, ok := visitor.Render()
	if !ok {
		t.Fatalf("Render() reports no graph after traversal")
	}

	var want strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&want, format+"\n", args...)
	}
	line("digraph Dag {")
	line("  node_%d [label=\"Number\"];", a.ID())
	line("  node_%d [label=\"Number\"];", b.ID())
	line("  node_%d [label=\"Number\"];", c.ID())
	line("  node_%d [label=\"Number\"];", d.ID())
	line("  node_%d [label=\"Number\"];", e.ID())
	line("  node_%d [label=\"Number\"];", squared.ID())
	line("  node_%d -> node_%d [label=\"Square\"];", c.ID(), squared.ID())
	line("  node_%d [label=\"Number\"];", sum.ID())
	line("  node_%d -> node_%d [label=\"Sum\", class=\"Dependencies2\"];", a.ID(), sum.ID())
	line("  node_%d -> node_%d [label=\"Sum\", class=\"Dependencies2\"];", b.ID(), sum.ID())
	line("  node_%d [label=\"Number\"];", product.ID())
	line("  node_%d -> node_%d [label=\"Multiply\", class=\"Dependencies2\"];", d.ID(), product.ID())
	line("  node_%d -> node_%d [label=\"Multiply\", class=\"Dependencies2\"];", e.ID(), product.ID())
	line("  node_%d [label=\"Number\"];", offset.ID())
	line("  node_%d -> node_%d [label=\"Sum\", class=\"Dependencies2\"];", a.ID(), offset.ID())
	line("  node_%d -> node_%d [label=\"Sum\", class=\"Dependencies2\"];", product.ID(), offset.ID())
	line("  node_%d [label=\"Number\"];", answer.ID())
	line("  node_%d -> node_%d [label=\"Sum\", class=\"Dependencies3\"];", squared.ID(), answer.ID())
	line("  node_%d -> node_%d [label=\"Sum\", class=\"Dependencies3\"];", sum.ID(), answer.ID())
	line("  node_%d -> node_%d [label=\"Sum\", class=\"Dependencies3\"];", offset.ID(), answer.ID())
	line("}")

	if diff := cmp.Diff(strings.TrimSuffix(want.String(), "\n"), got); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSingleEdgeOmitsClass(t *testing.T) {
	in := incremental.NewInput[int](&graphtest.Number{Value: 2})
	out := incremental.NewDerived(in.Dep(), graphtest.Square, &graphtest.Number{})

	visitor := graphviz.New()
	ref, err := out.Resolve(visitor)
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	ref.Release()

	got, ok := visitor.Render()
	if !ok {
		t.Fatalf("Render() reports no graph after traversal")
	}
	if strings.Contains(got, "class=") {
		t.Errorf("single-edge rendering carries a class attribute:\n%s", got)
	}
	edge := fmt.Sprintf("node_%d -> node_%d [label=\"Square\"];", in.ID(), out.ID())
	if !strings.Contains(got, edge) {
		t.Errorf("rendering missing edge %q:\n%s", edge, got)
	}
}

func TestClearDiscardsRendering(t *testing.T) {
	in := incremental.NewInput[int](&graphtest.Number{Value: 2})
	out := incremental.NewDerived(in.Dep(), graphtest.Square, &graphtest.Number{})

	visitor := graphviz.New()
	ref, err := out.Resolve(visitor)
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	ref.Release()

	visitor.Clear()
	if _, ok := visitor.Render(); ok {
		t.Errorf("Render() after Clear reports a graph")
	}
}
