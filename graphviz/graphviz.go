// Package graphviz renders incremental computation graphs to Graphviz DOT
// format by observing a resolve pass.
//
// Drive the renderer through [incremental.Resolver.Resolve], not
// incremental.ResolveRoot: resolving the root clears the visitor, which
// discards the traversal trail the renderer is built from.
package graphviz

import (
	"fmt"
	"hash"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/go-incremental/go-incremental"
)

type node struct {
	id    uint64
	name  string
	edges []uint64
	// The operation producing this node; empty for input nodes.
	operation string
	// The dependency group name, when the node has more than one edge.
	dependency string
}

func (n *node) identifier() string {
	return fmt.Sprintf("node_%d", n.id)
}

// A Visitor builds a DOT representation of every graph it traverses.
//
//	visitor := graphviz.New()
//	if _, err := root.Resolve(visitor); err != nil {
//		return err
//	}
//	dot, ok := visitor.Render()
type Visitor struct {
	visited mapset.Set[uint64]
	nodes   map[uint64]*node
	stack   []uint64
}

var _ incremental.Visitor = (*Visitor)(nil)

// New returns an empty renderer.
func New() *Visitor {
	return &Visitor{
		visited: mapset.NewThreadUnsafeSet[uint64](),
		nodes:   make(map[uint64]*node),
	}
}

// Render returns the visited graph in DOT format. It reports false if no
// graph has been visited since the last Clear.
//
// Nodes are listed in ID order, which is their declaration order. Edges are
// listed under their destination node, in the declaration order of the
// destination's dependency group, labelled with the operation name; groups of
// more than one edge additionally carry a class attribute naming the group.
func (v *Visitor) Render() (string, bool) {
	if len(v.nodes) == 0 {
		return "", false
	}
	ids := make([]uint64, 0, len(v.nodes))
	for id := range v.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var b strings.Builder
	b.WriteString("digraph Dag {\n")
	for _, id := range ids {
		n := v.nodes[id]
		fmt.Fprintf(&b, "  %s [label=%q];\n", n.identifier(), n.name)
		if n.operation == "" {
			continue
		}
		var class string
		if n.dependency != "" {
			class = fmt.Sprintf(", class=%q", n.dependency)
		}
		for _, child := range n.edges {
			fmt.Fprintf(&b, "  %s -> %s [label=%q%s];\n",
				v.nodes[child].identifier(), n.identifier(), n.operation, class)
		}
	}
	b.WriteString("}")
	return b.String(), true
}

// Visit implements incremental.Visitor.
func (v *Visitor) Visit(id uint64) bool {
	return v.visited.Add(id)
}

// Clear implements incremental.Visitor. It discards the rendered graph along
// with the visited set.
func (v *Visitor) Clear() {
	v.visited.Clear()
	v.nodes = make(map[uint64]*node)
	v.stack = v.stack[:0]
}

// Hasher implements incremental.Visitor.
func (v *Visitor) Hasher() hash.Hash64 {
	return xxhash.New()
}

// Touch implements incremental.Visitor. The first touch of a node records its
// label and operation; every touch pushes it on the traversal stack so that
// Leave can attribute edges.
func (v *Visitor) Touch(id uint64, name, operation string) {
	v.stack = append(v.stack, id)
	if _, ok := v.nodes[id]; !ok {
		v.nodes[id] = &node{id: id, name: name, operation: operation}
	}
}

// TouchDependencyGroup implements incremental.Visitor. It records the group
// name on the node currently being resolved.
func (v *Visitor) TouchDependencyGroup(name string) {
	if len(v.stack) == 0 {
		return
	}
	if n, ok := v.nodes[v.stack[len(v.stack)-1]]; ok {
		n.dependency = name
	}
}

// NotifyRecalculated implements incremental.Visitor as a no-op.
func (v *Visitor) NotifyRecalculated(uint64) {}

// Leave implements incremental.Visitor. Popping the traversal stack connects
// the left node to its parent; a node reached through several parents is
// connected to each of them.
func (v *Visitor) Leave(id uint64) {
	if len(v.stack) == 0 || v.stack[len(v.stack)-1] != id {
		// The engine never leaves out of order; bail rather than corrupt the
		// rendering if a caller drives the hooks directly.
		return
	}
	v.stack = v.stack[:len(v.stack)-1]
	if len(v.stack) == 0 {
		return
	}
	if parent, ok := v.nodes[v.stack[len(v.stack)-1]]; ok {
		parent.edges = append(parent.edges, id)
	}
}
