// Package incremental provides a library for building typed, incremental
// computation graphs: directed acyclic graphs whose leaves accept external
// updates and whose interior nodes hold values derived from their
// predecessors.
//
// A caller composes a graph once, then repeatedly feeds updates into
// [InputNode] leaves and resolves the root (or any interior node) for its
// current value. The engine recomputes only those [DerivedNode] values whose
// inputs have observably changed since the previous resolve; everything else
// returns a cached value.
//
// Change detection is hash-based: every edge in the graph remembers the
// [NodeHash] last observed from its child and signals to the dependent node
// whether that fingerprint has changed. A [Visitor] drives each resolve pass,
// deduplicating work on shared subgraphs and supplying the hasher used to
// fingerprint node state.
//
// Graphs are single-threaded by design. Nodes are shared by reference so that
// several edges can fan in to the same child, and a runtime borrow discipline
// guards the interior mutation this requires; cycles surface as borrow
// conflicts at resolve time.
package incremental
