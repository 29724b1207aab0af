package incremental

import (
	"hash"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

// A Visitor accompanies one resolve pass through a graph. It deduplicates
// visits so that shared subgraphs are evaluated once per pass, and it
// supplies the hasher used to fingerprint node state. The remaining hooks are
// diagnostic: the engine calls them unconditionally and the default visitor
// ignores them.
//
// Be sure to use the same visitor between calls to resolve: the visitor
// supplies the hasher that fingerprints node state, and fingerprints are not
// comparable across different hasher factories.
type Visitor interface {
	// Visit records the node ID and reports whether it was newly added, i.e.
	// whether this is the node's first visit in the current pass.
	Visit(id uint64) bool
	// Clear forgets all per-pass state, prompting the visitor to revisit
	// every node on the next traversal. [ResolveRoot] calls it on exit.
	Clear()
	// Hasher returns a fresh hasher. Hashers produced within a single pass
	// must be equivalent (same algorithm, same seed) so that equal values
	// produce equal fingerprints.
	Hasher() hash.Hash64

	// Touch is called when the traversal reaches a node, before the visited
	// check. The operation name is empty for input nodes. Useful for building
	// graph visualisations.
	Touch(id uint64, name, operation string)
	// TouchDependencyGroup is called with the group name when a multi-edge
	// dependency group is resolved.
	TouchDependencyGroup(name string)
	// NotifyRecalculated is called after a derived node's operation ran and
	// its hash was refreshed.
	NotifyRecalculated(id uint64)
	// Leave is called when the traversal returns from a node.
	Leave(id uint64)
}

// HashVisitor is the default Visitor: a set of visited node IDs plus an
// xxhash hasher factory. The zero value is not ready to use; construct it
// with [NewHashVisitor].
type HashVisitor struct {
	visited mapset.Set[uint64]
}

// NewHashVisitor returns an empty visitor ready for a resolve pass. The
// visited set is deliberately not thread-safe, matching the single-threaded
// resolve discipline.
func NewHashVisitor() *HashVisitor {
	return &HashVisitor{visited: mapset.NewThreadUnsafeSet[uint64]()}
}

// Visit implements Visitor.
func (v *HashVisitor) Visit(id uint64) bool {
	return v.visited.Add(id)
}

// Clear implements Visitor.
func (v *HashVisitor) Clear() {
	v.visited.Clear()
}

// Hasher returns a fresh xxhash digest. xxhash is deterministic and unseeded,
// so fingerprints are comparable across passes as well; the engine only
// requires determinism within one.
func (v *HashVisitor) Hasher() hash.Hash64 {
	return xxhash.New()
}

// Touch implements Visitor as a no-op.
func (v *HashVisitor) Touch(uint64, string, string) {}

// TouchDependencyGroup implements Visitor as a no-op.
func (v *HashVisitor) TouchDependencyGroup(string) {}

// NotifyRecalculated implements Visitor as a no-op.
func (v *HashVisitor) NotifyRecalculated(uint64) {}

// Leave implements Visitor as a no-op.
func (v *HashVisitor) Leave(uint64) {}

// DiagnosticVisitor is a [HashVisitor] that additionally records which nodes
// were recalculated. Use it to observe how much of a graph a resolve actually
// recomputed.
//
// The recalculation log deliberately survives Clear, which resets only the
// per-pass visited set; this keeps the log readable after [ResolveRoot]
// returns. Call Reset between passes to start a fresh log.
type DiagnosticVisitor struct {
	HashVisitor
	recalculated []uint64
}

// NewDiagnosticVisitor returns an empty diagnostic visitor.
func NewDiagnosticVisitor() *DiagnosticVisitor {
	return &DiagnosticVisitor{
		HashVisitor: HashVisitor{visited: mapset.NewThreadUnsafeSet[uint64]()},
	}
}

// NotifyRecalculated implements Visitor.
func (v *DiagnosticVisitor) NotifyRecalculated(id uint64) {
	v.recalculated = append(v.recalculated, id)
}

// Recalculated returns the IDs of the nodes whose operation ran since the
// last Reset, in execution order.
func (v *DiagnosticVisitor) Recalculated() []uint64 {
	out := make([]uint64, len(v.recalculated))
	copy(out, v.recalculated)
	return out
}

// Reset clears the recalculation log and the visited set.
func (v *DiagnosticVisitor) Reset() {
	v.recalculated = v.recalculated[:0]
	v.Clear()
}
