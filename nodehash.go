package incremental

import (
	"encoding/binary"
	"fmt"
	"hash"
)

// A NodeHash fingerprints the state of a node and signals to dependent nodes
// whether they need to recompute their own state. Every edge in the graph
// remembers the NodeHash last observed from its child and compares it to the
// current one on each resolve.
//
// The zero value is NotHashed: a fingerprint that is never equal to another
// NodeHash, not even to itself. A value whose identity cannot be cheaply
// fingerprinted returns NotHashed from its HashValue method, which forces all
// downstream dependencies to treat it as changed on every resolve. Keep the
// number of edges to such nodes to a minimum where performance is a concern.
type NodeHash struct {
	sum    uint64
	hashed bool
}

// Hashed returns a NodeHash wrapping the given sum. Two hashed fingerprints
// are equal exactly when their sums are equal.
func Hashed(sum uint64) NodeHash {
	return NodeHash{sum: sum, hashed: true}
}

// NotHashed is the fingerprint of a value that cannot be hashed. It is never
// equal to any NodeHash, including itself.
var NotHashed = NodeHash{}

// Equal reports whether both fingerprints are hashed and carry the same sum.
// Any comparison involving NotHashed reports false; reflexivity is
// intentionally broken so that unhashable values are always considered
// changed.
func (h NodeHash) Equal(other NodeHash) bool {
	return h.hashed && other.hashed && h.sum == other.sum
}

// IsHashed reports whether h carries a sum.
func (h NodeHash) IsHashed() bool {
	return h.hashed
}

// String implements fmt.Stringer so that fingerprints read well in logs and
// test failures.
func (h NodeHash) String() string {
	if !h.hashed {
		return "NotHashed"
	}
	return fmt.Sprintf("%016x", h.sum)
}

// The helpers below digest common field kinds into the hasher a [Visitor]
// supplies and return the resulting fingerprint. Values with a single
// meaningful field typically hash just that field:
//
//	func (v *Counter) HashValue(h hash.Hash64) NodeHash {
//		return incremental.HashInt64(h, v.total)
//	}
//
// Values with several fields write each in turn and call [Finish]. Variable
// size integers are encoded as varints so that the fingerprint is independent
// of the word size of the platform.

// HashBytes writes b to h and returns the resulting fingerprint.
func HashBytes(h hash.Hash64, b []byte) NodeHash {
	h.Write(b)
	return Finish(h)
}

// HashString writes s to h and returns the resulting fingerprint.
func HashString(h hash.Hash64, s string) NodeHash {
	h.Write([]byte(s))
	return Finish(h)
}

// HashUint64 writes v to h and returns the resulting fingerprint.
func HashUint64(h hash.Hash64, v uint64) NodeHash {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	h.Write(buf[:n])
	return Finish(h)
}

// HashInt64 writes v to h and returns the resulting fingerprint.
func HashInt64(h hash.Hash64, v int64) NodeHash {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutVarint(buf[:], v)
	h.Write(buf[:n])
	return Finish(h)
}

// WriteInt64 writes v to h without finishing the digest. Use it to fold
// several fields into one fingerprint before calling [Finish].
func WriteInt64(h hash.Hash64, v int64) {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutVarint(buf[:], v)
	h.Write(buf[:n])
}

// WriteUint64 writes v to h without finishing the digest.
func WriteUint64(h hash.Hash64, v uint64) {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	h.Write(buf[:n])
}

// Finish returns the fingerprint accumulated in h.
func Finish(h hash.Hash64) NodeHash {
	return Hashed(h.Sum64())
}
