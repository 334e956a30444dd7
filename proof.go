package pmt

// Proof is an inclusion proof of a single leaf. It holds the leaf's hash and
// the sibling hashes on the way to the root, leaf level first.
//
// A Proof is a snapshot and keeps no reference to the tree it came from.
type Proof[H any] struct {
	// index of the proven leaf. Bit i selects the operand order at level i.
	leafIndex int
	target    H
	// neighbors[i] is the sibling of the target's ancestor at level i.
	neighbors []H
}

// NewInclusionProof constructs a proof for the leaf at leafIndex. The
// neighbors slice is copied.
func NewInclusionProof[H any](leafIndex int, target H, neighbors []H) Proof[H] {
	return Proof[H]{
		leafIndex: leafIndex,
		target:    target,
		neighbors: append([]H(nil), neighbors...),
	}
}

// LeafIndex of the proven leaf.
func (proof Proof[H]) LeafIndex() int {
	return proof.leafIndex
}

// TargetHash returns the hash of the proven leaf.
func (proof Proof[H]) TargetHash() H {
	return proof.target
}

// Neighbors returns a copy of the sibling hashes, leaf level first.
func (proof Proof[H]) Neighbors() []H {
	return append([]H(nil), proof.neighbors...)
}

// Height is the height of the tree the proof was taken from.
func (proof Proof[H]) Height() int {
	return len(proof.neighbors)
}

// ComputeRoot folds the neighbors into the target hash. At every level the
// running hash is the left operand when the corresponding bit of the leaf
// index is zero, and the right operand otherwise.
func (proof Proof[H]) ComputeRoot(node NodeFunc[H]) H {
	h := proof.target
	idx := proof.leafIndex
	for _, n := range proof.neighbors {
		if idx&1 == 0 {
			h = node(h, n)
		} else {
			h = node(n, h)
		}
		idx >>= 1
	}
	return h
}

// VerifyInclusion reports whether the proof leads to root.
func (proof Proof[H]) VerifyInclusion(node NodeFunc[H], root H, equal func(a, b H) bool) bool {
	if proof.leafIndex < 0 || proof.leafIndex>>len(proof.neighbors) != 0 {
		return false
	}
	return equal(proof.ComputeRoot(node), root)
}

// VerifyComparable is VerifyInclusion for hash types that support ==.
func VerifyComparable[H comparable](proof Proof[H], node NodeFunc[H], root H) bool {
	return proof.VerifyInclusion(node, root, func(a, b H) bool { return a == b })
}

// VerifyValue checks that value hashes to the proof's target and that the
// proof leads to root.
func VerifyValue[V, H any](proof Proof[H], value V, leaf LeafFunc[V, H], node NodeFunc[H], root H, equal func(a, b H) bool) bool {
	if !equal(leaf(value), proof.target) {
		return false
	}
	return proof.VerifyInclusion(node, root, equal)
}
