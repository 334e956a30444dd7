package pmt

// LeafFunc converts an input value into the hash stored at its leaf.
type LeafFunc[V, H any] func(value V) H

// NodeFunc combines two sibling hashes into their parent's hash. left always
// belongs to the lower (even) id and right to the higher (odd) id.
type NodeFunc[H any] func(left, right H) H

// LevelFunc computes a whole level of parents at once. children holds the
// hashes of one level in id order and parents has len(children)/2 slots;
// parents[k] must become the combination of children[2k] and children[2k+1].
type LevelFunc[H any] func(parents, children []H) error

// NodeVisitorFn is called once for every node after its hash is stored.
type NodeVisitorFn[H any] func(id, level int, hash H)

type Option[H any] func(*Options[H])

// Options configures tree construction.
type Options[H any] struct {
	// LevelHasher, if set, replaces the pairwise NodeFunc calls while the
	// tree is built. Proof verification still uses the NodeFunc, so both
	// must agree.
	LevelHasher LevelFunc[H]
	NodeVisitor NodeVisitorFn[H]
}

// LevelHasher sets a function that hashes an entire level in one call, which
// lets batch or SIMD hashers amortize their setup cost.
func LevelHasher[H any](fn LevelFunc[H]) Option[H] {
	return func(opts *Options[H]) {
		opts.LevelHasher = fn
	}
}

// NodeVisitor sets a callback invoked for every node, leaves first and the
// root last.
func NodeVisitor[H any](fn NodeVisitorFn[H]) Option[H] {
	return func(opts *Options[H]) {
		opts.NodeVisitor = fn
	}
}
