package pmt

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHeight   = errors.New("number of values does not match 2^height")
	ErrNilFunc         = errors.New("leaf and node functions must not be nil")
	ErrLeafOutOfRange  = errors.New("leaf id out of range")
	ErrNodeOutOfRange  = errors.New("node id out of range")
	ErrLevelOutOfRange = errors.New("level out of range")
)

// Tree is a perfect binary Merkle tree over exactly 2^height values.
//
// Every node carries a global id: the leaves occupy [0, 2^height) in input
// order, followed by the nodes of each level above them, and the root holds
// the last id. Parent and sibling ids are derived by arithmetic on that
// numbering, so the tree keeps no pointers between nodes.
//
// A Tree is fully built by New and never modified afterwards, which makes it
// safe for concurrent use.
type Tree[V, H any] struct {
	levels levels
	nodes  *registry[H]
	node   NodeFunc[H]
}

// New hashes every value with leaf and combines sibling pairs with node,
// level by level, up to the root. len(values) must be exactly 2^height.
func New[V, H any](height int, values []V, leaf LeafFunc[V, H], node NodeFunc[H], setters ...Option[H]) (*Tree[V, H], error) {
	if leaf == nil || node == nil {
		return nil, ErrNilFunc
	}
	if height < 0 || height > MaxHeight {
		return nil, fmt.Errorf("%w: height %d is outside [0, %d]", ErrInvalidHeight, height, MaxHeight)
	}
	if len(values) != 1<<height {
		return nil, fmt.Errorf("%w: got %d values, want %d for height %d", ErrInvalidHeight, len(values), 1<<height, height)
	}

	opts := &Options[H]{}
	for _, setter := range setters {
		setter(opts)
	}

	lv := newLevels(height)
	t := &Tree[V, H]{
		levels: lv,
		nodes:  newRegistry[H](lv.numNodes()),
		node:   node,
	}

	for id, v := range values {
		t.nodes.put(id, leaf(v))
	}
	for level := 0; level < height; level++ {
		if err := t.buildLevel(level, opts.LevelHasher); err != nil {
			return nil, fmt.Errorf("failed to build level %d: %w", level, err)
		}
	}

	if visit := opts.NodeVisitor; visit != nil {
		for level := 0; level <= height; level++ {
			for id := lv.start(level); id < lv.boundary[level]; id++ {
				visit(id, level, t.nodes.get(id))
			}
		}
	}
	return t, nil
}

// buildLevel stores the parents of every sibling pair at the given level.
func (t *Tree[V, H]) buildLevel(level int, batch LevelFunc[H]) error {
	start, end := t.levels.start(level), t.levels.boundary[level]

	if batch != nil {
		parentStart := t.levels.parentID(start, level)
		parentEnd := parentStart + t.levels.count[level+1]
		return batch(t.nodes.span(parentStart, parentEnd), t.nodes.span(start, end))
	}

	// Stepping over even ids visits each pair, and so each parent, once.
	for id := start; id < end; id += 2 {
		left, right := t.nodes.get(id), t.nodes.get(id+1)
		t.nodes.put(t.levels.parentID(id, level), t.node(left, right))
	}
	return nil
}

// Prove returns the inclusion proof of the leaf with the given id: its hash
// and the hash of its sibling at every level below the root.
func (t *Tree[V, H]) Prove(leafID int) (Proof[H], error) {
	if err := t.validateLeafID(leafID); err != nil {
		return Proof[H]{}, err
	}

	neighbors := make([]H, 0, t.levels.height)
	id := leafID
	for level := 0; level < t.levels.height; level++ {
		neighbors = append(neighbors, t.nodes.get(siblingID(id)))
		id = t.levels.parentID(id, level)
	}
	return Proof[H]{
		leafIndex: leafID,
		target:    t.nodes.get(leafID),
		neighbors: neighbors,
	}, nil
}

// ProveAll returns one proof per leaf, in leaf order.
func (t *Tree[V, H]) ProveAll() []Proof[H] {
	proofs := make([]Proof[H], t.NumLeaves())
	for i := range proofs {
		// the id is always in range here
		proofs[i], _ = t.Prove(i)
	}
	return proofs
}

// Path returns the ids of the given leaf and all of its ancestors, the leaf
// first and the root last.
func (t *Tree[V, H]) Path(leafID int) ([]int, error) {
	if err := t.validateLeafID(leafID); err != nil {
		return nil, err
	}
	path := make([]int, 0, t.levels.height+1)
	id := leafID
	for level := 0; level < t.levels.height; level++ {
		path = append(path, id)
		id = t.levels.parentID(id, level)
	}
	return append(path, id), nil
}

// Root returns the hash of the root node.
func (t *Tree[V, H]) Root() H {
	return t.nodes.get(t.levels.rootID())
}

// Node returns the hash stored under the given global id.
func (t *Tree[V, H]) Node(id int) (H, error) {
	if id < 0 || id >= t.nodes.count() {
		var zero H
		return zero, fmt.Errorf("%w: got %d, want [0, %d)", ErrNodeOutOfRange, id, t.nodes.count())
	}
	return t.nodes.get(id), nil
}

// Level returns a copy of the hashes at the given level in id order. Level 0
// holds the leaves and level Height() the root.
func (t *Tree[V, H]) Level(level int) ([]H, error) {
	if level < 0 || level > t.levels.height {
		return nil, fmt.Errorf("%w: got %d, want [0, %d]", ErrLevelOutOfRange, level, t.levels.height)
	}
	span := t.nodes.span(t.levels.start(level), t.levels.boundary[level])
	return append([]H(nil), span...), nil
}

// Height returns the number of levels above the leaves.
func (t *Tree[V, H]) Height() int {
	return t.levels.height
}

// NumLeaves returns 2^Height().
func (t *Tree[V, H]) NumLeaves() int {
	return t.levels.numLeaves()
}

// NumNodes returns the number of stored hashes, 2^(Height()+1) - 1.
func (t *Tree[V, H]) NumNodes() int {
	return t.nodes.count()
}

func (t *Tree[V, H]) validateLeafID(leafID int) error {
	if leafID < 0 || leafID >= t.levels.numLeaves() {
		return fmt.Errorf("%w: got %d, want [0, %d)", ErrLeafOutOfRange, leafID, t.levels.numLeaves())
	}
	return nil
}
