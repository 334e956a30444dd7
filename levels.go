package pmt

import (
	"fmt"
	"math/bits"
)

// MaxHeight is the largest height whose node ids still fit into an int.
const MaxHeight = bits.UintSize - 2

// levels holds the per-level arithmetic of a perfect binary tree whose nodes
// are numbered in one flat id space: leaves first, then every level above
// them, the root last.
type levels struct {
	height int
	// count[i] is the number of nodes at level i.
	count []int
	// boundary[i] is one past the last id of level i.
	boundary []int
}

func newLevels(height int) levels {
	if height < 0 || height > MaxHeight {
		panic(fmt.Sprintf("BUG: height must be in [0, %d] (got %d)", MaxHeight, height))
	}
	l := levels{
		height:   height,
		count:    make([]int, height+1),
		boundary: make([]int, height+1),
	}
	for i := range l.count {
		l.count[i] = 1 << (height - i)
	}
	l.boundary[0] = l.count[0]
	for i := 1; i < len(l.boundary); i++ {
		l.boundary[i] = l.boundary[i-1] + l.count[i]
	}
	return l
}

// numLeaves returns 2^height.
func (l levels) numLeaves() int {
	return l.count[0]
}

// numNodes returns the total number of nodes, 2^(height+1) - 1.
func (l levels) numNodes() int {
	return l.boundary[l.height]
}

// start returns the first id of the given level.
func (l levels) start(level int) int {
	return l.boundary[level] - l.count[level]
}

// rootID returns the id of the single node at the top level.
func (l levels) rootID() int {
	return l.numNodes() - 1
}

// parentID maps a node at the given level onto its parent at level+1:
// the id is shifted forward by the size of its level and then moved back by
// half (rounded up) of its distance past the level boundary.
func (l levels) parentID(id, level int) int {
	shifted := id + l.count[level]
	dist := shifted - l.boundary[level]
	return shifted - (dist+1)/2
}

// siblingID returns the other child of id's parent. Every level starts at an
// even id, so the global parity of an id equals its parity within the level.
func siblingID(id int) int {
	if id%2 == 0 {
		return id + 1
	}
	return id - 1
}
