// Package hashtree provides prefix-free SHA-256 leaf and node functions for
// pmt trees, as used by SSZ style Merkle trees. Node hashing is done by
// gohashtree, which hashes many 64-byte chunks at once with the vectorized
// SHA-256 instructions of the host CPU when they are available.
package hashtree

import (
	"crypto/sha256"
	"fmt"
	"unsafe"

	"github.com/prysmaticlabs/gohashtree"

	"github.com/celestiaorg/pmt/digest"
)

// HashLeaf hashes leaves to sha256(data).
func HashLeaf(data []byte) digest.Digest {
	return sha256.Sum256(data)
}

// HashNode hashes inner nodes to sha256(left || right).
func HashNode(l, r digest.Digest) digest.Digest {
	var out [1]digest.Digest
	chunks := [2]digest.Digest{l, r}
	if err := gohashtree.Hash(chunks32(out[:]), chunks32(chunks[:])); err != nil {
		// a single pair into a single digest always fits
		panic(fmt.Sprintf("BUG: hashing one pair failed: %v", err))
	}
	return out[0]
}

// HashLevel hashes every pair (children[2k], children[2k+1]) into parents[k]
// in a single gohashtree call. It can be handed to pmt.LevelHasher and
// produces the same tree as HashNode.
func HashLevel(parents, children []digest.Digest) error {
	if len(children)%2 != 0 {
		return fmt.Errorf("odd number of children: %d", len(children))
	}
	if len(parents) != len(children)/2 {
		return fmt.Errorf("got %d parent slots for %d children, want %d", len(parents), len(children), len(children)/2)
	}
	if len(children) == 0 {
		return nil
	}
	return gohashtree.Hash(chunks32(parents), chunks32(children))
}

// chunks32 reinterprets ds as the [][32]byte that gohashtree expects.
// digest.Digest is defined as [32]byte, so both share one memory layout.
func chunks32(ds []digest.Digest) [][32]byte {
	if len(ds) == 0 {
		return nil
	}
	return unsafe.Slice((*[32]byte)(unsafe.Pointer(&ds[0])), len(ds))
}
