package defaulthasher

import (
	"crypto"
	_ "crypto/sha256"
	"errors"
	"fmt"

	"github.com/celestiaorg/pmt/digest"
)

const (
	LeafPrefix = 0
	NodePrefix = 1
)

var ErrUnsupportedHash = errors.New("base hash is unavailable or does not produce 32-byte digests")

// DefaultHasher hashes leaves and inner nodes with a domain separation prefix
// so that a leaf can never be reinterpreted as an inner node.
type DefaultHasher struct {
	crypto.Hash
}

// SHA256 is the DefaultHasher backed by crypto.SHA256.
var SHA256 = &DefaultHasher{Hash: crypto.SHA256}

// New returns a DefaultHasher for baseHasher, which has to be linked into the
// binary and produce digest.Size bytes.
func New(baseHasher crypto.Hash) (*DefaultHasher, error) {
	if !baseHasher.Available() {
		return nil, fmt.Errorf("%w: %v is not linked into the binary", ErrUnsupportedHash, baseHasher)
	}
	if baseHasher.Size() != digest.Size {
		return nil, fmt.Errorf("%w: %v produces %d bytes", ErrUnsupportedHash, baseHasher, baseHasher.Size())
	}
	return &DefaultHasher{Hash: baseHasher}, nil
}

// HashLeaf hashes leaves to hash(LeafPrefix || data).
//
//nolint:errcheck
func (n *DefaultHasher) HashLeaf(data []byte) digest.Digest {
	h := n.New()
	h.Write([]byte{LeafPrefix})
	h.Write(data)

	var d digest.Digest
	copy(d[:], h.Sum(nil))
	return d
}

// HashString is HashLeaf over the bytes of s.
func (n *DefaultHasher) HashString(s string) digest.Digest {
	return n.HashLeaf([]byte(s))
}

// HashNode hashes inner nodes to hash(NodePrefix || left || right).
func (n *DefaultHasher) HashNode(l, r digest.Digest) digest.Digest {
	h := n.New()
	// Note this seems a little faster than calling several Write()s on the
	// underlying Hash function (see: https://github.com/google/trillian/pull/1503):
	b := make([]byte, 0, 1+2*digest.Size)
	b = append(b, NodePrefix)
	b = append(b, l[:]...)
	b = append(b, r[:]...)
	//nolint:errcheck
	h.Write(b)

	var d digest.Digest
	copy(d[:], h.Sum(nil))
	return d
}

// HashLeaf hashes data with SHA256.HashLeaf.
func HashLeaf(data []byte) digest.Digest {
	return SHA256.HashLeaf(data)
}

// HashNode combines two children with SHA256.HashNode.
func HashNode(l, r digest.Digest) digest.Digest {
	return SHA256.HashNode(l, r)
}
