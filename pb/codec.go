package pb

import (
	"errors"
	"fmt"

	"github.com/gogo/protobuf/proto"

	"github.com/celestiaorg/pmt"
	"github.com/celestiaorg/pmt/digest"
)

var ErrInvalidLeafIndex = errors.New("leaf index does not fit the proof height")

// FromProof converts an inclusion proof into its wire message.
func FromProof(proof pmt.Proof[digest.Digest]) *Proof {
	neighbors := proof.Neighbors()
	m := &Proof{
		LeafIndex:  uint64(proof.LeafIndex()),
		TargetHash: proof.TargetHash().Bytes(),
		Neighbors:  make([][]byte, len(neighbors)),
	}
	for i, n := range neighbors {
		m.Neighbors[i] = n.Bytes()
	}
	return m
}

// ToProof validates the message and converts it back into an inclusion proof.
func (m *Proof) ToProof() (pmt.Proof[digest.Digest], error) {
	height := len(m.GetNeighbors())
	if height > pmt.MaxHeight {
		return pmt.Proof[digest.Digest]{}, fmt.Errorf("%w: height %d exceeds %d", ErrInvalidLeafIndex, height, pmt.MaxHeight)
	}
	if m.GetLeafIndex() >= uint64(1)<<height {
		return pmt.Proof[digest.Digest]{}, fmt.Errorf("%w: got: %d, want < %d", ErrInvalidLeafIndex, m.GetLeafIndex(), uint64(1)<<height)
	}

	target, err := digest.FromBytes(m.GetTargetHash())
	if err != nil {
		return pmt.Proof[digest.Digest]{}, fmt.Errorf("target hash: %w", err)
	}
	neighbors := make([]digest.Digest, height)
	for i, n := range m.GetNeighbors() {
		if neighbors[i], err = digest.FromBytes(n); err != nil {
			return pmt.Proof[digest.Digest]{}, fmt.Errorf("neighbor %d: %w", i, err)
		}
	}
	return pmt.NewInclusionProof(int(m.GetLeafIndex()), target, neighbors), nil
}

// MarshalProof encodes proof as a protobuf Proof message.
func MarshalProof(proof pmt.Proof[digest.Digest]) ([]byte, error) {
	return proto.Marshal(FromProof(proof))
}

// UnmarshalProof decodes a protobuf Proof message produced by MarshalProof.
func UnmarshalProof(data []byte) (pmt.Proof[digest.Digest], error) {
	m := &Proof{}
	if err := proto.Unmarshal(data, m); err != nil {
		return pmt.Proof[digest.Digest]{}, err
	}
	return m.ToProof()
}
