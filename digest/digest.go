package digest

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
)

// Size is the byte size of a Digest.
const Size = 32

var ErrInvalidDigestLen = errors.New("invalid digest length")

type Digest [Size]byte

// FromBytes copies b into a Digest. b must be exactly Size bytes long.
func FromBytes(b []byte) (Digest, error) {
	var d Digest
	if len(b) != Size {
		return d, fmt.Errorf("%w: got: %v, want: %v", ErrInvalidDigestLen, len(b), Size)
	}
	copy(d[:], b)
	return d, nil
}

// FromHex decodes a hex string into a Digest.
func FromHex(s string) (Digest, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Digest{}, err
	}
	return FromBytes(b)
}

// Bytes returns a copy of the digest as a byte slice.
func (d Digest) Bytes() []byte {
	return append([]byte(nil), d[:]...)
}

// Equal returns true if d == other.
func (d Digest) Equal(other Digest) bool {
	return d == other
}

// Less orders digests lexicographically.
func (d Digest) Less(other Digest) bool {
	return bytes.Compare(d[:], other[:]) < 0
}

// IsZero reports whether every byte of d is zero.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// String returns the hexadecimal encoding of d.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Equal is a free-function form of Digest.Equal, suitable as the equality
// argument of the generic proof verifiers.
func Equal(a, b Digest) bool {
	return a == b
}
