package defaulthasher

import (
	"crypto"
	"crypto/sha256"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/pmt/digest"
)

func sum(hash crypto.Hash, data ...[]byte) digest.Digest {
	h := hash.New()
	for _, d := range data {
		//nolint:errcheck
		h.Write(d)
	}

	var out digest.Digest
	copy(out[:], h.Sum(nil))
	return out
}

func TestHashLeaf(t *testing.T) {
	defaultRawData := []byte("a blockchain is a chain of blocks")

	tests := []struct {
		name string
		leaf []byte
		want digest.Digest
	}{
		{"empty leaf", []byte{}, sum(crypto.SHA256, []byte{LeafPrefix})},
		{"nil leaf", nil, sum(crypto.SHA256, []byte{LeafPrefix})},
		{"leaf with data", defaultRawData, sum(crypto.SHA256, []byte{LeafPrefix}, defaultRawData)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HashLeaf(tt.leaf); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("HashLeaf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHashNode(t *testing.T) {
	l := sum(crypto.SHA256, []byte("left"))
	r := sum(crypto.SHA256, []byte("right"))

	tests := []struct {
		name string
		l, r digest.Digest
		want digest.Digest
	}{
		{"ordered children", l, r, sum(crypto.SHA256, []byte{NodePrefix}, l[:], r[:])},
		{"swapped children", r, l, sum(crypto.SHA256, []byte{NodePrefix}, r[:], l[:])},
		{"zero children", digest.Digest{}, digest.Digest{}, sum(crypto.SHA256, []byte{NodePrefix}, make([]byte, 64))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HashNode(tt.l, tt.r); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("HashNode() = %v, want %v", got, tt.want)
			}
		})
	}
	require.NotEqual(t, HashNode(l, r), HashNode(r, l))
}

// A node over two leaves must not collide with a leaf over the same bytes.
func TestDomainSeparation(t *testing.T) {
	l, r := HashLeaf([]byte("a")), HashLeaf([]byte("b"))
	node := HashNode(l, r)
	asLeaf := HashLeaf(append(l.Bytes(), r.Bytes()...))
	require.NotEqual(t, node, asLeaf)
}

func TestHashString(t *testing.T) {
	require.Equal(t, HashLeaf([]byte("a")), SHA256.HashString("a"))
	// sha256(0x00 || "a")
	want, err := digest.FromHex("022a6979e6dab7aa5ae4c3e5e45f7e977112a7e63593820dbec1ec738a24f93c")
	require.NoError(t, err)
	require.Equal(t, want, SHA256.HashString("a"))
}

func TestNew(t *testing.T) {
	h, err := New(crypto.SHA256)
	require.NoError(t, err)
	require.Equal(t, SHA256.HashLeaf([]byte("x")), h.HashLeaf([]byte("x")))

	_, err = New(crypto.SHA512)
	require.ErrorIs(t, err, ErrUnsupportedHash)

	_, err = New(crypto.MD5)
	require.ErrorIs(t, err, ErrUnsupportedHash)

	require.Equal(t, sha256.Size, digest.Size)
}
