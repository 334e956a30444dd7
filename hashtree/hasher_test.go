package hashtree

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/pmt/digest"
)

func TestHashLeaf(t *testing.T) {
	// sha256("a")
	want := "ca978112ca1bbdcafac231b39a23dc4da786eff8147c4e72b9807785afee48bb"
	got := HashLeaf([]byte("a"))
	require.Equal(t, want, hex.EncodeToString(got[:]))
}

func TestHashNode(t *testing.T) {
	l, r := HashLeaf([]byte("a")), HashLeaf([]byte("b"))
	want := sha256.Sum256(append(l.Bytes(), r.Bytes()...))
	require.Equal(t, digest.Digest(want), HashNode(l, r))
	require.NotEqual(t, HashNode(l, r), HashNode(r, l))
}

func TestHashLevel(t *testing.T) {
	children := make([]digest.Digest, 16)
	for i := range children {
		children[i] = HashLeaf([]byte{byte(i)})
	}
	parents := make([]digest.Digest, len(children)/2)
	require.NoError(t, HashLevel(parents, children))

	for k := range parents {
		require.Equal(t, HashNode(children[2*k], children[2*k+1]), parents[k], "parent %d", k)
	}
}

func TestHashLevelErrors(t *testing.T) {
	children := make([]digest.Digest, 4)

	require.Error(t, HashLevel(make([]digest.Digest, 2), children[:3]))
	require.Error(t, HashLevel(make([]digest.Digest, 1), children))
	require.Error(t, HashLevel(make([]digest.Digest, 3), children))
	require.NoError(t, HashLevel(nil, nil))
}
