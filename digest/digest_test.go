package digest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromBytes(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		wantErr bool
	}{
		{"nil", nil, true},
		{"too short", make([]byte, Size-1), true},
		{"too long", make([]byte, Size+1), true},
		{"exact", bytes.Repeat([]byte{0xAB}, Size), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := FromBytes(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDigestLen)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.in, d.Bytes())
		})
	}
}

func TestFromBytesCopies(t *testing.T) {
	in := bytes.Repeat([]byte{1}, Size)
	d, err := FromBytes(in)
	require.NoError(t, err)
	in[0] = 2
	require.Equal(t, byte(1), d[0])

	b := d.Bytes()
	b[0] = 3
	require.Equal(t, byte(1), d[0])
}

func TestHex(t *testing.T) {
	var d Digest
	d[0], d[Size-1] = 0x01, 0xFF
	s := d.String()
	require.Equal(t, "01"+string(bytes.Repeat([]byte("00"), Size-2))+"ff", s)

	back, err := FromHex(s)
	require.NoError(t, err)
	require.Equal(t, d, back)

	_, err = FromHex("zz")
	require.Error(t, err)
	_, err = FromHex("0102")
	require.ErrorIs(t, err, ErrInvalidDigestLen)
}

func TestCompare(t *testing.T) {
	var zero, one Digest
	one[Size-1] = 1

	require.True(t, zero.IsZero())
	require.False(t, one.IsZero())
	require.True(t, zero.Less(one))
	require.False(t, one.Less(zero))
	require.True(t, one.Equal(one))
	require.False(t, Equal(zero, one))
	require.True(t, Equal(one, one))
}
