package dynarray

import (
	"encoding/binary"
	"testing"

	"github.com/forestrie/go-wordarena/arena"
	"github.com/stretchr/testify/require"
)

// wordValue decodes a word as the big endian integer it carries.
func wordValue(w []byte) uint64 {
	return binary.BigEndian.Uint64(w[len(w)-8:])
}

// newTestRegion builds a region holding one array of values at offset 0,
// followed by any tail words, which simulate unrelated memory values the
// caller allocated after the array.
func newTestRegion(t *testing.T, values []uint64, tail []uint64, opts ...arena.Option) (*arena.Region, Handle) {
	t.Helper()
	r, err := arena.New(opts...)
	require.NoError(t, err)
	h, err := NewUint64Array(r, values...)
	require.NoError(t, err)
	for _, v := range tail {
		_, err = r.AppendUint64(v)
		require.NoError(t, err)
	}
	return r, h
}

// requireElements asserts the array is exactly want, element by element.
func requireElements(t *testing.T, r *arena.Region, h Handle, want []uint64) {
	t.Helper()
	length, err := Length(r, h)
	require.NoError(t, err)
	require.Equal(t, uint64(len(want)), length)
	for i, w := range want {
		got, err := Uint64Element(r, h, uint64(i))
		require.NoError(t, err)
		require.Equal(t, w, got, "element %d", i)
	}
}

// requireWords asserts the region holds want at consecutive offsets from
// 'from'. Used to check tail values landed where the shift should have put
// them.
func requireWords(t *testing.T, r *arena.Region, from uint64, want []uint64) {
	t.Helper()
	for i, w := range want {
		got, err := r.Uint64(from + uint64(i))
		require.NoError(t, err)
		require.Equal(t, w, got, "word %d", from+uint64(i))
	}
}

// snapshot copies the live region bytes so a later comparison can prove a
// failed or reverted operation left the region untouched.
func snapshot(r *arena.Region) []byte {
	return append([]byte(nil), r.Bytes()...)
}
