package dynarray

import (
	"fmt"

	"github.com/forestrie/go-wordarena/arena"
)

// Push appends value as the new last element. The region grows by one word
// and every tail value moves one slot higher, order preserved. On any
// failure, including ErrCapacityExceeded from a capped region, the region is
// untouched.
func Push(r *arena.Region, h Handle, value []byte) error {
	if len(value) != r.WordBytes() {
		return fmt.Errorf("%w: got %d bytes, want %d", arena.ErrWordSize, len(value), r.WordBytes())
	}
	length, err := Length(r, h)
	if err != nil {
		return err
	}
	end := h.Base + 1 + length
	if err = openGap(r, end); err != nil {
		return err
	}
	if err = r.SetWord(end, value); err != nil {
		return err
	}
	return r.PutUint64(h.Base, length+1)
}

// PushUint64 appends v encoded as a big endian word.
func PushUint64(r *arena.Region, h Handle, v uint64) error {
	return Push(r, h, arena.Uint64Word(r.WordBytes(), v))
}
