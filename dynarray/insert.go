package dynarray

import (
	"fmt"

	"github.com/forestrie/go-wordarena/arena"
)

// Insert places value at element position index, 0 <= index <= length.
// Elements at positions >= index and the entire tail move one slot higher,
// order preserved; elements before index keep their offsets. index == length
// is exactly Push.
func Insert(r *arena.Region, h Handle, value []byte, index uint64) error {
	if len(value) != r.WordBytes() {
		return fmt.Errorf("%w: got %d bytes, want %d", arena.ErrWordSize, len(value), r.WordBytes())
	}
	length, err := Length(r, h)
	if err != nil {
		return err
	}
	if index > length {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfBounds, index, length)
	}
	at := h.Base + 1 + index
	if err = openGap(r, at); err != nil {
		return err
	}
	if err = r.SetWord(at, value); err != nil {
		return err
	}
	return r.PutUint64(h.Base, length+1)
}

// InsertUint64 inserts v encoded as a big endian word at index.
func InsertUint64(r *arena.Region, h Handle, v uint64, index uint64) error {
	return Insert(r, h, arena.Uint64Word(r.WordBytes(), v), index)
}
