package dynarray

import (
	"fmt"

	"github.com/forestrie/go-wordarena/arena"
)

// Remove deletes the element at position index, 0 <= index < length, and
// returns a copy of it. Elements after index and the entire tail move one
// slot lower, order preserved; elements before index keep their offsets.
// index == length-1 is exactly Pop.
func Remove(r *arena.Region, h Handle, index uint64) ([]byte, error) {
	length, err := Length(r, h)
	if err != nil {
		return nil, err
	}
	if index >= length {
		return nil, fmt.Errorf("%w: remove at %d, length %d", ErrIndexOutOfBounds, index, length)
	}
	at := h.Base + 1 + index
	w, err := r.Word(at)
	if err != nil {
		return nil, err
	}
	removed := append([]byte(nil), w...)
	if err = closeGap(r, at); err != nil {
		return nil, err
	}
	if err = r.PutUint64(h.Base, length-1); err != nil {
		return nil, err
	}
	return removed, nil
}
