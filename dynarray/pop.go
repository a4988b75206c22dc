package dynarray

import (
	"fmt"

	"github.com/forestrie/go-wordarena/arena"
)

// Pop removes the last element and returns a copy of it. Every tail value
// moves one slot lower, order preserved. The high water mark does not
// shrink; callers that track an allocation cursor of their own must lower it
// themselves.
func Pop(r *arena.Region, h Handle) ([]byte, error) {
	length, err := Length(r, h)
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return nil, fmt.Errorf("%w: base %d", ErrEmptyArray, h.Base)
	}
	last := h.Base + length // == Base + 1 + (length - 1)
	w, err := r.Word(last)
	if err != nil {
		return nil, err
	}
	removed := append([]byte(nil), w...)
	if err = closeGap(r, last); err != nil {
		return nil, err
	}
	if err = r.PutUint64(h.Base, length-1); err != nil {
		return nil, err
	}
	return removed, nil
}
