package dynarray

import (
	"fmt"

	"github.com/forestrie/go-wordarena/arena"
)

// Handle identifies one array living inside a region: the word offset of its
// length word. Handles are stable, operations never move the length word,
// but anything the caller allocated after the array does move.
type Handle struct {
	Base uint64
}

// Length reads and validates the array length at the handle's base. The
// declared length must never claim memory beyond the high water mark.
func Length(r *arena.Region, h Handle) (uint64, error) {
	length, err := r.Uint64(h.Base)
	if err != nil {
		return 0, fmt.Errorf("%w: no length word at %d", ErrHandleInvalid, h.Base)
	}
	// Word succeeded so Base < HighWater and the subtraction cannot wrap.
	if length > r.HighWater()-h.Base-1 {
		return 0, fmt.Errorf(
			"%w: length %d at base %d exceeds high water %d",
			ErrHandleInvalid, length, h.Base, r.HighWater())
	}
	return length, nil
}

// Element returns the element at position i. The returned slice aliases the
// region and is invalidated by any mutating operation.
func Element(r *arena.Region, h Handle, i uint64) ([]byte, error) {
	length, err := Length(r, h)
	if err != nil {
		return nil, err
	}
	if i >= length {
		return nil, fmt.Errorf("%w: element %d, length %d", ErrIndexOutOfBounds, i, length)
	}
	return r.Word(h.Base + 1 + i)
}

// Uint64Element returns the element at position i as a big endian integer.
func Uint64Element(r *arena.Region, h Handle, i uint64) (uint64, error) {
	length, err := Length(r, h)
	if err != nil {
		return 0, err
	}
	if i >= length {
		return 0, fmt.Errorf("%w: element %d, length %d", ErrIndexOutOfBounds, i, length)
	}
	return r.Uint64(h.Base + 1 + i)
}

// SetElement overwrites the element at position i in place. No other slot
// moves.
func SetElement(r *arena.Region, h Handle, i uint64, value []byte) error {
	length, err := Length(r, h)
	if err != nil {
		return err
	}
	if i >= length {
		return fmt.Errorf("%w: element %d, length %d", ErrIndexOutOfBounds, i, length)
	}
	return r.SetWord(h.Base+1+i, value)
}
