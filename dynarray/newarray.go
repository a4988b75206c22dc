package dynarray

import (
	"fmt"

	"github.com/forestrie/go-wordarena/arena"
)

// NewArray bump allocates a length word followed by elems at the region's
// high water mark and returns a handle to it. This is how a calling context
// establishes an array among its memory values at the start of a call.
func NewArray(r *arena.Region, elems ...[]byte) (Handle, error) {
	for i, e := range elems {
		if len(e) != r.WordBytes() {
			return Handle{}, fmt.Errorf(
				"%w: element %d is %d bytes, want %d", arena.ErrWordSize, i, len(e), r.WordBytes())
		}
	}
	n := uint64(len(elems))
	base, err := r.Extend(1 + n)
	if err != nil {
		return Handle{}, err
	}
	if err = r.PutUint64(base, n); err != nil {
		return Handle{}, err
	}
	for i, e := range elems {
		if err = r.SetWord(base+1+uint64(i), e); err != nil {
			return Handle{}, err
		}
	}
	return Handle{Base: base}, nil
}

// NewUint64Array is NewArray for big endian integer words.
func NewUint64Array(r *arena.Region, values ...uint64) (Handle, error) {
	n := uint64(len(values))
	base, err := r.Extend(1 + n)
	if err != nil {
		return Handle{}, err
	}
	if err = r.PutUint64(base, n); err != nil {
		return Handle{}, err
	}
	for i, v := range values {
		if err = r.PutUint64(base+1+uint64(i), v); err != nil {
			return Handle{}, err
		}
	}
	return Handle{Base: base}, nil
}
