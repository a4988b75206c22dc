package dynarray

import "github.com/forestrie/go-wordarena/arena"

// openGap grows the region by one word and shifts every word in [at, oldHW)
// one slot higher, leaving the slot at 'at' free for the caller to fill. The
// scan runs low to high carrying the displaced word forward, so every slot
// is read before it is overwritten. A capacity failure happens before any
// mutation.
func openGap(r *arena.Region, at uint64) error {
	oldHW := r.HighWater()
	if _, err := r.Extend(1); err != nil {
		return err
	}
	if at == oldHW {
		// the gap opened at the old high water mark, nothing was displaced
		return nil
	}
	carry := make([]byte, r.WordBytes())
	next := make([]byte, r.WordBytes())
	w, err := r.Word(at)
	if err != nil {
		return err
	}
	copy(carry, w)
	for off := at + 1; off <= oldHW; off++ {
		if off < oldHW {
			if w, err = r.Word(off); err != nil {
				return err
			}
			copy(next, w)
		}
		if err = r.SetWord(off, carry); err != nil {
			return err
		}
		carry, next = next, carry
	}
	return nil
}

// closeGap shifts every word in (at, HighWater) one slot lower, overwriting
// the slot at 'at'. Copying low to high from the next slot down means each
// source slot is read before anything overwrites it. The high water mark is
// left where it was; the vacated top slot keeps its stale value.
func closeGap(r *arena.Region, at uint64) error {
	hw := r.HighWater()
	for off := at + 1; off < hw; off++ {
		w, err := r.Word(off)
		if err != nil {
			return err
		}
		if err = r.SetWord(off-1, w); err != nil {
			return err
		}
	}
	return nil
}
