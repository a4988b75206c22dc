package dynarray

/*

# Length prefixed arrays inside a shared word region

This package implements dynamic arrays that live directly inside an
arena.Region, alongside whatever other values the calling context has bump
allocated there. Nothing is ever relocated by a collector, so growing or
shrinking an array means physically shifting every live value that happens to
sit beyond it.

## Layout

An array is identified by a Handle carrying only the offset of its length
word. The elements follow immediately, one per slot, and everything between
the last element and the high water mark is the 'tail': other logical values
the caller allocated after the array.

	        Base
	         |
	+--------+--------+--------+-- ... --+-------------+----------+
	|  ...   | length |  e[0]  |         | e[length-1] | tail ... |
	+--------+--------+--------+-- ... --+-------------+----------+
	                                                   |          |
	                                              Base+1+length  high water

The length is always read from the region at Base, never cached, because the
operations here mutate it as a side effect.

## The tail contract

Push, Pop, Insert and Remove preserve the relative order and the values of
every tail word. The tail moves as a block, by exactly one slot, in the
direction the array's length changed. A caller holding offsets into the tail
must refresh them after any of these operations.

Shifts run in a single ordered pass chosen so that every slot is read before
it is overwritten. Growing shifts carry the displaced word forward through a
low to high scan; shrinking shifts copy each word into the preceding slot,
also low to high. The direction is determined by growing versus shrinking,
it is not incidental.

## Atomicity

Every precondition is validated before the first write. A failed operation,
including a capacity failure while growing the region, leaves the region byte
for byte as it was.

## Complexity

All four operations are O(tail) time and O(1) additional space. Pop and
Remove do not lower the region's high water mark; that cursor belongs to the
caller (see arena.Truncate).

*/
