package arena

/*

# Word addressed regions for call scoped memory

This package provides the Region: a linear buffer of fixed width words with a
'high water mark' marking the first unused word. It models the kind of memory
a contract call establishes for its local values: values are bump allocated,
nothing is ever garbage collected or relocated behind the caller's back, and
the region is discarded when the logical call completes.

It mirrors the style of our other region handling packages:

- small, composable methods
- explicit byte layouts and word offset arithmetic
- bounds checked indexed access, never raw pointers
- a burden of knowledge on the caller for hot paths

## Words

Every slot in a region is exactly WordBytes wide. The width is fixed when the
region is created (default 32) and is identical for every slot; heterogeneous
width regions are not supported. A word used as an integer is a big endian
value, so a uint64 occupies the trailing 8 bytes with the upper bytes zero.
This is why WordBytes must be at least 8.

## The high water mark

The high water mark is the offset, in words, of the first unused slot. It
only ever increases as values are appended or the region is extended. The
engine packages built on top never lower it: a caller that keeps its own
allocation cursor and wants the region trimmed after removals must call
Truncate itself.

## Write through visibility

A Region is mutated in place through a shared reference. Callers that pass
region contents across a boundary with copy semantics (copy-in/copy-out) must
copy the mutated region back afterwards, or the mutations made here are lost.
That propagation is the host's responsibility, not this package's; the seal
package exists to help hosts detect when it has gone wrong.

*/
