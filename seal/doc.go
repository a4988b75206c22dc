// Package seal captures the state of a word region as a deterministic CBOR
// document and optionally binds it under a COSE Sign1 envelope.
//
// The engine assumes write through visibility: a host that passes a region
// across a call boundary with copy semantics silently discards mutations. By
// sealing the state on one side of the boundary and comparing on the other,
// an integration can detect that class of binding bug. Captured states are
// also convenient as test fixtures, see Restore.
//
// Regions are never persisted across calls; this package produces bytes for
// the host to carry, it does not store anything.
package seal
