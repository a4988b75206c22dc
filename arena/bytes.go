package arena

import "encoding/binary"

// Words are big endian integers, so a uint64 lives in the trailing 8 bytes.

func wordUint64(w []byte) uint64 {
	return binary.BigEndian.Uint64(w[len(w)-8:])
}

func putWordUint64(w []byte, v uint64) {
	clear(w[:len(w)-8])
	binary.BigEndian.PutUint64(w[len(w)-8:], v)
}

// Uint64Word returns v encoded as a big endian word of wordBytes width.
// It panics if wordBytes < MinWordBytes, matching the Region invariant.
func Uint64Word(wordBytes int, v uint64) []byte {
	w := make([]byte, wordBytes)
	binary.BigEndian.PutUint64(w[wordBytes-8:], v)
	return w
}
