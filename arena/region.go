package arena

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultWordBytes is the slot width used when no option overrides it.
	// 32 matches the word width of the execution environments this package
	// models call memory for.
	DefaultWordBytes = 32

	// MinWordBytes is the smallest allowed slot width. A word must be able
	// to carry a big endian uint64 length value.
	MinWordBytes = 8
)

// Region is a linear buffer of fixed width words with a monotonically
// increasing high water mark. It is exclusively owned by one calling context
// and is not safe for concurrent use.
type Region struct {
	data      []byte
	wordBytes int
	highWater uint64 // in words
	maxWords  uint64 // 0 means the region grows without bound
	id        string
	log       *zap.SugaredLogger
}

// New creates an empty Region. The word width and capacity are fixed for the
// lifetime of the region.
func New(opts ...Option) (*Region, error) {
	cfg := config{wordBytes: DefaultWordBytes}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.wordBytes < MinWordBytes {
		return nil, fmt.Errorf(
			"%w: %d bytes, need at least %d", ErrWordBytesInvalid, cfg.wordBytes, MinWordBytes)
	}
	id := cfg.id
	if id == "" {
		id = uuid.NewString()
	}
	return &Region{
		wordBytes: cfg.wordBytes,
		maxWords:  cfg.maxWords,
		id:        id,
		log:       cfg.log,
	}, nil
}

// WordBytes returns the fixed width of every slot in the region.
func (r *Region) WordBytes() int {
	return r.wordBytes
}

// HighWater returns the offset, in words, of the first unused slot.
func (r *Region) HighWater() uint64 {
	return r.highWater
}

// ID returns the region identity assigned at construction.
func (r *Region) ID() string {
	return r.id
}

// Bytes returns the live portion of the backing store, up to the high water
// mark. The slice aliases the region; hosts read final values back through
// it and fixture builders may write through it.
func (r *Region) Bytes() []byte {
	return r.data[:r.highWater*uint64(r.wordBytes)]
}

// Word returns the slot at word offset off. The returned slice aliases the
// region, callers that need a stable copy must make one.
func (r *Region) Word(off uint64) ([]byte, error) {
	if off >= r.highWater {
		return nil, fmt.Errorf("%w: word %d, high water %d", ErrOutOfRange, off, r.highWater)
	}
	i := off * uint64(r.wordBytes)
	return r.data[i : i+uint64(r.wordBytes)], nil
}

// SetWord overwrites the slot at word offset off. value must be exactly one
// word.
func (r *Region) SetWord(off uint64, value []byte) error {
	if len(value) != r.wordBytes {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrWordSize, len(value), r.wordBytes)
	}
	if off >= r.highWater {
		return fmt.Errorf("%w: word %d, high water %d", ErrOutOfRange, off, r.highWater)
	}
	copy(r.data[off*uint64(r.wordBytes):], value)
	return nil
}

// Uint64 reads the slot at off as a big endian integer. Values wider than 64
// bits are truncated to the trailing 8 bytes.
func (r *Region) Uint64(off uint64) (uint64, error) {
	w, err := r.Word(off)
	if err != nil {
		return 0, err
	}
	return wordUint64(w), nil
}

// PutUint64 writes v as a big endian word at off, zeroing the upper bytes.
func (r *Region) PutUint64(off uint64, v uint64) error {
	w, err := r.Word(off)
	if err != nil {
		return err
	}
	putWordUint64(w, v)
	return nil
}

// Extend reserves n zeroed words at the high water mark and returns the
// offset of the first. When a capacity cap would be exceeded it fails with
// ErrCapacityExceeded before any mutation.
func (r *Region) Extend(n uint64) (uint64, error) {
	if n == 0 {
		return r.highWater, nil
	}
	if r.maxWords != 0 && r.highWater+n > r.maxWords {
		return 0, fmt.Errorf(
			"%w: %d words requested, %d in use, capacity %d",
			ErrCapacityExceeded, n, r.highWater, r.maxWords)
	}
	first := r.highWater
	r.data = append(r.data, make([]byte, n*uint64(r.wordBytes))...)
	r.highWater += n
	if r.log != nil {
		r.log.Debugf("region %s: extend n=%d hw=%d", r.id, n, r.highWater)
	}
	return first, nil
}

// Append bump allocates one word and writes value into it, returning the
// offset of the new slot.
func (r *Region) Append(value []byte) (uint64, error) {
	if len(value) != r.wordBytes {
		return 0, fmt.Errorf("%w: got %d bytes, want %d", ErrWordSize, len(value), r.wordBytes)
	}
	off, err := r.Extend(1)
	if err != nil {
		return 0, err
	}
	copy(r.data[off*uint64(r.wordBytes):], value)
	return off, nil
}

// AppendUint64 bump allocates one word holding v as a big endian integer.
func (r *Region) AppendUint64(v uint64) (uint64, error) {
	off, err := r.Extend(1)
	if err != nil {
		return 0, err
	}
	// the new slot is zero filled, only the trailing bytes need writing
	return off, r.PutUint64(off, v)
}

// Truncate lowers the high water mark to hw words. The engine never calls
// this; it exists for callers that track their own allocation cursor and
// want freed slots returned after removals.
func (r *Region) Truncate(hw uint64) error {
	if hw > r.highWater {
		return fmt.Errorf("%w: truncate to %d, high water %d", ErrOutOfRange, hw, r.highWater)
	}
	r.data = r.data[:hw*uint64(r.wordBytes)]
	r.highWater = hw
	if r.log != nil {
		r.log.Debugf("region %s: truncate hw=%d", r.id, hw)
	}
	return nil
}
