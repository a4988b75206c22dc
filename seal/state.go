package seal

import (
	"errors"
	"fmt"
	"time"

	"github.com/forestrie/go-wordarena/arena"
)

var ErrStateCorrupt = errors.New("the region state words do not match the declared geometry")

// RegionState is the signable snapshot of a region: its identity, geometry
// and live contents. Key as int keeps the encoding compact and stable.
type RegionState struct {
	RegionID  string `cbor:"1,keyasint"`
	WordBytes int    `cbor:"2,keyasint"`
	HighWater uint64 `cbor:"3,keyasint"`
	Words     []byte `cbor:"4,keyasint"`
	// Timestamp is the unix time (milliseconds) read when the state was
	// captured. Including it allows the same contents to be re-sealed.
	Timestamp int64 `cbor:"5,keyasint"`
}

// CaptureState copies the live portion of r into a RegionState.
func CaptureState(r *arena.Region) RegionState {
	return RegionState{
		RegionID:  r.ID(),
		WordBytes: r.WordBytes(),
		HighWater: r.HighWater(),
		Words:     append([]byte(nil), r.Bytes()...),
		Timestamp: time.Now().UnixMilli(),
	}
}

// Restore builds a fresh region holding the captured contents. The state's
// geometry and identity take precedence; extra options (a capacity cap, a
// logger) may be supplied.
func Restore(state RegionState, opts ...arena.Option) (*arena.Region, error) {
	if uint64(len(state.Words)) != state.HighWater*uint64(state.WordBytes) {
		return nil, fmt.Errorf(
			"%w: %d bytes for %d words of %d",
			ErrStateCorrupt, len(state.Words), state.HighWater, state.WordBytes)
	}
	opts = append(opts,
		arena.WithWordBytes(state.WordBytes),
		arena.WithID(state.RegionID),
	)
	r, err := arena.New(opts...)
	if err != nil {
		return nil, err
	}
	if _, err = r.Extend(state.HighWater); err != nil {
		return nil, err
	}
	copy(r.Bytes(), state.Words)
	return r, nil
}
