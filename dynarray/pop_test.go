package dynarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPop(t *testing.T) {
	type args struct {
		values []uint64
		tail   []uint64
	}
	tests := []struct {
		name        string
		args        args
		wantRemoved uint64
		want        []uint64
		wantTail    []uint64
	}{
		{
			"no tail",
			args{[]uint64{1, 99, 2, 3, 4}, nil},
			4,
			[]uint64{1, 99, 2, 3},
			nil,
		},
		{
			"tail moves one slot down",
			args{[]uint64{0, 1, 2, 3}, []uint64{100}},
			3,
			[]uint64{0, 1, 2},
			[]uint64{100},
		},
		{
			"multi word tail keeps its order",
			args{[]uint64{5, 6}, []uint64{100, 200, 300}},
			6,
			[]uint64{5},
			[]uint64{100, 200, 300},
		},
		{
			"pop to empty",
			args{[]uint64{11}, []uint64{100}},
			11,
			nil,
			[]uint64{100},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, h := newTestRegion(t, tt.args.values, tt.args.tail)
			oldHW := r.HighWater()

			removed, err := Pop(r, h)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRemoved, wordValue(removed))

			// the free memory cursor is the caller's responsibility, pop
			// must not move it
			assert.Equal(t, oldHW, r.HighWater())
			requireElements(t, r, h, tt.want)
			requireWords(t, r, h.Base+1+uint64(len(tt.want)), tt.wantTail)
		})
	}
}

func TestPopEmptyArray(t *testing.T) {
	r, h := newTestRegion(t, nil, []uint64{100, 200})
	before := snapshot(r)

	_, err := Pop(r, h)
	assert.ErrorIs(t, err, ErrEmptyArray)
	assert.Equal(t, before, r.Bytes())
}
