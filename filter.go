package rowindex

import (
	"math"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// chunkRows is the fixed chunk size threads scan per unit of work,
// matching rows_per_chunk in the C source.
const chunkRows = 65536

// FilterFunc is the chunk-filter collaborator contract: given a half-open
// range [row0, row1), it must write the selected row numbers in that
// range, in ascending order, into out (which has capacity row1-row0) and
// return how many it wrote. The filter is assumed infallible for the
// chunk it accepts — this package never recovers from a panic inside it.
type FilterFunc func(row0, row1 int64, out []int32) (count int32)

// FromFilterFunc32 builds a RowIndex from a chunk-filter callback by
// partitioning [0, nrows) into fixed-size chunks and scanning them
// concurrently. Chunks may finish filtering in any order, but their
// results are stitched into the output in strictly ascending row order:
// only the tiny offset-claim step is serialized (see sequencer.go); the
// filter call and the copy-back run fully concurrently across chunks.
//
// Fails when nrows exceeds the 32-bit signed range.
func FromFilterFunc32(filter FilterFunc, nrows int64) (*RowIndex, error) {
	if nrows < 0 || nrows > math.MaxInt32 {
		return nil, ErrInvalidArgument
	}
	if nrows == 0 {
		return &RowIndex{variant: ArrayInt32}, nil
	}

	numChunks := (nrows + chunkRows - 1) / chunkRows
	out := make([]int32, nrows)

	workers := int64(runtime.GOMAXPROCS(0))
	if workers > numChunks {
		workers = numChunks
	}

	var cursor atomic.Int64
	seq := &sequencer{}

	g := new(errgroup.Group)
	g.SetLimit(int(workers))

	for w := int64(0); w < workers; w++ {
		g.Go(func() error {
			scratch := make([]int32, chunkRows)
			for {
				chunk := cursor.Add(1) - 1
				if chunk >= numChunks {
					return nil
				}

				row0 := chunk * chunkRows
				row1 := row0 + chunkRows
				if row1 > nrows {
					row1 = nrows
				}

				count := filter(row0, row1, scratch[:row1-row0])

				offset := seq.claim(chunk, int64(count))
				copy(out[offset:offset+int64(count)], scratch[:count])
			}
		})
	}
	_ = g.Wait()

	outLen := seq.total()
	out = out[:outLen]

	res := &RowIndex{variant: ArrayInt32, length: outLen, data32: out}
	if outLen > 0 {
		res.min = int64(out[0])
		res.max = int64(out[outLen-1])
	}
	return res, nil
}

// FromFilterFunc64 would mirror FromFilterFunc32 with int64 slots and no
// nrows cap. The original C source declares it but never implements it;
// this is the same open question, answered the same way: documented
// unsupported rather than silently missing.
func FromFilterFunc64(filter func(row0, row1 int64, out []int64) int64, nrows int64) (*RowIndex, error) {
	return nil, ErrUnsupported
}
