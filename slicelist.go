package rowindex

import "math"

// FromSliceList constructs a RowIndex by concatenating, in input order,
// the rows produced by a list of (start, count, step) triples. Each
// triple is validated the same way FromSlice validates a single one;
// empty triples (count == 0) are skipped. The result is ARR32 if both
// the total length and the observed maximum fit in int32, else ARR64.
//
// starts, counts and steps must have equal length; any invalid triple
// fails the whole construction.
func FromSliceList(starts, counts, steps []int64) (*RowIndex, error) {
	n := len(starts)
	if len(counts) != n || len(steps) != n {
		return nil, ErrInvalidArgument
	}

	var total int64
	minIdx, maxIdx := int64(math.MaxInt64), int64(0)
	seenAny := false
	for i := 0; i < n; i++ {
		start, count, step := starts[i], counts[i], steps[i]
		if count == 0 {
			continue
		}
		if count < 0 || start < 0 {
			return nil, ErrInvalidArgument
		}
		if total > math.MaxInt64-count {
			return nil, ErrInvalidArgument
		}
		if count > 1 {
			if step < 0 && step < -(start/(count-1)) {
				return nil, ErrInvalidArgument
			}
			if step > 0 && step > (math.MaxInt64-start)/(count-1) {
				return nil, ErrInvalidArgument
			}
		}
		end := start + step*(count-1)

		seenAny = true
		if start < minIdx {
			minIdx = start
		}
		if start > maxIdx {
			maxIdx = start
		}
		if end < minIdx {
			minIdx = end
		}
		if end > maxIdx {
			maxIdx = end
		}
		total += count
	}
	if !seenAny {
		minIdx = 0
		maxIdx = 0
	} else if minIdx > maxIdx {
		panic("rowindex: min exceeds max after accumulation")
	}

	res := &RowIndex{
		length: total,
		min:    minIdx,
		max:    maxIdx,
	}

	if total <= math.MaxInt32 && maxIdx <= math.MaxInt32 {
		rows := make([]int32, total)
		k := 0
		for i := 0; i < n; i++ {
			start, count, step := starts[i], counts[i], steps[i]
			for c, j := int64(0), start; c < count; c, j = c+1, j+step {
				rows[k] = int32(j)
				k++
			}
		}
		res.variant = ArrayInt32
		res.data32 = rows
	} else {
		rows := make([]int64, total)
		k := 0
		for i := 0; i < n; i++ {
			start, count, step := starts[i], counts[i], steps[i]
			for c, j := int64(0), start; c < count; c, j = c+1, j+step {
				rows[k] = j
				k++
			}
		}
		res.variant = ArrayInt64
		res.data64 = rows
	}

	return res, nil
}
