package rowindex

import "math"

// FromSlice constructs a RowIndex of variant Slice from (start, count,
// step). count, not end, is the primitive: it makes step == 0 well
// defined (the same row repeated count times) and removes sign-of-step
// special cases.
//
// Fails when start < 0, count < 0, or (count > 1 and the endpoint
// start + step*(count-1) would be negative or overflow int64).
func FromSlice(start, count, step int64) (*RowIndex, error) {
	if start < 0 || count < 0 {
		return nil, ErrInvalidArgument
	}
	if count > 1 {
		// Mirrors rowindex.c's overflow checks: reject step values that
		// would push the endpoint below 0 or past math.MaxInt64.
		if step < 0 && step < -(start/(count-1)) {
			return nil, ErrInvalidArgument
		}
		if step > 0 && step > (math.MaxInt64-start)/(count-1) {
			return nil, ErrInvalidArgument
		}
	}

	r := &RowIndex{
		variant: Slice,
		length:  count,
		start:   start,
		step:    step,
	}
	if count == 0 {
		return r, nil
	}
	end := start + step*(count-1)
	if step >= 0 {
		r.min, r.max = start, end
	} else {
		r.min, r.max = end, start
	}
	return r, nil
}
