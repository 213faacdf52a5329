package rowindex

import "math"

// FromInt32Array constructs an ARR32 RowIndex from an owned []int32
// buffer. The caller must not reuse or mutate array afterwards. min and
// max are computed by a single scan; there is no width-narrowing to
// perform since the array is already 32-bit.
func FromInt32Array(array []int32) (*RowIndex, error) {
	n := int64(len(array))
	if n > math.MaxInt32 {
		return nil, ErrInvalidArgument
	}
	r := &RowIndex{
		variant: ArrayInt32,
		length:  n,
		data32:  array,
	}
	if n == 0 {
		return r, nil
	}
	minV, maxV := array[0], array[0]
	for _, x := range array[1:] {
		if x < minV {
			minV = x
		}
		if x > maxV {
			maxV = x
		}
	}
	r.min, r.max = int64(minV), int64(maxV)
	return r, nil
}

// FromInt64Array constructs an ARR64 RowIndex from an owned []int64
// buffer. The caller must not reuse or mutate array afterwards. Unlike
// FromInt32Array, this never narrows down to ARR32 even when every value
// would fit — that decision is the caller's to make (via Compactify), so
// as to preserve the intent behind an explicitly 64-bit buffer.
func FromInt64Array(array []int64) (*RowIndex, error) {
	n := int64(len(array))
	r := &RowIndex{
		variant: ArrayInt64,
		length:  n,
		data64:  array,
	}
	if n == 0 {
		return r, nil
	}
	minV, maxV := array[0], array[0]
	for _, x := range array[1:] {
		if x < minV {
			minV = x
		}
		if x > maxV {
			maxV = x
		}
	}
	r.min, r.max = minV, maxV
	return r, nil
}
