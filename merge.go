package rowindex

import "math"

// Merge composes two RowIndexes: given A→B (ab, possibly nil) and B→C
// (bc, required), it produces A→C. If ab is nil the result is a clone
// of bc. Merge never mutates its inputs and returns a fresh RowIndex.
//
// Merge never validates that bc's values are valid indices into ab —
// that's a precondition on the caller, not something this function can
// check without an extra pass.
func Merge(ab, bc *RowIndex) *RowIndex {
	n := bc.Len()
	if n == 0 {
		return &RowIndex{variant: Slice, start: 0, step: 1}
	}

	switch bc.variant {
	case Slice:
		return mergeIntoSlice(ab, bc, n)
	default: // ArrayInt32, ArrayInt64
		return mergeIntoArray(ab, bc, n)
	}
}

func mergeIntoSlice(ab, bc *RowIndex, n int64) *RowIndex {
	startBC, stepBC := bc.start, bc.step

	if ab == nil {
		return &RowIndex{
			variant: Slice,
			length:  n,
			min:     bc.min,
			max:     bc.max,
			start:   startBC,
			step:    stepBC,
		}
	}

	if ab.variant == Slice {
		startAB, stepAB := ab.start, ab.step
		start := startAB + stepAB*startBC
		step := stepAB * stepBC
		res := &RowIndex{variant: Slice, length: n, start: start, step: step}
		end := start + step*(n-1)
		if step >= 0 {
			res.min, res.max = start, end
		} else {
			res.min, res.max = end, start
		}
		return res
	}

	if stepBC == 0 {
		// The same B row, start_bc, is looked up n times: the result is
		// the same A row repeated n times, regardless of ab's variant.
		var row int64
		if ab.variant == ArrayInt32 {
			row = int64(ab.data32[startBC])
		} else {
			row = ab.data64[startBC]
		}
		return &RowIndex{variant: Slice, length: n, start: row, step: 0, min: row, max: row}
	}

	if ab.variant == ArrayInt32 {
		src := ab.data32
		out := make([]int32, n)
		minV, maxV := int32(math.MaxInt32), int32(math.MinInt32)
		for i, ic := int64(0), startBC; i < n; i, ic = i+1, ic+stepBC {
			x := src[ic]
			out[i] = x
			if x < minV {
				minV = x
			}
			if x > maxV {
				maxV = x
			}
		}
		return &RowIndex{variant: ArrayInt32, length: n, data32: out, min: int64(minV), max: int64(maxV)}
	}

	// ab is ArrayInt64: a slice of B may land either in int32 or int64
	// range, so build as ARR64 first and attempt to compactify.
	src := ab.data64
	out := make([]int64, n)
	minV, maxV := int64(math.MaxInt64), int64(math.MinInt64)
	for i, ic := int64(0), startBC; i < n; i, ic = i+1, ic+stepBC {
		x := src[ic]
		out[i] = x
		if x < minV {
			minV = x
		}
		if x > maxV {
			maxV = x
		}
	}
	res := &RowIndex{variant: ArrayInt64, length: n, data64: out, min: minV, max: maxV}
	res.Compactify()
	return res
}

func mergeIntoArray(ab, bc *RowIndex, n int64) *RowIndex {
	if ab == nil {
		if bc.variant == ArrayInt32 {
			out := make([]int32, n)
			copy(out, bc.data32)
			return &RowIndex{variant: ArrayInt32, length: n, data32: out, min: bc.min, max: bc.max}
		}
		out := make([]int64, n)
		copy(out, bc.data64)
		return &RowIndex{variant: ArrayInt64, length: n, data64: out, min: bc.min, max: bc.max}
	}

	if ab.variant == Slice {
		startAB, stepAB := ab.start, ab.step
		out := make([]int64, n)
		minV, maxV := int64(math.MaxInt64), int64(math.MinInt64)
		if bc.variant == ArrayInt32 {
			for i, x := range bc.data32 {
				v := startAB + stepAB*int64(x)
				out[i] = v
				if v < minV {
					minV = v
				}
				if v > maxV {
					maxV = v
				}
			}
		} else {
			for i, x := range bc.data64 {
				v := startAB + stepAB*x
				out[i] = v
				if v < minV {
					minV = v
				}
				if v > maxV {
					maxV = v
				}
			}
		}
		res := &RowIndex{variant: ArrayInt64, length: n, data64: out, min: minV, max: maxV}
		res.Compactify()
		return res
	}

	if ab.variant == ArrayInt32 && bc.variant == ArrayInt32 {
		src, idx := ab.data32, bc.data32
		out := make([]int32, n)
		minV, maxV := int32(math.MaxInt32), int32(math.MinInt32)
		for i, k := range idx {
			x := src[k]
			out[i] = x
			if x < minV {
				minV = x
			}
			if x > maxV {
				maxV = x
			}
		}
		return &RowIndex{variant: ArrayInt32, length: n, data32: out, min: int64(minV), max: int64(maxV)}
	}

	// Remaining combinations: ARR64∘ARR32, ARR32∘ARR64, ARR64∘ARR64 —
	// gather into ARR64, then attempt to compactify.
	out := make([]int64, n)
	minV, maxV := int64(math.MaxInt64), int64(math.MinInt64)
	gather := func(k int64) int64 {
		if ab.variant == ArrayInt32 {
			return int64(ab.data32[k])
		}
		return ab.data64[k]
	}
	if bc.variant == ArrayInt32 {
		for i, k := range bc.data32 {
			x := gather(int64(k))
			out[i] = x
			if x < minV {
				minV = x
			}
			if x > maxV {
				maxV = x
			}
		}
	} else {
		for i, k := range bc.data64 {
			x := gather(k)
			out[i] = x
			if x < minV {
				minV = x
			}
			if x > maxV {
				maxV = x
			}
		}
	}
	res := &RowIndex{variant: ArrayInt64, length: n, data64: out, min: minV, max: maxV}
	res.Compactify()
	return res
}
