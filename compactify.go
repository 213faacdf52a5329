package rowindex

import (
	"math"
	"unsafe"
)

// Compactify narrows an ARR64 RowIndex to ARR32 in place, when max and
// length both fit in int32, re-using the same backing storage that
// rowindex_compactify in the C source aliases in place. It reports
// whether r is ARR32 on return.
//
// Calling Compactify on an ARR32 RowIndex is a no-op that reports true
// (idempotence: applying it twice equals applying it once). Calling it
// on a SLICE is a no-op that reports false.
func (r *RowIndex) Compactify() bool {
	if r == nil {
		return false
	}
	switch r.variant {
	case ArrayInt32:
		return true
	case Slice:
		return false
	}
	if r.max > math.MaxInt32 || r.length > math.MaxInt32 {
		return false
	}

	n := int(r.length)
	if n == 0 {
		r.variant = ArrayInt32
		r.data32 = nil
		r.data64 = nil
		return true
	}

	src := r.data64
	// Reinterpret the int64 backing array as int32 slots and write
	// front-to-back: 32-bit slots are smaller than 64-bit slots, so the
	// write cursor always lags the read cursor and never clobbers a value
	// not yet read. Same trick as vecgo/persistence/binary.go's reuse of
	// a typed slice's backing array via unsafe.Slice.
	dst := unsafe.Slice((*int32)(unsafe.Pointer(&src[0])), n) //nolint:gosec // in-place narrowing of a freshly produced, exclusively owned buffer
	for i := 0; i < n; i++ {
		dst[i] = int32(src[i])
	}

	r.variant = ArrayInt32
	r.data32 = dst
	r.data64 = nil
	return true
}
