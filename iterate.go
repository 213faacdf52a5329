package rowindex

import "iter"

// All returns an iterator over the (i, j) pairs of this RowIndex: i is
// the destination index in [0, Len()), j is the source row produced at
// that position. It dispatches once on variant and then runs a tight
// loop, the same shape as the C source's ITER_ALL macro.
func (r *RowIndex) All() iter.Seq2[int64, int64] {
	return func(yield func(int64, int64) bool) {
		if r == nil {
			return
		}
		switch r.variant {
		case Slice:
			j := r.start
			for i := int64(0); i < r.length; i, j = i+1, j+r.step {
				if !yield(i, j) {
					return
				}
			}
		case ArrayInt32:
			for i, x := range r.data32 {
				if !yield(int64(i), int64(x)) {
					return
				}
			}
		case ArrayInt64:
			for i, j := range r.data64 {
				if !yield(int64(i), j) {
					return
				}
			}
		}
	}
}

// ForEach is the early-exit form of All, in the func(*Row) bool style of
// the teacher's IndexMap.Traverse and IndexBtree.Traverse: visit returns
// false to stop iterating.
func (r *RowIndex) ForEach(visit func(i, j int64) bool) {
	for i, j := range r.All() {
		if !visit(i, j) {
			return
		}
	}
}
