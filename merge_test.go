package rowindex

import (
	"testing"

	"github.com/fulldump/biff"
)

func Test_Merge_NilAB_ClonesB(t *testing.T) {
	bc, _ := FromSlice(10, 5, 2)
	ac := Merge(nil, bc)
	biff.AssertEqual(ac.Variant(), Slice)
	biff.AssertEqual(collect(ac), collect(bc))
}

func Test_Merge_SliceSlice_IsSlice(t *testing.T) {
	ab, _ := FromSlice(1, 10, 1)
	bc, _ := FromSlice(0, 3, 2)
	ac := Merge(ab, bc)
	biff.AssertEqual(ac.Variant(), Slice)
	biff.AssertEqual(collect(ac), []int64{1, 3, 5})
}

func Test_Merge_Arr32ThroughSlice(t *testing.T) {
	ab, _ := FromInt32Array([]int32{5, 3, 9, 1})
	bc, _ := FromSlice(0, 3, 1)
	ac := Merge(ab, bc)
	biff.AssertEqual(ac.Variant(), ArrayInt32)
	biff.AssertEqual(collect(ac), []int64{5, 3, 9})
	biff.AssertEqual(ac.Min(), int64(3))
	biff.AssertEqual(ac.Max(), int64(9))
}

func Test_Merge_SliceThroughArr32_CompactifiesToArr32(t *testing.T) {
	ab, _ := FromSlice(100, 40, 10)
	bc, _ := FromInt32Array([]int32{0, 2, 3})
	ac := Merge(ab, bc)
	biff.AssertEqual(ac.Variant(), ArrayInt32)
	biff.AssertEqual(collect(ac), []int64{100, 120, 130})
	biff.AssertEqual(ac.Min(), int64(100))
	biff.AssertEqual(ac.Max(), int64(130))
}

func Test_Merge_ZeroStepCollapsesToSliceEvenWithArrayAB(t *testing.T) {
	ab, _ := FromInt32Array([]int32{7, 8, 9})
	bc, _ := FromSlice(1, 5, 0)
	ac := Merge(ab, bc)
	biff.AssertEqual(ac.Variant(), Slice)
	biff.AssertEqual(collect(ac), []int64{8, 8, 8, 8, 8})
}

func Test_Merge_EmptyBC(t *testing.T) {
	ab, _ := FromSlice(0, 10, 1)
	bc, _ := FromSlice(0, 0, 1)
	ac := Merge(ab, bc)
	biff.AssertEqual(ac.Len(), int64(0))
	biff.AssertEqual(ac.Variant(), Slice)
}

func Test_Merge_LengthEqualsBC(t *testing.T) {
	ab, _ := FromSlice(0, 100, 1)
	bc, _ := FromInt32Array([]int32{1, 2, 3, 4, 5})
	ac := Merge(ab, bc)
	biff.AssertEqual(ac.Len(), bc.Len())
}

func Test_Merge_Semantics_EveryElementIsAIndexedByB(t *testing.T) {
	ab, _ := FromInt64Array([]int64{10, 20, 30, 40, 50})
	bc, _ := FromInt32Array([]int32{4, 0, 2})
	ac := Merge(ab, bc)

	abVals := collect(ab)
	bcVals := collect(bc)
	acVals := collect(ac)

	for i := range bcVals {
		biff.AssertEqual(acVals[i], abVals[bcVals[i]])
	}
}

func Test_Merge_Arr32Arr32_StaysArr32(t *testing.T) {
	ab, _ := FromInt32Array([]int32{10, 20, 30, 40})
	bc, _ := FromInt32Array([]int32{3, 0, 1})
	ac := Merge(ab, bc)
	biff.AssertEqual(ac.Variant(), ArrayInt32)
	biff.AssertEqual(collect(ac), []int64{40, 10, 20})
	biff.AssertEqual(ac.Min(), int64(10))
	biff.AssertEqual(ac.Max(), int64(40))
}

func Test_Merge_Arr64Arr64_Compactifies(t *testing.T) {
	ab, _ := FromInt64Array([]int64{1, 2, 3, 4})
	bc, _ := FromInt64Array([]int64{3, 1, 0})
	ac := Merge(ab, bc)
	biff.AssertEqual(ac.Variant(), ArrayInt32)
	biff.AssertEqual(collect(ac), []int64{4, 2, 1})
}
