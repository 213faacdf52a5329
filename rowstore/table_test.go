package rowstore

import (
	"testing"

	"github.com/fulldump/biff"
)

func Test_Table_InsertGetDelete(t *testing.T) {
	tbl := NewTable[string]()

	a := tbl.Insert("alpha")
	b := tbl.Insert("beta")

	v, ok := tbl.Get(a)
	biff.AssertTrue(ok)
	biff.AssertEqual(v, "alpha")

	tbl.Delete(a)
	_, ok = tbl.Get(a)
	biff.AssertFalse(ok)

	v, ok = tbl.Get(b)
	biff.AssertTrue(ok)
	biff.AssertEqual(v, "beta")
}

func Test_Table_RecyclesFreedPositions(t *testing.T) {
	tbl := NewTable[int]()
	a := tbl.Insert(1)
	tbl.Delete(a)
	b := tbl.Insert(2)
	biff.AssertEqual(b, a)
}

func Test_Table_BoolColumn(t *testing.T) {
	tbl := NewTable[int]()
	tbl.Insert(1)
	tbl.Insert(2)
	id := tbl.Insert(3)
	tbl.Insert(4)
	tbl.Delete(id)

	col := tbl.BoolColumn(func(v int) bool { return v%2 == 0 })
	biff.AssertEqual(col, []byte{0, 1, 0, 1})
}

func Test_Table_DeleteOutOfRangeIsNoop(t *testing.T) {
	tbl := NewTable[int]()
	tbl.Insert(1)
	tbl.Delete(100)
	biff.AssertEqual(tbl.Len(), int64(1))
}

func Test_Table_AliveColumn(t *testing.T) {
	tbl := NewTable[int]()
	tbl.Insert(1)
	id := tbl.Insert(2)
	tbl.Insert(3)
	tbl.Delete(id)

	biff.AssertEqual(tbl.AliveColumn(), []byte{1, 0, 1})

	reused := tbl.Insert(4)
	biff.AssertEqual(reused, id)
	biff.AssertEqual(tbl.AliveColumn(), []byte{1, 1, 1})
}
