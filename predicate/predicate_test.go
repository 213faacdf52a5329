package predicate

import (
	"testing"

	"github.com/fulldump/biff"

	"github.com/fulldump/rowindex"
)

func rows(payloads ...string) [][]byte {
	out := make([][]byte, len(payloads))
	for i, p := range payloads {
		out[i] = []byte(p)
	}
	return out
}

func Test_Build_MarksMatchingRows(t *testing.T) {
	data := rows(
		`{"status":"open"}`,
		`{"status":"closed"}`,
		`{"status":"open"}`,
	)

	col, err := Build(data, map[string]interface{}{"status": "open"})
	biff.AssertNil(err)
	biff.AssertEqual(col.Bytes(), []byte{1, 0, 1})

	ri, err := rowindex.FromBooleanColumn(col, int64(len(data)))
	biff.AssertNil(err)
	biff.AssertEqual(ri.Len(), int64(2))
}

func Test_BuildChunked_MatchesBuild(t *testing.T) {
	data := rows(
		`{"status":"open"}`,
		`{"status":"closed"}`,
		`{"status":"open"}`,
		`{"status":"open"}`,
	)
	filter := map[string]interface{}{"status": "open"}

	col, err := Build(data, filter)
	biff.AssertNil(err)

	fn := BuildChunked(data, filter)
	out := make([]int32, len(data))
	count := fn(0, int64(len(data)), out)

	selected := []byte{}
	for i, b := range col.Bytes() {
		if b == 1 {
			selected = append(selected, byte(i))
		}
	}
	biff.AssertEqual(int(count), len(selected))
	for i := 0; i < int(count); i++ {
		biff.AssertEqual(byte(out[i]), selected[i])
	}
}
