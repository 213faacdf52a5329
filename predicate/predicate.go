// Package predicate builds rowindex boolean columns and filter callbacks
// from connor filter expressions, evaluated row-by-row against decoded
// JSON documents, to feed the core rowindex constructors.
package predicate

import (
	"fmt"

	"github.com/SierraSoftworks/connor"
	jsonv2 "github.com/go-json-experiment/json"

	"github.com/fulldump/rowindex"
)

// Build decodes each row and evaluates filter against it with
// connor.Match, producing a BooleanColumn rowindex.FromBooleanColumn (and
// friends) can consume directly. Rows are encoding/json.RawMessage-shaped
// ([]byte); an empty row is evaluated as an empty document.
func Build(rows [][]byte, filter map[string]interface{}) (*rowindex.BoolColumn, error) {
	data := make([]byte, len(rows))
	for i, row := range rows {
		decoded := map[string]interface{}{}
		if len(row) > 0 {
			if err := jsonv2.Unmarshal(row, &decoded); err != nil {
				return nil, fmt.Errorf("decode row %d: %w", i, err)
			}
		}

		match, err := connor.Match(filter, decoded)
		if err != nil {
			return nil, fmt.Errorf("match row %d: %w", i, err)
		}
		if match {
			data[i] = 1
		}
	}
	return rowindex.NewBoolColumn(data), nil
}

// BuildChunked adapts a connor filter into a rowindex.FilterFunc
// directly, so the parallel builder can evaluate it without
// materializing an intermediate byte column. rows must be safe to read
// concurrently from multiple chunk windows (they only ever are).
func BuildChunked(rows [][]byte, filter map[string]interface{}) rowindex.FilterFunc {
	return func(row0, row1 int64, out []int32) int32 {
		var count int32
		for i := row0; i < row1; i++ {
			decoded := map[string]interface{}{}
			row := rows[i]
			if len(row) > 0 {
				if err := jsonv2.Unmarshal(row, &decoded); err != nil {
					continue
				}
			}
			match, err := connor.Match(filter, decoded)
			if err != nil || !match {
				continue
			}
			out[count] = int32(i)
			count++
		}
		return count
	}
}
