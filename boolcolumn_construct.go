package rowindex

import "math"

// FromBooleanColumn constructs a RowIndex from a boolean column: the
// emitted destination rows are the positions where col's byte is exactly
// 1, in ascending order. nrows bounds the scan.
//
// Fails if col's Kind() isn't KindBoolean.
func FromBooleanColumn(col BooleanColumn, nrows int64) (*RowIndex, error) {
	if col.Kind() != KindBoolean {
		return nil, ErrInvalidArgument
	}
	data := col.Bytes()

	var nout, maxrow int64
	for i := int64(0); i < nrows; i++ {
		if data[i] == 1 {
			nout++
			maxrow = i
		}
	}

	if nout == 0 {
		return &RowIndex{variant: ArrayInt32}, nil
	}

	if nout <= math.MaxInt32 && maxrow <= math.MaxInt32 {
		out := make([]int32, 0, nout)
		for i := int64(0); i <= maxrow; i++ {
			if data[i] == 1 {
				out = append(out, int32(i))
			}
		}
		return &RowIndex{
			variant: ArrayInt32,
			length:  nout,
			min:     int64(out[0]),
			max:     maxrow,
			data32:  out,
		}, nil
	}

	out := make([]int64, 0, nout)
	for i := int64(0); i <= maxrow; i++ {
		if data[i] == 1 {
			out = append(out, i)
		}
	}
	return &RowIndex{
		variant: ArrayInt64,
		length:  nout,
		min:     out[0],
		max:     maxrow,
		data64:  out,
	}, nil
}

// FromBooleanColumnWithRowIndex constructs a RowIndex from a boolean
// column filtered through an existing RowIndex: it visits the source
// rows j in the order dictated by outer (via its All iterator) and, for
// each visited j where col's byte is 1, emits the position i within that
// iteration — not j itself. The result therefore maps onto positions of
// the outer view, not onto original source rows.
//
// Fails if col's Kind() isn't KindBoolean.
func FromBooleanColumnWithRowIndex(col BooleanColumn, outer *RowIndex) (*RowIndex, error) {
	if col.Kind() != KindBoolean {
		return nil, ErrInvalidArgument
	}
	data := col.Bytes()

	var nout, maxrow int64
	outer.ForEach(func(i, j int64) bool {
		if data[j] == 1 {
			nout++
			maxrow = i
		}
		return true
	})

	if nout == 0 {
		return &RowIndex{variant: ArrayInt32}, nil
	}

	if nout <= math.MaxInt32 && maxrow <= math.MaxInt32 {
		out := make([]int32, 0, nout)
		outer.ForEach(func(i, j int64) bool {
			if data[j] == 1 {
				out = append(out, int32(i))
			}
			return true
		})
		return &RowIndex{
			variant: ArrayInt32,
			length:  nout,
			min:     int64(out[0]),
			max:     maxrow,
			data32:  out,
		}, nil
	}

	out := make([]int64, 0, nout)
	outer.ForEach(func(i, j int64) bool {
		if data[j] == 1 {
			out = append(out, i)
		}
		return true
	})
	return &RowIndex{
		variant: ArrayInt64,
		length:  nout,
		min:     out[0],
		max:     maxrow,
		data64:  out,
	}, nil
}
