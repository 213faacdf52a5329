// Package rowindex implements a compact, composable representation of
// "which rows of a source table are visible, and in what order".
//
// A RowIndex maps destination row positions onto source row positions.
// It is stored as one of three variants depending on value range and
// length: an arithmetic slice, a 32-bit index array, or a 64-bit index
// array. Every derived column in a tabular data model is conceptually a
// pair (source data, RowIndex); readers iterate through the RowIndex
// rather than through raw row positions.
//
// The package has no knowledge of the tabular data model itself, of
// columnar storage, or of boolean column semantics beyond "a byte equal
// to 1 means selected". Those are the caller's concern.
package rowindex
