package rowindex

// ColumnKind tags the storage type of a Column collaborator. The core only
// ever accepts KindBoolean; everything else is the caller's problem, not
// ours (the real columnar type system lives outside this package).
type ColumnKind uint8

const (
	KindUnknown ColumnKind = iota
	KindBoolean
)

// BooleanColumn is the collaborator contract for the boolean-column
// constructors: a byte array of length nrows where 0 means false and 1
// means true, tagged with a Kind so constructors can reject anything
// that isn't boolean storage.
type BooleanColumn interface {
	Kind() ColumnKind
	Bytes() []byte
}

// BoolColumn is a minimal, slice-backed BooleanColumn implementation,
// useful on its own and by the predicate package. It does not validate
// its contents, and neither do the constructors that consume it: they
// select only bytes equal to 1, and any other byte value counts as not
// selected.
type BoolColumn struct {
	data []byte
}

// NewBoolColumn wraps data as a BooleanColumn. It takes ownership of data
// the same way the array constructors in this package do: the caller must
// not mutate it afterwards.
func NewBoolColumn(data []byte) *BoolColumn {
	return &BoolColumn{data: data}
}

func (c *BoolColumn) Kind() ColumnKind { return KindBoolean }
func (c *BoolColumn) Bytes() []byte    { return c.data }
