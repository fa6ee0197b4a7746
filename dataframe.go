package frame

// Framer is the capability of being adopted as a DataFrame. DataFrame embeds
// it, so every frame trivially adopts to itself; other objects may implement
// it to offer a frame view of their data.
type Framer interface {
	// AsFrame returns this object's data as a DataFrame. For an object which
	// already is a DataFrame this returns the same logical frame, making the
	// contract a fixed point under repeated adoption.
	AsFrame() DataFrame
}

// A DataFrame is an ordered collection of named Columns, all logically
// sharing the same row count. Columns may be accessed by position, or by
// name when the name is unique. Selection operations are factories: they
// produce new, independent frames and never mutate the receiver.
//
// RowNames, SelectColumns, SelectColumnsByName and ToDict are optional;
// implementations without them should embed FrameBase, which fails each with
// a NotImplementedError.
type DataFrame interface {
	Framer
	// NumColumns returns the number of columns in this DataFrame
	NumColumns() int
	// NumRows returns the number of rows in this DataFrame, if known. A lazy
	// or streaming frame may not know its row count ahead of
	// materialization, in which case known is false; callers must branch on
	// known rather than treat n as zero.
	NumRows() (n int64, known bool)
	// ColumnNames returns the column names as a materialized ordered
	// sequence, with length equal to NumColumns. Duplicates are permitted.
	ColumnNames() []Name
	// GetColumn returns the column at the indicated position. Positions
	// outside [0, NumColumns) fail with an IndexOutOfRangeError.
	GetColumn(i int) (Column, error)
	// GetColumnByName returns the column with the indicated name, failing
	// with a NameNotFoundError if no column matches. If column names are not
	// unique, an implementation may fail with an AmbiguousNameError, or may
	// consistently return one of the matching columns; detection of
	// ambiguity is a capability, not a requirement.
	GetColumnByName(name Name) (Column, error)
	// RowNames returns the row names, if any, as a materialized ordered
	// sequence. Frames with no row-name concept fail with a
	// NotImplementedError.
	RowNames() ([]Name, error)
	// SelectColumns returns a new DataFrame containing exactly the columns
	// at the indicated positions, in the given order. Repeats and reordering
	// are permitted; positions outside [0, NumColumns) fail with an
	// IndexOutOfRangeError.
	SelectColumns(indices []int) (DataFrame, error)
	// SelectColumnsByName returns a new DataFrame containing exactly the
	// columns with the indicated names, in the given order, under the same
	// ambiguity policy as GetColumnByName.
	SelectColumnsByName(names []Name) (DataFrame, error)
	// ToDict materializes the frame as a mapping from rendered column name
	// to the corresponding column's ToValues result. Fails transitively with
	// an UnsupportedConversionError if any column cannot convert.
	ToDict() (map[string]any, error)
}
