package frame

import "github.com/apache/arrow-go/v18/arrow"

// Column is one named sequence of cell values within a DataFrame. A Column
// does not carry its own row count or row order; those belong to the owning
// frame. Implementations which cannot provide the optional surface should
// embed ColumnBase, which supplies the contract's default behavior.
type Column interface {
	// Name returns the name of this Column. Names are not required to be
	// unique within the owning frame.
	Name() Name
	// Type returns the logical type of every cell value in this Column. The
	// result is stable for the lifetime of the Column.
	Type() DataType
	// Attrs returns implementation-defined metadata for this Column. Never
	// fails; the default is an empty mapping.
	Attrs() Attrs
	// ToValues materializes this Column's data as a native Go slice typed by
	// the column's logical type ([]bool, []int64, []string, ...). Fails with
	// an UnsupportedConversionError if this Column cannot produce one.
	ToValues() (any, error)
	// ToArrow materializes this Column's data as an Apache Arrow array.
	// Recommended to return a view if able but not required. Fails with an
	// UnsupportedConversionError if this Column cannot produce one.
	ToArrow() (arrow.Array, error)
}
