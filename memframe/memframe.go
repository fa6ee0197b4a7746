// Package memframe provides a complete in-memory implementation of the frame
// contract, constructed from native Go slices. It implements every optional
// operation, including column selection and the Arrow conversion boundary,
// and detects ambiguous column names strictly.
package memframe

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/hashicorp/go-multierror"

	"github.com/go-frame/frame"
	errors "github.com/go-frame/frame/errors"
)

// Col declares one column of an in-memory frame. Values must be the native
// slice matching Type ([]bool, []int8, ..., []string, [][]byte, []any), or a
// Nulls count for a null column. For a categorical column, Values holds the
// indices (typed by the tag's IndexType) and Categories holds the category
// table (typed by the tag's CategoryType).
type Col struct {
	Name       frame.Name
	Type       frame.DataType
	Values     any
	Categories any
	Attrs      frame.Attrs
}

// Conf configures frame construction. NumRows may only be set for a frame
// with no columns; otherwise the row count is inferred from column data.
type Conf struct {
	NumRows  int64
	RowNames []frame.Name
}

type column struct {
	name  frame.Name
	typ   frame.DataType
	attrs frame.Attrs
	data  vector
}

// Name returns the name of this column
func (c *column) Name() frame.Name { return c.name }

// Type returns the logical type of this column's cells
func (c *column) Type() frame.DataType { return c.typ }

// Attrs returns this column's metadata, or an empty mapping
func (c *column) Attrs() frame.Attrs {
	if c.attrs == nil {
		return frame.Attrs{}
	}
	return c.attrs
}

// ToValues materializes this column as a native Go slice
func (c *column) ToValues() (any, error) {
	return c.data.values(), nil
}

// ToArrow materializes this column as an Arrow array. Object columns have no
// Arrow representation and fail with an UnsupportedConversionError.
func (c *column) ToArrow() (arrow.Array, error) {
	return c.data.arrow(memory.DefaultAllocator)
}

type memFrame struct {
	cols     []*column
	numRows  int64
	rowNames []frame.Name
}

// CreateFrame is a factory for in-memory DataFrames. Column values are
// validated against their declared types, and all columns must have the same
// length, which becomes the frame's row count.
func CreateFrame(conf *Conf, cols ...Col) (frame.DataFrame, error) {
	if conf == nil {
		conf = &Conf{}
	}
	if len(cols) == 0 {
		if conf.NumRows < 0 {
			return nil, fmt.Errorf("row count must be non-negative, got %d", conf.NumRows)
		}
		if len(conf.RowNames) > 0 && int64(len(conf.RowNames)) != conf.NumRows {
			return nil, fmt.Errorf("frame has %d rows but %d row names", conf.NumRows, len(conf.RowNames))
		}
		return &memFrame{numRows: conf.NumRows, rowNames: conf.RowNames}, nil
	}
	if conf.NumRows != 0 {
		return nil, fmt.Errorf("row count is inferred from column data and may only be set for a frame with no columns")
	}
	built := make([]*column, len(cols))
	numRows := -1
	var errs *multierror.Error
	for i, col := range cols {
		if col.Name == nil {
			errs = multierror.Append(errs, fmt.Errorf("column %d has no name", i))
			continue
		}
		if col.Type == nil {
			errs = multierror.Append(errs, fmt.Errorf("column %s has no type", col.Name))
			continue
		}
		data, err := newVector(col.Type, col.Values, col.Categories)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("column %s: %w", col.Name, err))
			continue
		}
		if numRows < 0 {
			numRows = data.length()
		} else if data.length() != numRows {
			errs = multierror.Append(errs, fmt.Errorf("column %s has %d rows, expected %d", col.Name, data.length(), numRows))
			continue
		}
		built[i] = &column{name: col.Name, typ: col.Type, attrs: col.Attrs, data: data}
	}
	if len(conf.RowNames) > 0 && len(conf.RowNames) != numRows {
		errs = multierror.Append(errs, fmt.Errorf("frame has %d rows but %d row names", numRows, len(conf.RowNames)))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &memFrame{cols: built, numRows: int64(numRows), rowNames: conf.RowNames}, nil
}

// AsFrame returns this frame; the contract is a fixed point under adoption
func (f *memFrame) AsFrame() frame.DataFrame { return f }

// NumColumns returns the number of columns in this frame
func (f *memFrame) NumColumns() int { return len(f.cols) }

// NumRows returns the number of rows in this frame; always known for
// in-memory data
func (f *memFrame) NumRows() (int64, bool) { return f.numRows, true }

// ColumnNames returns the column names in positional order
func (f *memFrame) ColumnNames() []frame.Name {
	names := make([]frame.Name, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.name
	}
	return names
}

// GetColumn returns the column at the indicated position
func (f *memFrame) GetColumn(i int) (frame.Column, error) {
	if i < 0 || i >= len(f.cols) {
		return nil, errors.IndexOutOfRangeError{Index: i, NumColumns: len(f.cols)}
	}
	return f.cols[i], nil
}

// GetColumnByName returns the column with the indicated name. This
// implementation detects duplicate names and fails with an
// AmbiguousNameError rather than picking one.
func (f *memFrame) GetColumnByName(name frame.Name) (frame.Column, error) {
	i, err := f.lookup(name)
	if err != nil {
		return nil, err
	}
	return f.cols[i], nil
}

func (f *memFrame) lookup(name frame.Name) (int, error) {
	found := -1
	count := 0
	for i, c := range f.cols {
		if c.name.Equals(name) {
			if found < 0 {
				found = i
			}
			count++
		}
	}
	switch {
	case count == 0:
		return -1, errors.NameNotFoundError{Name: name.String()}
	case count > 1:
		return -1, errors.AmbiguousNameError{Name: name.String(), Count: count}
	default:
		return found, nil
	}
}

// RowNames returns the row names, failing with a NotImplementedError when
// the frame was constructed without them
func (f *memFrame) RowNames() ([]frame.Name, error) {
	if f.rowNames == nil {
		return nil, errors.NotImplementedError{Op: "RowNames"}
	}
	return append([]frame.Name(nil), f.rowNames...), nil
}

// SelectColumns returns a new frame containing exactly the columns at the
// indicated positions, in the given order. Column storage is shared
// structurally; since nothing here is mutable, the result is independent of
// the source.
func (f *memFrame) SelectColumns(indices []int) (frame.DataFrame, error) {
	selected := make([]*column, len(indices))
	for out, i := range indices {
		if i < 0 || i >= len(f.cols) {
			return nil, errors.IndexOutOfRangeError{Index: i, NumColumns: len(f.cols)}
		}
		selected[out] = f.cols[i]
	}
	return &memFrame{cols: selected, numRows: f.numRows, rowNames: f.rowNames}, nil
}

// SelectColumnsByName returns a new frame containing exactly the columns
// with the indicated names, under the same strict ambiguity policy as
// GetColumnByName
func (f *memFrame) SelectColumnsByName(names []frame.Name) (frame.DataFrame, error) {
	indices := make([]int, len(names))
	for out, name := range names {
		i, err := f.lookup(name)
		if err != nil {
			return nil, err
		}
		indices[out] = i
	}
	return f.SelectColumns(indices)
}

// ToDict materializes the frame as a mapping from rendered column name to
// native values. Conversion failures across columns are aggregated; two
// columns rendering to the same key fail with an AmbiguousNameError, since a
// dict result cannot represent both.
func (f *memFrame) ToDict() (map[string]any, error) {
	out := make(map[string]any, len(f.cols))
	var errs *multierror.Error
	for _, c := range f.cols {
		key := c.name.String()
		if _, exists := out[key]; exists {
			return nil, errors.AmbiguousNameError{Name: key, Count: 2}
		}
		vals, err := c.ToValues()
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("column %s: %w", key, err))
			continue
		}
		out[key] = vals
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}
