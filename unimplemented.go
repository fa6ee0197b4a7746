package frame

import (
	"github.com/apache/arrow-go/v18/arrow"

	errors "github.com/go-frame/frame/errors"
)

// ColumnBase supplies the default behavior for a Column's optional surface:
// empty attributes and failing conversions. Producers embed it and override
// what their columns can actually provide, so that newly added optional
// operations never break existing implementations.
type ColumnBase struct{}

// Attrs returns an empty metadata mapping
func (ColumnBase) Attrs() Attrs { return Attrs{} }

// ToValues fails with an UnsupportedConversionError
func (ColumnBase) ToValues() (any, error) {
	return nil, errors.UnsupportedConversionError{Format: "native values"}
}

// ToArrow fails with an UnsupportedConversionError
func (ColumnBase) ToArrow() (arrow.Array, error) {
	return nil, errors.UnsupportedConversionError{Format: "Arrow"}
}

// FrameBase supplies the default behavior for a DataFrame's optional
// operations, failing each with a NotImplementedError. Producers embed it
// and override the operations they support. The failures are loud so that a
// missing capability is never mistaken for an empty result.
type FrameBase struct{}

// RowNames fails with a NotImplementedError; this frame has no row names
func (FrameBase) RowNames() ([]Name, error) {
	return nil, errors.NotImplementedError{Op: "RowNames"}
}

// SelectColumns fails with a NotImplementedError
func (FrameBase) SelectColumns(indices []int) (DataFrame, error) {
	return nil, errors.NotImplementedError{Op: "SelectColumns"}
}

// SelectColumnsByName fails with a NotImplementedError
func (FrameBase) SelectColumnsByName(names []Name) (DataFrame, error) {
	return nil, errors.NotImplementedError{Op: "SelectColumnsByName"}
}

// ToDict fails with a NotImplementedError
func (FrameBase) ToDict() (map[string]any, error) {
	return nil, errors.NotImplementedError{Op: "ToDict"}
}
