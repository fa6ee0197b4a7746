package errors

import (
	"fmt"
)

// IndexOutOfRangeError occurs when a column position falls outside the valid
// range [0, NumColumns)
type IndexOutOfRangeError struct {
	Index      int
	NumColumns int
}

// Error returns a textual representation of this IndexOutOfRangeError
func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("Column index %d is out of range [0, %d)", e.Index, e.NumColumns)
}

// NameNotFoundError occurs when no column matches a requested name
type NameNotFoundError struct{ Name string }

// Error returns a textual representation of this NameNotFoundError
func (e NameNotFoundError) Error() string {
	return fmt.Sprintf("No column with name %s", e.Name)
}

// AmbiguousNameError occurs when more than one column matches a requested
// name and the implementation detects duplicates
type AmbiguousNameError struct {
	Name  string
	Count int
}

// Error returns a textual representation of this AmbiguousNameError
func (e AmbiguousNameError) Error() string {
	return fmt.Sprintf("%d columns share the name %s", e.Count, e.Name)
}

// NotImplementedError occurs when an optional operation has no backing
// implementation for this object
type NotImplementedError struct{ Op string }

// Error returns a textual representation of this NotImplementedError
func (e NotImplementedError) Error() string {
	return fmt.Sprintf("%s is not implemented", e.Op)
}

// UnsupportedConversionError occurs when a column or frame cannot
// materialize into a requested external format
type UnsupportedConversionError struct {
	Format string
	Reason string
}

// Error returns a textual representation of this UnsupportedConversionError
func (e UnsupportedConversionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("Conversion to %s not available", e.Format)
	}
	return fmt.Sprintf("Conversion to %s not available: %s", e.Format, e.Reason)
}
