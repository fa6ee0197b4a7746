package frame

import "fmt"

// Kind enumerates the closed set of logical type variants. Every DataType
// reports exactly one Kind, and equality and rendering are exhaustive over
// this set.
type Kind uint8

const (
	// NullKind is the Kind of a column whose values are all absent
	NullKind Kind = iota
	// BoolKind is the Kind of a boolean column
	BoolKind
	// Int8Kind is the Kind of an 8-bit signed integer column
	Int8Kind
	// Int16Kind is the Kind of a 16-bit signed integer column
	Int16Kind
	// Int32Kind is the Kind of a 32-bit signed integer column
	Int32Kind
	// Int64Kind is the Kind of a 64-bit signed integer column
	Int64Kind
	// BinaryKind is the Kind of a variable-length bytes column
	BinaryKind
	// StringKind is the Kind of a UTF-8 text column
	StringKind
	// ObjectKind is the Kind of a column holding arbitrary
	// implementation-defined values
	ObjectKind
	// CategoricalKind is the Kind of a column whose values are integer
	// indices into a table of category values
	CategoricalKind
)

// DataType is a metadata object describing the logical value type of every
// cell in a data-frame column. A DataType does not imply any particular
// underlying data representation. DataTypes are immutable value objects:
// two independently constructed tags of the same variant (and, for
// CategoricalType, the same parameters) are equal.
type DataType interface {
	Kind() Kind                 // Kind returns the variant of this DataType
	String() string             // String returns a human-readable representation of this DataType
	Equals(other DataType) bool // Equals returns true iff other carries the same metadata as this DataType
}

// NullType is the type of a column whose values are always null
type NullType struct{}

// Kind returns the variant of a NullType
func (t *NullType) Kind() Kind { return NullKind }

// String returns a human-readable representation of a NullType
func (t *NullType) String() string { return "null" }

// Equals returns true iff other is also a NullType
func (t *NullType) Equals(other DataType) bool { return other != nil && other.Kind() == NullKind }

// BoolType is the type of a column of boolean values
type BoolType struct{}

// Kind returns the variant of a BoolType
func (t *BoolType) Kind() Kind { return BoolKind }

// String returns a human-readable representation of a BoolType
func (t *BoolType) String() string { return "bool" }

// Equals returns true iff other is also a BoolType
func (t *BoolType) Equals(other DataType) bool { return other != nil && other.Kind() == BoolKind }

// Int8Type is the type of a column of 8-bit signed integer values
type Int8Type struct{}

// Kind returns the variant of an Int8Type
func (t *Int8Type) Kind() Kind { return Int8Kind }

// String returns a human-readable representation of an Int8Type
func (t *Int8Type) String() string { return "int8" }

// Equals returns true iff other is also an Int8Type
func (t *Int8Type) Equals(other DataType) bool { return other != nil && other.Kind() == Int8Kind }

// Int16Type is the type of a column of 16-bit signed integer values
type Int16Type struct{}

// Kind returns the variant of an Int16Type
func (t *Int16Type) Kind() Kind { return Int16Kind }

// String returns a human-readable representation of an Int16Type
func (t *Int16Type) String() string { return "int16" }

// Equals returns true iff other is also an Int16Type
func (t *Int16Type) Equals(other DataType) bool { return other != nil && other.Kind() == Int16Kind }

// Int32Type is the type of a column of 32-bit signed integer values
type Int32Type struct{}

// Kind returns the variant of an Int32Type
func (t *Int32Type) Kind() Kind { return Int32Kind }

// String returns a human-readable representation of an Int32Type
func (t *Int32Type) String() string { return "int32" }

// Equals returns true iff other is also an Int32Type
func (t *Int32Type) Equals(other DataType) bool { return other != nil && other.Kind() == Int32Kind }

// Int64Type is the type of a column of 64-bit signed integer values
type Int64Type struct{}

// Kind returns the variant of an Int64Type
func (t *Int64Type) Kind() Kind { return Int64Kind }

// String returns a human-readable representation of an Int64Type
func (t *Int64Type) String() string { return "int64" }

// Equals returns true iff other is also an Int64Type
func (t *Int64Type) Equals(other DataType) bool { return other != nil && other.Kind() == Int64Kind }

// BinaryType is the type of a column of variable-length byte sequences
type BinaryType struct{}

// Kind returns the variant of a BinaryType
func (t *BinaryType) Kind() Kind { return BinaryKind }

// String returns a human-readable representation of a BinaryType
func (t *BinaryType) String() string { return "binary" }

// Equals returns true iff other is also a BinaryType
func (t *BinaryType) Equals(other DataType) bool { return other != nil && other.Kind() == BinaryKind }

// StringType is the type of a column of UTF-8 encoded text values
type StringType struct{}

// Kind returns the variant of a StringType
func (t *StringType) Kind() Kind { return StringKind }

// String returns a human-readable representation of a StringType
func (t *StringType) String() string { return "string" }

// Equals returns true iff other is also a StringType
func (t *StringType) Equals(other DataType) bool { return other != nil && other.Kind() == StringKind }

// ObjectType is the type of a column holding arbitrary implementation-defined
// values with no further structural meaning
type ObjectType struct{}

// Kind returns the variant of an ObjectType
func (t *ObjectType) Kind() Kind { return ObjectKind }

// String returns a human-readable representation of an ObjectType
func (t *ObjectType) String() string { return "object" }

// Equals returns true iff other is also an ObjectType
func (t *ObjectType) Equals(other DataType) bool { return other != nil && other.Kind() == ObjectKind }

// CategoricalType is the type of a column whose values are integer indices
// referencing a table of category values of an arbitrary type. IndexType must
// be an integer variant. CategoryType may be any DataType, including a nested
// CategoricalType. Ordered indicates whether category order is semantically
// meaningful, e.g. for comparison.
type CategoricalType struct {
	IndexType    DataType
	CategoryType DataType
	Ordered      bool
}

// NewCategorical constructs a CategoricalType, validating that indexType is
// an integer variant
func NewCategorical(indexType DataType, categoryType DataType, ordered bool) (*CategoricalType, error) {
	if !IsInteger(indexType) {
		return nil, fmt.Errorf("categorical index type must be an integer type, not %s", indexType)
	}
	return &CategoricalType{IndexType: indexType, CategoryType: categoryType, Ordered: ordered}, nil
}

// Kind returns the variant of a CategoricalType
func (t *CategoricalType) Kind() Kind { return CategoricalKind }

// String returns a human-readable representation of a CategoricalType,
// rendering the index and category types recursively
func (t *CategoricalType) String() string {
	return fmt.Sprintf("categorical(indices=%s, categories=%s, ordered=%v)", t.IndexType, t.CategoryType, t.Ordered)
}

// Equals returns true iff other is a CategoricalType whose index type,
// category type and ordered flag all match, comparing nested category types
// recursively
func (t *CategoricalType) Equals(other DataType) bool {
	o, ok := other.(*CategoricalType)
	return ok &&
		t.IndexType.Equals(o.IndexType) &&
		t.CategoryType.Equals(o.CategoryType) &&
		t.Ordered == o.Ordered
}

// IsInteger returns true iff dt is any fixed-width integer variant
func IsInteger(dt DataType) bool {
	if dt == nil {
		return false
	}
	switch dt.Kind() {
	case Int8Kind, Int16Kind, Int32Kind, Int64Kind:
		return true
	default:
		return false
	}
}

// IsSignedInteger returns true iff dt is a signed fixed-width integer
// variant. All integer variants are currently signed.
func IsSignedInteger(dt DataType) bool {
	return IsInteger(dt)
}

// IsNumber returns true iff dt is any numeric variant
func IsNumber(dt DataType) bool {
	return IsInteger(dt)
}
