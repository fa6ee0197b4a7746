package memframe

import (
	"fmt"

	"github.com/go-frame/frame"
)

// newVector validates raw column values against a type tag and copies them
// into immutable storage, so later mutation of the caller's slices never
// changes what a frame holder observes.
func newVector(typ frame.DataType, values any, categories any) (vector, error) {
	switch typ.Kind() {
	case frame.NullKind:
		n, ok := values.(Nulls)
		if !ok {
			return nil, fmt.Errorf("null column values must be a Nulls count, got %T", values)
		}
		if n < 0 {
			return nil, fmt.Errorf("null column has negative length %d", n)
		}
		return nullVector(n), nil
	case frame.BoolKind:
		v, ok := values.([]bool)
		if !ok {
			return nil, fmt.Errorf("bool column values must be []bool, got %T", values)
		}
		return boolVector(append([]bool(nil), v...)), nil
	case frame.Int8Kind:
		v, ok := values.([]int8)
		if !ok {
			return nil, fmt.Errorf("int8 column values must be []int8, got %T", values)
		}
		return int8Vector(append([]int8(nil), v...)), nil
	case frame.Int16Kind:
		v, ok := values.([]int16)
		if !ok {
			return nil, fmt.Errorf("int16 column values must be []int16, got %T", values)
		}
		return int16Vector(append([]int16(nil), v...)), nil
	case frame.Int32Kind:
		v, ok := values.([]int32)
		if !ok {
			return nil, fmt.Errorf("int32 column values must be []int32, got %T", values)
		}
		return int32Vector(append([]int32(nil), v...)), nil
	case frame.Int64Kind:
		v, ok := values.([]int64)
		if !ok {
			return nil, fmt.Errorf("int64 column values must be []int64, got %T", values)
		}
		return int64Vector(append([]int64(nil), v...)), nil
	case frame.BinaryKind:
		v, ok := values.([][]byte)
		if !ok {
			return nil, fmt.Errorf("binary column values must be [][]byte, got %T", values)
		}
		copied := make(binaryVector, len(v))
		for i, cell := range v {
			copied[i] = append([]byte(nil), cell...)
		}
		return copied, nil
	case frame.StringKind:
		v, ok := values.([]string)
		if !ok {
			return nil, fmt.Errorf("string column values must be []string, got %T", values)
		}
		return stringVector(append([]string(nil), v...)), nil
	case frame.ObjectKind:
		v, ok := values.([]any)
		if !ok {
			return nil, fmt.Errorf("object column values must be []any, got %T", values)
		}
		return objectVector(append([]any(nil), v...)), nil
	case frame.CategoricalKind:
		cat, ok := typ.(*frame.CategoricalType)
		if !ok {
			return nil, fmt.Errorf("categorical tag has unexpected representation %T", typ)
		}
		return newCategoricalVector(cat, values, categories)
	default:
		return nil, fmt.Errorf("unsupported data type %s", typ)
	}
}

func newCategoricalVector(cat *frame.CategoricalType, values any, categories any) (vector, error) {
	if !frame.IsInteger(cat.IndexType) {
		return nil, fmt.Errorf("categorical index type must be an integer type, not %s", cat.IndexType)
	}
	if cat.CategoryType.Kind() == frame.CategoricalKind {
		return nil, fmt.Errorf("nested categorical category tables are not supported by this producer")
	}
	indices, err := newVector(cat.IndexType, values, nil)
	if err != nil {
		return nil, fmt.Errorf("categorical indices: %w", err)
	}
	table, err := newVector(cat.CategoryType, categories, nil)
	if err != nil {
		return nil, fmt.Errorf("categorical categories: %w", err)
	}
	for _, i := range indexPositions(indices) {
		if i < 0 || i >= table.length() {
			return nil, fmt.Errorf("categorical index %d is out of range [0, %d)", i, table.length())
		}
	}
	return &categoricalVector{typ: cat, indices: indices, categories: table}, nil
}
