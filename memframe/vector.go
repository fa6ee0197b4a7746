package memframe

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/go-frame/frame"
	errors "github.com/go-frame/frame/errors"
)

// vector is immutable typed storage for one column's cells. Vectors are
// shared freely between frames produced by selection, since nothing here
// mutates them.
type vector interface {
	length() int
	values() any                                     // native slice copy of the cells
	take(indices []int) vector                       // gather cells by position; indices must be in range
	arrow(mem memory.Allocator) (arrow.Array, error) // materialize as an Arrow array
}

// Nulls is the cell count of a column whose type is null; such a column
// stores no data beyond its length.
type Nulls int

type nullVector int

func (v nullVector) length() int { return int(v) }

func (v nullVector) values() any { return make([]any, int(v)) }

func (v nullVector) take(indices []int) vector { return nullVector(len(indices)) }

func (v nullVector) arrow(mem memory.Allocator) (arrow.Array, error) {
	return array.NewNull(int(v)), nil
}

type boolVector []bool

func (v boolVector) length() int { return len(v) }

func (v boolVector) values() any { return append([]bool(nil), v...) }

func (v boolVector) take(indices []int) vector {
	out := make(boolVector, len(indices))
	for i, idx := range indices {
		out[i] = v[idx]
	}
	return out
}

func (v boolVector) arrow(mem memory.Allocator) (arrow.Array, error) {
	b := array.NewBooleanBuilder(mem)
	defer b.Release()
	b.AppendValues(v, nil)
	return b.NewArray(), nil
}

type int8Vector []int8

func (v int8Vector) length() int { return len(v) }

func (v int8Vector) values() any { return append([]int8(nil), v...) }

func (v int8Vector) take(indices []int) vector {
	out := make(int8Vector, len(indices))
	for i, idx := range indices {
		out[i] = v[idx]
	}
	return out
}

func (v int8Vector) arrow(mem memory.Allocator) (arrow.Array, error) {
	b := array.NewInt8Builder(mem)
	defer b.Release()
	b.AppendValues(v, nil)
	return b.NewArray(), nil
}

type int16Vector []int16

func (v int16Vector) length() int { return len(v) }

func (v int16Vector) values() any { return append([]int16(nil), v...) }

func (v int16Vector) take(indices []int) vector {
	out := make(int16Vector, len(indices))
	for i, idx := range indices {
		out[i] = v[idx]
	}
	return out
}

func (v int16Vector) arrow(mem memory.Allocator) (arrow.Array, error) {
	b := array.NewInt16Builder(mem)
	defer b.Release()
	b.AppendValues(v, nil)
	return b.NewArray(), nil
}

type int32Vector []int32

func (v int32Vector) length() int { return len(v) }

func (v int32Vector) values() any { return append([]int32(nil), v...) }

func (v int32Vector) take(indices []int) vector {
	out := make(int32Vector, len(indices))
	for i, idx := range indices {
		out[i] = v[idx]
	}
	return out
}

func (v int32Vector) arrow(mem memory.Allocator) (arrow.Array, error) {
	b := array.NewInt32Builder(mem)
	defer b.Release()
	b.AppendValues(v, nil)
	return b.NewArray(), nil
}

type int64Vector []int64

func (v int64Vector) length() int { return len(v) }

func (v int64Vector) values() any { return append([]int64(nil), v...) }

func (v int64Vector) take(indices []int) vector {
	out := make(int64Vector, len(indices))
	for i, idx := range indices {
		out[i] = v[idx]
	}
	return out
}

func (v int64Vector) arrow(mem memory.Allocator) (arrow.Array, error) {
	b := array.NewInt64Builder(mem)
	defer b.Release()
	b.AppendValues(v, nil)
	return b.NewArray(), nil
}

type stringVector []string

func (v stringVector) length() int { return len(v) }

func (v stringVector) values() any { return append([]string(nil), v...) }

func (v stringVector) take(indices []int) vector {
	out := make(stringVector, len(indices))
	for i, idx := range indices {
		out[i] = v[idx]
	}
	return out
}

func (v stringVector) arrow(mem memory.Allocator) (arrow.Array, error) {
	b := array.NewStringBuilder(mem)
	defer b.Release()
	b.AppendValues(v, nil)
	return b.NewArray(), nil
}

type binaryVector [][]byte

func (v binaryVector) length() int { return len(v) }

func (v binaryVector) values() any {
	out := make([][]byte, len(v))
	for i, cell := range v {
		out[i] = append([]byte(nil), cell...)
	}
	return out
}

func (v binaryVector) take(indices []int) vector {
	out := make(binaryVector, len(indices))
	for i, idx := range indices {
		out[i] = v[idx]
	}
	return out
}

func (v binaryVector) arrow(mem memory.Allocator) (arrow.Array, error) {
	b := array.NewBinaryBuilder(mem, arrow.BinaryTypes.Binary)
	defer b.Release()
	b.AppendValues(v, nil)
	return b.NewArray(), nil
}

type objectVector []any

func (v objectVector) length() int { return len(v) }

func (v objectVector) values() any { return append([]any(nil), v...) }

func (v objectVector) take(indices []int) vector {
	out := make(objectVector, len(indices))
	for i, idx := range indices {
		out[i] = v[idx]
	}
	return out
}

func (v objectVector) arrow(mem memory.Allocator) (arrow.Array, error) {
	return nil, errors.UnsupportedConversionError{Format: "Arrow", Reason: "object columns have no Arrow representation"}
}

// categoricalVector stores integer indices into a shared table of category
// values. The decoded view is produced lazily by gathering categories.
type categoricalVector struct {
	typ        *frame.CategoricalType
	indices    vector
	categories vector
}

func (v *categoricalVector) length() int { return v.indices.length() }

func (v *categoricalVector) values() any {
	return v.categories.take(indexPositions(v.indices)).values()
}

func (v *categoricalVector) take(indices []int) vector {
	return &categoricalVector{
		typ:        v.typ,
		indices:    v.indices.take(indices),
		categories: v.categories,
	}
}

func (v *categoricalVector) arrow(mem memory.Allocator) (arrow.Array, error) {
	idx, err := v.indices.arrow(mem)
	if err != nil {
		return nil, err
	}
	defer idx.Release()
	dict, err := v.categories.arrow(mem)
	if err != nil {
		return nil, err
	}
	defer dict.Release()
	dt := &arrow.DictionaryType{
		IndexType: idx.DataType(),
		ValueType: dict.DataType(),
		Ordered:   v.typ.Ordered,
	}
	return array.NewDictionaryArray(dt, idx, dict), nil
}

// indexPositions widens an integer index vector to plain ints for gathering
func indexPositions(v vector) []int {
	switch idx := v.(type) {
	case int8Vector:
		out := make([]int, len(idx))
		for i, n := range idx {
			out[i] = int(n)
		}
		return out
	case int16Vector:
		out := make([]int, len(idx))
		for i, n := range idx {
			out[i] = int(n)
		}
		return out
	case int32Vector:
		out := make([]int, len(idx))
		for i, n := range idx {
			out[i] = int(n)
		}
		return out
	case int64Vector:
		out := make([]int, len(idx))
		for i, n := range idx {
			out[i] = int(n)
		}
		return out
	default:
		panic(fmt.Errorf("categorical indices stored in non-integer vector %T", v))
	}
}
