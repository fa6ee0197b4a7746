package memframe

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/stretchr/testify/require"

	"github.com/go-frame/frame"
	errors "github.com/go-frame/frame/errors"
)

func toArrow(t *testing.T, typ frame.DataType, values any, categories any) arrow.Array {
	df, err := CreateFrame(nil,
		Col{Name: frame.StringName("col"), Type: typ, Values: values, Categories: categories},
	)
	require.Nil(t, err)
	col, err := df.GetColumn(0)
	require.Nil(t, err)
	arr, err := col.ToArrow()
	require.Nil(t, err)
	return arr
}

func TestToArrowIntegers(t *testing.T) {
	arr := toArrow(t, &frame.Int64Type{}, []int64{1, 2, 3}, nil)
	defer arr.Release()
	require.Equal(t, arrow.INT64, arr.DataType().ID())
	ints := arr.(*array.Int64)
	require.Equal(t, 3, ints.Len())
	require.Equal(t, []int64{1, 2, 3}, ints.Int64Values())

	small := toArrow(t, &frame.Int8Type{}, []int8{-1, 1}, nil)
	defer small.Release()
	require.Equal(t, arrow.INT8, small.DataType().ID())
	require.Equal(t, int8(-1), small.(*array.Int8).Value(0))
}

func TestToArrowBool(t *testing.T) {
	arr := toArrow(t, &frame.BoolType{}, []bool{true, false}, nil)
	defer arr.Release()
	bools := arr.(*array.Boolean)
	require.Equal(t, 2, bools.Len())
	require.True(t, bools.Value(0))
	require.False(t, bools.Value(1))
}

func TestToArrowString(t *testing.T) {
	arr := toArrow(t, &frame.StringType{}, []string{"a", "b"}, nil)
	defer arr.Release()
	strs := arr.(*array.String)
	require.Equal(t, "a", strs.Value(0))
	require.Equal(t, "b", strs.Value(1))
}

func TestToArrowBinary(t *testing.T) {
	arr := toArrow(t, &frame.BinaryType{}, [][]byte{{0x01}, {0x02, 0x03}}, nil)
	defer arr.Release()
	bins := arr.(*array.Binary)
	require.Equal(t, []byte{0x01}, bins.Value(0))
	require.Equal(t, []byte{0x02, 0x03}, bins.Value(1))
}

func TestToArrowNull(t *testing.T) {
	arr := toArrow(t, &frame.NullType{}, Nulls(3), nil)
	defer arr.Release()
	require.Equal(t, arrow.NULL, arr.DataType().ID())
	require.Equal(t, 3, arr.Len())
	require.Equal(t, 3, arr.NullN())
}

func TestToArrowCategorical(t *testing.T) {
	tag, err := frame.NewCategorical(&frame.Int32Type{}, &frame.StringType{}, true)
	require.Nil(t, err)
	arr := toArrow(t, tag, []int32{0, 1, 0}, []string{"low", "high"})
	defer arr.Release()

	dict := arr.(*array.Dictionary)
	require.Equal(t, 3, dict.Len())
	require.Equal(t, 0, dict.GetValueIndex(0))
	require.Equal(t, 1, dict.GetValueIndex(1))
	require.Equal(t, 0, dict.GetValueIndex(2))
	require.Equal(t, "low", dict.Dictionary().(*array.String).Value(0))
	require.Equal(t, "high", dict.Dictionary().(*array.String).Value(1))
	require.True(t, dict.DataType().(*arrow.DictionaryType).Ordered)
}

func TestToArrowObjectUnsupported(t *testing.T) {
	df, err := CreateFrame(nil,
		Col{Name: frame.StringName("anything"), Type: &frame.ObjectType{}, Values: []any{struct{}{}}},
	)
	require.Nil(t, err)
	col, err := df.GetColumn(0)
	require.Nil(t, err)

	arr, err := col.ToArrow()
	require.Nil(t, arr)
	var convErr errors.UnsupportedConversionError
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, "Arrow", convErr.Format)
}
