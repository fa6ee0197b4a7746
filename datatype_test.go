package frame

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlainTypeEquality(t *testing.T) {
	require.True(t, (&NullType{}).Equals(&NullType{}))
	require.True(t, (&BoolType{}).Equals(&BoolType{}))
	require.True(t, (&Int8Type{}).Equals(&Int8Type{}))
	require.True(t, (&Int16Type{}).Equals(&Int16Type{}))
	require.True(t, (&Int32Type{}).Equals(&Int32Type{}))
	require.True(t, (&Int64Type{}).Equals(&Int64Type{}))
	require.True(t, (&BinaryType{}).Equals(&BinaryType{}))
	require.True(t, (&StringType{}).Equals(&StringType{}))
	require.True(t, (&ObjectType{}).Equals(&ObjectType{}))
}

func TestPlainTypeInequality(t *testing.T) {
	variants := []DataType{
		&NullType{}, &BoolType{}, &Int8Type{}, &Int16Type{}, &Int32Type{},
		&Int64Type{}, &BinaryType{}, &StringType{}, &ObjectType{},
	}
	for i, a := range variants {
		for j, b := range variants {
			if i == j {
				require.True(t, a.Equals(b), "%s should equal %s", a, b)
			} else {
				require.False(t, a.Equals(b), "%s should not equal %s", a, b)
			}
		}
	}
}

func TestTypeEqualityIsNotIdentity(t *testing.T) {
	a, err := NewCategorical(&Int8Type{}, &StringType{}, true)
	require.Nil(t, err)
	b, err := NewCategorical(&Int8Type{}, &StringType{}, true)
	require.Nil(t, err)
	require.NotSame(t, a, b)
	require.True(t, a.Equals(b))
	require.True(t, b.Equals(a))
}

func TestTypeEqualityWithNil(t *testing.T) {
	require.False(t, (&Int32Type{}).Equals(nil))
	cat, err := NewCategorical(&Int8Type{}, &StringType{}, false)
	require.Nil(t, err)
	require.False(t, cat.Equals(nil))
}

func TestPlainTypeRendering(t *testing.T) {
	expected := map[string]DataType{
		"null":   &NullType{},
		"bool":   &BoolType{},
		"int8":   &Int8Type{},
		"int16":  &Int16Type{},
		"int32":  &Int32Type{},
		"int64":  &Int64Type{},
		"binary": &BinaryType{},
		"string": &StringType{},
		"object": &ObjectType{},
	}
	for text, dt := range expected {
		require.Equal(t, text, dt.String())
		// rendering is deterministic
		require.Equal(t, dt.String(), dt.String())
	}
}

func TestCategoricalEquality(t *testing.T) {
	a, err := NewCategorical(&Int8Type{}, &StringType{}, false)
	require.Nil(t, err)
	b, err := NewCategorical(&Int8Type{}, &StringType{}, false)
	require.Nil(t, err)
	require.True(t, a.Equals(b))
	require.True(t, b.Equals(a))

	differentIndex, err := NewCategorical(&Int16Type{}, &StringType{}, false)
	require.Nil(t, err)
	require.False(t, a.Equals(differentIndex))

	differentCategory, err := NewCategorical(&Int8Type{}, &BinaryType{}, false)
	require.Nil(t, err)
	require.False(t, a.Equals(differentCategory))

	differentOrder, err := NewCategorical(&Int8Type{}, &StringType{}, true)
	require.Nil(t, err)
	require.False(t, a.Equals(differentOrder))

	require.False(t, a.Equals(&StringType{}))
	require.False(t, (&StringType{}).Equals(a))
}

func TestCategoricalNestedEquality(t *testing.T) {
	inner1, err := NewCategorical(&Int8Type{}, &StringType{}, true)
	require.Nil(t, err)
	inner2, err := NewCategorical(&Int8Type{}, &StringType{}, true)
	require.Nil(t, err)
	outer1, err := NewCategorical(&Int32Type{}, inner1, false)
	require.Nil(t, err)
	outer2, err := NewCategorical(&Int32Type{}, inner2, false)
	require.Nil(t, err)
	require.True(t, outer1.Equals(outer2))

	inner3, err := NewCategorical(&Int8Type{}, &StringType{}, false)
	require.Nil(t, err)
	outer3, err := NewCategorical(&Int32Type{}, inner3, false)
	require.Nil(t, err)
	require.False(t, outer1.Equals(outer3))
}

func TestCategoricalRendering(t *testing.T) {
	cat, err := NewCategorical(&Int8Type{}, &StringType{}, false)
	require.Nil(t, err)
	require.Equal(t, "categorical(indices=int8, categories=string, ordered=false)", cat.String())

	nested, err := NewCategorical(&Int32Type{}, cat, true)
	require.Nil(t, err)
	require.Equal(t,
		"categorical(indices=int32, categories=categorical(indices=int8, categories=string, ordered=false), ordered=true)",
		nested.String())
}

func TestCategoricalRequiresIntegerIndex(t *testing.T) {
	_, err := NewCategorical(&StringType{}, &StringType{}, false)
	require.NotNil(t, err)
	_, err = NewCategorical(&BoolType{}, &StringType{}, false)
	require.NotNil(t, err)
	_, err = NewCategorical(nil, &StringType{}, false)
	require.NotNil(t, err)
}

func TestIntegerPredicates(t *testing.T) {
	ints := []DataType{&Int8Type{}, &Int16Type{}, &Int32Type{}, &Int64Type{}}
	for _, dt := range ints {
		require.True(t, IsInteger(dt))
		require.True(t, IsSignedInteger(dt))
		require.True(t, IsNumber(dt))
	}
	others := []DataType{&NullType{}, &BoolType{}, &BinaryType{}, &StringType{}, &ObjectType{}}
	for _, dt := range others {
		require.False(t, IsInteger(dt))
		require.False(t, IsNumber(dt))
	}
	cat, err := NewCategorical(&Int8Type{}, &StringType{}, false)
	require.Nil(t, err)
	require.False(t, IsInteger(cat))
	require.False(t, IsInteger(nil))
}

func TestFingerprintMatchesEquality(t *testing.T) {
	a, err := NewCategorical(&Int8Type{}, &StringType{}, false)
	require.Nil(t, err)
	b, err := NewCategorical(&Int8Type{}, &StringType{}, false)
	require.Nil(t, err)
	require.Equal(t, Fingerprint(a), Fingerprint(b))
	require.Equal(t, Fingerprint(&Int64Type{}), Fingerprint(&Int64Type{}))

	require.NotEqual(t, Fingerprint(&Int32Type{}), Fingerprint(&Int64Type{}))
	ordered, err := NewCategorical(&Int8Type{}, &StringType{}, true)
	require.Nil(t, err)
	require.NotEqual(t, Fingerprint(a), Fingerprint(ordered))
}

func TestFingerprintUsableAsMapKey(t *testing.T) {
	byTag := map[uint64]string{}
	byTag[Fingerprint(&Int64Type{})] = "a"
	byTag[Fingerprint(&StringType{})] = "b"
	require.Equal(t, "a", byTag[Fingerprint(&Int64Type{})])
	require.Equal(t, "b", byTag[Fingerprint(&StringType{})])
}
