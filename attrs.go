package frame

import (
	"fmt"
	"strconv"
)

// AttrValue is a single piece of implementation-defined column metadata. The
// source protocol permits arbitrary dynamic values; this contract narrows
// attribute payloads to a closed set of scalar variants.
type AttrValue interface {
	String() string // String returns a human-readable rendering of this value
}

// StringAttr is a textual attribute value
type StringAttr string

// String returns a human-readable rendering of a StringAttr
func (v StringAttr) String() string { return string(v) }

// IntAttr is an integer attribute value
type IntAttr int64

// String returns a human-readable rendering of an IntAttr
func (v IntAttr) String() string { return strconv.FormatInt(int64(v), 10) }

// FloatAttr is a floating-point attribute value
type FloatAttr float64

// String returns a human-readable rendering of a FloatAttr
func (v FloatAttr) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

// BoolAttr is a boolean attribute value
type BoolAttr bool

// String returns a human-readable rendering of a BoolAttr
func (v BoolAttr) String() string { return strconv.FormatBool(bool(v)) }

// BytesAttr is a raw binary attribute value
type BytesAttr []byte

// String returns a human-readable rendering of a BytesAttr
func (v BytesAttr) String() string { return fmt.Sprintf("%x", []byte(v)) }

// Attrs is implementation-defined metadata attached to a Column, keyed by
// attribute name. A nil Attrs is treated as empty.
type Attrs map[string]AttrValue
