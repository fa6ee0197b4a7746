package frame

import (
	"strconv"
	"strings"
)

// Name identifies a column or row within a DataFrame. The source protocol
// permits any hashable value as a name; this contract deliberately narrows
// that to a closed set of variants (text, integer, composite tuple), which
// covers the names producers emit in practice. Names are not required to be
// unique within a frame.
type Name interface {
	String() string         // String returns a human-readable rendering of this Name
	Equals(other Name) bool // Equals returns true iff other denotes the same name
}

// StringName is a textual column or row name, the common case
type StringName string

// String returns a human-readable rendering of a StringName
func (n StringName) String() string { return string(n) }

// Equals returns true iff other is a StringName with the same text
func (n StringName) Equals(other Name) bool {
	o, ok := other.(StringName)
	return ok && n == o
}

// IntName is an integer column or row name, as produced by positional
// labeling schemes
type IntName int64

// String returns a human-readable rendering of an IntName
func (n IntName) String() string { return strconv.FormatInt(int64(n), 10) }

// Equals returns true iff other is an IntName with the same value
func (n IntName) Equals(other Name) bool {
	o, ok := other.(IntName)
	return ok && n == o
}

// TupleName is a composite column or row name, as produced by hierarchical
// labeling schemes
type TupleName []Name

// String returns a human-readable rendering of a TupleName
func (n TupleName) String() string {
	parts := make([]string, len(n))
	for i, p := range n {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Equals returns true iff other is a TupleName of the same length whose
// elements are pairwise equal
func (n TupleName) Equals(other Name) bool {
	o, ok := other.(TupleName)
	if !ok || len(n) != len(o) {
		return false
	}
	for i := range n {
		if !n[i].Equals(o[i]) {
			return false
		}
	}
	return true
}
