package jsonl

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"math"

	"github.com/tidwall/gjson"

	"github.com/go-frame/frame"
	"github.com/go-frame/frame/memframe"
)

// ColumnSpec declares one column to extract from each line of JSON. Path is
// a gjson path into the line; when empty, the rendered Name is used as the
// path. Values within the JSON which do not correspond to a declared column
// are ignored.
type ColumnSpec struct {
	Name frame.Name
	Path string
	Type frame.DataType
}

// SourceConf configures a JSONL Source
type SourceConf struct {
	HeaderLines   int  // The number of lines to ignore from the beginning of the input. Defaults to 0.
	Comment       rune // Lines beginning with the comment character are ignored. Defaults to no comment character.
	MaxBufferSize int  // Maximum size in bytes of the buffer used to read lines from the input
}

// Source produces in-memory data frames from JSONL input
type Source struct {
	conf *SourceConf
	cols []ColumnSpec
}

// CreateSource returns a new JSONL Source for the given column
// declarations. Categorical columns are not supported, since JSON carries no
// dictionary encoding.
func CreateSource(conf *SourceConf, cols ...ColumnSpec) (*Source, error) {
	if conf == nil {
		conf = &SourceConf{}
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("at least one column must be declared")
	}
	for i := range cols {
		if cols[i].Name == nil {
			return nil, fmt.Errorf("column %d has no name", i)
		}
		if cols[i].Type == nil {
			return nil, fmt.Errorf("column %s has no type", cols[i].Name)
		}
		if cols[i].Type.Kind() == frame.CategoricalKind {
			return nil, fmt.Errorf("column %s: JSONL parsing does not support categorical columns", cols[i].Name)
		}
		if cols[i].Path == "" {
			cols[i].Path = cols[i].Name.String()
		}
	}
	return &Source{conf: conf, cols: cols}, nil
}

// Read scans JSONL data from r and materializes it as a data frame
func (s *Source) Read(r io.Reader) (frame.DataFrame, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), s.conf.MaxBufferSize)
	for i := 0; i < s.conf.HeaderLines; i++ {
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	acc := make([]*accumulator, len(s.cols))
	for i, col := range s.cols {
		acc[i] = &accumulator{spec: col}
	}
	line := s.conf.HeaderLines
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		if s.conf.Comment != 0 && rune(data[0]) == s.conf.Comment {
			continue
		}
		if !gjson.ValidBytes(data) {
			return nil, fmt.Errorf("line %d is not valid JSON", line)
		}
		parsed := gjson.ParseBytes(data)
		for _, a := range acc {
			if err := a.append(parsed.Get(a.spec.Path)); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	built := make([]memframe.Col, len(acc))
	for i, a := range acc {
		built[i] = memframe.Col{Name: a.spec.Name, Type: a.spec.Type, Values: a.finish()}
	}
	return memframe.CreateFrame(nil, built...)
}

// accumulator collects one column's cells across scanned lines
type accumulator struct {
	spec    ColumnSpec
	nulls   memframe.Nulls
	bools   []bool
	int8s   []int8
	int16s  []int16
	int32s  []int32
	int64s  []int64
	strings []string
	blobs   [][]byte
	objects []any
}

func (a *accumulator) append(val gjson.Result) error {
	name := a.spec.Name
	switch a.spec.Type.Kind() {
	case frame.NullKind:
		if val.Exists() && val.Type != gjson.Null {
			return fmt.Errorf("Column %s should be null. Was: %s", name, val.Raw)
		}
		a.nulls++
	case frame.BoolKind:
		if !val.IsBool() {
			return fmt.Errorf("Column %s was not a boolean. Was: %s", name, val.Raw)
		}
		a.bools = append(a.bools, val.Bool())
	case frame.Int8Kind:
		n, err := intCell(val, name, math.MinInt8, math.MaxInt8)
		if err != nil {
			return err
		}
		a.int8s = append(a.int8s, int8(n))
	case frame.Int16Kind:
		n, err := intCell(val, name, math.MinInt16, math.MaxInt16)
		if err != nil {
			return err
		}
		a.int16s = append(a.int16s, int16(n))
	case frame.Int32Kind:
		n, err := intCell(val, name, math.MinInt32, math.MaxInt32)
		if err != nil {
			return err
		}
		a.int32s = append(a.int32s, int32(n))
	case frame.Int64Kind:
		n, err := intCell(val, name, math.MinInt64, math.MaxInt64)
		if err != nil {
			return err
		}
		a.int64s = append(a.int64s, n)
	case frame.BinaryKind:
		if val.Type != gjson.String {
			return fmt.Errorf("Column %s was not a base64 string. Was: %s", name, val.Raw)
		}
		decoded, err := base64.StdEncoding.DecodeString(val.String())
		if err != nil {
			return fmt.Errorf("Column %s was not valid base64: %w", name, err)
		}
		a.blobs = append(a.blobs, decoded)
	case frame.StringKind:
		if val.Type != gjson.String {
			return fmt.Errorf("Column %s was not a string. Was: %s", name, val.Raw)
		}
		a.strings = append(a.strings, val.String())
	case frame.ObjectKind:
		if !val.Exists() {
			return fmt.Errorf("Column %s is missing", name)
		}
		a.objects = append(a.objects, val.Value())
	default:
		return fmt.Errorf("JSONL parsing does not support column type %s", a.spec.Type)
	}
	return nil
}

func intCell(val gjson.Result, name frame.Name, min, max int64) (int64, error) {
	if val.Type != gjson.Number {
		return 0, fmt.Errorf("Column %s was not a number. Was: %s", name, val.Raw)
	}
	n := val.Int()
	if n < min || n > max {
		return 0, fmt.Errorf("Column %s value %d overflows [%d, %d]", name, n, min, max)
	}
	return n, nil
}

func (a *accumulator) finish() any {
	switch a.spec.Type.Kind() {
	case frame.NullKind:
		return a.nulls
	case frame.BoolKind:
		if a.bools == nil {
			a.bools = []bool{}
		}
		return a.bools
	case frame.Int8Kind:
		if a.int8s == nil {
			a.int8s = []int8{}
		}
		return a.int8s
	case frame.Int16Kind:
		if a.int16s == nil {
			a.int16s = []int16{}
		}
		return a.int16s
	case frame.Int32Kind:
		if a.int32s == nil {
			a.int32s = []int32{}
		}
		return a.int32s
	case frame.Int64Kind:
		if a.int64s == nil {
			a.int64s = []int64{}
		}
		return a.int64s
	case frame.BinaryKind:
		if a.blobs == nil {
			a.blobs = [][]byte{}
		}
		return a.blobs
	case frame.StringKind:
		if a.strings == nil {
			a.strings = []string{}
		}
		return a.strings
	default:
		if a.objects == nil {
			a.objects = []any{}
		}
		return a.objects
	}
}
