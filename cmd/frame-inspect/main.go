package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/go-frame/frame"
	"github.com/go-frame/frame/datasource/jsonl"
	"github.com/go-frame/frame/logging"
)

var tagsByLiteral = map[string]frame.DataType{
	"null":   &frame.NullType{},
	"bool":   &frame.BoolType{},
	"int8":   &frame.Int8Type{},
	"int16":  &frame.Int16Type{},
	"int32":  &frame.Int32Type{},
	"int64":  &frame.Int64Type{},
	"binary": &frame.BinaryType{},
	"string": &frame.StringType{},
	"object": &frame.ObjectType{},
}

// parseSchema parses a comma-separated list of name:type column
// declarations, e.g. "id:int64,label:string"
func parseSchema(schema string) ([]jsonl.ColumnSpec, error) {
	if schema == "" {
		return nil, fmt.Errorf("a schema is required")
	}
	var specs []jsonl.ColumnSpec
	for _, decl := range strings.Split(schema, ",") {
		parts := strings.Split(decl, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed column declaration %q, expected name:type", decl)
		}
		tag, ok := tagsByLiteral[parts[1]]
		if !ok {
			return nil, fmt.Errorf("unknown column type %q in declaration %q", parts[1], decl)
		}
		specs = append(specs, jsonl.ColumnSpec{Name: frame.StringName(parts[0]), Type: tag})
	}
	return specs, nil
}

func main() {
	schema := flag.String("schema", "", "comma-separated name:type column declarations, e.g. id:int64,label:string")
	level := flag.String("level", "info", "log level (debug, info, warn, error)")
	sample := flag.Int("sample", 5, "maximum number of cell values to print per column")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("Usage: frame-inspect -schema name:type[,name:type...] <jsonl_file>")
	}
	logLevel, err := logging.ParseLogLevel(*level)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	specs, err := parseSchema(*schema)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	path := flag.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Error opening %s: %v", path, err)
	}
	defer f.Close()

	source, err := jsonl.CreateSource(nil, specs...)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	df, err := source.Read(f)
	if err != nil {
		log.Fatalf("Error reading %s: %v", path, err)
	}

	numRows, known := df.NumRows()
	if known {
		fmt.Printf("%s: %d columns x %d rows\n", path, df.NumColumns(), numRows)
	} else {
		fmt.Printf("%s: %d columns x unknown rows\n", path, df.NumColumns())
	}
	for i, name := range df.ColumnNames() {
		col, err := df.GetColumn(i)
		if err != nil {
			log.Fatalf("Error reading column %d: %v", i, err)
		}
		fmt.Printf("  [%d] %s: %s\n", i, name, col.Type())
		if logLevel > logging.DebugLevel {
			continue
		}
		vals, err := col.ToValues()
		if err != nil {
			log.Printf("%s could not materialize column %s: %v", logging.LogLevelToString(logging.WarnLevel), name, err)
			continue
		}
		fmt.Printf("      %s\n", renderSample(vals, *sample))
	}
}

// renderSample renders at most max cells of a materialized column
func renderSample(vals any, max int) string {
	rv := reflect.ValueOf(vals)
	var cells []string
	for i := 0; i < rv.Len() && i < max; i++ {
		cells = append(cells, fmt.Sprintf("%v", rv.Index(i).Interface()))
	}
	if rv.Len() > max {
		cells = append(cells, fmt.Sprintf("... %d more", rv.Len()-max))
	}
	return "[" + strings.Join(cells, " ") + "]"
}
