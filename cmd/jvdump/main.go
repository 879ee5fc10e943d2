// Copyright (C) 2024 M. Peake. All Rights Reserved.

// Program jvdump parses a JSON document and prints its structure with
// each value annotated by its kind.
//
// Usage:
//
//	jvdump [options] [file]
//
// With no file argument, input is read from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mpeake/jval"
	"github.com/mpeake/jval/query"
)

var (
	human    = flag.Bool("human", false, "Standardize comments and trailing commas before parsing")
	pathExpr = flag.String("path", "", "Print only the value at this dotted path")
)

func main() {
	flag.Parse()

	input, err := readInput()
	if err != nil {
		log.Fatalf("Reading input: %v", err)
	}

	var v jval.Value
	if *human {
		v, err = jval.ParseHuman(input)
	} else {
		var n int
		v, n, err = jval.Parse(input)
		if err == nil && n < len(input) {
			log.Printf("Warning: %d bytes of trailing input ignored", len(input)-n)
		}
	}
	if err != nil {
		log.Fatalf("Parse: %v", err)
	}

	if *pathExpr != "" {
		v, err = query.Eval(v, query.Path(pathKeys(*pathExpr)...))
		if err != nil {
			log.Fatalf("Path %q: %v", *pathExpr, err)
		}
	}
	dump(os.Stdout, v, 0)
}

func readInput() (string, error) {
	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(flag.Arg(0))
	return string(data), err
}

// pathKeys splits a dotted path expression into query keys, treating
// numeric components as list indices.
func pathKeys(expr string) []any {
	var keys []any
	for _, part := range strings.Split(expr, ".") {
		if n, err := strconv.Atoi(part); err == nil {
			keys = append(keys, n)
		} else {
			keys = append(keys, part)
		}
	}
	return keys
}

// dump prints v with two-space indentation per nesting level, handling
// every kind explicitly.
func dump(w io.Writer, v jval.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v.Kind() {
	case jval.Null:
		fmt.Fprintf(w, "%snull\n", indent)
	case jval.Bool:
		fmt.Fprintf(w, "%sbool %v\n", indent, v.MustBool())
	case jval.Int:
		fmt.Fprintf(w, "%sint %d\n", indent, v.MustInt())
	case jval.Double:
		fmt.Fprintf(w, "%sdouble %g\n", indent, v.MustDouble())
	case jval.Text:
		fmt.Fprintf(w, "%stext %q\n", indent, v.MustText())
	case jval.List:
		fmt.Fprintf(w, "%slist (%d elements)\n", indent, v.Len())
		for _, elt := range v.MustList() {
			dump(w, elt, depth+1)
		}
	case jval.Dict:
		fmt.Fprintf(w, "%sdict (%d members)\n", indent, v.Len())
		for key, elt := range v.MustDict() {
			fmt.Fprintf(w, "%s  key %q:\n", indent, key)
			dump(w, elt, depth+2)
		}
	}
}
