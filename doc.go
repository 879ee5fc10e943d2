// Copyright (C) 2024 M. Peake. All Rights Reserved.

// Package jval converts JSON text into an in-memory tree of tagged values
// and back, for embedding JSON handling directly in application code.
//
// # Parsing
//
// The Parse function reads one value from the front of its input and
// reports the value together with the number of bytes it consumed:
//
//	v, n, err := jval.Parse(`{"math": true, "english": "good\n"}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Trailing content after the first complete value is not an error; the
// consumed length tells the caller where the value ended. In case of
// error, the returned error has concrete type [*ParseError] and carries
// the byte offset of the failure. A failure at any nesting depth fails
// the entire parse; no partial structure is returned.
//
// The grammar is the permissive dialect described on Parse: the "," and
// ":" separators are optional, the escape codes are the C control set
// with unrecognized codes passing through unchanged, and there is no
// "null" literal or \uXXXX escape form.
//
// # Values
//
// A Value holds exactly one of seven kinds: Null, Bool, Int, Double,
// Text, List, or Dict. Its Kind method reports which, and the typed
// accessors extract the payload:
//
//	if v.Kind() == jval.Dict {
//	   m, _ := v.Dict()
//	   for key, elt := range m {
//	      ...
//	   }
//	}
//
// An accessor invoked under the wrong tag reports a [*KindError]; the
// Must variants panic with the same error. A parsed tree is immutable by
// convention: it is built once, bottom-up, and thereafter only read.
//
// The JSON method renders a tree back to text in the same dialect, so
// that parsing the output reconstructs an equal tree.
package jval
