// Copyright (C) 2024 M. Peake. All Rights Reserved.

package jval_test

import (
	"encoding/json"
	"os"
	"testing"

	goccy "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
	"github.com/mpeake/jval"
	"github.com/tidwall/gjson"
)

// BenchmarkParse compares the engine against other tree-building JSON
// parsers on the same document.
func BenchmarkParse(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))
	text := string(input)

	b.Run("Parse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v, n, err := jval.Parse(text)
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			if n != len(text) || v.Kind() != jval.Dict {
				b.Fatalf("Bad parse: kind %v, consumed %d", v.Kind(), n)
			}
		}
	})

	b.Run("Stdlib", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("JSONIter", func(b *testing.B) {
		api := jsoniter.ConfigCompatibleWithStandardLibrary
		for i := 0; i < b.N; i++ {
			var v any
			if err := api.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Goccy", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := goccy.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("GJSON", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := gjson.ParseBytes(input)
			if !v.IsObject() {
				b.Fatal("Bad parse: not an object")
			}
		}
	})
}

func BenchmarkEncode(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	v, _, err := jval.Parse(string(input))
	if err != nil {
		b.Fatalf("Parse failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if out := v.JSON(); out == "" {
			b.Fatal("Empty encoding")
		}
	}
}
