// Copyright (C) 2024 M. Peake. All Rights Reserved.

package query_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mpeake/jval"
	"github.com/mpeake/jval/query"
)

const testDoc = `{
  "list": [
    {"x": 1},
    {"x": 2}
  ],
  "y": {"hello": "there"},
  "o": ["hi", "yourself"],
  "xyz": {"p": true, "d": true, "q": false}
}`

func TestPath(t *testing.T) {
	v, n, err := jval.Parse(testDoc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n != len(testDoc) {
		t.Fatalf("Parse consumed %d bytes, want %d", n, len(testDoc))
	}

	tests := []struct {
		name string
		path []any
		want jval.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, jval.Value{}, true},
		{"WrongType", []any{11}, jval.Value{}, true},
		{"DeepWrongType", []any{"y", "hello", 0}, jval.Value{}, true},

		{"ArrayPos", []any{"list", 1, "x"}, jval.NewInt(2), false},
		{"ArrayNeg", []any{"list", -1, "x"}, jval.NewInt(2), false},
		{"ArrayRange", []any{"o", 25}, jval.Value{}, true},
		{"ObjPath", []any{"xyz", "d"}, jval.NewBool(true), false},
		{"TextPath", []any{"o", 0}, jval.NewText("hi"), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := query.Eval(v, query.Path(tc.path...))
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
					return
				}
				t.Fatalf("Eval: unexpected error: %v", err)
			} else if tc.fail {
				t.Fatalf("Eval: got %v, want error", got)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Wrong result (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSelection(t *testing.T) {
	v, _, err := jval.Parse(`[1, 2, 3, 4, 5, 6]`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := query.Eval(v, query.Selection(func(elt jval.Value) bool {
		return elt.MustInt()%2 == 0
	}))
	if err != nil {
		t.Fatalf("Eval: unexpected error: %v", err)
	}
	want := jval.ToValue([]any{2, 4, 6})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Wrong result (-want, +got):\n%s", diff)
	}

	if _, err := query.Eval(jval.NewInt(1), query.Selection(nil)); err == nil {
		t.Error("Selection on a non-list unexpectedly succeeded")
	}
}

func TestMapping(t *testing.T) {
	v, _, err := jval.Parse(`[{"n": 1}, {"n": 2}]`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := query.Eval(v, query.Path(query.Mapping(func(elt jval.Value) jval.Value {
		f, _ := elt.Field("n")
		return f
	}), 1))
	if err != nil {
		t.Fatalf("Eval: unexpected error: %v", err)
	}
	if diff := cmp.Diff(jval.NewInt(2), got); diff != "" {
		t.Errorf("Wrong result (-want, +got):\n%s", diff)
	}
}

func TestEach(t *testing.T) {
	v, _, err := jval.Parse(`[{"n": 1}, {"n": 2}, {"n": 3}]`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := query.Eval(v, query.Each("n"))
	if err != nil {
		t.Fatalf("Eval: unexpected error: %v", err)
	}
	want := jval.ToValue([]any{1, 2, 3})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Wrong result (-want, +got):\n%s", diff)
	}

	// The query must succeed on every element.
	if _, err := query.Eval(v, query.Each("m")); err == nil {
		t.Error("Each with a missing key unexpectedly succeeded")
	}
	if _, err := query.Eval(jval.NewInt(1), query.Each("n")); err == nil {
		t.Error("Each on a non-list unexpectedly succeeded")
	}
}
