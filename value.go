// Copyright (C) 2024 M. Peake. All Rights Reserved.

package jval

import (
	"fmt"
	"math"
)

// A Kind identifies which variant of a Value is active.
type Kind byte

// Constants defining the valid Kind values.
const (
	Null   Kind = iota // the null value
	Bool               // boolean: true or false
	Int                // 32-bit signed integer
	Double             // 64-bit floating-point number
	Text               // string
	List               // ordered sequence of values
	Dict               // mapping from text keys to values
)

var kindStr = [...]string{
	Null:   "null",
	Bool:   "bool",
	Int:    "int",
	Double: "double",
	Text:   "text",
	List:   "list",
	Dict:   "dict",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// A Value is a JSON value tagged with its kind. The zero Value is the
// null value. Exactly one payload is active at a time, identified by the
// kind; the typed accessors report a *KindError when asked for a payload
// under the wrong tag.
//
// A Value constructed by Parse owns its contents exclusively and should
// be treated as immutable. The slices and maps returned by List and Dict
// are the tree's own storage, not copies.
type Value struct {
	kind Kind
	b    bool
	i    int32
	f    float64
	s    string
	l    []Value
	m    map[string]Value
}

// NewBool returns a Bool value holding b.
func NewBool(b bool) Value { return Value{kind: Bool, b: b} }

// NewInt returns an Int value holding n.
func NewInt(n int32) Value { return Value{kind: Int, i: n} }

// NewDouble returns a Double value holding f.
func NewDouble(f float64) Value { return Value{kind: Double, f: f} }

// NewText returns a Text value holding s.
func NewText(s string) Value { return Value{kind: Text, s: s} }

// NewList returns a List value holding the given elements. The elements
// are owned by the new value.
func NewList(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{kind: List, l: vs}
}

// NewDict returns a Dict value holding the given members. The map is
// owned by the new value; a nil map denotes an empty dict.
func NewDict(m map[string]Value) Value {
	if m == nil {
		m = make(map[string]Value)
	}
	return Value{kind: Dict, m: m}
}

// ToValue converts a plain Go value into a Value. It accepts nil, bool,
// int, int32, int64, float32, float64, string, []any, map[string]any,
// and the corresponding Value container types. Integers outside the
// 32-bit range convert to Double. ToValue panics if v does not have one
// of these types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case bool:
		return NewBool(t)
	case int:
		return intValue(int64(t))
	case int32:
		return NewInt(t)
	case int64:
		return intValue(t)
	case float32:
		return NewDouble(float64(t))
	case float64:
		return NewDouble(t)
	case string:
		return NewText(t)
	case []Value:
		return NewList(t...)
	case []any:
		vs := make([]Value, len(t))
		for i, elt := range t {
			vs[i] = ToValue(elt)
		}
		return NewList(vs...)
	case map[string]Value:
		return NewDict(t)
	case map[string]any:
		m := make(map[string]Value, len(t))
		for key, elt := range t {
			m[key] = ToValue(elt)
		}
		return NewDict(m)
	default:
		panic(fmt.Sprintf("invalid value type %T", v))
	}
}

func intValue(n int64) Value {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return NewDouble(float64(n))
	}
	return NewInt(int32(n))
}

// A KindError reports a typed access under the wrong tag.
type KindError struct {
	Want, Got Kind
}

// Error satisfies the error interface.
func (e *KindError) Error() string {
	return fmt.Sprintf("value is %v, not %v", e.Got, e.Want)
}

// Kind reports the active kind of v.
func (v Value) Kind() Kind { return v.kind }

// Is reports whether the active kind of v is k.
func (v Value) Is(k Kind) bool { return v.kind == k }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == Null }

func (v Value) check(want Kind) error {
	if v.kind != want {
		return &KindError{Want: want, Got: v.kind}
	}
	return nil
}

// Bool reports the payload of a Bool value.
func (v Value) Bool() (bool, error) { return v.b, v.check(Bool) }

// Int reports the payload of an Int value.
func (v Value) Int() (int32, error) { return v.i, v.check(Int) }

// Double reports the payload of a Double value.
func (v Value) Double() (float64, error) { return v.f, v.check(Double) }

// Text reports the payload of a Text value.
func (v Value) Text() (string, error) { return v.s, v.check(Text) }

// List reports the elements of a List value. The returned slice is the
// tree's own storage and must not be modified.
func (v Value) List() ([]Value, error) { return v.l, v.check(List) }

// Dict reports the members of a Dict value. The returned map is the
// tree's own storage and must not be modified.
func (v Value) Dict() (map[string]Value, error) { return v.m, v.check(Dict) }

// MustBool is as Bool, but panics with a *KindError on the wrong kind.
func (v Value) MustBool() bool { b, err := v.Bool(); must(err); return b }

// MustInt is as Int, but panics with a *KindError on the wrong kind.
func (v Value) MustInt() int32 { n, err := v.Int(); must(err); return n }

// MustDouble is as Double, but panics with a *KindError on the wrong kind.
func (v Value) MustDouble() float64 { f, err := v.Double(); must(err); return f }

// MustText is as Text, but panics with a *KindError on the wrong kind.
func (v Value) MustText() string { s, err := v.Text(); must(err); return s }

// MustList is as List, but panics with a *KindError on the wrong kind.
func (v Value) MustList() []Value { vs, err := v.List(); must(err); return vs }

// MustDict is as Dict, but panics with a *KindError on the wrong kind.
func (v Value) MustDict() map[string]Value { m, err := v.Dict(); must(err); return m }

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Len reports the number of elements of a List or members of a Dict, and
// is zero for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case List:
		return len(v.l)
	case Dict:
		return len(v.m)
	default:
		return 0
	}
}

// At reports the element of a List value at offset i, if one exists.
// For any other kind, or an offset out of range, it reports false.
func (v Value) At(i int) (Value, bool) {
	if v.kind != List || i < 0 || i >= len(v.l) {
		return Value{}, false
	}
	return v.l[i], true
}

// Field reports the member of a Dict value with the given key, if one
// exists. For any other kind it reports false.
func (v Value) Field(key string) (Value, bool) {
	if v.kind != Dict {
		return Value{}, false
	}
	elt, ok := v.m[key]
	return elt, ok
}

// Equal reports whether v and w are structurally equal: the same kind
// with equal payloads, comparing List elements in order and Dict members
// by key.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case Null:
		return true
	case Bool:
		return v.b == w.b
	case Int:
		return v.i == w.i
	case Double:
		return v.f == w.f
	case Text:
		return v.s == w.s
	case List:
		if len(v.l) != len(w.l) {
			return false
		}
		for i, elt := range v.l {
			if !elt.Equal(w.l[i]) {
				return false
			}
		}
		return true
	case Dict:
		if len(v.m) != len(w.m) {
			return false
		}
		for key, elt := range v.m {
			other, ok := w.m[key]
			if !ok || !elt.Equal(other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders v in the form of its JSON encoding, for debugging.
func (v Value) String() string { return v.JSON() }
