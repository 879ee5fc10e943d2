// Copyright (C) 2024 M. Peake. All Rights Reserved.

// Package query extracts substructures from parsed values.
//
// A Query names a location or derived view within a value tree; Eval
// walks the tree from a root value and reports what the query selects,
// or an error telling where the traversal stopped. Queries compose:
// Path chains steps, Seq runs queries in order, and Selection, Mapping,
// and Each transform lists element by element.
//
// As an example, suppose the root was parsed from
//
//	{"episodes": [{"id": 101, "title": "Pilot"}, {"id": 102}]}
//
// Then
//
//	query.Path("episodes", -1, "id")
//
// selects the int value 102, and
//
//	query.Path("episodes", query.Each("id"))
//
// selects the list [101, 102].
package query

import (
	"fmt"

	"github.com/mpeake/jval"
)

// Eval evaluates the given query beginning from root, returning the
// resulting value or an error.
func Eval(root jval.Value, q Query) (jval.Value, error) {
	return q.eval(root)
}

// A Query describes a traversal of a value tree.
type Query interface {
	eval(jval.Value) (jval.Value, error)
}

// Path traverses a sequence of nested dict keys or list indices from the
// root. If no keys are specified, the root is returned. Each key must be
// a string, an int, or a Query.
func Path(keys ...any) Query {
	if len(keys) == 1 {
		return pathElem(keys[0])
	}
	pq := make(Seq, 0, len(keys))
	for _, key := range keys {
		q := pathElem(key)
		if sq, ok := q.(Seq); ok {
			pq = append(pq, sq...)
		} else {
			pq = append(pq, q)
		}
	}
	return pq
}

func pathElem(key any) Query {
	switch t := key.(type) {
	case string:
		return dictKey(t)
	case int:
		return nthQuery(t)
	case Query:
		return t
	default:
		panic("invalid path element")
	}
}

// A Seq is a sequence of queries, evaluated in order against the result
// of the previous query.
type Seq []Query

func (q Seq) eval(v jval.Value) (jval.Value, error) {
	cur := v
	for _, sq := range q {
		next, err := sq.eval(cur)
		if err != nil {
			return v, err
		}
		cur = next
	}
	return cur, nil
}

type dictKey string

func (d dictKey) eval(v jval.Value) (jval.Value, error) {
	if v.Kind() != jval.Dict {
		return v, fmt.Errorf("got %v, want dict", v.Kind())
	}
	elt, ok := v.Field(string(d))
	if !ok {
		return v, fmt.Errorf("key %q not found", string(d))
	}
	return elt, nil
}

type nthQuery int

func (nq nthQuery) eval(v jval.Value) (jval.Value, error) {
	vs, err := v.List()
	if err != nil {
		return v, fmt.Errorf("got %v, want list", v.Kind())
	}
	idx := int(nq)
	if idx < 0 {
		idx += len(vs)
	}
	if idx < 0 || idx >= len(vs) {
		return v, fmt.Errorf("index %d out of range (0..%d)", nq, len(vs))
	}
	return vs[idx], nil
}

// Selection constructs a list of the elements of its input list for
// which the specified function returns true.
type Selection func(jval.Value) bool

func (q Selection) eval(v jval.Value) (jval.Value, error) {
	vs, err := v.List()
	if err != nil {
		return v, fmt.Errorf("got %v, want list", v.Kind())
	}
	var out []jval.Value
	for _, elt := range vs {
		if q(elt) {
			out = append(out, elt)
		}
	}
	return jval.NewList(out...), nil
}

// Mapping constructs a list in which each element of the input list is
// replaced by the result of the specified function.
type Mapping func(jval.Value) jval.Value

func (q Mapping) eval(v jval.Value) (jval.Value, error) {
	vs, err := v.List()
	if err != nil {
		return v, fmt.Errorf("got %v, want list", v.Kind())
	}
	out := make([]jval.Value, len(vs))
	for i, elt := range vs {
		out[i] = q(elt)
	}
	return jval.NewList(out...), nil
}

// Each applies a query to every element of a list and constructs a list
// of the resulting values. It fails if the input is not a list, or if
// the query fails on any element. The arguments have the same
// constraints as Path.
func Each(keys ...any) Query { return eachQuery{Path(keys...)} }

type eachQuery struct{ Query }

func (q eachQuery) eval(v jval.Value) (jval.Value, error) {
	vs, err := v.List()
	if err != nil {
		return v, fmt.Errorf("got %v, want list", v.Kind())
	}
	out := make([]jval.Value, len(vs))
	for i, elt := range vs {
		next, err := q.Query.eval(elt)
		if err != nil {
			return v, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = next
	}
	return jval.NewList(out...), nil
}
