// Copyright (C) 2024 M. Peake. All Rights Reserved.

package jval

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/mpeake/jval/internal/escape"

	"go4.org/mem"
)

// JSON renders v as text in the dialect Parse reads, so that parsing the
// output reconstructs a tree equal to v. Dict members are written in
// sorted key order to make the encoding deterministic.
//
// Two values have no faithful spelling in the grammar: the Null kind is
// written as "null", which Parse does not accept, and a non-finite
// Double is also written as "null".
func (v Value) JSON() string {
	var sb strings.Builder
	v.encode(&sb)
	return sb.String()
}

func (v Value) encode(sb *strings.Builder) {
	switch v.kind {
	case Null:
		sb.WriteString("null")
	case Bool:
		if v.b {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case Int:
		sb.WriteString(strconv.FormatInt(int64(v.i), 10))
	case Double:
		sb.WriteString(formatDouble(v.f))
	case Text:
		encodeText(sb, v.s)
	case List:
		sb.WriteByte('[')
		for i, elt := range v.l {
			if i > 0 {
				sb.WriteByte(',')
			}
			elt.encode(sb)
		}
		sb.WriteByte(']')
	case Dict:
		sb.WriteByte('{')
		keys := make([]string, 0, len(v.m))
		for key := range v.m {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for i, key := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			encodeText(sb, key)
			sb.WriteByte(':')
			v.m[key].encode(sb)
		}
		sb.WriteByte('}')
	}
}

func encodeText(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	sb.Write(escape.Quote(mem.S(s)))
	sb.WriteByte('"')
}

// formatDouble renders f so that Parse reads it back as a Double: the
// spelling always carries a fraction or exponent, since a bare integer
// spelling would reparse as Int.
func formatDouble(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
