// Copyright (C) 2024 M. Peake. All Rights Reserved.

package jval

import (
	"errors"
	"fmt"

	"github.com/mpeake/jval/internal/escape"

	"go4.org/mem"
)

// Errors reported by Parse, wrapped inside a *ParseError.
var (
	ErrEmptyInput          = errors.New("no value to parse")
	ErrUnrecognizedLiteral = errors.New("unrecognized literal")
	ErrMalformedNumber     = errors.New("malformed number")
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrNonTextKey          = errors.New("object key is not text")
	ErrTooDeep             = errors.New("nesting too deep")
)

// maxDepth bounds container nesting so that pathological input cannot
// exhaust the call stack.
const maxDepth = 10000

// A ParseError is the concrete type of errors reported by Parse. It
// carries the byte offset in the input at which parsing failed.
type ParseError struct {
	Offset int
	Err    error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Err.Error(), e.Offset)
}

// Unwrap supports error wrapping.
func (e *ParseError) Unwrap() error { return e.Err }

func failAt(off int, err error) error { return &ParseError{Offset: off, Err: err} }

// Parse reads one value from the front of input and reports it together
// with the number of bytes consumed. Empty input is a successful Null
// with zero consumed; trailing content after a complete value is never
// an error. In case of error the consumed length is zero, any partially
// built structure is discarded, and the returned error has concrete type
// [*ParseError].
//
// The accepted grammar is a permissive JSON dialect:
//
//   - A leading "t" or "f" reads as true or false, consuming 4 or 5
//     bytes without verifying their spelling; "truefoo" parses as true
//     with 3 bytes left over. There is no "null" literal.
//   - Numbers match [+-]?digits(.digits?)?([eE][+-]?digits)?, read as
//     Int when the whole literal fits a 32-bit integer and as Double
//     otherwise.
//   - String escapes are the C control set (\n \r \0 \t \v \f \b \a);
//     any other escaped byte, including "u", stands for itself. An
//     unterminated string is an error.
//   - The "," and ":" separators are skipped when present but never
//     required, and whitespace may surround elements and separators.
//     Input ending inside an unclosed list or dict yields the elements
//     read so far.
//   - Duplicate dict keys keep the first occurrence; later values for
//     the same key are parsed and discarded.
func Parse(input string) (Value, int, error) {
	if input == "" {
		return Value{}, 0, nil
	}
	p := &parser{in: input}
	v, end, err := p.value(0, 0)
	if err != nil {
		return Value{}, 0, err
	}
	return v, end, nil
}

// A parser holds the input buffer. All position state is carried in the
// offsets threaded through its methods, so the buffer is never re-sliced.
type parser struct {
	in string
}

// value parses one value beginning at pos and reports it together with
// the offset one past its end.
func (p *parser) value(pos, depth int) (Value, int, error) {
	if depth > maxDepth {
		return Value{}, pos, failAt(pos, ErrTooDeep)
	}

	// Discard leading whitespace.
	i := p.skipSpace(pos)
	if i == len(p.in) {
		return Value{}, pos, failAt(i, ErrEmptyInput)
	}

	switch c := p.in[i]; {
	case c == 't':
		return NewBool(true), min(i+4, len(p.in)), nil
	case c == 'f':
		return NewBool(false), min(i+5, len(p.in)), nil
	case c == '+' || c == '-' || isDigit(c):
		return p.number(i)
	case c == '"':
		return p.text(i)
	case c == '[':
		return p.list(i, depth)
	case c == '{':
		return p.dict(i, depth)
	default:
		return Value{}, pos, failAt(i, ErrUnrecognizedLiteral)
	}
}

// number parses a numeric literal beginning at pos.
// Precondition: p.in[pos] is a digit or sign.
func (p *parser) number(pos int) (Value, int, error) {
	n := matchNumber(p.in[pos:])
	if n == 0 {
		return Value{}, pos, failAt(pos, ErrMalformedNumber)
	}
	v, ok := numberValue(p.in[pos : pos+n])
	if !ok {
		return Value{}, pos, failAt(pos, ErrMalformedNumber)
	}
	return v, pos + n, nil
}

// text parses a string literal beginning at pos. It locates the closing
// quote with a two-state (raw/escaped) scan, then decodes the body.
// Precondition: p.in[pos] == '"'.
func (p *parser) text(pos int) (Value, int, error) {
	i := pos + 1
	esc := false
	for i < len(p.in) {
		switch c := p.in[i]; {
		case esc:
			esc = false
		case c == '\\':
			esc = true
		case c == '"':
			body := mem.S(p.in[pos+1 : i])
			return NewText(string(escape.Unquote(body))), i + 1, nil
		}
		i++
	}
	return Value{}, pos, failAt(i, ErrUnterminatedString)
}

// list parses a list beginning at pos. Whitespace may surround elements
// and separators; input ending before the closing bracket yields the
// elements read so far.
// Precondition: p.in[pos] == '['.
func (p *parser) list(pos, depth int) (Value, int, error) {
	vs := []Value{}
	i := p.skipSpace(pos + 1)
	for i < len(p.in) {
		if p.in[i] == ']' {
			i++
			break
		}
		elt, end, err := p.value(i, depth+1)
		if err != nil {
			return Value{}, pos, err
		}
		vs = append(vs, elt)
		i = p.skipSpace(end)
		if i < len(p.in) && p.in[i] == ',' {
			i = p.skipSpace(i + 1)
		}
	}
	return NewList(vs...), i, nil
}

// dict parses a dict beginning at pos. Each member is a value in key
// position, which must be Text, an optional ":", and a value. The first
// occurrence of a key wins; later pairs with the same key are consumed
// and discarded.
// Precondition: p.in[pos] == '{'.
func (p *parser) dict(pos, depth int) (Value, int, error) {
	m := make(map[string]Value)
	i := p.skipSpace(pos + 1)
	for i < len(p.in) {
		if p.in[i] == '}' {
			i++
			break
		}
		key, end, err := p.value(i, depth+1)
		if err != nil {
			return Value{}, pos, err
		}
		if key.Kind() != Text {
			return Value{}, pos, failAt(i, ErrNonTextKey)
		}
		i = p.skipSpace(end)
		if i < len(p.in) && p.in[i] == ':' {
			i++
		}
		elt, end, err := p.value(i, depth+1)
		if err != nil {
			return Value{}, pos, err
		}
		i = p.skipSpace(end)
		if _, seen := m[key.MustText()]; !seen {
			m[key.MustText()] = elt
		}
		if i < len(p.in) && p.in[i] == ',' {
			i = p.skipSpace(i + 1)
		}
	}
	return NewDict(m), i, nil
}

// skipSpace reports the offset of the first non-whitespace byte at or
// after pos, or the end of the input.
func (p *parser) skipSpace(pos int) int {
	for pos < len(p.in) && isSpace(p.in[pos]) {
		pos++
	}
	return pos
}

// isSpace reports whether c is one of the whitespace bytes the engine
// skips before a value. NUL is included, matching the grammar.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
