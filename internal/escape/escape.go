// Copyright (C) 2024 M. Peake. All Rights Reserved.

// Package escape handles encoding and decoding of string escapes in the
// jval dialect: the C control-character codes, with every unrecognized
// code standing for itself. There is no \uXXXX form.
package escape

import "go4.org/mem"

// Literal maps the byte following a backslash to the byte it denotes.
// Unrecognized codes, including '"', '\' and 'u', map to themselves.
func Literal(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case '0':
		return 0
	case 't':
		return '\t'
	case 'v':
		return '\v'
	case 'f':
		return '\f'
	case 'b':
		return '\b'
	case 'a':
		return '\a'
	default:
		return c
	}
}

// Unquote decodes a string body with the enclosing quotation marks
// already removed. Escape sequences are replaced by their literal
// equivalents; a trailing backslash with nothing after it is dropped.
func Unquote(src mem.RO) []byte {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src)
	}
	for {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			break
		}
		dec = append(dec, Literal(src.At(0)))
		src = src.SliceFrom(1)

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec
}

// codeFor maps bytes that need escaping to their escape codes. A zero
// entry means the byte is emitted as itself; NUL is handled separately
// since zero is also the sentinel.
var codeFor = [...]byte{
	'\a': 'a',
	'\b': 'b',
	'\t': 't',
	'\n': 'n',
	'\v': 'v',
	'\f': 'f',
	'\r': 'r',
	'"':  '"',
	'\\': '\\',
}

func code(c byte) byte {
	if c == 0 {
		return '0'
	}
	if int(c) < len(codeFor) {
		return codeFor[c]
	}
	return 0
}

// Quote encodes a string body for inclusion between quotation marks,
// emitting only escape sequences that Literal decodes back to the
// original byte.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		c := src.At(i)
		if e := code(c); e != 0 {
			buf = append(buf, '\\', e)
		} else {
			buf = append(buf, c)
		}
	}
	return buf
}
