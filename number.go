// Copyright (C) 2024 M. Peake. All Rights Reserved.

package jval

import "strconv"

// matchNumber reports the length of the longest prefix of s matching
// [+-]?digits(.digits?)?([eE][+-]?digits)?, or zero if no prefix
// matches. The exponent group is included only when at least one digit
// follows the optional sign, so "1e" matches as "1".
func matchNumber(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == digits {
		return 0 // a sign alone is not a number
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

// numberValue interprets a matched numeric literal. The whole text must
// be consumed by one of the two interpretations: a 32-bit integer first,
// then a 64-bit float. Text that fits neither (for example an exponent
// beyond the float range) is rejected.
func numberValue(text string) (Value, bool) {
	if n, err := strconv.ParseInt(text, 10, 32); err == nil {
		return NewInt(int32(n)), true
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return NewDouble(f), true
	}
	return Value{}, false
}
