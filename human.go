// Copyright (C) 2024 M. Peake. All Rights Reserved.

package jval

import "github.com/tailscale/hujson"

// ParseHuman parses a "human JSON" document, in which comments and
// trailing commas are allowed. The input is standardized with the hujson
// package and the result handed to Parse, so the consumed length, which
// would refer to the standardized text rather than the input, is not
// reported.
//
// Standardization does not change the dialect: a document using the
// "null" literal or \uXXXX escapes reads the same as it would through
// Parse.
func ParseHuman(input string) (Value, error) {
	std, err := hujson.Standardize([]byte(input))
	if err != nil {
		return Value{}, err
	}
	v, _, err := Parse(string(std))
	return v, err
}
