// Package token classifies the lines of a bunch document.
//
// Each line is one of: ignored (blank or a comment), an assignment
// `key = literal`, a block header `key:` or malformed. The first assignment
// or block marker on a line decides which, so `a = {"x": 1}` is an
// assignment and `a: = 1` is a block header with trailing garbage.
//
// Indentation is the exact leading whitespace string of a line; tabs and
// spaces are never converted into one another.
package token
