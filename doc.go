// Package bunch reads, merges and writes bunch documents.
//
// A bunch document is a sequence of lines. Each meaningful line either
// assigns a literal to a key
//
//	replicas = 3
//	ports = [80, 443]
//
// or opens a block whose indented body is a nested bunch
//
//	http:
//	    host = 'example.org'
//
// Lines that are blank or start with the comment marker are ignored.
// Values are written in a small literal language: None/null, booleans,
// integers, floats, quoted strings, lists, tuples, sets and maps.
//
// This package collects the common entry points. The packages under it
// hold the pieces: parse for reading, encode for writing, mergeop for
// merging and patching, dirbuild for directory trees, libdiff for diffs
// and eval for queries.
package bunch
