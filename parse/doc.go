// Package parse turns bunch documents into *ir.Bunch values.
//
// A document is a sequence of lines. `key = literal` assigns a literal
// (see package literal) and `key:` opens a block whose body is the following
// run of lines indented deeper than the header. Blank lines and comment
// lines are ignored wherever they occur.
//
//	server:
//	    host = "localhost"
//	    ports = [80, 443]
//	debug = false
//
// Indentation is compared as an exact string. A line whose indentation is
// neither the current block's, nor a shorter prefix of it closing the
// block, is an indentation error. Parsing stops at the first error, which
// is reported as an *Error carrying the 1-based line number and the raw
// line.
package parse
