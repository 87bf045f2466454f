// Package eval evaluates query expressions against a bunch.
//
// Expressions use the github.com/expr-lang/expr language. The top level
// keys of the bunch are variables, nested bunches are maps, and the
// following functions are available:
//
//	getpath("a.b")  value at a dotted path, an error if absent
//	haspath("a.b")  whether a dotted path exists
//	keys("a")       keys of the bunch at a dotted path, "" for the root
//	getenv("HOME")  value of an environment variable
//
// Evaluation is a separate, explicit step: parsing a document never
// evaluates anything.
package eval
