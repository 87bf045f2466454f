// Package mergeop combines and patches bunches.
//
// # Layered merge
//
// Merge overlays bunches in increasing priority. For every key the last
// bunch defining it wins. When the winning definition is itself a bunch it
// is merged recursively with the bunch definitions directly preceding it;
// a scalar or composite definition in between cuts that run short:
//
//	base:     server: {host = "a", port = 1}
//	override: server = null
//	top:      server: {port = 2}
//	result:   server: {port = 2}
//
// Merge never modifies its inputs and the result shares no values with
// them.
//
// # JSON patches
//
// JSONPatch and MergePatch apply RFC 6902 and RFC 7386 documents to a bunch
// through its JSON form. Nested maps come back as bunches and tuples and
// sets come back as lists.
package mergeop
