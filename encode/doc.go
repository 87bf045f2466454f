// Package encode writes bunches as text.
//
// The bunch format is canonical: every level lists one entry per key,
// sorted by the entry's rendered text. Scalar and composite values are
// written as `key = literal` with the `=` aligned across the scalar keys
// of a level. Nested bunches are written as a `key:` header followed by
// their entries, indented one unit deeper; an empty nested bunch is the
// header alone.
//
//	name    = "web"
//	replica = 3
//	tls:
//	    cert = "/etc/cert.pem"
//
// Parsing the output yields a bunch equal to the input. Keys that cannot
// be written back, such as keys containing a marker, fail with ErrKey.
//
// The JSON and YAML formats are exports: tuples and sets become arrays and
// the distinction is not preserved.
package encode
