// Package ir provides the in-memory representation of bunch documents.
//
// # Overview
//
// A parsed document is a *Bunch: a mapping from unique string keys to
// *Value. A Value is a recursive tagged union; the Type field says which of
// its fields carry data.
//
//   - Scalars: NullType, BoolType, IntType, FloatType, StringType
//   - Composite literals: ListType, TupleType, SetType, MapType
//   - Nested bunches: BunchType, with the child in the Bunch field
//
// Lists, tuples and sets hold their elements in Values. Maps hold their
// entries in the parallel slices Keys and Values, so there are always as
// many keys as values. Map keys and set elements are hashable: scalars, or
// tuples of hashable values.
//
// # Bunches
//
// Bunch keys are unique. Set on an existing key replaces the value in
// place. Keys iterate in the Order the bunch was created with:
//
//	b := ir.NewBunchOrder(ir.SortedOrder)
//	b.Set("port", ir.FromInt(8080))
//	b.SetBunch("tls", ir.NewBunch())
//	v, err := b.GetPath("tls.cert")
//
// # Comparison
//
// Equal is structural and ignores key order. Compare is a total order used
// to render sets deterministically.
//
// # Thread Safety
//
// Values and bunches are not safe for concurrent mutation. Concurrent reads
// are fine.
package ir
