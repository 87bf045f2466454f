// Package literal evaluates the value side of an assignment.
//
// The accepted language is a closed set of literals and nothing else:
//
//   - integers: 42, -7, 0x1f, 0o17, 0b101, 1_000 (64-bit signed range)
//   - floats: 1.5, .5, 5., 1e-3, 2.5E10
//   - strings: "double" or 'single' quoted, with backslash escapes;
//     adjacent strings are concatenated
//   - true, false, null (True, False and None are accepted as well)
//   - lists [a, b], tuples (a, b) and (a,), sets {a, b}, maps {k: v}
//
// Names, operators, calls and attribute access are rejected, so
// evaluation never runs code. Composite nesting is bounded by MaxDepth.
//
// Format renders a value back into text that Eval accepts.
package literal
