// Package gen provides deterministic Go code generation for tuple types
// and their per-position map functions.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// Each arity in the plan becomes one file carrying:
//   - The tuple struct with one type parameter per position
//   - A positional constructor
//   - Unpack into Go's customary multiple return values
//   - One map function per position, whose signature fixes the position
//     at compile time and whose result row swaps in the transformation's
//     result type at that position only
package gen
