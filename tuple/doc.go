// Package tuple provides fixed-arity tuples whose elements carry
// independent types, and one mapping function per (arity, position) pair.
//
// Each MapNVP function replaces exactly the element at one position and
// copies every other element through unchanged. The position is part of the
// function's name, so selecting it is a compile-time fact, and the result
// tuple's type differs from the input only at that position, where the
// transformation's result type takes over:
//
//	p := tuple.New2(5, "hello")
//	q := tuple.Map2V2(p, func(s string) int { return len(s) })
//	// q is Tuple2[int, int]{V1: 5, V2: 5}
//
// Calls chain naturally, one position at a time:
//
//	r := tuple.Map2V1(tuple.Map2V2(p, strings.ToUpper), func(n int) int { return -n })
//
// The mapping functions have no failure modes of their own: the caller's
// function runs exactly once, synchronously, and a panic inside it
// propagates to the caller unmodified.
//
// Arities 2 through 8 are provided. The per-arity files are emitted by
// tuplegen from the repository's tuplegen.yaml; run go generate to refresh
// them after a config change.
package tuple

//go:generate go run maptuple/cmd/tuplegen gen --config ../tuplegen.yaml --output .
