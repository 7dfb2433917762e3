// Package plan resolves a tuplegen config into the final generation plan
// consumed by code generation.
//
// Resolution pipeline:
//  1. Validate the config (arity bounds, package name, field style)
//  2. For each arity in range, fix every name the generated file will use
//  3. For each position, build the result type-parameter row with the
//     transformation's result type substituted at that position only
//
// Rendering never makes naming decisions; anything name-shaped is decided
// here so the same config always regenerates byte-identical files.
package plan
