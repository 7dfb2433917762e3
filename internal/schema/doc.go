// Package schema provides the YAML configuration for tuplegen: parsing,
// defaults, and validation.
//
// The configuration is a single small file that pins everything the
// generator needs, so regeneration is deterministic:
//
//	version: "1"
//	package: tuple
//	output: ./tuple
//	arity:
//	  min: 2
//	  max: 8
//	fields: indexed
//
// # Arity bounds
//
// The minimum arity is 2 (a 1-tuple is just a value) and the hard upper
// bound is 12. The default ceiling is 8; raising it is a config change,
// not a code change, up to the hard bound. The bound is a library choice,
// not a domain one: type-parameter rows stop being readable well before
// twelve elements.
//
// # Field styles
//
//   - indexed: fields V1..VN, constructors take v1..vN (the default)
//   - alpha: fields A..L, constructors take a..l
//
// The field style also names the map functions: the indexed style yields
// Map3V2, the alpha style Map3B.
package schema
