package plan

import (
	"fmt"

	"maptuple/internal/schema"
)

// Plan is the fully resolved generation plan consumed by code generation.
// Everything name-shaped is decided here so rendering stays mechanical.
type Plan struct {
	// Package is the name of the generated package.
	Package string
	// Output is the directory where generated files are written.
	Output string
	// Arities holds one entry per generated arity, ascending.
	Arities []ArityPlan
}

// ArityPlan describes everything generated for a single tuple arity.
type ArityPlan struct {
	// N is the arity.
	N int
	// TypeName is the tuple type name, e.g. "Tuple4".
	TypeName string
	// TypeParams are the element type parameters, e.g. T1..T4.
	TypeParams []string
	// Fields are the positional fields, in order.
	Fields []Field
	// CtorName is the constructor name, e.g. "New4".
	CtorName string
	// Maps holds one entry per position, in order.
	Maps []MapPlan
}

// Field is a single positional element of a tuple type.
type Field struct {
	// Name is the struct field name, e.g. "V3" or "C".
	Name string
	// Param is the type parameter for this position, e.g. "T3".
	Param string
	// Arg is the constructor argument name, e.g. "v3" or "c".
	Arg string
}

// MapPlan describes the mapping operation for one (arity, position) pair.
type MapPlan struct {
	// FuncName is the map function name, e.g. "Map4V3".
	FuncName string
	// Index is the one-based position this operation touches.
	Index int
	// Field is the touched field.
	Field Field
	// Ordinal is the position's ordinal word, used in doc comments.
	Ordinal string
	// Results is the type-parameter row of the result tuple: the input
	// row with "R" substituted at Index.
	Results []string
}

// ordinals covers positions up to schema.MaxSupportedArity.
var ordinals = []string{
	"first", "second", "third", "fourth", "fifth", "sixth",
	"seventh", "eighth", "ninth", "tenth", "eleventh", "twelfth",
}

// Resolve validates cfg and expands it into a Plan. The result is
// deterministic: the same config always yields the identical plan.
func Resolve(cfg *schema.Config) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	p := &Plan{
		Package: cfg.Package,
		Output:  cfg.Output,
	}

	for n := cfg.Arity.Min; n <= cfg.Arity.Max; n++ {
		p.Arities = append(p.Arities, resolveArity(n, cfg.Fields))
	}

	return p, nil
}

func resolveArity(n int, style schema.FieldStyle) ArityPlan {
	ap := ArityPlan{
		N:        n,
		TypeName: fmt.Sprintf("Tuple%d", n),
		CtorName: fmt.Sprintf("New%d", n),
	}

	for i := 1; i <= n; i++ {
		ap.TypeParams = append(ap.TypeParams, fmt.Sprintf("T%d", i))
		ap.Fields = append(ap.Fields, fieldAt(i, style))
	}

	for i := 1; i <= n; i++ {
		mp := MapPlan{
			FuncName: fmt.Sprintf("Map%d%s", n, ap.Fields[i-1].Name),
			Index:    i,
			Field:    ap.Fields[i-1],
			Ordinal:  ordinals[i-1],
		}

		mp.Results = append(mp.Results, ap.TypeParams...)
		mp.Results[i-1] = "R"

		ap.Maps = append(ap.Maps, mp)
	}

	return ap
}

func fieldAt(i int, style schema.FieldStyle) Field {
	if style == schema.FieldStyleAlpha {
		return Field{
			Name:  string(rune('A' + i - 1)),
			Param: fmt.Sprintf("T%d", i),
			Arg:   string(rune('a' + i - 1)),
		}
	}

	return Field{
		Name:  fmt.Sprintf("V%d", i),
		Param: fmt.Sprintf("T%d", i),
		Arg:   fmt.Sprintf("v%d", i),
	}
}
