package schema

import (
	"fmt"
	"unicode"
)

// Arity bounds enforced by validation. MinSupportedArity exists because a
// 1-tuple is indistinguishable from a plain value; MaxSupportedArity is the
// hard library bound on generated arities.
const (
	MinSupportedArity = 2
	MaxSupportedArity = 12

	// DefaultMaxArity is the arity ceiling used when the config omits one.
	DefaultMaxArity = 8
)

// Config is the root of a tuplegen YAML configuration file.
// This is the authoritative, human-reviewed generation input.
type Config struct {
	// Version of the config schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the name of the generated package.
	Package string `yaml:"package"`

	// Output is the directory where generated files are written,
	// relative to the config file's directory when not absolute.
	Output string `yaml:"output"`

	// Arity is the inclusive range of tuple arities to generate.
	Arity ArityRange `yaml:"arity"`

	// Fields selects the field naming style. Defaults to indexed (V1..VN).
	Fields FieldStyle `yaml:"fields,omitempty"`
}

// ArityRange is an inclusive range of tuple arities.
type ArityRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Default returns the configuration tuplegen uses when no file is given,
// and the one written by the init command.
func Default() *Config {
	return &Config{
		Version: "1",
		Package: "tuple",
		Output:  "./tuple",
		Arity:   ArityRange{Min: MinSupportedArity, Max: DefaultMaxArity},
		Fields:  FieldStyleIndexed,
	}
}

// Validate checks the config for structural problems. It returns the first
// problem found; a nil error means the config can be resolved into a plan.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}

	if c.Package == "" {
		return fmt.Errorf("package must not be empty")
	}

	if !isIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", c.Package)
	}

	if c.Output == "" {
		return fmt.Errorf("output directory must not be empty")
	}

	if c.Arity.Min < MinSupportedArity {
		return fmt.Errorf("arity.min %d is below the minimum supported arity %d",
			c.Arity.Min, MinSupportedArity)
	}

	if c.Arity.Max > MaxSupportedArity {
		return fmt.Errorf("arity.max %d exceeds the maximum supported arity %d",
			c.Arity.Max, MaxSupportedArity)
	}

	if c.Arity.Min > c.Arity.Max {
		return fmt.Errorf("arity.min %d is greater than arity.max %d",
			c.Arity.Min, c.Arity.Max)
	}

	if c.Fields != FieldStyleIndexed && c.Fields != FieldStyleAlpha {
		return fmt.Errorf("unknown field style %d", int(c.Fields))
	}

	return nil
}

// isIdentifier reports whether s is a valid Go identifier (and thus a valid
// package name).
func isIdentifier(s string) bool {
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return s != ""
}
