package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:generate go tool stringer -type=FieldStyle -linecomment -output fieldstyle_string.go

// FieldStyle selects how tuple fields (and therefore map function names)
// are spelled in generated code.
type FieldStyle int

const (
	// FieldStyleIndexed names fields V1..VN.
	FieldStyleIndexed FieldStyle = iota // indexed
	// FieldStyleAlpha names fields A..L.
	FieldStyleAlpha // alpha
)

// ParseFieldStyle parses the YAML spelling of a field style.
func ParseFieldStyle(s string) (FieldStyle, error) {
	switch s {
	case "", FieldStyleIndexed.String():
		return FieldStyleIndexed, nil
	case FieldStyleAlpha.String():
		return FieldStyleAlpha, nil
	default:
		return 0, fmt.Errorf("unknown field style %q (want %q or %q)",
			s, FieldStyleIndexed, FieldStyleAlpha)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *FieldStyle) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseFieldStyle(s)
	if err != nil {
		return err
	}

	*f = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f FieldStyle) MarshalYAML() (any, error) {
	return f.String(), nil
}
