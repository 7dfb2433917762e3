package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty package",
			mutate:  func(c *Config) { c.Package = "" },
			wantErr: "package must not be empty",
		},
		{
			name:    "bad package name",
			mutate:  func(c *Config) { c.Package = "2tuples" },
			wantErr: "not a valid Go identifier",
		},
		{
			name:    "empty output",
			mutate:  func(c *Config) { c.Output = "" },
			wantErr: "output directory",
		},
		{
			name:    "arity too small",
			mutate:  func(c *Config) { c.Arity.Min = 1 },
			wantErr: "below the minimum supported arity",
		},
		{
			name:    "arity too large",
			mutate:  func(c *Config) { c.Arity.Max = 13 },
			wantErr: "exceeds the maximum supported arity",
		},
		{
			name:    "inverted range",
			mutate:  func(c *Config) { c.Arity.Min = 6; c.Arity.Max = 3 },
			wantErr: "greater than arity.max",
		},
		{
			name:    "unknown field style",
			mutate:  func(c *Config) { c.Fields = FieldStyle(42) },
			wantErr: "unknown field style",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	var cfg *Config
	require.Error(t, cfg.Validate())
}

func TestParseFieldStyle(t *testing.T) {
	style, err := ParseFieldStyle("")
	require.NoError(t, err)
	assert.Equal(t, FieldStyleIndexed, style)

	style, err = ParseFieldStyle("alpha")
	require.NoError(t, err)
	assert.Equal(t, FieldStyleAlpha, style)

	_, err = ParseFieldStyle("greek")
	require.Error(t, err)
}

func TestFieldStyle_String(t *testing.T) {
	assert.Equal(t, "indexed", FieldStyleIndexed.String())
	assert.Equal(t, "alpha", FieldStyleAlpha.String())
	assert.Equal(t, "FieldStyle(9)", FieldStyle(9).String())
}
