package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
package: tuple
output: ./tuple
arity:
  min: 2
  max: 8
fields: indexed
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	t.Log(spew.Sdump(cfg))

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "tuple", cfg.Package)
	assert.Equal(t, "./tuple", cfg.Output)
	assert.Equal(t, 2, cfg.Arity.Min)
	assert.Equal(t, 8, cfg.Arity.Max)
	assert.Equal(t, FieldStyleIndexed, cfg.Fields)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(`package: pairs`))
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "pairs", cfg.Package)
	assert.Equal(t, "./pairs", cfg.Output)
	assert.Equal(t, MinSupportedArity, cfg.Arity.Min)
	assert.Equal(t, DefaultMaxArity, cfg.Arity.Max)
	assert.Equal(t, FieldStyleIndexed, cfg.Fields)
}

func TestParse_AlphaStyle(t *testing.T) {
	cfg, err := Parse([]byte("fields: alpha\n"))
	require.NoError(t, err)
	assert.Equal(t, FieldStyleAlpha, cfg.Fields)
}

func TestParse_BadFieldStyle(t *testing.T) {
	_, err := Parse([]byte("fields: roman\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field style")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuplegen.yaml")

	require.NoError(t, os.WriteFile(path, []byte("package: tuple\narity:\n  min: 2\n  max: 4\n"), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Arity.Max)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Fields = FieldStyleAlpha

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fields: alpha")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuplegen.yaml")

	require.NoError(t, WriteFile(Default(), path))

	back, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), back)
}
