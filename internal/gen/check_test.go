package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maptuple/internal/schema"
)

func TestWriteFiles_ThenCheck(t *testing.T) {
	files, err := NewGenerator(resolve(t, schema.Default())).Generate()
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "tuple")
	require.NoError(t, WriteFiles(files, dir))

	// Every file landed on disk.
	for _, file := range files {
		_, err := os.Stat(filepath.Join(dir, file.Filename))
		require.NoError(t, err)
	}

	require.NoError(t, Check(files, dir))
}

func TestCheck_MissingFile(t *testing.T) {
	files, err := NewGenerator(resolve(t, schema.Default())).Generate()
	require.NoError(t, err)

	err = Check(files, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestCheck_StaleFile(t *testing.T) {
	files, err := NewGenerator(resolve(t, schema.Default())).Generate()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, WriteFiles(files, dir))

	tampered := filepath.Join(dir, files[0].Filename)
	require.NoError(t, os.WriteFile(tampered, []byte("package tuple\n"), 0o644))

	err = Check(files, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), files[0].Filename)
	assert.Contains(t, err.Error(), "stale")
}
