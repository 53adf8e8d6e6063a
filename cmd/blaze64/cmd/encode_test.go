package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("reads file argument", func(t *testing.T) {
		path := filepath.Join(tmpDir, "input.bin")
		require.NoError(t, os.WriteFile(path, []byte("file contents"), 0o644))

		data, err := readInput([]string{path})
		assert.NoError(t, err)
		assert.Equal(t, []byte("file contents"), data)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readInput([]string{filepath.Join(tmpDir, "missing.bin")})
		assert.Error(t, err)
	})
}

func TestWriteOutput(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("writes to file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "output.b64")
		err := writeOutput(path, []byte("Zm9vYmFy"))
		assert.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("Zm9vYmFy"), data)
	})

	t.Run("invalid directory", func(t *testing.T) {
		err := writeOutput(filepath.Join(tmpDir, "no", "such", "dir", "out"), []byte("x"))
		assert.Error(t, err)
	})
}
