package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	h1 := Hash([]byte("Bern;3000;BE"))
	h2 := Hash([]byte("Thun;3600;BE"))

	assert.Len(t, h1, 16)
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, h1, Hash([]byte("Bern;3000;BE")))
}

func TestFileExists(t *testing.T) {
	name := filepath.Join(t.TempDir(), "towns.csv")

	assert.False(t, FileExists(name))

	require.NoError(t, os.WriteFile(name, []byte("data"), 0o644))
	assert.True(t, FileExists(name))
}
