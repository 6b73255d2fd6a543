package localdir

import (
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearRemovesRegularFilesOnly(t *testing.T) {
	fsys := billy.NewInMemoryFS()
	require.NoError(t, fsys.WriteFile("data/prices.csv", []byte("a"), 0o644))
	require.NoError(t, fsys.WriteFile("data/report.html", []byte("b"), 0o644))
	require.NoError(t, fsys.WriteFile("data/.gitignore", []byte("*"), 0o644))
	require.NoError(t, fsys.WriteFile("data/archive/old.csv", []byte("c"), 0o644))

	c := NewCleaner(fsys, zerolog.Nop())
	require.NoError(t, c.Clear("data"))

	for _, gone := range []string{"data/prices.csv", "data/report.html"} {
		exists, err := fsys.Exists(gone)
		require.NoError(t, err)
		assert.False(t, exists, gone)
	}
	for _, kept := range []string{"data/.gitignore", "data/archive/old.csv"} {
		exists, err := fsys.Exists(kept)
		require.NoError(t, err)
		assert.True(t, exists, kept)
	}
}

func TestClearEmptyDir(t *testing.T) {
	fsys := billy.NewInMemoryFS()
	require.NoError(t, fsys.MkdirAll("empty", 0o755))

	c := NewCleaner(fsys, zerolog.Nop())
	assert.NoError(t, c.Clear("empty"))
}
