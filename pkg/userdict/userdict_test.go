package userdict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	words, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestLoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("foo\n\n  bar  \n\n"), 0644))

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, words)
}

func TestWriterAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")

	w, err := OpenWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Append("coment"))
	require.NoError(t, w.Append("speling"))
	require.NoError(t, w.Close())

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"coment", "speling"}, words)
}

func TestWriterAppendsToExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0644))

	w, err := OpenWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Append("added"))
	require.NoError(t, w.Close())

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"existing", "added"}, words)
}

func TestWriterCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")

	w, err := OpenWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	assert.Error(t, w.Append("late"), "appending after close fails")
}
