package spelling

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWordList(t *testing.T) {
	l, err := ReadWordList(strings.NewReader("# comment\nBuilt\n\n  shipped \nbuilt\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
	assert.False(t, l.Unknown("built"))
	assert.False(t, l.Unknown("Shipped"))
	assert.True(t, l.Unknown("comment"))
}

func TestLoadWordList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\n"), 0o644))

	l, err := LoadWordList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"gama"}, Misspellings(l, nil, "Alpha, beta gama."))

	_, err = LoadWordList(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
