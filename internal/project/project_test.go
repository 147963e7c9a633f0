package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFileLoadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	p := New(types.DemoDocument())
	p.IgnoreWords = []string{"Gitlytics", "spigot", "gitlytics"}

	require.NoError(t, SaveFile(path, p))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, types.DemoDocument(), loaded.Document)
	assert.Equal(t, []string{"gitlytics", "spigot"}, loaded.IgnoreWords)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"header": `))
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)

	_, err = Parse([]byte(`{} {}`))
	assert.ErrorAs(t, err, &loadErr)
}

func TestParse_TopLevelList(t *testing.T) {
	_, err := Parse([]byte(`[{"name": "x"}]`))
	var formatErr *FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestParse_IgnoreWordsSkipsNonStrings(t *testing.T) {
	p, err := Parse([]byte(`{"spellcheck_ignore_all": ["Zeta", 3, null, "alpha"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, p.IgnoreWords)

	p, err = Parse([]byte(`{"spellcheck_ignore_all": "zeta"}`))
	require.NoError(t, err)
	assert.Empty(t, p.IgnoreWords)
}

func TestSaveFile_SchemaFailureLeavesDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0644))

	doc := types.NewDocument()
	doc.Sections[0].ID = ""
	err := SaveFile(path, New(doc))
	var saveErr *SaveError
	require.ErrorAs(t, err, &saveErr)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "previous", string(data))
}

func TestMarshal_NilDocument(t *testing.T) {
	_, err := (&Project{}).Marshal()
	var saveErr *SaveError
	assert.ErrorAs(t, err, &saveErr)
}

func TestMarshal_Shape(t *testing.T) {
	data, err := New(types.NewDocument()).Marshal()
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"linkedin_kind": "LinkedIn"`)
	assert.Contains(t, s, `"spellcheck_ignore_all": []`)
	assert.Contains(t, s, `"id": "technical_skills"`)
}
