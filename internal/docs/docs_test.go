package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuides(t *testing.T) {
	gs, err := Guides()
	require.NoError(t, err)
	require.Len(t, gs, 2)
	assert.Equal(t, "quick-start", gs[0].Name)
	assert.Equal(t, "Quick Start", gs[0].Title)
	assert.Equal(t, "Detailed Help", gs[1].Title)
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("faq")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quick-start, help")
}

func TestHeadings(t *testing.T) {
	src := []byte("# Top\n\ntext\n\n## Sub `code`\n\n### Deep\n")
	assert.Equal(t, []string{"Top"}, Headings(src, 1))
	assert.Equal(t, []string{"Top", "Sub code"}, Headings(src, 2))
	assert.Empty(t, Headings([]byte("no headings"), 6))
}

func TestRenderHTML(t *testing.T) {
	g, err := Lookup("help")
	require.NoError(t, err)

	page, err := RenderHTML(g)
	require.NoError(t, err)

	dom, err := goquery.NewDocumentFromReader(strings.NewReader(string(page)))
	require.NoError(t, err)
	assert.Equal(t, "Detailed Help", dom.Find("title").Text())
	assert.Equal(t, "Detailed Help", dom.Find("h1").First().Text())
	assert.Equal(t, 5, dom.Find("table tbody tr").Length(), "kinds table renders as a GFM table")
}

func TestWriteHelpDocs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "help")

	written, err := WriteHelpDocs(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "quick-start.md"),
		filepath.Join(dir, "quick-start.html"),
		filepath.Join(dir, "help.md"),
		filepath.Join(dir, "help.html"),
	}, written)

	data, err := os.ReadFile(filepath.Join(dir, "quick-start.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Quick Start"))
}
