package rendering

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

func parseDocx(t *testing.T, data []byte) *docx.Docx {
	t.Helper()
	f, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return f
}

// bodyParagraphs returns the top-level paragraphs of f.
func bodyParagraphs(f *docx.Docx) []*docx.Paragraph {
	var out []*docx.Paragraph
	for _, item := range f.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// tableRows returns the left and right cell text of every one-row table.
func tableRows(f *docx.Docx) [][2]string {
	var out [][2]string
	for _, item := range f.Document.Body.Items {
		tbl, ok := item.(*docx.Table)
		if !ok || len(tbl.TableRows) == 0 {
			continue
		}
		cells := tbl.TableRows[0].TableCells
		var row [2]string
		for i := 0; i < 2 && i < len(cells); i++ {
			var parts []string
			for _, p := range cells[i].Paragraphs {
				parts = append(parts, p.String())
			}
			row[i] = strings.Join(parts, "")
		}
		out = append(out, row)
	}
	return out
}

func findParagraph(f *docx.Docx, contains string) *docx.Paragraph {
	for _, p := range bodyParagraphs(f) {
		if strings.Contains(p.String(), contains) {
			return p
		}
	}
	return nil
}

func paragraphRuns(p *docx.Paragraph) []*docx.Run {
	var out []*docx.Run
	for _, c := range p.Children {
		if r, ok := c.(*docx.Run); ok {
			out = append(out, r)
		}
	}
	return out
}

func runText(r *docx.Run) string {
	var b strings.Builder
	for _, c := range r.Children {
		if t, ok := c.(*docx.Text); ok {
			b.WriteString(t.Text)
		}
	}
	return b.String()
}

func TestRenderDocx_NilDocument(t *testing.T) {
	_, err := RenderDocx(nil)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRenderDocx_Deterministic(t *testing.T) {
	a, err := RenderDocx(types.DemoDocument())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		b, err := RenderDocx(types.DemoDocument())
		require.NoError(t, err)
		require.True(t, bytes.Equal(a, b), "render %d differs", i)
	}
}

func TestRenderDocx_ContentTypesFirst(t *testing.T) {
	data, err := RenderDocx(types.DemoDocument())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.NotEmpty(t, zr.File)
	assert.Equal(t, "[Content_Types].xml", zr.File[0].Name)
	for i := 2; i < len(zr.File); i++ {
		assert.Less(t, zr.File[i-1].Name, zr.File[i].Name)
	}
}

func TestRenderDocx_PageSetup(t *testing.T) {
	data, err := RenderDocx(types.NewDocument())
	require.NoError(t, err)
	f := parseDocx(t, data)

	var sect *docx.SectPr
	for _, item := range f.Document.Body.Items {
		if s, ok := item.(*docx.SectPr); ok {
			sect = s
		}
	}
	require.NotNil(t, sect)
	require.NotNil(t, sect.PgSz)
	assert.Equal(t, 12240, sect.PgSz.W)
	assert.Equal(t, 15840, sect.PgSz.H)
	require.NotNil(t, sect.PgMar)
	assert.Equal(t, 720, sect.PgMar.Left)
	assert.Equal(t, 720, sect.PgMar.Top)
}

func TestRenderDocx_HeaderAndContactLine(t *testing.T) {
	data, err := RenderDocx(types.DemoDocument())
	require.NoError(t, err)
	f := parseDocx(t, data)

	paras := bodyParagraphs(f)
	require.NotEmpty(t, paras)
	assert.Equal(t, "Jake Ryan", paras[0].String())
	runs := paragraphRuns(paras[0])
	require.Len(t, runs, 1)
	assert.NotNil(t, runs[0].RunProperties.Bold)
	assert.Equal(t, "44", runs[0].RunProperties.Size.Val)

	assert.Equal(t, "123-456-7890 | jake@su.edu | linkedin.com/in/jake | github.com/jake", paras[1].String())
}

func TestRenderDocx_TwoColumnRows(t *testing.T) {
	data, err := RenderDocx(types.DemoDocument())
	require.NoError(t, err)
	f := parseDocx(t, data)

	rows := tableRows(f)
	assert.Contains(t, rows, [2]string{"Southwestern University", "Georgetown, TX"})
	assert.Contains(t, rows, [2]string{"Undergraduate Research Assistant", "June 2020 -- Present"})
	assert.Contains(t, rows, [2]string{"Texas A&M University", "College Station, TX"})
	assert.Contains(t, rows, [2]string{"Gitlytics | Python, Flask, React, PostgreSQL, Docker", "June 2020 -- Present"})
}

func TestRenderDocx_BulletRuns(t *testing.T) {
	doc := experienceDoc(types.Bullets{{
		{Text: "- Built X"},
		{Text: " in Y", Italic: true, FG: "#ff0000"},
	}})

	data, err := RenderDocx(doc)
	require.NoError(t, err)
	f := parseDocx(t, data)

	p := findParagraph(f, "Built X")
	require.NotNil(t, p)
	assert.Equal(t, "•\tBuilt X in Y", p.String())

	runs := paragraphRuns(p)
	var italic *docx.Run
	for _, r := range runs {
		if runText(r) == " in Y" {
			italic = r
		}
	}
	require.NotNil(t, italic)
	assert.NotNil(t, italic.RunProperties.Italic)
	require.NotNil(t, italic.RunProperties.Color)
	assert.Equal(t, "FF0000", italic.RunProperties.Color.Val)
}

func TestRenderDocx_UniformBackgroundHoisted(t *testing.T) {
	doc := experienceDoc(types.Bullets{{
		{Text: "Shaded ", BG: "#ffff00"},
		{Text: "bullet", Bold: true, BG: "#FFFF00"},
	}})

	data, err := RenderDocx(doc)
	require.NoError(t, err)
	f := parseDocx(t, data)

	p := findParagraph(f, "Shaded bullet")
	require.NotNil(t, p)
	require.NotNil(t, p.Properties)
	require.NotNil(t, p.Properties.Shade)
	assert.Equal(t, "FFFF00", p.Properties.Shade.Fill)
	for _, r := range paragraphRuns(p) {
		assert.Nil(t, r.RunProperties.Shade, runText(r))
	}
}

func TestRenderDocx_MixedBackgroundPerRun(t *testing.T) {
	doc := experienceDoc(types.Bullets{{
		{Text: "Shaded ", BG: "#ffff00"},
		{Text: "plain"},
	}})

	data, err := RenderDocx(doc)
	require.NoError(t, err)
	f := parseDocx(t, data)

	p := findParagraph(f, "Shaded plain")
	require.NotNil(t, p)
	if p.Properties != nil {
		assert.Nil(t, p.Properties.Shade)
	}
	var shaded int
	for _, r := range paragraphRuns(p) {
		if r.RunProperties.Shade != nil {
			shaded++
			assert.Equal(t, "FFFF00", r.RunProperties.Shade.Fill)
		}
	}
	assert.Equal(t, 1, shaded)
}

func TestRenderDocx_SkillsSingleParagraph(t *testing.T) {
	doc := &types.Document{Sections: []types.Section{{
		ID: "skills", Title: "Skills", Kind: types.KindSkills,
		Entries: []types.Entry{
			types.SkillEntry{Label: "Languages", Value: types.Text("Go, C")},
			types.SkillEntry{Label: "Tools", Value: types.Text("Git")},
		},
	}}}

	data, err := RenderDocx(doc)
	require.NoError(t, err)
	f := parseDocx(t, data)

	p := findParagraph(f, "Languages")
	require.NotNil(t, p)
	assert.Equal(t, "Languages: Go, C\nTools: Git", p.String())
}

func TestRenderDocx_SizeAndFont(t *testing.T) {
	doc := experienceDoc(types.Bullets{{{Text: "code", Font: "Courier", Size: 9}}})

	data, err := RenderDocx(doc)
	require.NoError(t, err)
	f := parseDocx(t, data)

	p := findParagraph(f, "code")
	require.NotNil(t, p)
	runs := paragraphRuns(p)
	last := runs[len(runs)-1]
	assert.Equal(t, "code", runText(last))
	assert.Equal(t, "18", last.RunProperties.Size.Val)
	require.NotNil(t, last.RunProperties.Fonts)
	assert.Equal(t, "Courier New", last.RunProperties.Fonts.ASCII)
}
