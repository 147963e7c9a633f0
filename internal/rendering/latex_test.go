package rendering

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func experienceDoc(bullets types.Bullets) *types.Document {
	return &types.Document{
		Header: types.Header{Name: "Ada Lovelace"},
		Sections: []types.Section{{
			ID: "experience", Title: "Experience", Kind: types.KindExperience,
			Entries: []types.Entry{types.ExperienceEntry{
				Role: "Engineer", Dates: "2020 -- 2021", Org: "Analytical Co", Location: "London",
				Bullets: bullets,
			}},
		}},
	}
}

func TestParseTemplate_ValidTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "test.tex")
	templateContent := `\documentclass{article}
\begin{document}
Name: <<.Name>>
\end{document}`
	err := os.WriteFile(templatePath, []byte(templateContent), 0644)
	require.NoError(t, err)

	tmpl, err := parseTemplate(templatePath)
	require.NoError(t, err)
	assert.NotNil(t, tmpl)
}

func TestParseTemplate_InvalidPath(t *testing.T) {
	_, err := parseTemplate("/nonexistent/template.tex")
	assert.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestParseTemplate_InvalidTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "invalid.tex")
	templateContent := `\documentclass{article}
\begin{document}
<<.InvalidSyntax<<>>
\end{document}`
	err := os.WriteFile(templatePath, []byte(templateContent), 0644)
	require.NoError(t, err)

	_, err = parseTemplate(templatePath)
	assert.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
}

func TestRenderLaTeX_NilDocument(t *testing.T) {
	_, err := RenderLaTeX(nil)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRenderLaTeX_ItalicRunInBullet(t *testing.T) {
	doc := experienceDoc(types.Bullets{{
		{Text: "Built X"},
		{Text: " in Y", Italic: true},
	}})

	out, err := RenderLaTeX(doc)
	require.NoError(t, err)

	assert.Contains(t, out, `\resumeItem{Built X\emph{ in Y}}`)
	assert.Contains(t, out, "Built X")
	assert.Contains(t, out, `\emph{ in Y}`)
}

func TestRenderLaTeX_PreambleAndClosing(t *testing.T) {
	out, err := RenderLaTeX(types.NewDocument())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "%-------------------------\n% Resume in Latex\n"))
	assert.Contains(t, out, `\newcommand{\resumeSubheading}[4]{`)
	assert.Contains(t, out, `\begin{document}`)
	assert.True(t, strings.HasSuffix(out, "%-------------------------------------------\n\\end{document}\n"))
	assert.Equal(t, 1, strings.Count(out, `\begin{document}`))
}

func TestRenderLaTeX_Header(t *testing.T) {
	doc := types.NewDocument()
	doc.Header = types.Header{
		Name:         "Jake & Co",
		Phone:        "123-456-7890",
		Email:        "jake_r@su.edu",
		LinkedInKind: "LinkedIn",
		LinkedIn:     "linkedin.com/in/jake",
		GitHubKind:   "None",
		GitHub:       "https://github.com/jake",
	}

	out, err := RenderLaTeX(doc)
	require.NoError(t, err)

	assert.Contains(t, out, `\textbf{\Huge \scshape Jake \& Co} \\ \vspace{1pt}`)
	assert.Contains(t, out, `\small 123-456-7890 $|$ \href{mailto:jake_r@su.edu}{\underline{jake\_r@su.edu}} $|$ \href{https://linkedin.com/in/jake}{\underline{linkedin.com/in/jake}}`)
	assert.NotContains(t, out, "github.com")
}

func TestRenderLaTeX_EmptyContactLine(t *testing.T) {
	out, err := RenderLaTeX(types.NewDocument())
	require.NoError(t, err)
	assert.Contains(t, out, "    \\small\n\\end{center}")
}

func TestRenderLaTeX_SectionLayouts(t *testing.T) {
	out, err := RenderLaTeX(types.DemoDocument())
	require.NoError(t, err)

	assert.Contains(t, out, "\\section{Education}\n  \\resumeSubHeadingListStart\n    \\resumeSubheading\n      {Southwestern University}{Georgetown, TX}\n      {Bachelor of Arts in Computer Science, Minor in Business}{Aug. 2018 -- May 2021}")
	assert.Contains(t, out, "{Undergraduate Research Assistant}{June 2020 -- Present}\n      {Texas A\\&M University}{College Station, TX}\n      \\resumeItemListStart\n        \\resumeItem{Developed a REST API")
	assert.Contains(t, out, `\resumeProjectHeading`)
	assert.Contains(t, out, `\resumeItem{Explored methods to generate video game dungeons based off of \emph{The Legend of Zelda}}`)
	assert.Contains(t, out, ` \begin{itemize}[leftmargin=0.15in, label={}]`)

	// Section order follows the document.
	edu := strings.Index(out, `\section{Education}`)
	exp := strings.Index(out, `\section{Experience}`)
	proj := strings.Index(out, `\section{Projects}`)
	require.True(t, edu > 0 && exp > edu && proj > exp)
}

func TestRenderLaTeX_SkillsJoinedWithLineBreaks(t *testing.T) {
	doc := &types.Document{Sections: []types.Section{{
		ID: "skills", Title: "Skills", Kind: types.KindSkills,
		Entries: []types.Entry{
			types.SkillEntry{Label: "Languages", Value: types.Text("Go, C")},
			types.SkillEntry{Label: "Tools", Value: types.Text("Git")},
		},
	}}}

	out, err := RenderLaTeX(doc)
	require.NoError(t, err)

	assert.Contains(t, out, "     \\textbf{Languages}{: Go, C} \\\\\n     \\textbf{Tools}{: Git}\n    }}")
}

func TestRenderLaTeX_CustomAndUnknownKinds(t *testing.T) {
	doc := &types.Document{Sections: []types.Section{
		{
			ID: "awards", Title: "Awards", Kind: types.KindCustom,
			Entries: []types.Entry{types.CustomEntry{Title: "Dean's List", Body: types.Text("Four semesters")}},
		},
		{
			ID: "talks", Title: "Talks", Kind: "talks",
			Entries: []types.Entry{types.CustomEntry{Title: "GopherCon", Body: types.Text("Lightning talk")}},
		},
	}}

	out, err := RenderLaTeX(doc)
	require.NoError(t, err)

	assert.Contains(t, out, "\\section{Awards}\n\\textbf{Dean's List}\\\\\nFour semesters\\\\\n")
	assert.Contains(t, out, "\\section{Talks}\n\\textbf{GopherCon}\\\\\nLightning talk\\\\\n")
}

func TestRenderLaTeX_StripsTypedBulletPrefix(t *testing.T) {
	doc := experienceDoc(types.Bullets{types.Text("• Shipped it"), types.Text("- Fixed it")})

	out, err := RenderLaTeX(doc)
	require.NoError(t, err)

	assert.Contains(t, out, `\resumeItem{Shipped it}`)
	assert.Contains(t, out, `\resumeItem{Fixed it}`)
}

func TestRenderLaTeX_SkipsEmptyBullets(t *testing.T) {
	doc := experienceDoc(types.Bullets{types.Placeholder()})

	out, err := RenderLaTeX(doc)
	require.NoError(t, err)

	assert.NotContains(t, out, `\resumeItem{}`)
}

func TestRenderLaTeX_Deterministic(t *testing.T) {
	doc := types.DemoDocument()
	a, err := RenderLaTeX(doc)
	require.NoError(t, err)
	b, err := RenderLaTeX(doc)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderLaTeXWithTemplate_CustomTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "mini.tex")
	content := `<<.Name>>|<<range .Sections>><<.Title>>;<<end>>|<<escape "50%">>`
	require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))

	doc := types.DemoDocument()
	out, err := RenderLaTeXWithTemplate(doc, templatePath)
	require.NoError(t, err)
	assert.Equal(t, `Jake Ryan|Education;Experience;Projects;Technical Skills;|50\%`, out)
}

func TestSegmentsToLaTeX_WrapOrder(t *testing.T) {
	segs := types.Segments{{
		Text: "x", Bold: true, Italic: true, Underline: true,
		FG: "#ff0000", BG: "#00ff00", Size: 10,
	}}
	assert.Equal(t,
		`{\fontsize{10}{12}\selectfont \colorbox[rgb]{0.000,1.000,0.000}{\textcolor[rgb]{1.000,0.000,0.000}{\textbf{\underline{\emph{x}}}}}}`,
		SegmentsToLaTeX(segs))
}

func TestSegmentsToLaTeX_Cases(t *testing.T) {
	tests := []struct {
		name string
		in   types.Segments
		want string
	}{
		{"empty", nil, ""},
		{"skips empty runs", types.Segments{{Text: ""}, {Text: "a"}}, "a"},
		{"escapes text", types.Segments{{Text: "100% & more"}}, `100\% \& more`},
		{"invalid color ignored", types.Segments{{Text: "a", FG: "red", BG: "#12"}}, "a"},
		{"sans family", types.Segments{{Text: "a", Font: "Arial"}}, `{\sffamily a}`},
		{"mono family", types.Segments{{Text: "a", Font: "Courier New"}}, `{\ttfamily a}`},
		{"unknown family is serif", types.Segments{{Text: "a", Font: "Papyrus"}}, "a"},
		{"small size baseline", types.Segments{{Text: "a", Size: 2}}, `{\fontsize{2}{3}\selectfont a}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SegmentsToLaTeX(tt.in))
		})
	}
}

func TestEscapeHref(t *testing.T) {
	assert.Equal(t, `https://x.dev/a\%20b\#top`, escapeHref("https://x.dev/a%20b#top"))
	assert.Equal(t, "https://x.dev/~me_1", escapeHref("https://x.dev/~me_1"))
}
