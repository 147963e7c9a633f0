package rendering

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"
	"text/template"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

//go:embed templates/resume.tex.tmpl
var defaultLaTeXTemplate string

// LaTeX templates use << >> as action delimiters so that TeX braces never
// collide with template syntax.
const (
	leftDelim  = "<<"
	rightDelim = ">>"
)

// TemplateData is the value a LaTeX template is executed with. Every string
// is already escaped or marked up.
type TemplateData struct {
	Name     string
	Contact  string
	Sections []TemplateSection
}

// TemplateSection is one \section of the output. Layout is the built-in kind
// the section is drawn as; unknown kinds are drawn as custom.
type TemplateSection struct {
	Title   string
	Layout  string
	Entries []TemplateEntry
}

// TemplateEntry is one entry of a section. Cells carries the heading cells in
// output order (two for projects, four otherwise). Title and Body are used by
// skills and custom sections. More is set on every skills line but the last.
type TemplateEntry struct {
	Cells []string
	Items []string
	Title string
	Body  string
	More  bool
}

// RenderLaTeX renders doc with the built-in résumé template.
func RenderLaTeX(doc *types.Document) (string, error) {
	return RenderLaTeXWithTemplate(doc, "")
}

// RenderLaTeXWithTemplate renders doc with the template at templatePath, or
// with the built-in template when templatePath is empty.
func RenderLaTeXWithTemplate(doc *types.Document, templatePath string) (string, error) {
	if doc == nil {
		return "", &RenderError{Message: "document is nil"}
	}

	var (
		tmpl *template.Template
		err  error
	)
	if templatePath == "" {
		tmpl, err = newTemplate(defaultLaTeXTemplate)
	} else {
		tmpl, err = parseTemplate(templatePath)
	}
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, buildTemplateData(doc)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// parseTemplate reads and parses a LaTeX template file
func parseTemplate(templatePath string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}
	return newTemplate(string(content))
}

func newTemplate(content string) (*template.Template, error) {
	tmpl, err := template.New("resume").Delims(leftDelim, rightDelim).Funcs(template.FuncMap{
		"escape":   EscapeLaTeX,
		"segments": SegmentsToLaTeX,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// buildTemplateData escapes the header and lays out every section
func buildTemplateData(doc *types.Document) *TemplateData {
	data := &TemplateData{
		Name:     EscapeLaTeX(doc.Header.Name),
		Contact:  latexContact(doc.Header),
		Sections: make([]TemplateSection, 0, len(doc.Sections)),
	}
	for _, sec := range doc.Sections {
		data.Sections = append(data.Sections, latexSection(sec))
	}
	return data
}

func latexContact(h types.Header) string {
	items := ContactItems(h)
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if it.Href == "" {
			parts = append(parts, EscapeLaTeX(it.Text))
			continue
		}
		parts = append(parts, fmt.Sprintf(`\href{%s}{\underline{%s}}`, escapeHref(it.Href), EscapeLaTeX(it.Text)))
	}
	return strings.Join(parts, " $|$ ")
}

// escapeHref escapes the characters hyperref cannot take verbatim in a URL.
func escapeHref(href string) string {
	var b strings.Builder
	for _, r := range href {
		switch r {
		case '%', '#', '&', '{', '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\\':
			b.WriteString("%5C")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// layoutOf is the built-in kind a section is drawn as.
func layoutOf(k types.Kind) types.Kind {
	if k.Known() {
		return k
	}
	return types.KindCustom
}

func latexSection(sec types.Section) TemplateSection {
	layout := layoutOf(sec.Kind)
	out := TemplateSection{
		Title:  EscapeLaTeX(sec.Title),
		Layout: string(layout),
	}
	for _, e := range sec.Entries {
		switch v := e.(type) {
		case types.EducationEntry:
			if layout != types.KindEducation {
				continue
			}
			out.Entries = append(out.Entries, TemplateEntry{
				Cells: escapeAll(v.School, v.Location, v.Degree, v.Dates),
				Items: latexItems(types.Bullets{v.Body}),
			})
		case types.ExperienceEntry:
			if layout != types.KindExperience {
				continue
			}
			out.Entries = append(out.Entries, TemplateEntry{
				Cells: escapeAll(v.Role, v.Dates, v.Org, v.Location),
				Items: latexItems(v.Bullets),
			})
		case types.ProjectEntry:
			if layout != types.KindProjects {
				continue
			}
			left := fmt.Sprintf(`\textbf{%s} $|$ \emph{%s}`, EscapeLaTeX(v.Title), EscapeLaTeX(v.Stack))
			out.Entries = append(out.Entries, TemplateEntry{
				Cells: []string{left, EscapeLaTeX(v.Dates)},
				Items: latexItems(v.Bullets),
			})
		case types.CustomEntry:
			if layout != types.KindCustom {
				continue
			}
			out.Entries = append(out.Entries, TemplateEntry{
				Title: EscapeLaTeX(v.Title),
				Body:  SegmentsToLaTeX(StripBulletPrefix(v.Body)),
			})
		}
	}
	if layout == types.KindSkills {
		lines := skillLines(sec.Entries)
		for i, l := range lines {
			out.Entries = append(out.Entries, TemplateEntry{
				Title: EscapeLaTeX(l.Label),
				Body:  SegmentsToLaTeX(l.Value),
				More:  i < len(lines)-1,
			})
		}
	}
	return out
}

func escapeAll(fields ...string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = EscapeLaTeX(f)
	}
	return out
}

// latexItems renders each bullet that has visible text.
func latexItems(bullets types.Bullets) []string {
	var items []string
	for _, b := range bullets {
		if m := SegmentsToLaTeX(StripBulletPrefix(b)); m != "" {
			items = append(items, m)
		}
	}
	return items
}

// SegmentsToLaTeX marks up styled runs. Empty runs are skipped and invalid
// colors are ignored.
func SegmentsToLaTeX(segs types.Segments) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Text == "" {
			continue
		}
		t := EscapeLaTeX(s.Text)
		if s.Italic {
			t = `\emph{` + t + `}`
		}
		if s.Underline {
			t = `\underline{` + t + `}`
		}
		if s.Bold {
			t = `\textbf{` + t + `}`
		}
		switch ClassifyFont(s.Font) {
		case FontSans:
			t = `{\sffamily ` + t + `}`
		case FontMono:
			t = `{\ttfamily ` + t + `}`
		}
		if r, g, bl, ok := rgb(s.FG); ok {
			t = fmt.Sprintf(`\textcolor[rgb]{%.3f,%.3f,%.3f}{%s}`, r, g, bl, t)
		}
		if r, g, bl, ok := rgb(s.BG); ok {
			t = fmt.Sprintf(`\colorbox[rgb]{%.3f,%.3f,%.3f}{%s}`, r, g, bl, t)
		}
		if s.Size > 0 {
			baseline := int(math.Max(math.Round(float64(s.Size)*1.2), float64(s.Size+1)))
			t = fmt.Sprintf(`{\fontsize{%d}{%d}\selectfont %s}`, s.Size, baseline, t)
		}
		b.WriteString(t)
	}
	return b.String()
}
