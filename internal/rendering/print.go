package rendering

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

//go:embed templates/print.html.tmpl
var printTemplateText string

var printTemplate = template.Must(template.New("print").Parse(printTemplateText))

// Font sizes of the right cell of a two-column row, in points.
const (
	printBodySize  = 10.5
	printMinorSize = 9.8
)

type printData struct {
	Name     string
	Contact  []ContactItem
	Sections []printSection
}

type printSection struct {
	Title   string
	Layout  string
	Entries []printEntry
	Skills  []printSkill
}

type printEntry struct {
	Rows    []printRow
	Title   string
	Body    *printBlock
	Bullets []printBlock
}

// printRow is a two-column heading line. Width sizes the right cell.
type printRow struct {
	Left  template.HTML
	Right string
	Minor bool
	Width template.CSS
}

// printBlock is a paragraph or list item. Style carries a hoisted background.
type printBlock struct {
	Markup template.HTML
	Style  template.CSS
}

type printSkill struct {
	Label string
	Value template.HTML
}

// RenderPrintHTML lays doc out as a standalone Letter-size HTML page ready to
// be printed to PDF.
func RenderPrintHTML(doc *types.Document) (string, error) {
	if doc == nil {
		return "", &RenderError{Message: "document is nil"}
	}

	data := printData{
		Name:     strings.TrimSpace(doc.Header.Name),
		Contact:  ContactItems(doc.Header),
		Sections: make([]printSection, 0, len(doc.Sections)),
	}
	for _, sec := range doc.Sections {
		data.Sections = append(data.Sections, buildPrintSection(sec))
	}

	var out strings.Builder
	if err := printTemplate.Execute(&out, data); err != nil {
		return "", &TemplateError{Message: "failed to execute print template", Cause: err}
	}
	return out.String(), nil
}

func buildPrintSection(sec types.Section) printSection {
	layout := layoutOf(sec.Kind)
	out := printSection{
		Title:  strings.TrimSpace(sec.Title),
		Layout: string(layout),
	}

	if layout == types.KindSkills {
		for _, l := range skillLines(sec.Entries) {
			label := strings.TrimSpace(l.Label)
			if label == "" && len(l.Value) == 0 {
				continue
			}
			out.Skills = append(out.Skills, printSkill{
				Label: label,
				Value: template.HTML(SegmentsToMarkup(l.Value, false)),
			})
		}
		return out
	}

	for _, e := range sec.Entries {
		switch v := e.(type) {
		case types.EducationEntry:
			if layout != types.KindEducation {
				continue
			}
			out.Entries = append(out.Entries, printEntry{
				Rows: []printRow{
					newPrintRow(plainCell(v.School, true, false), v.Location, false),
					newPrintRow(plainCell(v.Degree, false, true), v.Dates, true),
				},
				Bullets: printBullets(types.Bullets{v.Body}),
			})
		case types.ExperienceEntry:
			if layout != types.KindExperience {
				continue
			}
			out.Entries = append(out.Entries, printEntry{
				Rows: []printRow{
					newPrintRow(plainCell(v.Role, true, false), v.Dates, false),
					newPrintRow(plainCell(v.Org, false, true), v.Location, true),
				},
				Bullets: printBullets(v.Bullets),
			})
		case types.ProjectEntry:
			if layout != types.KindProjects {
				continue
			}
			out.Entries = append(out.Entries, printEntry{
				Rows:    []printRow{newPrintRow(projectCell(v), v.Dates, false)},
				Bullets: printBullets(v.Bullets),
			})
		case types.CustomEntry:
			if layout != types.KindCustom {
				continue
			}
			entry := printEntry{Title: strings.TrimSpace(v.Title)}
			if b, ok := newPrintBlock(v.Body); ok {
				entry.Body = &b
			}
			out.Entries = append(out.Entries, entry)
		}
	}
	return out
}

func newPrintRow(left types.Segments, right string, minor bool) printRow {
	right = strings.TrimSpace(right)
	size := printBodySize
	if minor {
		size = printMinorSize
	}
	share := RightColumnShare(right, size, 0)
	return printRow{
		Left:  template.HTML(SegmentsToMarkup(left, false)),
		Right: right,
		Minor: minor,
		Width: template.CSS(fmt.Sprintf("width: %.2f%%", share*100)),
	}
}

func printBullets(bullets types.Bullets) []printBlock {
	var out []printBlock
	for _, b := range bullets {
		if blk, ok := newPrintBlock(b); ok {
			out = append(out, blk)
		}
	}
	return out
}

// newPrintBlock marks up a body or bullet. It reports false when nothing
// visible is left after the typed bullet prefix is stripped.
func newPrintBlock(segs types.Segments) (printBlock, bool) {
	body := visible(StripBulletPrefix(segs))
	if len(body) == 0 {
		return printBlock{}, false
	}
	bg, hoisted := UniformBackground(body)
	blk := printBlock{Markup: template.HTML(SegmentsToMarkup(body, hoisted))}
	if hoisted {
		blk.Style = template.CSS("background-color: " + bg)
	}
	return blk, true
}

// SegmentsToMarkup renders styled runs as inline HTML. Backgrounds are left
// out when the caller has hoisted them onto the enclosing block.
func SegmentsToMarkup(segs types.Segments, hoisted bool) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Text == "" {
			continue
		}
		t := EscapeMarkup(s.Text)
		if s.Underline {
			t = "<u>" + t + "</u>"
		}
		if s.Italic {
			t = "<i>" + t + "</i>"
		}
		if s.Bold {
			t = "<b>" + t + "</b>"
		}

		var css []string
		if strings.TrimSpace(s.Font) != "" {
			css = append(css, "font-family: "+cssFamily(ClassifyFont(s.Font)))
		}
		if s.Size > 0 {
			css = append(css, fmt.Sprintf("font-size: %dpt", s.Size))
		}
		if c, ok := types.NormalizeColor(s.FG); ok {
			css = append(css, "color: "+c)
		}
		if c, ok := types.NormalizeColor(s.BG); ok && !hoisted {
			css = append(css, "background-color: "+c)
		}
		if len(css) > 0 {
			t = `<span style="` + strings.Join(css, "; ") + `">` + t + "</span>"
		}
		b.WriteString(t)
	}
	return b.String()
}
