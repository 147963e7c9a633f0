package rendering

import (
	"archive/zip"
	"bytes"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fumiama/go-docx"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

// Word-processor page geometry, in twips.
const (
	docxPageWidth   = 12240
	docxPageHeight  = 15840
	docxMargin      = 720
	docxLeftColumn  = 7632
	docxRightColumn = 3168
	docxIndent      = 216
	docxHanging     = 180
)

// Font sizes, in half-points.
const (
	docxBodySize    = 21
	docxNameSize    = 44
	docxContactSize = 19
	docxTitleSize   = 22
)

const docxBulletGlyph = "•"

// RenderDocx lays doc out as a Letter-size word-processor document and
// returns the packaged file.
func RenderDocx(doc *types.Document) ([]byte, error) {
	if doc == nil {
		return nil, &RenderError{Message: "document is nil"}
	}

	w := &docxWriter{f: docx.New().WithDefaultTheme()}
	w.header(doc.Header)
	for _, sec := range doc.Sections {
		w.section(sec)
	}
	w.f.Document.Body.Items = append(w.f.Document.Body.Items, &docx.SectPr{
		PgSz: &docx.PgSz{W: docxPageWidth, H: docxPageHeight},
		PgMar: &docx.PgMar{
			Top: docxMargin, Left: docxMargin, Bottom: docxMargin, Right: docxMargin,
			Header: docxMargin, Footer: docxMargin,
		},
	})

	var buf bytes.Buffer
	if _, err := w.f.WriteTo(&buf); err != nil {
		return nil, &RenderError{Message: "failed to package document", Cause: err}
	}
	out, err := repackDocx(buf.Bytes())
	if err != nil {
		return nil, &RenderError{Message: "failed to package document", Cause: err}
	}
	return out, nil
}

// docxModified stamps every part so identical documents package to identical
// bytes.
var docxModified = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

const docxContentTypes = "[Content_Types].xml"

// repackDocx rewrites the archive with its parts in a fixed order:
// [Content_Types].xml first, then by name.
func repackDocx(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	files := append([]*zip.File(nil), zr.File...)
	sort.Slice(files, func(i, j int) bool {
		a, b := files[i].Name, files[j].Name
		if (a == docxContentTypes) != (b == docxContentTypes) {
			return a == docxContentTypes
		}
		return a < b
	})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: f.Name, Method: zip.Deflate, Modified: docxModified})
		if err != nil {
			return nil, err
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		_, err = io.Copy(w, rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type docxWriter struct {
	f *docx.Docx
}

func (w *docxWriter) header(h types.Header) {
	if name := strings.TrimSpace(h.Name); name != "" {
		p := w.f.AddParagraph().Justification("center")
		textRun(p, name, docxNameSize).Bold()
	}

	items := ContactItems(h)
	p := w.f.AddParagraph().Justification("center")
	if len(items) == 0 {
		return
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.Text
	}
	textRun(p, strings.Join(parts, " | "), docxContactSize)
}

func (w *docxWriter) section(sec types.Section) {
	if title := strings.TrimSpace(sec.Title); title != "" {
		p := w.f.AddParagraph()
		p.Properties = &docx.ParagraphProperties{Spacing: &docx.Spacing{Before: 120}}
		textRun(p, title, docxTitleSize).Bold()
	}

	layout := layoutOf(sec.Kind)
	if layout == types.KindSkills {
		w.skills(skillLines(sec.Entries))
		return
	}

	for _, e := range sec.Entries {
		switch v := e.(type) {
		case types.EducationEntry:
			if layout != types.KindEducation {
				continue
			}
			w.twoColumn(plainCell(v.School, true, false), v.Location, false)
			w.twoColumn(plainCell(v.Degree, false, true), v.Dates, true)
			w.bullet(v.Body)
			w.spacer()
		case types.ExperienceEntry:
			if layout != types.KindExperience {
				continue
			}
			w.twoColumn(plainCell(v.Role, true, false), v.Dates, false)
			w.twoColumn(plainCell(v.Org, false, true), v.Location, true)
			for _, b := range v.Bullets {
				w.bullet(b)
			}
			w.spacer()
		case types.ProjectEntry:
			if layout != types.KindProjects {
				continue
			}
			w.twoColumn(projectCell(v), v.Dates, false)
			for _, b := range v.Bullets {
				w.bullet(b)
			}
			w.spacer()
		case types.CustomEntry:
			if layout != types.KindCustom {
				continue
			}
			if t := strings.TrimSpace(v.Title); t != "" {
				p := w.f.AddParagraph()
				indent(p, docxIndent, 0)
				textRun(p, t, docxBodySize).Bold()
			}
			if body := visible(StripBulletPrefix(v.Body)); len(body) > 0 {
				p := w.f.AddParagraph()
				indent(p, docxIndent, 0)
				addSegmentRuns(p, body, hoistShade(p, body))
			}
			w.spacer()
		}
	}
}

// plainCell is the left cell of a heading row drawn from plain text.
func plainCell(text string, bold, italic bool) types.Segments {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil
	}
	return types.Segments{{Text: t, Bold: bold, Italic: italic}}
}

// projectCell is "Title | Stack" with a bold title and an italic stack.
func projectCell(p types.ProjectEntry) types.Segments {
	var segs types.Segments
	if t := strings.TrimSpace(p.Title); t != "" {
		segs = append(segs, types.Segment{Text: t, Bold: true})
	}
	if s := strings.TrimSpace(p.Stack); s != "" {
		if len(segs) > 0 {
			segs = append(segs, types.Segment{Text: " | "})
		}
		segs = append(segs, types.Segment{Text: s, Italic: true})
	}
	return segs
}

// twoColumn adds a borderless one-row table with left runs and right-aligned text.
func (w *docxWriter) twoColumn(left types.Segments, right string, rightItalic bool) {
	tbl := w.f.AddTableTwips([]int64{0}, []int64{docxLeftColumn, docxRightColumn}, docxLeftColumn+docxRightColumn, nil)
	none := &docx.WTableBorder{Val: "none"}
	tbl.TableProperties.TableBorders = &docx.WTableBorders{
		Top: none, Left: none, Bottom: none, Right: none, InsideH: none, InsideV: none,
	}

	cells := tbl.TableRows[0].TableCells
	lp := cells[0].AddParagraph().Justification("left")
	addSegmentRuns(lp, left, false)

	rp := cells[1].AddParagraph().Justification("right")
	if r := strings.TrimSpace(right); r != "" {
		run := textRun(rp, r, docxBodySize)
		if rightItalic {
			run.Italic()
		}
	}
}

// bullet adds an indented paragraph led by a bullet glyph. Bullets without
// visible text are skipped.
func (w *docxWriter) bullet(segs types.Segments) {
	body := visible(StripBulletPrefix(segs))
	if len(body) == 0 {
		return
	}
	p := w.f.AddParagraph()
	indent(p, docxIndent+docxHanging, docxHanging)
	hoisted := hoistShade(p, body)
	textRun(p, docxBulletGlyph, docxBodySize)
	p.AddTab()
	addSegmentRuns(p, body, hoisted)
}

// skills draws every line of a skills section in one paragraph separated by breaks.
func (w *docxWriter) skills(lines []skillLine) {
	p := w.f.AddParagraph()
	indent(p, docxIndent, 0)
	first := true
	for _, l := range lines {
		label := strings.TrimSpace(l.Label)
		if label == "" && len(l.Value) == 0 {
			continue
		}
		if !first {
			p.AddText("\n")
		}
		first = false
		if label != "" {
			textRun(p, label, docxBodySize).Bold()
			textRun(p, ": ", docxBodySize)
		}
		addSegmentRuns(p, l.Value, false)
	}
}

func (w *docxWriter) spacer() {
	spaceAfter(w.f.AddParagraph(), 60)
}

func indent(p *docx.Paragraph, left, hanging int) {
	if p.Properties == nil {
		p.Properties = &docx.ParagraphProperties{}
	}
	p.Properties.Ind = &docx.Ind{Left: left, Hanging: hanging}
}

// spaceAfter sets the gap after p. go-docx only models the space before a
// paragraph, so the gap is carried by an exact line height instead.
func spaceAfter(p *docx.Paragraph, twips int) {
	if p.Properties == nil {
		p.Properties = &docx.ParagraphProperties{}
	}
	p.Properties.Spacing = &docx.Spacing{Line: twips, LineRule: "exact"}
}

// hoistShade moves a background shared by every run onto the paragraph.
func hoistShade(p *docx.Paragraph, segs types.Segments) bool {
	bg, ok := UniformBackground(segs)
	if !ok {
		return false
	}
	if p.Properties == nil {
		p.Properties = &docx.ParagraphProperties{}
	}
	p.Properties.Shade = &docx.Shade{Val: "clear", Color: "auto", Fill: docxColor(bg)}
	return true
}

// textRun adds a serif run of plain text.
func textRun(p *docx.Paragraph, text string, halfPoints int) *docx.Run {
	family := docxFamily(FontSerif)
	r := p.AddText(text).Font(family, family, family, "").Size(strconv.Itoa(halfPoints))
	preserveSpace(r)
	return r
}

// addSegmentRuns adds one run per visible segment. Per-run shading is
// skipped when the paragraph already carries the background.
func addSegmentRuns(p *docx.Paragraph, segs types.Segments, hoisted bool) {
	for _, s := range segs {
		if s.Text == "" {
			continue
		}
		family := docxFamily(ClassifyFont(s.Font))
		size := docxBodySize
		if s.Size > 0 {
			size = s.Size * 2
		}
		r := p.AddText(s.Text).Font(family, family, family, "").Size(strconv.Itoa(size))
		preserveSpace(r)
		if s.Bold {
			r.Bold()
		}
		if s.Italic {
			r.Italic()
		}
		if s.Underline {
			r.Underline("single")
		}
		if c, ok := types.NormalizeColor(s.FG); ok {
			r.Color(docxColor(c))
		}
		if c, ok := types.NormalizeColor(s.BG); ok && !hoisted {
			r.Shade("clear", "auto", docxColor(c))
		}
	}
}

// preserveSpace keeps leading and trailing blanks of the run's text.
func preserveSpace(r *docx.Run) {
	for _, c := range r.Children {
		if t, ok := c.(*docx.Text); ok {
			t.XMLSpace = "preserve"
		}
	}
}

// docxColor is a normalized #rrggbb color in the form run properties expect.
func docxColor(c string) string {
	return strings.ToUpper(strings.TrimPrefix(c, "#"))
}
