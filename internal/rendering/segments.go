package rendering

import (
	"strconv"
	"strings"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

// FontClass is the builtin family a segment font name maps to.
type FontClass int

const (
	FontSerif FontClass = iota
	FontSans
	FontMono
)

// ClassifyFont maps a free-form family name onto a builtin family. Unknown and
// empty names fall back to serif.
func ClassifyFont(name string) FontClass {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "courier"), strings.Contains(n, "mono"):
		return FontMono
	case strings.Contains(n, "arial"), strings.Contains(n, "helvetica"), strings.Contains(n, "sans"):
		return FontSans
	}
	return FontSerif
}

// docxFamily is the font name written into word-processor runs.
func docxFamily(c FontClass) string {
	switch c {
	case FontMono:
		return "Courier New"
	case FontSans:
		return "Arial"
	}
	return "Times New Roman"
}

// cssFamily is the font stack used in the print document.
func cssFamily(c FontClass) string {
	switch c {
	case FontMono:
		return `Courier, 'Courier New', monospace`
	case FontSans:
		return `Helvetica, Arial, sans-serif`
	}
	return `'Times New Roman', Times, serif`
}

var bulletPrefixes = []string{"- ", "– ", "— ", "• ", "* "}

// StripBulletPrefix removes a typed bullet glyph or dash from the start of the
// first non-empty segment. Renderers draw their own bullet, so a typed one would
// appear twice. The input is not modified.
func StripBulletPrefix(segs types.Segments) types.Segments {
	out := segs.Clone()
	for i, s := range out {
		if s.Text == "" {
			continue
		}
		lead := strings.TrimLeft(s.Text, " \t")
		for _, p := range bulletPrefixes {
			if !strings.HasPrefix(lead, p) {
				continue
			}
			rest := strings.TrimLeft(lead[len(p):], " ")
			if rest == "" {
				return append(out[:i], out[i+1:]...)
			}
			out[i].Text = rest
			return out
		}
		return out
	}
	return out
}

// visible drops empty segments.
func visible(segs types.Segments) types.Segments {
	out := make(types.Segments, 0, len(segs))
	for _, s := range segs {
		if s.Text != "" {
			out = append(out, s)
		}
	}
	return out
}

// UniformBackground returns the background shared by every non-empty segment,
// if there is one and it is a valid color.
func UniformBackground(segs types.Segments) (string, bool) {
	shared := ""
	for i, s := range visible(segs) {
		c, ok := types.NormalizeColor(s.BG)
		if !ok {
			return "", false
		}
		if i == 0 {
			shared = c
			continue
		}
		if c != shared {
			return "", false
		}
	}
	return shared, shared != ""
}

// rgb splits a valid color into 0..1 channels.
func rgb(color string) (r, g, b float64, ok bool) {
	c, ok := types.NormalizeColor(color)
	if !ok {
		return 0, 0, 0, false
	}
	var v [3]float64
	for i := range v {
		n, err := strconv.ParseUint(c[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return 0, 0, 0, false
		}
		v[i] = float64(n) / 255.0
	}
	return v[0], v[1], v[2], true
}

// skillLines pairs each skill label with its prepared value segments.
type skillLine struct {
	Label string
	Value types.Segments
}

func skillLines(entries []types.Entry) []skillLine {
	var out []skillLine
	for _, e := range entries {
		if s, ok := e.(types.SkillEntry); ok {
			out = append(out, skillLine{Label: s.Label, Value: visible(StripBulletPrefix(s.Value))})
		}
	}
	return out
}
