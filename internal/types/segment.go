// Package types defines the résumé document model shared by the editor, loader and renderers.
package types

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Segment is a maximal run of text sharing one style.
type Segment struct {
	Text      string `json:"text"`
	Bold      bool   `json:"b,omitempty"`
	Italic    bool   `json:"i,omitempty"`
	Underline bool   `json:"u,omitempty"`
	Font      string `json:"font,omitempty"`
	Size      int    `json:"size,omitempty"`
	FG        string `json:"fg,omitempty"`
	BG        string `json:"bg,omitempty"`
}

// SameStyle reports whether two segments carry an identical style tuple.
func (s Segment) SameStyle(o Segment) bool {
	return s.Bold == o.Bold &&
		s.Italic == o.Italic &&
		s.Underline == o.Underline &&
		s.Font == o.Font &&
		s.Size == o.Size &&
		s.FG == o.FG &&
		s.BG == o.BG
}

// Segments is an ordered list of styled runs. A nil list marshals as [].
type Segments []Segment

// MarshalJSON emits [] for a nil list so saved files never carry null bodies.
func (s Segments) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Segment(s))
}

// PlainText concatenates the text of every segment.
func (s Segments) PlainText() string {
	var sb strings.Builder
	for _, seg := range s {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// Clone returns a copy that shares no backing array with s.
func (s Segments) Clone() Segments {
	if s == nil {
		return Segments{}
	}
	out := make(Segments, len(s))
	copy(out, s)
	return out
}

// IsCanonical reports whether s has no empty-text segments and no two adjacent
// segments with the same style.
func (s Segments) IsCanonical() bool {
	for i, seg := range s {
		if seg.Text == "" {
			return false
		}
		if i > 0 && s[i-1].SameStyle(seg) {
			return false
		}
	}
	return true
}

// Bullets is an ordered list of bullets, each one list item's segments.
type Bullets []Segments

// MarshalJSON emits [] for a nil list.
func (b Bullets) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Segments(b))
}

// Clone deep-copies every bullet.
func (b Bullets) Clone() Bullets {
	out := make(Bullets, len(b))
	for i, bullet := range b {
		out[i] = bullet.Clone()
	}
	return out
}

// Text builds a single unstyled segment list, or an empty list for "".
func Text(s string) Segments {
	if s == "" {
		return Segments{}
	}
	return Segments{{Text: s}}
}

// Placeholder is the single empty segment the editor keeps in a blank bullet.
func Placeholder() Segments {
	return Segments{{Text: ""}}
}

var colorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// NormalizeColor returns c as lowercase #rrggbb. The second result is false when c
// is not a six-digit hex color.
func NormalizeColor(c string) (string, bool) {
	m := colorPattern.FindStringSubmatch(strings.TrimSpace(c))
	if m == nil {
		return "", false
	}
	return "#" + strings.ToLower(m[1]), true
}
