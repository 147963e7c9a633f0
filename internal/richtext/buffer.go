// Package richtext converts between an editable attributed text buffer and the
// canonical segment lists stored in a document.
package richtext

import (
	"fmt"
	"unicode/utf8"
)

// Dimension is one independent style axis of the buffer.
type Dimension int

const (
	DimFont Dimension = iota
	DimForeground
	DimBackground
)

// Font is a font descriptor. Family and Size hold the declared values; zero means
// "use the ambient default".
type Font struct {
	Family    string
	Size      int
	Bold      bool
	Italic    bool
	Underline bool
}

// Tag styles the half-open rune range [Start, End) along one dimension. Font is set
// for DimFont tags and Color for the two color dimensions.
type Tag struct {
	Dim   Dimension
	Start int
	End   int
	Font  *Font
	Color string
}

// Style is the effective style at one offset, with ambient defaults applied.
type Style struct {
	Font
	FG string
	BG string
}

// Buffer is an attributed text buffer. Tags in the same dimension may overlap;
// the most recently added tag that covers an offset wins.
type Buffer struct {
	text  []rune
	tags  []Tag
	codec *Codec
}

// NewBuffer returns an empty buffer whose descriptors come from codec.
func NewBuffer(codec *Codec) *Buffer {
	if codec == nil {
		codec = NewCodec("", 0)
	}
	return &Buffer{codec: codec}
}

// Text returns the buffer contents.
func (b *Buffer) Text() string { return string(b.text) }

// Len returns the length in runes.
func (b *Buffer) Len() int { return len(b.text) }

// Tags returns a copy of the buffer's tags in the order they were added.
func (b *Buffer) Tags() []Tag {
	out := make([]Tag, len(b.tags))
	copy(out, b.tags)
	return out
}

func (b *Buffer) checkRange(start, end int) error {
	if start < 0 || end > len(b.text) || start > end {
		return fmt.Errorf("range [%d,%d) outside buffer of length %d", start, end, len(b.text))
	}
	return nil
}

// AddTag layers a tag over the buffer. Empty ranges are ignored.
func (b *Buffer) AddTag(t Tag) error {
	if err := b.checkRange(t.Start, t.End); err != nil {
		return err
	}
	if t.Start == t.End {
		return nil
	}
	if t.Dim == DimFont && t.Font != nil {
		t.Font = b.codec.Font(*t.Font)
	}
	b.tags = append(b.tags, t)
	return nil
}

// Append adds text at the end of the buffer with the given style tags.
func (b *Buffer) Append(text string, font *Font, fg, bg string) {
	start := len(b.text)
	b.text = append(b.text, []rune(text)...)
	end := len(b.text)
	if start == end {
		return
	}
	if font != nil {
		b.tags = append(b.tags, Tag{Dim: DimFont, Start: start, End: end, Font: b.codec.Font(*font)})
	}
	if fg != "" {
		b.tags = append(b.tags, Tag{Dim: DimForeground, Start: start, End: end, Color: fg})
	}
	if bg != "" {
		b.tags = append(b.tags, Tag{Dim: DimBackground, Start: start, End: end, Color: bg})
	}
}

// Insert places text at offset. Tags strictly containing offset grow to cover it;
// tags at or after offset shift right.
func (b *Buffer) Insert(offset int, text string) error {
	if err := b.checkRange(offset, offset); err != nil {
		return err
	}
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return nil
	}
	runes := make([]rune, 0, len(b.text)+n)
	runes = append(runes, b.text[:offset]...)
	runes = append(runes, []rune(text)...)
	runes = append(runes, b.text[offset:]...)
	b.text = runes

	for i := range b.tags {
		t := &b.tags[i]
		switch {
		case t.Start >= offset:
			t.Start += n
			t.End += n
		case t.End > offset:
			t.End += n
		}
	}
	return nil
}

// Delete removes [start, end). Tags left empty are dropped.
func (b *Buffer) Delete(start, end int) error {
	if err := b.checkRange(start, end); err != nil {
		return err
	}
	n := end - start
	if n == 0 {
		return nil
	}
	b.text = append(b.text[:start], b.text[end:]...)

	shift := func(p int) int {
		switch {
		case p >= end:
			return p - n
		case p > start:
			return start
		}
		return p
	}
	kept := b.tags[:0]
	for _, t := range b.tags {
		t.Start, t.End = shift(t.Start), shift(t.End)
		if t.Start < t.End {
			kept = append(kept, t)
		}
	}
	b.tags = kept
	return nil
}

// clear removes one dimension's coverage of [start, end), splitting tags that
// straddle the range.
func (b *Buffer) clear(dim Dimension, start, end int) {
	out := make([]Tag, 0, len(b.tags))
	for _, t := range b.tags {
		if t.Dim != dim || t.End <= start || t.Start >= end {
			out = append(out, t)
			continue
		}
		if t.Start < start {
			left := t
			left.End = start
			out = append(out, left)
		}
		if t.End > end {
			right := t
			right.Start = end
			out = append(out, right)
		}
	}
	b.tags = out
}

// SetFont replaces the font descriptor over [start, end). A nil font clears it.
func (b *Buffer) SetFont(start, end int, font *Font) error {
	if err := b.checkRange(start, end); err != nil {
		return err
	}
	b.clear(DimFont, start, end)
	if font != nil && start < end {
		b.tags = append(b.tags, Tag{Dim: DimFont, Start: start, End: end, Font: b.codec.Font(*font)})
	}
	return nil
}

// SetForeground replaces the text color over [start, end). "" clears it.
func (b *Buffer) SetForeground(start, end int, color string) error {
	return b.setColor(DimForeground, start, end, color)
}

// SetBackground replaces the highlight color over [start, end). "" clears it.
func (b *Buffer) SetBackground(start, end int, color string) error {
	return b.setColor(DimBackground, start, end, color)
}

func (b *Buffer) setColor(dim Dimension, start, end int, color string) error {
	if err := b.checkRange(start, end); err != nil {
		return err
	}
	b.clear(dim, start, end)
	if color != "" && start < end {
		b.tags = append(b.tags, Tag{Dim: dim, Start: start, End: end, Color: color})
	}
	return nil
}

// UpdateFont rewrites the declared font of every run in [start, end) through fn,
// keeping run boundaries. This is how bold/italic/underline toggles and family or
// size changes are applied to a selection.
func (b *Buffer) UpdateFont(start, end int, fn func(Font) Font) error {
	if err := b.checkRange(start, end); err != nil {
		return err
	}
	type run struct {
		start, end int
		font       Font
	}
	var runs []run
	for i := start; i < end; i++ {
		f := b.declaredFont(i)
		if n := len(runs); n > 0 && runs[n-1].font == f {
			runs[n-1].end = i + 1
			continue
		}
		runs = append(runs, run{start: i, end: i + 1, font: f})
	}
	b.clear(DimFont, start, end)
	for _, r := range runs {
		nf := fn(r.font)
		b.tags = append(b.tags, Tag{Dim: DimFont, Start: r.start, End: r.end, Font: b.codec.Font(nf)})
	}
	return nil
}

// top returns the winning tag of a dimension at offset, or nil.
func (b *Buffer) top(dim Dimension, offset int) *Tag {
	for i := len(b.tags) - 1; i >= 0; i-- {
		t := &b.tags[i]
		if t.Dim == dim && t.Start <= offset && offset < t.End {
			return t
		}
	}
	return nil
}

func (b *Buffer) declaredFont(offset int) Font {
	if t := b.top(DimFont, offset); t != nil && t.Font != nil {
		return *t.Font
	}
	return Font{}
}

// StyleAt returns the effective style of the rune at offset. Missing family and
// size resolve to the codec's ambient defaults.
func (b *Buffer) StyleAt(offset int) (Style, error) {
	if offset < 0 || offset >= len(b.text) {
		return Style{}, fmt.Errorf("offset %d outside buffer of length %d", offset, len(b.text))
	}
	st := Style{Font: b.declaredFont(offset)}
	if st.Family == "" {
		st.Family = b.codec.DefaultFamily
	}
	if st.Size == 0 {
		st.Size = b.codec.DefaultSize
	}
	if t := b.top(DimForeground, offset); t != nil {
		st.FG = t.Color
	}
	if t := b.top(DimBackground, offset); t != nil {
		st.BG = t.Color
	}
	return st, nil
}
