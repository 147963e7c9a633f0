package richtext

import (
	"sort"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

// Codec owns the font descriptor cache and the ambient defaults used when a
// segment leaves family or size unset.
type Codec struct {
	DefaultFamily string
	DefaultSize   int

	fonts map[Font]*Font
}

// NewCodec returns a codec with the given ambient font.
func NewCodec(defaultFamily string, defaultSize int) *Codec {
	return &Codec{
		DefaultFamily: defaultFamily,
		DefaultSize:   defaultSize,
		fonts:         make(map[Font]*Font),
	}
}

// Font returns the shared descriptor for key, creating it on first use.
func (c *Codec) Font(key Font) *Font {
	if f, ok := c.fonts[key]; ok {
		return f
	}
	f := &key
	c.fonts[key] = f
	return f
}

// cachedFonts returns the number of distinct descriptors created so far.
func (c *Codec) cachedFonts() int { return len(c.fonts) }

// Decode builds a buffer from segments. Empty segments contribute nothing.
func (c *Codec) Decode(segs []types.Segment) *Buffer {
	b := NewBuffer(c)
	for _, s := range segs {
		if s.Text == "" {
			continue
		}
		key := Font{Family: s.Font, Size: s.Size, Bold: s.Bold, Italic: s.Italic, Underline: s.Underline}
		b.Append(s.Text, &key, s.FG, s.BG)
	}
	return b
}

type styleKey struct {
	font   Font
	fg, bg string
}

func (k styleKey) segment(text string) types.Segment {
	return types.Segment{
		Text:      text,
		Bold:      k.font.Bold,
		Italic:    k.font.Italic,
		Underline: k.font.Underline,
		Font:      k.font.Family,
		Size:      k.font.Size,
		FG:        k.fg,
		BG:        k.bg,
	}
}

// Encode sweeps the buffer left to right and emits one segment per maximal run
// of runes sharing the same (font, fg, bg) triple. Within a dimension the open
// tag added last wins, so a nested tag hands control back to the enclosing one
// when it closes.
func Encode(b *Buffer) types.Segments {
	n := len(b.text)
	activate := make(map[int][]int)
	deactivate := make(map[int][]int)
	for i, t := range b.tags {
		if t.Start >= t.End {
			continue
		}
		activate[t.Start] = append(activate[t.Start], i)
		deactivate[t.End] = append(deactivate[t.End], i)
	}

	open := map[Dimension]map[int]bool{
		DimFont:       {},
		DimForeground: {},
		DimBackground: {},
	}
	current := func() styleKey {
		var k styleKey
		if i, ok := topOpen(open[DimFont]); ok && b.tags[i].Font != nil {
			k.font = *b.tags[i].Font
		}
		if i, ok := topOpen(open[DimForeground]); ok {
			k.fg = b.tags[i].Color
		}
		if i, ok := topOpen(open[DimBackground]); ok {
			k.bg = b.tags[i].Color
		}
		return k
	}

	out := types.Segments{}
	var acc []rune
	var accKey styleKey
	flush := func() {
		if len(acc) == 0 {
			return
		}
		out = append(out, accKey.segment(string(acc)))
		acc = acc[:0]
	}

	for off := 0; off < n; off++ {
		for _, i := range activate[off] {
			open[b.tags[i].Dim][i] = true
		}
		for _, i := range deactivate[off] {
			delete(open[b.tags[i].Dim], i)
		}
		k := current()
		if len(acc) > 0 && k != accKey {
			flush()
		}
		accKey = k
		acc = append(acc, b.text[off])
	}
	flush()
	return out
}

func topOpen(set map[int]bool) (int, bool) {
	best, ok := -1, false
	for i := range set {
		if i > best {
			best, ok = i, true
		}
	}
	return best, ok
}

// Canonicalize drops empty segments and merges adjacent segments of equal style.
// It equals Encode(Decode(segs)) without building a buffer.
func Canonicalize(segs []types.Segment) types.Segments {
	out := types.Segments{}
	for _, s := range segs {
		if s.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].SameStyle(s) {
			out[n-1].Text += s.Text
			continue
		}
		out = append(out, s)
	}
	return out
}

// Offsets returns the sorted distinct tag boundaries of b, useful to editors that
// redraw style runs.
func Offsets(b *Buffer) []int {
	seen := map[int]bool{0: true, len(b.text): true}
	for _, t := range b.tags {
		seen[t.Start] = true
		seen[t.End] = true
	}
	out := make([]int, 0, len(seen))
	for o := range seen {
		out = append(out, o)
	}
	sort.Ints(out)
	return out
}
