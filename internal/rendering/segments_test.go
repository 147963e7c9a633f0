package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

func TestClassifyFont(t *testing.T) {
	tests := []struct {
		in   string
		want FontClass
	}{
		{"", FontSerif},
		{"Times New Roman", FontSerif},
		{"Georgia", FontSerif},
		{"Comic Sans MS", FontSans},
		{"Arial", FontSans},
		{"helvetica", FontSans},
		{"DejaVu Sans Mono", FontMono},
		{"Courier New", FontMono},
		{"Wingdings", FontSerif},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyFont(tt.in), tt.in)
	}
}

func TestStripBulletPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   types.Segments
		want types.Segments
	}{
		{"dash", types.Text("- Did it"), types.Text("Did it")},
		{"en dash", types.Text("– Did it"), types.Text("Did it")},
		{"em dash", types.Text("— Did it"), types.Text("Did it")},
		{"bullet glyph", types.Text("  • Did it"), types.Text("Did it")},
		{"asterisk", types.Text("*   Did it"), types.Text("Did it")},
		{"no prefix", types.Text("-Did it"), types.Text("-Did it")},
		{"skips leading empty", types.Segments{{Text: ""}, {Text: "- x", Bold: true}}, types.Segments{{Text: ""}, {Text: "x", Bold: true}}},
		{"prefix-only segment dropped", types.Segments{{Text: "• "}, {Text: "Rest", Italic: true}}, types.Segments{{Text: "Rest", Italic: true}}},
		{"only first segment", types.Segments{{Text: "A "}, {Text: "- B"}}, types.Segments{{Text: "A "}, {Text: "- B"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripBulletPrefix(tt.in))
		})
	}
}

func TestStripBulletPrefix_DoesNotModifyInput(t *testing.T) {
	in := types.Text("- Did it")
	_ = StripBulletPrefix(in)
	assert.Equal(t, "- Did it", in[0].Text)
}

func TestUniformBackground(t *testing.T) {
	bg, ok := UniformBackground(types.Segments{{Text: "a", BG: "#ABCDEF"}, {Text: "", BG: "#000000"}, {Text: "b", BG: "abcdef"}})
	require.True(t, ok)
	assert.Equal(t, "#abcdef", bg)

	_, ok = UniformBackground(types.Segments{{Text: "a", BG: "#abcdef"}, {Text: "b"}})
	assert.False(t, ok)

	_, ok = UniformBackground(types.Segments{{Text: "a", BG: "yellow"}})
	assert.False(t, ok)

	_, ok = UniformBackground(nil)
	assert.False(t, ok)
}

func TestRGB(t *testing.T) {
	r, g, b, ok := rgb("#ff8000")
	require.True(t, ok)
	assert.InDelta(t, 1.0, r, 1e-9)
	assert.InDelta(t, 128.0/255.0, g, 1e-9)
	assert.InDelta(t, 0.0, b, 1e-9)

	_, _, _, ok = rgb("#ff80")
	assert.False(t, ok)
}

func TestSkillLines(t *testing.T) {
	lines := skillLines([]types.Entry{
		types.SkillEntry{Label: "Languages", Value: types.Segments{{Text: "- Go"}, {Text: ""}}},
		types.CustomEntry{Title: "ignored"},
	})
	require.Len(t, lines, 1)
	assert.Equal(t, "Languages", lines[0].Label)
	assert.Equal(t, types.Text("Go"), lines[0].Value)
}
