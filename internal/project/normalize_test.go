package project

import (
	"encoding/json"
	"testing"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalizeString(t *testing.T, s string) *types.Document {
	t.Helper()
	raw, err := DecodeRaw([]byte(s))
	require.NoError(t, err)
	doc, err := Normalize(raw)
	require.NoError(t, err)
	return doc
}

func TestNormalize_NonObjectTopLevel(t *testing.T) {
	for _, in := range []string{`[]`, `"resume"`, `42`, `null`} {
		raw, err := DecodeRaw([]byte(in))
		require.NoError(t, err)
		_, err = Normalize(raw)
		var formatErr *FormatError
		assert.ErrorAs(t, err, &formatErr, in)
	}
}

func TestNormalize_EmptyObjectGivesDefaults(t *testing.T) {
	doc := normalizeString(t, `{}`)
	assert.Equal(t, types.NewDocument(), doc)
}

func TestNormalize_CanonicalRoundTrip(t *testing.T) {
	for _, want := range []*types.Document{types.DemoDocument(), types.NewDocument()} {
		data, err := json.Marshal(want)
		require.NoError(t, err)
		got := normalizeString(t, string(data))
		assert.Equal(t, want, got)
	}
}

func TestNormalize_HeaderAliases(t *testing.T) {
	doc := normalizeString(t, `{"header": {
		"Name": "Jake",
		"LI URL": "linkedin.com/in/jake",
		"linked-in text": "ignored, not an alias",
		"LinkedIn_Display_Text": "in/jake",
		"GH": "github.com/jake",
		"github type": "Portfolio",
		"Phone": 5551234,
		"email": null,
		"nested": {"name": "nope"}
	}}`)
	assert.Equal(t, "Jake", doc.Header.Name)
	assert.Equal(t, "linkedin.com/in/jake", doc.Header.LinkedIn)
	assert.Equal(t, "in/jake", doc.Header.LinkedInDisplay)
	assert.Equal(t, "github.com/jake", doc.Header.GitHub)
	assert.Equal(t, "Portfolio", doc.Header.GitHubKind)
	assert.Equal(t, "5551234", doc.Header.Phone)
	assert.Equal(t, "", doc.Header.Email)
	assert.Equal(t, "LinkedIn", doc.Header.LinkedInKind)
}

func TestNormalize_HeaderFromDataWrapper(t *testing.T) {
	doc := normalizeString(t, `{"data": {"header": {"name": "Wrapped"}}, "name": "Top"}`)
	assert.Equal(t, "Wrapped", doc.Header.Name)
}

func TestNormalize_HeaderFromTopLevel(t *testing.T) {
	doc := normalizeString(t, `{"name": "Top", "linkedin url": "li.com/x", "sections": []}`)
	assert.Equal(t, "Top", doc.Header.Name)
	assert.Equal(t, "li.com/x", doc.Header.LinkedIn)
}

func TestNormalize_SectionsMapKeepsFileOrder(t *testing.T) {
	doc := normalizeString(t, `{"sections": {
		"z": {"id": "skills2", "title": "Skills", "kind": "skills", "entries": []},
		"a": {"id": "awards", "title": "Awards", "kind": "Custom", "entries": []}
	}}`)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "skills2", doc.Sections[0].ID)
	assert.Equal(t, "awards", doc.Sections[1].ID)
	assert.Equal(t, types.KindCustom, doc.Sections[1].Kind)
}

func TestNormalize_PlainMapInputIsDeterministic(t *testing.T) {
	raw := map[string]any{
		"sections": map[string]any{
			"b": map[string]any{"id": "b", "kind": "custom"},
			"a": map[string]any{"id": "a", "kind": "custom"},
		},
	}
	doc, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "a", doc.Sections[0].ID)
	assert.Equal(t, "b", doc.Sections[1].ID)
}

func TestNormalize_DataSections(t *testing.T) {
	doc := normalizeString(t, `{"data": {"sections": [{"id": "projects", "entries": [{"title": "Gitlytics"}]}]}}`)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Projects", doc.Sections[0].Title)
	assert.Equal(t, types.KindProjects, doc.Sections[0].Kind)
	assert.Equal(t, types.ProjectEntry{Title: "Gitlytics", Bullets: types.Bullets{}}, doc.Sections[0].Entries[0])
}

func TestNormalize_InferSectionsFromDefaultIDs(t *testing.T) {
	doc := normalizeString(t, `{
		"technical_skills": [{"label": "Languages", "value": "Go"}],
		"education": {"title": "School", "kind": "education", "entries": [{"school": "SU"}]}
	}`)
	require.Len(t, doc.Sections, 2)

	// default order, not file order
	assert.Equal(t, "education", doc.Sections[0].ID)
	assert.Equal(t, "School", doc.Sections[0].Title)
	assert.Equal(t, types.EducationEntry{School: "SU", Body: types.Segments{}}, doc.Sections[0].Entries[0])

	assert.Equal(t, "technical_skills", doc.Sections[1].ID)
	assert.Equal(t, "Technical Skills", doc.Sections[1].Title)
	assert.Equal(t, types.SkillEntry{Label: "Languages", Value: types.Segments{{Text: "Go"}}}, doc.Sections[1].Entries[0])
}

func TestNormalize_DropsNonObjects(t *testing.T) {
	doc := normalizeString(t, `{"sections": [
		"junk",
		7,
		{"id": "experience", "entries": ["junk", {"role": "Dev"}, null]}
	]}`)
	require.Len(t, doc.Sections, 1)
	require.Len(t, doc.Sections[0].Entries, 1)
	assert.Equal(t, "Dev", doc.Sections[0].Entries[0].(types.ExperienceEntry).Role)
}

func TestNormalize_AllSectionsInvalidKeepsDefaults(t *testing.T) {
	doc := normalizeString(t, `{"sections": ["a", 1]}`)
	assert.Equal(t, types.DefaultSections(), doc.Sections)
}

func TestNormalize_MissingSectionIDs(t *testing.T) {
	doc := normalizeString(t, `{"sections": [{"title": "A"}, {"id": "sec_2"}, {"title": "C"}]}`)
	require.Len(t, doc.Sections, 3)
	assert.Equal(t, "sec_1", doc.Sections[0].ID)
	assert.Equal(t, "sec_2", doc.Sections[1].ID)
	assert.Equal(t, "sec_3", doc.Sections[2].ID)
	assert.Equal(t, types.KindCustom, doc.Sections[0].Kind)
}

func TestNormalize_SectionIDsAreUnique(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"backfill skips later explicit id", `{"sections": [{"title": "A"}, {"id": "sec_1", "title": "B"}]}`, []string{"sec_2", "sec_1"}},
		{"explicit duplicates", `{"sections": [{"id": "x", "title": "A"}, {"id": "x", "title": "B"}]}`, []string{"x", "sec_2"}},
		{"duplicate of reserved id", `{"sections": [{"id": "sec_2"}, {"id": "sec_2"}, {}]}`, []string{"sec_2", "sec_3", "sec_4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := normalizeString(t, tt.in)
			ids := make([]string, len(doc.Sections))
			for i, sec := range doc.Sections {
				ids[i] = sec.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestNormalize_LegacyBodyBecomesBullet(t *testing.T) {
	doc := normalizeString(t, `{"sections": [{"id": "experience", "kind": "experience",
		"entries": [{"role": "Dev", "body": "Shipped the thing"}, {"role": "Empty", "body": ""}, {"role": "None"}]}]}`)
	entries := doc.Sections[0].Entries
	require.Len(t, entries, 3)
	assert.Equal(t, types.Bullets{{{Text: "Shipped the thing"}}}, entries[0].(types.ExperienceEntry).Bullets)
	assert.Equal(t, types.Bullets{{{Text: ""}}}, entries[1].(types.ExperienceEntry).Bullets)
	assert.Equal(t, types.Bullets{}, entries[2].(types.ExperienceEntry).Bullets)
}

func TestNormalize_UnknownKindIsCustom(t *testing.T) {
	doc := normalizeString(t, `{"sections": [{"id": "awards", "kind": " AWARDS ", "entries": [{"title": "Prize", "body": ["line one", "line two"]}]}]}`)
	sec := doc.Sections[0]
	assert.Equal(t, types.Kind("awards"), sec.Kind)
	assert.Equal(t, types.CustomEntry{Title: "Prize", Body: types.Segments{{Text: "line one\nline two"}}}, sec.Entries[0])
}

func TestCoerceSegments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want types.Segments
	}{
		{"null", `null`, types.Segments{}},
		{"string", `"hello"`, types.Segments{{Text: "hello"}}},
		{"single object", `{"text": "x", "b": 1}`, types.Segments{{Text: "x", Bold: true}}},
		{"object without text", `{"b": true}`, types.Segments{}},
		{"segment list", `[{"text": "a"}, {"text": "b", "i": "yes"}]`, types.Segments{{Text: "a"}, {Text: "b", Italic: true}}},
		{"string list", `["a", "b"]`, types.Segments{{Text: "a\nb"}}},
		{"mixed list", `["a", {"text": "b"}]`, types.Segments{}},
		{"number", `5`, types.Segments{}},
		{"empty list", `[]`, types.Segments{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := DecodeRaw([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, coerceSegments(raw))
		})
	}
}

func TestCoerceBullets(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want types.Bullets
	}{
		{"null", `null`, types.Bullets{}},
		{"string", `"one"`, types.Bullets{{{Text: "one"}}}},
		{"segment lists", `[[{"text": "a"}], [], "bad"]`, types.Bullets{}},
		{"segment lists with empty", `[[{"text": "a"}], []]`, types.Bullets{{{Text: "a"}}, {{Text: ""}}}},
		{"string list", `["a", "b"]`, types.Bullets{{{Text: "a"}}, {{Text: "b"}}}},
		{"flat segments", `[{"text": "a"}, {"text": "b", "u": true}]`, types.Bullets{{{Text: "a"}, {Text: "b", Underline: true}}}},
		{"flat objects without text", `[{"x": 1}]`, types.Bullets{}},
		{"empty", `[]`, types.Bullets{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := DecodeRaw([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, coerceBullets(raw))
		})
	}
}

func TestSegmentFrom_FieldCoercion(t *testing.T) {
	raw, err := DecodeRaw([]byte(`{"text": 12, "b": false, "i": 0, "u": "", "font": " Arial ", "size": "11.5", "fg": "ABCDEF", "bg": "banana"}`))
	require.NoError(t, err)
	o, _ := asObject(raw)
	assert.Equal(t, types.Segment{Text: "12", Font: "Arial", Size: 11, FG: "#abcdef", BG: "banana"}, segmentFrom(o))

	raw, err = DecodeRaw([]byte(`{"text": "x", "size": -3}`))
	require.NoError(t, err)
	o, _ = asObject(raw)
	assert.Equal(t, 0, segmentFrom(o).Size)
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "li url", normalizeKey("  LI_URL "))
	assert.Equal(t, "linkedin display text", normalizeKey("LinkedIn-Display.Text"))
	f, ok := HeaderField("Git  Hub")
	assert.True(t, ok)
	assert.Equal(t, "github", f)
}
