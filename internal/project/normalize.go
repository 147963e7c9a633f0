package project

import (
	"fmt"
	"strings"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

// Normalize turns any decoded JSON value into a canonical document. It accepts
// the historical shapes of project files and drops what it cannot use; the only
// failure is a top level that is not an object.
func Normalize(raw any) (*types.Document, error) {
	top, ok := asObject(raw)
	if !ok {
		return nil, &FormatError{
			Message: fmt.Sprintf("expected a JSON object at the top level, got %s", describe(raw)),
		}
	}

	doc := types.NewDocument()
	applyHeader(&doc.Header, headerSource(top))

	if sections := normalizeSections(findSections(top)); len(sections) > 0 {
		doc.Sections = sections
	}
	return doc, nil
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "a list"
	case string:
		return "a string"
	}
	return fmt.Sprintf("%T", v)
}

// sectionsIn reads a sections value stored as a list or as a map of sections.
func sectionsIn(v any) []any {
	if list, ok := asList(v); ok {
		return list
	}
	if o, ok := asObject(v); ok {
		out := make([]any, 0, len(o.Keys))
		for _, k := range o.Keys {
			out = append(out, o.Values[k])
		}
		return out
	}
	return nil
}

// findSections locates the section list: top-level sections, else data.sections,
// else stock section ids used directly as top-level keys.
func findSections(top *Object) []any {
	if list := sectionsIn(top.Values["sections"]); len(list) > 0 {
		return list
	}
	if data, ok := asObject(top.Values["data"]); ok {
		if list := sectionsIn(data.Values["sections"]); len(list) > 0 {
			return list
		}
	}

	var inferred []any
	for _, def := range types.DefaultSections() {
		v, ok := top.Get(def.ID)
		if !ok {
			continue
		}
		if o, ok := asObject(v); ok {
			sec := &Object{Values: make(map[string]any)}
			for _, k := range o.Keys {
				sec.Keys = append(sec.Keys, k)
				sec.Values[k] = o.Values[k]
			}
			if stringField(sec, "id") == "" {
				if !sec.Has("id") {
					sec.Keys = append(sec.Keys, "id")
				}
				sec.Values["id"] = def.ID
			}
			inferred = append(inferred, sec)
			continue
		}
		if entries, ok := asList(v); ok {
			inferred = append(inferred, &Object{
				Keys: []string{"id", "title", "kind", "entries"},
				Values: map[string]any{
					"id":      def.ID,
					"title":   def.Title,
					"kind":    string(def.Kind),
					"entries": entries,
				},
			})
		}
	}
	return inferred
}

// normalizeSections keeps the first use of every explicit id. Sections with
// no id, or with an id an earlier section already holds, get a fresh
// "sec_<n>" id that collides with no explicit one.
func normalizeSections(raw []any) []types.Section {
	out := make([]types.Section, 0, len(raw))
	for _, item := range raw {
		o, ok := asObject(item)
		if !ok {
			continue
		}
		out = append(out, normalizeSection(o))
	}

	used := make(map[string]bool, len(out))
	rekey := make([]bool, len(out))
	for i, sec := range out {
		if sec.ID == "" || used[sec.ID] {
			rekey[i] = true
			continue
		}
		used[sec.ID] = true
	}
	for i := range out {
		if rekey[i] {
			out[i].ID = nextSectionID(used, i+1)
			used[out[i].ID] = true
		}
	}
	return out
}

// nextSectionID returns the first free "sec_<n>" id starting at n.
func nextSectionID(used map[string]bool, n int) string {
	for {
		id := fmt.Sprintf("sec_%d", n)
		if !used[id] {
			return id
		}
		n++
	}
}

func normalizeSection(o *Object) types.Section {
	sec := types.Section{
		ID:    strings.TrimSpace(stringField(o, "id")),
		Title: stringField(o, "title"),
		Kind:  types.Kind(strings.ToLower(strings.TrimSpace(stringField(o, "kind")))),
	}
	if def, ok := types.DefaultSection(sec.ID); ok {
		if sec.Title == "" {
			sec.Title = def.Title
		}
		if sec.Kind == "" {
			sec.Kind = def.Kind
		}
	}
	if sec.Kind == "" {
		sec.Kind = types.KindCustom
	}

	entries, _ := asList(o.Values["entries"])
	sec.Entries = make([]types.Entry, 0, len(entries))
	for _, e := range entries {
		eo, ok := asObject(e)
		if !ok {
			continue
		}
		sec.Entries = append(sec.Entries, normalizeEntry(sec.Kind, eo))
	}
	return sec
}

func normalizeEntry(kind types.Kind, o *Object) types.Entry {
	switch kind {
	case types.KindEducation:
		return types.EducationEntry{
			School:   stringField(o, "school"),
			Location: stringField(o, "location"),
			Degree:   stringField(o, "degree"),
			Dates:    stringField(o, "dates"),
			Body:     coerceSegments(o.Values["body"]),
		}
	case types.KindExperience:
		return types.ExperienceEntry{
			Role:     stringField(o, "role"),
			Dates:    stringField(o, "dates"),
			Org:      stringField(o, "org"),
			Location: stringField(o, "location"),
			Bullets:  entryBullets(o),
		}
	case types.KindProjects:
		return types.ProjectEntry{
			Title:   stringField(o, "title"),
			Stack:   stringField(o, "stack"),
			Dates:   stringField(o, "dates"),
			Bullets: entryBullets(o),
		}
	case types.KindSkills:
		return types.SkillEntry{
			Label: stringField(o, "label"),
			Value: coerceSegments(o.Values["value"]),
		}
	}
	return types.CustomEntry{
		Title: stringField(o, "title"),
		Body:  coerceSegments(o.Values["body"]),
	}
}

// entryBullets reads bullets, migrating a legacy body into a single bullet.
func entryBullets(o *Object) types.Bullets {
	if o.Has("bullets") {
		return coerceBullets(o.Values["bullets"])
	}
	if o.Has("body") {
		if body := coerceSegments(o.Values["body"]); len(body) > 0 {
			return types.Bullets{body}
		}
	}
	return types.Bullets{}
}
