package project

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

// scalarString stringifies a JSON scalar. null becomes "". The second result is
// false for objects and lists.
func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", true
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	case bool:
		return strconv.FormatBool(s), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	}
	return "", false
}

// stringField reads a plain string field of an entry or section.
func stringField(o *Object, key string) string {
	s, _ := scalarString(o.Values[key])
	return s
}

func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return b != ""
	case json.Number:
		f, err := b.Float64()
		return err == nil && f != 0
	case float64:
		return b != 0
	case int:
		return b != 0
	case []any:
		return len(b) > 0
	case *Object:
		return len(b.Keys) > 0
	}
	return true
}

// positiveInt reads a font size. Fractions are truncated; anything that is not a
// positive number yields 0.
func positiveInt(v any) int {
	var f float64
	switch n := v.(type) {
	case json.Number:
		x, err := n.Float64()
		if err != nil {
			return 0
		}
		f = x
	case float64:
		f = n
	case int:
		f = float64(n)
	case string:
		x, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = x
	default:
		return 0
	}
	if math.IsNaN(f) || f < 1 || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

// isSegmentShaped reports whether v is an object carrying a text key.
func isSegmentShaped(v any) bool {
	o, ok := asObject(v)
	return ok && o.Has("text")
}

func segmentFrom(o *Object) types.Segment {
	seg := types.Segment{
		Bold:      truthy(o.Values["b"]),
		Italic:    truthy(o.Values["i"]),
		Underline: truthy(o.Values["u"]),
		Size:      positiveInt(o.Values["size"]),
	}
	seg.Text, _ = scalarString(o.Values["text"])
	if f, ok := o.Values["font"].(string); ok {
		seg.Font = strings.TrimSpace(f)
	}
	seg.FG = colorField(o.Values["fg"])
	seg.BG = colorField(o.Values["bg"])
	return seg
}

// colorField normalizes a valid color and keeps anything else verbatim so no
// information is lost; renderers ignore colors they cannot parse.
func colorField(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	if c, ok := types.NormalizeColor(s); ok {
		return c
	}
	return strings.TrimSpace(s)
}

// coerceSegments accepts null, a string, one segment object, a list of segment
// objects or a list of strings. Anything else yields an empty list.
func coerceSegments(v any) types.Segments {
	if v == nil {
		return types.Segments{}
	}
	if s, ok := v.(string); ok {
		return types.Segments{{Text: s}}
	}
	if o, ok := asObject(v); ok {
		if o.Has("text") {
			return types.Segments{segmentFrom(o)}
		}
		return types.Segments{}
	}
	list, ok := asList(v)
	if !ok {
		return types.Segments{}
	}

	allSegments, allStrings := true, true
	for _, item := range list {
		if !isSegmentShaped(item) {
			allSegments = false
		}
		if _, ok := item.(string); !ok {
			allStrings = false
		}
	}
	switch {
	case allSegments:
		out := make(types.Segments, 0, len(list))
		for _, item := range list {
			o, _ := asObject(item)
			out = append(out, segmentFrom(o))
		}
		return out
	case allStrings:
		lines := make([]string, len(list))
		for i, item := range list {
			lines[i] = item.(string)
		}
		return types.Segments{{Text: strings.Join(lines, "\n")}}
	}
	return types.Segments{}
}

// coerceBullets accepts null, a string, a list of segment lists, a list of
// strings or a flat list of segment objects forming one bullet.
func coerceBullets(v any) types.Bullets {
	if v == nil {
		return types.Bullets{}
	}
	if s, ok := v.(string); ok {
		return types.Bullets{{{Text: s}}}
	}
	list, ok := asList(v)
	if !ok || len(list) == 0 {
		return types.Bullets{}
	}

	allLists, allStrings, allObjects := true, true, true
	for _, item := range list {
		if _, ok := asList(item); !ok {
			allLists = false
		}
		if _, ok := item.(string); !ok {
			allStrings = false
		}
		if _, ok := asObject(item); !ok {
			allObjects = false
		}
	}

	switch {
	case allLists:
		out := make(types.Bullets, 0, len(list))
		for _, item := range list {
			segs := coerceSegments(item)
			if len(segs) == 0 {
				segs = types.Placeholder()
			}
			out = append(out, segs)
		}
		return out
	case allStrings:
		out := make(types.Bullets, 0, len(list))
		for _, item := range list {
			out = append(out, types.Segments{{Text: item.(string)}})
		}
		return out
	case allObjects:
		if segs := coerceSegments(list); len(segs) > 0 {
			return types.Bullets{segs}
		}
	}
	return types.Bullets{}
}
