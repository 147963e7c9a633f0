package project

import (
	"strings"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

// headerAliases maps normalized key spellings found in older or hand-edited files
// onto persisted header keys.
var headerAliases = map[string]string{
	"name":          "name",
	"full name":     "name",
	"phone":         "phone",
	"phone number":  "phone",
	"email":         "email",
	"e mail":        "email",
	"email address": "email",

	"linkedin kind":         "linkedin_kind",
	"linkedin type":         "linkedin_kind",
	"linkedin":              "linkedin",
	"linked in":             "linkedin",
	"li":                    "linkedin",
	"li url":                "linkedin",
	"li link":               "linkedin",
	"linkedin url":          "linkedin",
	"linkedin link":         "linkedin",
	"li text":               "linkedin_display",
	"linkedin text":         "linkedin_display",
	"linkedin display":      "linkedin_display",
	"linkedin display text": "linkedin_display",

	"github kind":         "github_kind",
	"github type":         "github_kind",
	"github":              "github",
	"git hub":             "github",
	"gh":                  "github",
	"gh url":              "github",
	"gh link":             "github",
	"github url":          "github",
	"github link":         "github",
	"gh text":             "github_display",
	"github text":         "github_display",
	"github display":      "github_display",
	"github display text": "github_display",
}

// normalizeKey lowercases a key and folds separators to single spaces, so that
// "LI_URL", "li-url" and " Li  Url " compare equal.
func normalizeKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	k = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(k)
	return strings.Join(strings.Fields(k), " ")
}

// HeaderField resolves a key spelling to a persisted header key.
func HeaderField(key string) (string, bool) {
	f, ok := headerAliases[normalizeKey(key)]
	return f, ok
}

// applyHeader copies every recognized scalar value of src onto h. Nested objects
// and lists are not header values and are skipped.
func applyHeader(h *types.Header, src *Object) {
	for _, k := range src.Keys {
		field, ok := HeaderField(k)
		if !ok {
			continue
		}
		v, ok := scalarString(src.Values[k])
		if !ok {
			continue
		}
		_ = h.Set(field, v)
	}
}

// headerSource picks the object header values are read from: a header object,
// else data.header, else the top level itself.
func headerSource(top *Object) *Object {
	if v, ok := top.Get("header"); ok {
		if h, ok := asObject(v); ok {
			return h
		}
	}
	if v, ok := top.Get("data"); ok {
		if data, ok := asObject(v); ok {
			if hv, ok := data.Get("header"); ok {
				if h, ok := asObject(hv); ok {
					return h
				}
			}
		}
	}
	return top
}
