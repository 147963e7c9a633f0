package rendering

import (
	"regexp"
	"strings"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:`)

// NormalizeHref prefixes https:// to a URL that has no scheme.
func NormalizeHref(url string) string {
	u := strings.TrimSpace(url)
	if u == "" || schemePattern.MatchString(u) {
		return u
	}
	return "https://" + u
}

// LinkDisplay is the text shown for a link: the override when it is not blank,
// else the URL without its http(s) scheme.
func LinkDisplay(l types.Link) string {
	if d := strings.TrimSpace(l.Display); d != "" {
		return d
	}
	u := strings.TrimSpace(l.URL)
	u = strings.TrimPrefix(u, "https://")
	return strings.TrimPrefix(u, "http://")
}

// ContactItem is one piece of the contact line.
type ContactItem struct {
	Text string
	Href string
}

// ContactItems returns the phone, email and enabled links of h in output order.
// Href is empty for plain text items.
func ContactItems(h types.Header) []ContactItem {
	var out []ContactItem
	if p := strings.TrimSpace(h.Phone); p != "" {
		out = append(out, ContactItem{Text: p})
	}
	if e := strings.TrimSpace(h.Email); e != "" {
		out = append(out, ContactItem{Text: e, Href: "mailto:" + e})
	}
	for _, l := range h.Links() {
		if !l.Enabled() {
			continue
		}
		out = append(out, ContactItem{Text: LinkDisplay(l), Href: NormalizeHref(l.URL)})
	}
	return out
}
