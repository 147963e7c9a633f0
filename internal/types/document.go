package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind selects the entry shape and layout of a section.
type Kind string

const (
	KindEducation  Kind = "education"
	KindExperience Kind = "experience"
	KindProjects   Kind = "projects"
	KindSkills     Kind = "skills"
	KindCustom     Kind = "custom"
)

// Known reports whether k is one of the built-in kinds.
func (k Kind) Known() bool {
	switch k {
	case KindEducation, KindExperience, KindProjects, KindSkills, KindCustom:
		return true
	}
	return false
}

// Header holds the contact block. Field tags are the persisted key names.
type Header struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	LinkedInKind    string `json:"linkedin_kind"`
	LinkedIn        string `json:"linkedin"`
	LinkedInDisplay string `json:"linkedin_display"`
	GitHubKind      string `json:"github_kind"`
	GitHub          string `json:"github"`
	GitHubDisplay   string `json:"github_display"`
}

// HeaderFields lists the persisted header keys in display order.
var HeaderFields = []string{
	"name", "phone", "email",
	"linkedin_kind", "linkedin", "linkedin_display",
	"github_kind", "github", "github_display",
}

// LinkKindNone disables a link slot.
const LinkKindNone = "None"

// LinkKindCustom means the slot's kind is a free-form label typed by the user.
const LinkKindCustom = "Custom"

// LinkedInKinds are the kinds offered for the first link slot.
var LinkedInKinds = []string{
	"None", "Custom", "LinkedIn", "Facebook", "Instagram", "TikTok", "Snapchat",
	"X (Twitter)", "Slack", "Discord", "Indeed", "Monster", "Glassdoor",
	"Handshake", "Wellfound", "Stack Overflow",
}

// GitHubKinds are the kinds offered for the second link slot.
var GitHubKinds = []string{"None", "Custom", "GitHub", "Portfolio", "Webpage"}

// Link is one header link slot.
type Link struct {
	Kind    string
	URL     string
	Display string
}

// Enabled reports whether the link appears in rendered output.
func (l Link) Enabled() bool {
	if strings.EqualFold(strings.TrimSpace(l.Kind), LinkKindNone) {
		return false
	}
	return strings.TrimSpace(l.URL) != ""
}

// Links returns both link slots in output order.
func (h Header) Links() []Link {
	return []Link{
		{Kind: h.LinkedInKind, URL: h.LinkedIn, Display: h.LinkedInDisplay},
		{Kind: h.GitHubKind, URL: h.GitHub, Display: h.GitHubDisplay},
	}
}

func (h *Header) field(name string) (*string, error) {
	switch name {
	case "name":
		return &h.Name, nil
	case "phone":
		return &h.Phone, nil
	case "email":
		return &h.Email, nil
	case "linkedin_kind":
		return &h.LinkedInKind, nil
	case "linkedin":
		return &h.LinkedIn, nil
	case "linkedin_display":
		return &h.LinkedInDisplay, nil
	case "github_kind":
		return &h.GitHubKind, nil
	case "github":
		return &h.GitHub, nil
	case "github_display":
		return &h.GitHubDisplay, nil
	}
	return nil, fmt.Errorf("unknown header field %q", name)
}

// Get returns the value of a persisted header key.
func (h *Header) Get(name string) (string, error) {
	p, err := h.field(name)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// Set assigns a persisted header key.
func (h *Header) Set(name, value string) error {
	p, err := h.field(name)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// DefaultHeader is an empty header with the stock link kinds.
func DefaultHeader() Header {
	return Header{LinkedInKind: "LinkedIn", GitHubKind: "GitHub"}
}

// Section is a titled, ordered list of entries of one kind.
type Section struct {
	ID      string
	Title   string
	Kind    Kind
	Entries []Entry
}

type sectionJSON struct {
	ID      string            `json:"id"`
	Title   string            `json:"title"`
	Kind    Kind              `json:"kind"`
	Entries []json.RawMessage `json:"entries"`
}

// MarshalJSON writes the section with its entries in the persisted shape.
func (s Section) MarshalJSON() ([]byte, error) {
	entries := s.Entries
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(struct {
		ID      string  `json:"id"`
		Title   string  `json:"title"`
		Kind    Kind    `json:"kind"`
		Entries []Entry `json:"entries"`
	}{s.ID, s.Title, s.Kind, entries})
}

// UnmarshalJSON decodes a canonical section, choosing the entry type from its kind.
// Loosely shaped input should go through the project normalizer instead.
func (s *Section) UnmarshalJSON(data []byte) error {
	var raw sectionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.ID, s.Title, s.Kind = raw.ID, raw.Title, raw.Kind
	s.Entries = make([]Entry, 0, len(raw.Entries))
	for i, msg := range raw.Entries {
		e, err := decodeEntry(raw.Kind, msg)
		if err != nil {
			return fmt.Errorf("section %q entry %d: %w", raw.ID, i, err)
		}
		s.Entries = append(s.Entries, e)
	}
	return nil
}

func decodeEntry(kind Kind, msg json.RawMessage) (Entry, error) {
	switch kind {
	case KindEducation:
		var e EducationEntry
		err := json.Unmarshal(msg, &e)
		return e, err
	case KindExperience:
		var e ExperienceEntry
		err := json.Unmarshal(msg, &e)
		return e, err
	case KindProjects:
		var e ProjectEntry
		err := json.Unmarshal(msg, &e)
		return e, err
	case KindSkills:
		var e SkillEntry
		err := json.Unmarshal(msg, &e)
		return e, err
	default:
		var e CustomEntry
		err := json.Unmarshal(msg, &e)
		return e, err
	}
}

// Clone deep-copies the section.
func (s Section) Clone() Section {
	out := s
	out.Entries = make([]Entry, len(s.Entries))
	for i, e := range s.Entries {
		out.Entries[i] = e.CloneEntry()
	}
	return out
}

// Document is the whole résumé.
type Document struct {
	Header   Header    `json:"header"`
	Sections []Section `json:"sections"`
}

// MarshalJSON emits [] for a nil section list.
func (d Document) MarshalJSON() ([]byte, error) {
	type plain Document
	if d.Sections == nil {
		d.Sections = []Section{}
	}
	return json.Marshal(plain(d))
}

// Clone returns a deep copy sharing no mutable state with d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{
		Header:   d.Header,
		Sections: make([]Section, len(d.Sections)),
	}
	for i, s := range d.Sections {
		out.Sections[i] = s.Clone()
	}
	return out
}

// SectionIndex returns the position of the section with the given id, or -1.
func (d *Document) SectionIndex(id string) int {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return i
		}
	}
	return -1
}

// EntryCount returns the number of entries across all sections.
func (d *Document) EntryCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Entries)
	}
	return n
}

// DefaultSections returns the stock section list of a new document.
func DefaultSections() []Section {
	return []Section{
		{ID: "education", Title: "Education", Kind: KindEducation, Entries: []Entry{}},
		{ID: "experience", Title: "Experience", Kind: KindExperience, Entries: []Entry{}},
		{ID: "projects", Title: "Projects", Kind: KindProjects, Entries: []Entry{}},
		{ID: "technical_skills", Title: "Technical Skills", Kind: KindSkills, Entries: []Entry{}},
	}
}

// DefaultSection looks up a stock section by id.
func DefaultSection(id string) (Section, bool) {
	for _, s := range DefaultSections() {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// NewDocument returns the empty default document.
func NewDocument() *Document {
	return &Document{Header: DefaultHeader(), Sections: DefaultSections()}
}
