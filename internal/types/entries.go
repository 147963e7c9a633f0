package types

// Entry is one item of a section. The concrete type is fixed by the section kind;
// callers switch on it rather than probing optional fields.
type Entry interface {
	Kind() Kind
	CloneEntry() Entry
}

// EducationEntry is an item of an education section.
type EducationEntry struct {
	School   string   `json:"school"`
	Location string   `json:"location"`
	Degree   string   `json:"degree"`
	Dates    string   `json:"dates"`
	Body     Segments `json:"body"`
}

// ExperienceEntry is an item of an experience section.
type ExperienceEntry struct {
	Role     string  `json:"role"`
	Dates    string  `json:"dates"`
	Org      string  `json:"org"`
	Location string  `json:"location"`
	Bullets  Bullets `json:"bullets"`
}

// ProjectEntry is an item of a projects section.
type ProjectEntry struct {
	Title   string  `json:"title"`
	Stack   string  `json:"stack"`
	Dates   string  `json:"dates"`
	Bullets Bullets `json:"bullets"`
}

// SkillEntry is one "label: value" line of a skills section.
type SkillEntry struct {
	Label string   `json:"label"`
	Value Segments `json:"value"`
}

// CustomEntry is an item of a custom section or of any kind this package does not know.
type CustomEntry struct {
	Title string   `json:"title"`
	Body  Segments `json:"body"`
}

func (EducationEntry) Kind() Kind  { return KindEducation }
func (ExperienceEntry) Kind() Kind { return KindExperience }
func (ProjectEntry) Kind() Kind    { return KindProjects }
func (SkillEntry) Kind() Kind      { return KindSkills }
func (CustomEntry) Kind() Kind     { return KindCustom }

func (e EducationEntry) CloneEntry() Entry {
	e.Body = e.Body.Clone()
	return e
}

func (e ExperienceEntry) CloneEntry() Entry {
	e.Bullets = e.Bullets.Clone()
	return e
}

func (e ProjectEntry) CloneEntry() Entry {
	e.Bullets = e.Bullets.Clone()
	return e
}

func (e SkillEntry) CloneEntry() Entry {
	e.Value = e.Value.Clone()
	return e
}

func (e CustomEntry) CloneEntry() Entry {
	e.Body = e.Body.Clone()
	return e
}

// NewEntry returns the blank entry the editor adds to a section of the given kind.
func NewEntry(kind Kind) Entry {
	switch kind {
	case KindEducation:
		return EducationEntry{Body: Segments{}}
	case KindExperience:
		return ExperienceEntry{Bullets: Bullets{Placeholder()}}
	case KindProjects:
		return ProjectEntry{Bullets: Bullets{Placeholder()}}
	case KindSkills:
		return SkillEntry{Value: Placeholder()}
	default:
		return CustomEntry{Body: Placeholder()}
	}
}

// EntryMatchesKind reports whether e is the variant a section of kind k holds.
func EntryMatchesKind(e Entry, k Kind) bool {
	if e == nil {
		return false
	}
	if !k.Known() {
		return e.Kind() == KindCustom
	}
	return e.Kind() == k
}
