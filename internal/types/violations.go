package types

// Severity levels reported by document checks.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Violation represents a single validation failure
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`

	// Where the problem is; unset for document-wide findings
	SectionID string `json:"section_id,omitempty"`
	Entry     *int   `json:"entry,omitempty"`
	Bullet    *int   `json:"bullet,omitempty"`

	Lines *int `json:"lines,omitempty"` // Estimated or measured line/page count
}

// Violations represents a collection of validation failures
type Violations struct {
	Violations []Violation `json:"violations"`
}

// Add appends v.
func (vs *Violations) Add(v ...Violation) {
	vs.Violations = append(vs.Violations, v...)
}

// Count returns how many violations have the given severity.
func (vs *Violations) Count(severity string) int {
	n := 0
	for _, v := range vs.Violations {
		if v.Severity == severity {
			n++
		}
	}
	return n
}

// HasErrors reports whether any violation is an error.
func (vs *Violations) HasErrors() bool {
	return vs.Count(SeverityError) > 0
}
