package validation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/rendering"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/spelling"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

// Print metrics used to estimate how many lines a bullet wraps to.
const (
	bulletSize   = 10.5
	bulletIndent = 18.0
)

// Options tunes CheckDocument.
type Options struct {
	MaxBulletLines   int      // Bullets estimated to wrap past this are flagged; 0 disables
	ForbiddenPhrases []string // Case-insensitive phrases that must not appear

	// Speller, when set, flags words it does not know unless Ignore holds them.
	Speller spelling.Checker
	Ignore  *spelling.IgnoreList
}

// DefaultOptions flags bullets longer than two printed lines.
func DefaultOptions() Options {
	return Options{MaxBulletLines: 2}
}

// CheckDocument lints doc without rendering it.
func CheckDocument(doc *types.Document, opts Options) *types.Violations {
	vs := &types.Violations{Violations: []types.Violation{}}
	if doc == nil {
		vs.Add(types.Violation{Type: "empty_document", Severity: types.SeverityError, Details: "no document"})
		return vs
	}

	h := doc.Header
	if strings.TrimSpace(h.Name) == "" {
		vs.Add(types.Violation{Type: "missing_name", Severity: types.SeverityError, Details: "header name is empty"})
	}
	if strings.TrimSpace(h.Email) == "" {
		vs.Add(types.Violation{Type: "missing_email", Severity: types.SeverityWarning, Details: "header email is empty"})
	}
	for i, l := range h.Links() {
		if strings.EqualFold(strings.TrimSpace(l.Kind), types.LinkKindNone) || strings.TrimSpace(l.URL) != "" {
			continue
		}
		if strings.TrimSpace(l.Display) != "" {
			vs.Add(types.Violation{
				Type:     "link_missing_url",
				Severity: types.SeverityWarning,
				Details:  fmt.Sprintf("%s link %d has display text but no URL and will be omitted", l.Kind, i+1),
			})
		}
	}

	for _, sec := range doc.Sections {
		checkSection(vs, sec, opts)
	}
	return vs
}

func checkSection(vs *types.Violations, sec types.Section, opts Options) {
	if len(sec.Entries) == 0 {
		vs.Add(types.Violation{
			Type:      "empty_section",
			Severity:  types.SeverityWarning,
			Details:   fmt.Sprintf("section %q has no entries", sec.Title),
			SectionID: sec.ID,
		})
	}
	for ei, e := range sec.Entries {
		for _, t := range entryTexts(e) {
			if phrase := findPhrase(t.text, opts.ForbiddenPhrases); phrase != "" {
				vs.Add(types.Violation{
					Type:      "forbidden_phrase",
					Severity:  types.SeverityError,
					Details:   fmt.Sprintf("contains forbidden phrase: %s", phrase),
					SectionID: sec.ID,
					Entry:     intPtr(ei),
					Bullet:    t.bullet,
				})
			}
			if opts.Speller != nil {
				if words := spelling.Misspellings(opts.Speller, opts.Ignore, t.text); len(words) > 0 {
					vs.Add(types.Violation{
						Type:      "misspelling",
						Severity:  types.SeverityWarning,
						Details:   "possibly misspelled: " + strings.Join(words, ", "),
						SectionID: sec.ID,
						Entry:     intPtr(ei),
						Bullet:    t.bullet,
					})
				}
			}
			if t.bullet == nil || opts.MaxBulletLines < 1 {
				continue
			}
			if n := rendering.EstimateLines(t.text, bulletSize, bulletIndent); n > opts.MaxBulletLines {
				vs.Add(types.Violation{
					Type:      "bullet_too_long",
					Severity:  types.SeverityWarning,
					Details:   fmt.Sprintf("bullet wraps to about %d lines, maximum is %d", n, opts.MaxBulletLines),
					SectionID: sec.ID,
					Entry:     intPtr(ei),
					Bullet:    t.bullet,
					Lines:     intPtr(n),
				})
			}
		}
	}
}

type entryText struct {
	text   string
	bullet *int
}

func entryTexts(e types.Entry) []entryText {
	var out []entryText
	addBullets := func(bs types.Bullets) {
		for i, b := range bs {
			out = append(out, entryText{text: rendering.StripBulletPrefix(b).PlainText(), bullet: intPtr(i)})
		}
	}
	switch v := e.(type) {
	case types.EducationEntry:
		out = append(out, entryText{text: strings.Join([]string{v.School, v.Location, v.Degree, v.Dates, v.Body.PlainText()}, " ")})
	case types.ExperienceEntry:
		out = append(out, entryText{text: strings.Join([]string{v.Role, v.Dates, v.Org, v.Location}, " ")})
		addBullets(v.Bullets)
	case types.ProjectEntry:
		out = append(out, entryText{text: strings.Join([]string{v.Title, v.Stack, v.Dates}, " ")})
		addBullets(v.Bullets)
	case types.SkillEntry:
		out = append(out, entryText{text: v.Label + " " + v.Value.PlainText()})
	case types.CustomEntry:
		out = append(out, entryText{text: v.Title + " " + v.Body.PlainText()})
	}
	return out
}

func findPhrase(text string, phrases []string) string {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		needle := strings.ToLower(strings.TrimSpace(p))
		if needle != "" && strings.Contains(lower, needle) {
			return p
		}
	}
	return ""
}

// ValidateLaTeX compiles latexContent in a temporary directory and reports a
// page_overflow when the result is longer than maxPages. A compile failure is
// reported as a latex_error violation; a missing pdflatex is returned as an error.
func ValidateLaTeX(ctx context.Context, latexContent string, maxPages int) (*types.Violations, error) {
	if _, err := FindPdflatex(); err != nil {
		return nil, err
	}

	tmpDir, err := os.MkdirTemp("", "resume-validation-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	texPath := filepath.Join(tmpDir, "resume.tex")
	if err := os.WriteFile(texPath, []byte(latexContent), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write temp LaTeX file: %w", err)
	}

	vs := &types.Violations{Violations: []types.Violation{}}
	pdfPath, _, err := CompileLaTeX(ctx, texPath, tmpDir)
	if err != nil {
		var compErr *CompilationError
		if !errors.As(err, &compErr) {
			return nil, fmt.Errorf("failed to compile LaTeX: %w", err)
		}
		vs.Add(types.Violation{
			Type:     "latex_error",
			Severity: types.SeverityError,
			Details:  fmt.Sprintf("LaTeX compilation failed: %s", compErr.Message),
		})
		if pdfPath == "" {
			return vs, nil
		}
	}

	pages, err := CountPDFPages(pdfPath)
	if err != nil {
		return nil, err
	}
	vs.Add(CheckPageCount(pages, maxPages)...)
	return vs, nil
}
