// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/rendering"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocumentSummary outputs who the résumé is for and how big it is.
func (p *Printer) PrintDocumentSummary(doc *types.Document, ignoreWords int) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	name := doc.Header.Name
	if strings.TrimSpace(name) == "" {
		name = "(no name)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if doc.Header.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", doc.Header.Email))
	}
	sb.WriteString(fmt.Sprintf("Sections: %d\n", len(doc.Sections)))
	sb.WriteString(fmt.Sprintf("Entries:  %d\n", doc.EntryCount()))
	if ignoreWords > 0 {
		sb.WriteString(fmt.Sprintf("Ignored words: %d\n", ignoreWords))
	}

	if len(doc.Sections) > 0 {
		sb.WriteString("\n")
		count := min(len(doc.Sections), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := doc.Sections[i]
			sb.WriteString(fmt.Sprintf("  %d. %s [%s] %d entries\n", i+1, s.Title, s.Kind, len(s.Entries)))
		}
		if len(doc.Sections) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Sections)-maxItemsToShow))
		}
	}

	p.printBox("DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExportResult outputs where an export went and what it cost.
func (p *Printer) PrintExportResult(result *rendering.ExportResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Path:     %s\n", result.Path))
	sb.WriteString(fmt.Sprintf("Format:   %s\n", result.Format))
	if result.Encoding != "" {
		sb.WriteString(fmt.Sprintf("Encoding: %s\n", result.Encoding))
	}
	sb.WriteString(fmt.Sprintf("Size:     %d bytes\n", result.Bytes))
	sb.WriteString(fmt.Sprintf("Took:     %s", result.Duration.Round(1e6)))

	p.printBox("EXPORT", sb.String())
}

// PrintViolations outputs any problems found in the document.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations (%d errors):\n\n",
		len(violations.Violations), violations.Count(types.SeverityError)))

	for i, v := range violations.Violations {
		mark := "⚠"
		if v.Severity == types.SeverityError {
			mark = "✖"
		}
		sb.WriteString(fmt.Sprintf("%s %s%s\n", mark, v.Type, location(v)))
		sb.WriteString(fmt.Sprintf("  %s\n", v.Details))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func location(v types.Violation) string {
	if v.SectionID == "" {
		return ""
	}
	loc := " @ " + v.SectionID
	if v.Entry != nil {
		loc += fmt.Sprintf("[%d]", *v.Entry)
	}
	if v.Bullet != nil {
		loc += fmt.Sprintf(" bullet %d", *v.Bullet)
	}
	return loc
}
