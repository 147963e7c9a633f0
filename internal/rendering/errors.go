// Package rendering turns a résumé document into LaTeX source, a word-processor
// document, a print-ready HTML page and a PDF.
package rendering

import "fmt"

// TemplateError represents an error parsing or executing a LaTeX template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// DependencyMissingError means an external program an export needs is not
// installed. It is returned before any output is written.
type DependencyMissingError struct {
	Dependency string
	Message    string
	Cause      error
}

func (e *DependencyMissingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("missing dependency %s: %s: %v", e.Dependency, e.Message, e.Cause)
	}
	return fmt.Sprintf("missing dependency %s: %s", e.Dependency, e.Message)
}

func (e *DependencyMissingError) Unwrap() error {
	return e.Cause
}

// ExportError represents a failure to encode or write an export
type ExportError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s: %s", e.Path, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
