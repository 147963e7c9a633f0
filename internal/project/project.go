package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/fileio"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/schemas"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/spelling"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

// IgnoreWordsKey is the project file key holding the spell-check ignore list.
const IgnoreWordsKey = "spellcheck_ignore_all"

// Project is a document plus the data other components store alongside it.
type Project struct {
	Document    *types.Document
	IgnoreWords []string
}

// New wraps doc in a project with an empty ignore list.
func New(doc *types.Document) *Project {
	return &Project{Document: doc, IgnoreWords: []string{}}
}

type fileShape struct {
	Header      types.Header    `json:"header"`
	Sections    []types.Section `json:"sections"`
	IgnoreWords []string        `json:"spellcheck_ignore_all"`
}

// Parse decodes and normalizes project file content.
func Parse(data []byte) (*Project, error) {
	raw, err := DecodeRaw(data)
	if err != nil {
		return nil, &LoadError{
			Message: "failed to parse JSON",
			Cause:   err,
		}
	}

	doc, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	p := New(doc)
	if top, ok := asObject(raw); ok {
		p.IgnoreWords = ignoreWords(top.Values[IgnoreWordsKey])
	}
	return p, nil
}

func ignoreWords(v any) []string {
	list, ok := asList(v)
	if !ok {
		return []string{}
	}
	words := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			words = append(words, s)
		}
	}
	return spelling.NormalizeIgnoreList(words)
}

// LoadFile reads and normalizes a project file.
func LoadFile(path string) (*Project, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return Parse(content)
}

// Marshal serializes the project in its canonical indented form.
func (p *Project) Marshal() ([]byte, error) {
	if p == nil || p.Document == nil {
		return nil, &SaveError{Message: "no document to save"}
	}
	sections := p.Document.Sections
	if sections == nil {
		sections = []types.Section{}
	}
	words := spelling.NormalizeIgnoreList(p.IgnoreWords)

	data, err := json.MarshalIndent(fileShape{
		Header:      p.Document.Header,
		Sections:    sections,
		IgnoreWords: words,
	}, "", "  ")
	if err != nil {
		return nil, &SaveError{
			Message: "failed to marshal JSON",
			Cause:   err,
		}
	}
	return append(data, '\n'), nil
}

// SaveFile validates the project against the document schema and writes it. On
// any failure the destination is left as it was.
func SaveFile(path string, p *Project) error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	if err := schemas.ValidateDocument(data); err != nil {
		return &SaveError{
			Message: "document does not match schema",
			Cause:   err,
		}
	}
	if err := fileio.WriteFileAtomic(path, data, 0644); err != nil {
		return &SaveError{
			Message: fmt.Sprintf("failed to write %s", path),
			Cause:   err,
		}
	}
	return nil
}
