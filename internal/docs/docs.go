// Package docs holds the user guides and renders them to HTML.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/fileio"
)

//go:embed guides/*.md
var guides embed.FS

// Guide is one help document.
type Guide struct {
	Name     string // file stem, e.g. "quick-start"
	Title    string
	Markdown []byte
}

// Names of the bundled guides, in reading order.
var guideNames = []string{"quick-start", "help"}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Guides returns the bundled guides.
func Guides() ([]Guide, error) {
	out := make([]Guide, 0, len(guideNames))
	for _, name := range guideNames {
		g, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

// Lookup returns the guide with the given name.
func Lookup(name string) (Guide, error) {
	src, err := guides.ReadFile("guides/" + name + ".md")
	if err != nil {
		return Guide{}, fmt.Errorf("unknown guide %q (want one of %s)", name, strings.Join(guideNames, ", "))
	}
	title := name
	if hs := Headings(src, 1); len(hs) > 0 {
		title = hs[0]
	}
	return Guide{Name: name, Title: title, Markdown: src}, nil
}

// Headings lists the text of headings up to maxLevel, in document order.
func Headings(src []byte, maxLevel int) []string {
	doc := md.Parser().Parse(text.NewReader(src))
	var out []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		if h.Level <= maxLevel {
			out = append(out, nodeText(h, src))
		}
		return ast.WalkSkipChildren, nil
	})
	return out
}

func nodeText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
			continue
		}
		buf.WriteString(nodeText(c, src))
	}
	return buf.String()
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; max-width: 46em; margin: 2em auto; padding: 0 1em; line-height: 1.5; }
code { background: #f2f2f2; padding: 0 .2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: .2em .6em; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// RenderHTML converts a guide to a standalone HTML page.
func RenderHTML(g Guide) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert(g.Markdown, &body); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", g.Name, err)
	}
	var page bytes.Buffer
	err := pageTemplate.Execute(&page, struct {
		Title string
		Body  template.HTML
	}{g.Title, template.HTML(body.String())})
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", g.Name, err)
	}
	return page.Bytes(), nil
}

// WriteHelpDocs writes every guide to dir as Markdown and HTML and returns the
// paths written.
func WriteHelpDocs(dir string) ([]string, error) {
	gs, err := Guides()
	if err != nil {
		return nil, err
	}
	var written []string
	for _, g := range gs {
		page, err := RenderHTML(g)
		if err != nil {
			return written, err
		}
		files := []struct {
			ext  string
			data []byte
		}{{".md", g.Markdown}, {".html", page}}
		for _, f := range files {
			path := filepath.Join(dir, g.Name+f.ext)
			if err := fileio.WriteFileAtomic(path, f.data, 0o644); err != nil {
				return written, fmt.Errorf("failed to write %s: %w", path, err)
			}
			written = append(written, path)
		}
	}
	return written, nil
}
