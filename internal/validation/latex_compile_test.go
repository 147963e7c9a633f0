package validation

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/rendering"
)

func requirePdflatex(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("pdflatex"); err != nil {
		t.Skip("pdflatex not available, skipping compilation test")
	}
}

func TestCompileLaTeX_ValidLaTeX(t *testing.T) {
	requirePdflatex(t)

	tmpDir := t.TempDir()
	texFile := filepath.Join(tmpDir, "test.tex")
	content := `\documentclass{article}
\begin{document}
Hello, World!
\end{document}`
	require.NoError(t, os.WriteFile(texFile, []byte(content), 0644))

	pdfPath, _, err := CompileLaTeX(context.Background(), texFile, filepath.Join(tmpDir, "build"))
	require.NoError(t, err)

	_, err = os.Stat(pdfPath)
	assert.NoError(t, err, "PDF should exist")

	pages, err := CountPDFPages(pdfPath)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

func TestCompileLaTeX_InvalidLaTeX(t *testing.T) {
	requirePdflatex(t)

	tmpDir := t.TempDir()
	texFile := filepath.Join(tmpDir, "test.tex")
	content := `\documentclass{article}
\begin{document}
\undefinedcommand{this will fail}
\end{document}`
	require.NoError(t, os.WriteFile(texFile, []byte(content), 0644))

	_, logOutput, err := CompileLaTeX(context.Background(), texFile, tmpDir)
	var compErr *CompilationError
	require.ErrorAs(t, err, &compErr)
	assert.NotEmpty(t, logOutput)
	assert.Equal(t, logOutput, compErr.LogOutput)
}

func TestCompileLaTeX_DemoDocument(t *testing.T) {
	requirePdflatex(t)

	tex, err := rendering.RenderLaTeX(demoDoc())
	require.NoError(t, err)

	vs, err := ValidateLaTeX(context.Background(), tex, 1)
	require.NoError(t, err)
	for _, v := range vs.Violations {
		if v.Type == "latex_error" {
			t.Skipf("LaTeX installation lacks packages the template needs: %s", v.Details)
		}
	}
	assert.Empty(t, vs.Violations)
}

func TestCompileLaTeX_FileNotFound(t *testing.T) {
	stubLookPath(t, true)

	_, _, err := CompileLaTeX(context.Background(), "/nonexistent/file.tex", "")
	var fileErr *FileReadError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, "/nonexistent/file.tex", fileErr.Path)
}

func TestCompileLaTeX_PdflatexNotAvailable(t *testing.T) {
	stubLookPath(t, false)

	_, _, err := CompileLaTeX(context.Background(), "resume.tex", "")
	var depErr *rendering.DependencyMissingError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "pdflatex", depErr.Dependency)
	assert.True(t, errors.Is(err, exec.ErrNotFound))

	_, err = ValidateLaTeX(context.Background(), `\documentclass{article}`, 1)
	assert.ErrorAs(t, err, &depErr)
}

func TestCleanupCompilationArtifacts(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"resume.aux", "resume.log", "resume.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644))
	}

	require.NoError(t, CleanupCompilationArtifacts(tmpDir, "resume"))

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "resume.pdf", entries[0].Name())
}

func TestCleanupCompilationArtifacts_TempDir(t *testing.T) {
	dir, err := os.MkdirTemp(t.TempDir(), "latex-compile-*")
	require.NoError(t, err)

	require.NoError(t, CleanupCompilationArtifacts(dir, "resume"))
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, CleanupCompilationArtifacts("", "resume"))
}

func stubLookPath(t *testing.T, found bool) {
	t.Helper()
	orig := lookPath
	lookPath = func(name string) (string, error) {
		if found {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}
	t.Cleanup(func() { lookPath = orig })
}
