package validation

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/rendering"
)

const (
	// CompilationTimeout is the maximum time to wait for LaTeX compilation
	CompilationTimeout = 30 * time.Second

	pdflatex = "pdflatex"
)

var lookPath = exec.LookPath

// FindPdflatex returns the path of pdflatex, or a DependencyMissingError.
func FindPdflatex() (string, error) {
	path, err := lookPath(pdflatex)
	if err != nil {
		return "", &rendering.DependencyMissingError{
			Dependency: pdflatex,
			Message:    "pdflatex not found in PATH; install a LaTeX distribution such as TeX Live or MiKTeX",
			Cause:      err,
		}
	}
	return path, nil
}

// CompileLaTeX compiles texPath with pdflatex inside workDir and returns the
// PDF path with the compiler's log. An empty workDir means a fresh temporary
// directory. The source is never modified.
func CompileLaTeX(ctx context.Context, texPath, workDir string) (pdfPath string, logOutput string, err error) {
	bin, err := FindPdflatex()
	if err != nil {
		return "", "", err
	}

	texContent, err := readFile(texPath)
	if err != nil {
		return "", "", err
	}

	if workDir == "" {
		workDir, err = os.MkdirTemp("", "latex-compile-*")
		if err != nil {
			return "", "", &CompilationError{Message: "failed to create temporary working directory", Cause: err}
		}
	} else if err := os.MkdirAll(workDir, 0o755); err != nil {
		return "", "", &CompilationError{Message: fmt.Sprintf("failed to create working directory: %s", workDir), Cause: err}
	}

	texBaseName := filepath.Base(texPath)
	workTexPath := filepath.Join(workDir, texBaseName)
	if filepath.Clean(filepath.Dir(texPath)) != filepath.Clean(workDir) {
		if err := os.WriteFile(workTexPath, texContent, 0o644); err != nil {
			return "", "", &CompilationError{Message: fmt.Sprintf("failed to copy LaTeX file into %s", workDir), Cause: err}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, CompilationTimeout)
	defer cancel()

	// nonstopmode keeps pdflatex from waiting on stdin after an error
	cmd := exec.CommandContext(ctx, bin, "-interaction=nonstopmode", "-halt-on-error",
		"-output-directory", workDir, workTexPath)
	cmd.Dir = workDir

	var out strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &out
	runErr := cmd.Run()
	logOutput = out.String()

	pdfPath = filepath.Join(workDir, strings.TrimSuffix(texBaseName, filepath.Ext(texBaseName))+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return "", logOutput, &CompilationError{
			Message:   "LaTeX compilation failed: PDF was not generated",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}
	if runErr != nil {
		return pdfPath, logOutput, &CompilationError{
			Message:   "LaTeX compilation completed with errors (PDF may be incomplete)",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}
	return pdfPath, logOutput, nil
}

// CleanupCompilationArtifacts removes the auxiliary files pdflatex leaves next
// to the PDF for the given job name, or the whole directory if CompileLaTeX
// created it.
func CleanupCompilationArtifacts(workDir, jobName string) error {
	if workDir == "" {
		return nil
	}
	if strings.HasPrefix(filepath.Base(workDir), "latex-compile-") {
		return os.RemoveAll(workDir)
	}
	for _, ext := range []string{".aux", ".log", ".out", ".toc", ".lof", ".lot"} {
		_ = os.Remove(filepath.Join(workDir, jobName+ext))
	}
	return nil
}
