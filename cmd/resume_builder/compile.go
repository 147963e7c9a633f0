package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/fileio"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/rendering"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/validation"
)

var compileCmd = &cobra.Command{
	Use:   "compile <project.json>",
	Short: "Typeset the LaTeX output with pdflatex",
	Long: `Renders the project as LaTeX and compiles it with pdflatex, producing the same PDF the
LaTeX template would give on Overleaf. Use export --format pdf for the browser-printed version.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

var (
	compileOutputFile string
	compileKeepTeX    bool
	compileWorkDir    string
)

func init() {
	compileCmd.Flags().StringVarP(&compileOutputFile, "out", "o", "", "Output PDF path (required)")
	compileCmd.Flags().BoolVar(&compileKeepTeX, "keep-tex", false, "Also write the .tex source next to the PDF")
	compileCmd.Flags().StringVar(&compileWorkDir, "work-dir", "", "Compile in this directory and keep its .tex, .pdf and pdflatex log (default: a temporary directory)")

	_ = compileCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	if _, err := validation.FindPdflatex(); err != nil {
		return err
	}
	p, err := openProject(cmd, args[0])
	if err != nil {
		return err
	}

	latex, err := rendering.RenderLaTeXWithTemplate(p.Document, settings.Template)
	if err != nil {
		return err
	}

	workDir := compileWorkDir
	if workDir == "" {
		workDir, err = os.MkdirTemp("", "resume-compile-*")
		if err != nil {
			return fmt.Errorf("failed to create temp directory: %w", err)
		}
		defer func() { _ = os.RemoveAll(workDir) }()
	} else if err := os.MkdirAll(workDir, 0o755); err != nil {
		return fmt.Errorf("failed to create work directory: %w", err)
	}

	texPath := filepath.Join(workDir, "resume.tex")
	if err := os.WriteFile(texPath, []byte(latex), 0o644); err != nil {
		return fmt.Errorf("failed to write LaTeX source: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pdfPath, logOutput, err := validation.CompileLaTeX(ctx, texPath, workDir)
	if compileWorkDir != "" {
		if logErr := os.WriteFile(filepath.Join(workDir, "resume.pdflatex.txt"), []byte(logOutput), 0o644); logErr != nil {
			logger.Warn("failed to save pdflatex output", "error", logErr)
		}
		if cleanErr := validation.CleanupCompilationArtifacts(workDir, "resume"); cleanErr != nil {
			logger.Warn("failed to remove pdflatex artifacts", "error", cleanErr)
		}
	}
	if err != nil {
		var compErr *validation.CompilationError
		if errors.As(err, &compErr) {
			logger.Debug("pdflatex output", "log", tail(compErr.LogOutput, 20))
		}
		return err
	}
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return fmt.Errorf("failed to read compiled PDF: %w", err)
	}
	pages, err := validation.CountPDFPagesBytes(data)
	if err != nil {
		return err
	}

	if err := fileio.WriteFileAtomic(compileOutputFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	if compileKeepTeX {
		texOut := compileOutputFile[:len(compileOutputFile)-len(filepath.Ext(compileOutputFile))] + ".tex"
		if err := fileio.WriteFileAtomic(texOut, []byte(latex), 0o644); err != nil {
			return fmt.Errorf("failed to write LaTeX source: %w", err)
		}
	}

	logger.Debug("compiled LaTeX", "path", compileOutputFile, "pages", pages)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Compiled %s (%d page(s))\n", compileOutputFile, pages)
	return nil
}

// tail returns the last n lines of s.
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
