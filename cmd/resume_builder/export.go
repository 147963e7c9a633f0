package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/observability"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/rendering"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/validation"
)

var exportCmd = &cobra.Command{
	Use:   "export <project.json>",
	Short: "Export a project as LaTeX, Word, HTML or PDF",
	Long: `Renders the project and writes it to the output file. The format comes from --format,
then from the output file's extension, then from the configured default format.

PDF export needs Chrome or Chromium (set --chrome or CHROME_PATH when it is not on PATH).
Text formats honor --encoding; characters the encoding cannot represent are replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var (
	exportOutputFile string
	exportFormat     string
	exportEncoding   string
	exportTemplate   string
	exportChrome     string
	exportTimeout    time.Duration
	exportMaxPages   int
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "", "Output file path (required)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Export format: tex, docx, html or pdf (comma-separated for several)")
	exportCmd.Flags().StringVar(&exportEncoding, "encoding", "", "Text encoding for tex and html output (e.g. utf-8, latin1)")
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "Custom LaTeX template path")
	exportCmd.Flags().StringVar(&exportChrome, "chrome", "", "Path to a Chrome or Chromium binary for PDF export")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", 0, "PDF export timeout (default from config)")
	exportCmd.Flags().IntVar(&exportMaxPages, "max-pages", 0, "Fail when a PDF export is longer than this (0 to skip)")

	_ = exportCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	p, err := openProject(cmd, args[0])
	if err != nil {
		return err
	}

	opts := rendering.ExportOptions{
		Encoding:   settings.Encoding,
		Template:   settings.Template,
		ChromePath: settings.ChromePath,
		Timeout:    settings.PDFTimeout(),
		Logger:     logger,
	}
	if cmd.Flags().Changed("encoding") {
		opts.Encoding = exportEncoding
	}
	if cmd.Flags().Changed("template") {
		opts.Template = exportTemplate
	}
	if cmd.Flags().Changed("chrome") {
		opts.ChromePath = exportChrome
	}
	if cmd.Flags().Changed("timeout") {
		opts.Timeout = exportTimeout
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if strings.Contains(exportFormat, ",") {
		return exportMany(ctx, cmd, p.Document, opts)
	}

	path, format, err := resolveExportTarget(exportOutputFile, exportFormat)
	if err != nil {
		return err
	}
	result, err := rendering.Export(ctx, p.Document, format, path, opts)
	if err != nil {
		return err
	}

	if format == rendering.FormatPDF && exportMaxPages > 0 {
		pages, err := validation.CountPDFPages(result.Path)
		if err != nil {
			return err
		}
		if violations := validation.CheckPageCount(pages, exportMaxPages); len(violations) > 0 {
			return fmt.Errorf("%s: %s", violations[0].Type, violations[0].Details)
		}
	}

	if settings.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintExportResult(result)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", result.Format, result.Path)
	return nil
}

// exportMany writes one file per format listed in --format, all sharing the
// output path's base name.
func exportMany(ctx context.Context, cmd *cobra.Command, doc *types.Document, opts rendering.ExportOptions) error {
	var formats []rendering.Format
	for _, name := range splitList(exportFormat) {
		f, err := rendering.ParseFormat(name)
		if err != nil {
			return err
		}
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		return fmt.Errorf("no export formats given in %q", exportFormat)
	}
	base, _, err := resolveExportTarget(exportOutputFile, string(formats[0]))
	if err != nil {
		return err
	}

	results, err := rendering.ExportAll(ctx, doc, rendering.TargetsFor(base, formats), opts)
	if err != nil {
		return err
	}
	for _, result := range results {
		if settings.Verbose {
			observability.NewPrinter(cmd.ErrOrStderr()).PrintExportResult(result)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", result.Format, result.Path)
	}
	return nil
}

// resolveExportTarget picks the format and final path. A path without an
// extension gets the format's extension, and a bare file name is placed in
// the configured output directory.
func resolveExportTarget(out, formatFlag string) (string, rendering.Format, error) {
	var (
		format rendering.Format
		err    error
	)
	switch {
	case formatFlag != "":
		format, err = rendering.ParseFormat(formatFlag)
	case filepath.Ext(out) != "":
		format, err = rendering.FormatFromPath(out)
	default:
		format, err = rendering.ParseFormat(settings.DefaultFormat)
	}
	if err != nil {
		return "", "", err
	}

	if filepath.Ext(out) == "" {
		out += "." + string(format)
	}
	if settings.OutputDir != "" && filepath.Base(out) == out {
		out = filepath.Join(settings.OutputDir, out)
	}
	return out, format, nil
}
