package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/observability"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/project"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/rendering"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/schemas"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/spelling"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate <project.json>",
	Short: "Check a project for missing content and layout problems",
	Long: `Checks the header, sections and bullets of a project and prints every problem found.
With --max-pages the LaTeX output is also compiled with pdflatex and its page count checked.
With --dictionary, words missing from the word list are flagged unless the project ignores them.
Exits with an error when any problem has error severity.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var (
	validateMaxPages       int
	validateMaxBulletLines int
	validateForbid         string
	validateJSON           bool
	validateDictionary     string
	validateSchema         string
)

func init() {
	validateCmd.Flags().IntVar(&validateMaxPages, "max-pages", 0, "Compile with pdflatex and fail above this page count (0 to skip)")
	validateCmd.Flags().IntVar(&validateMaxBulletLines, "max-bullet-lines", validation.DefaultOptions().MaxBulletLines, "Warn when a bullet wraps past this many lines")
	validateCmd.Flags().StringVar(&validateForbid, "forbid", "", "Comma-separated phrases that must not appear")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Print violations as JSON")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Check the file against this JSON Schema instead of the built-in one")
	validateCmd.Flags().StringVar(&validateDictionary, "dictionary", "", "Word list (one word per line) used to flag misspellings")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read project file: %w", err)
	}
	p, err := project.Parse(data)
	if err != nil {
		return err
	}

	opts := validation.DefaultOptions()
	opts.MaxBulletLines = validateMaxBulletLines
	opts.ForbiddenPhrases = splitList(validateForbid)
	if validateDictionary != "" {
		words, err := spelling.LoadWordList(validateDictionary)
		if err != nil {
			return err
		}
		logger.Debug("loaded word list", "path", validateDictionary, "words", words.Len())
		opts.Speller = words
		opts.Ignore = spelling.NewIgnoreList(p.IgnoreWords)
	}

	vs := validation.CheckDocument(p.Document, opts)
	if err := checkSchema(args[0], data); err != nil {
		var loadErr *schemas.SchemaLoadError
		if errors.As(err, &loadErr) {
			return err
		}
		vs.Add(types.Violation{
			Type:     "not_canonical",
			Severity: types.SeverityWarning,
			Details:  "file does not match the schema (run normalize): " + err.Error(),
		})
	}

	if validateMaxPages > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		latex, err := rendering.RenderLaTeXWithTemplate(p.Document, settings.Template)
		if err != nil {
			return err
		}
		compiled, err := validation.ValidateLaTeX(ctx, latex, validateMaxPages)
		if err != nil {
			return err
		}
		vs.Add(compiled.Violations...)
	}

	if validateJSON {
		out, err := json.MarshalIndent(vs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal violations: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		observability.NewPrinter(cmd.OutOrStdout()).PrintViolations(vs)
	}

	if vs.HasErrors() {
		return fmt.Errorf("validation failed with %d error(s)", vs.Count(types.SeverityError))
	}
	return nil
}

func checkSchema(path string, data []byte) error {
	if validateSchema == "" {
		return schemas.ValidateDocument(data)
	}
	schemaPath := schemas.ResolveSchemaPath(validateSchema)
	if schemaPath == "" {
		return &schemas.SchemaLoadError{Path: validateSchema, Message: "schema file not found"}
	}
	return schemas.ValidateJSON(schemaPath, path)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
