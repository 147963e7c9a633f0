// Package main provides the resume_builder CLI for editing and exporting résumé projects.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Build one-page résumés from a JSON project file",
	Long: `resume_builder edits a résumé project (header, sections, entries and styled bullets)
and exports it as LaTeX, Word (.docx), print HTML or PDF.

Configuration can be loaded from a JSON file using --config. Command-line flags override
config file values; CHROME_PATH and RESUME_BUILDER_ENCODING override both.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return loadSettings(cmd) },
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
