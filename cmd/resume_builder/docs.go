package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/docs"
)

var docsCmd = &cobra.Command{
	Use:   "docs [dir]",
	Short: "Write the quick-start and help guides as Markdown and HTML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDocs,
}

var docsList bool

func init() {
	docsCmd.Flags().BoolVar(&docsList, "list", false, "List the guides and their headings instead of writing files")

	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if docsList {
		guides, err := docs.Guides()
		if err != nil {
			return err
		}
		for _, g := range guides {
			_, _ = fmt.Fprintf(out, "%s: %s\n", g.Name, g.Title)
			for _, h := range docs.Headings(g.Markdown, 2) {
				if h != g.Title {
					_, _ = fmt.Fprintf(out, "  - %s\n", h)
				}
			}
		}
		return nil
	}

	dir := "help"
	if len(args) > 0 {
		dir = args[0]
	}
	written, err := docs.WriteHelpDocs(dir)
	if err != nil {
		return err
	}
	for _, path := range written {
		_, _ = fmt.Fprintf(out, "Wrote %s\n", path)
	}
	return nil
}
