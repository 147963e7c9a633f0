package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/project"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <project.json>",
	Short: "Rewrite a project file in canonical form",
	Long: `Loads a project written by any version of the tool, or edited by hand, and prints it in
canonical form. Header key aliases, nested section lists, plain-string bullets and loosely
typed style attributes are all accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

var normalizeOutputFile string

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOutputFile, "out", "o", "", "Write to this file instead of stdout (may be the input file)")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	p, err := openProject(cmd, args[0])
	if err != nil {
		return err
	}

	if normalizeOutputFile != "" {
		if err := project.SaveFile(normalizeOutputFile, p); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Normalized %s -> %s\n", args[0], normalizeOutputFile)
		return nil
	}

	data, err := p.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
