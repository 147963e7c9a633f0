package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

var demoCmd = &cobra.Command{
	Use:   "demo <project.json>",
	Short: "Create a project filled with the sample résumé",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemo,
}

var demoForce bool

func init() {
	demoCmd.Flags().BoolVarP(&demoForce, "force", "f", false, "Overwrite an existing file")

	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	if err := createProject(args[0], types.DemoDocument(), demoForce); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s with the sample résumé\n", args[0])
	return nil
}
