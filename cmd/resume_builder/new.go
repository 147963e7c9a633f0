package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

var newCmd = &cobra.Command{
	Use:   "new <project.json>",
	Short: "Create an empty résumé project",
	Long:  "Writes a project with an empty header and the Education, Experience, Projects and Technical Skills sections.",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

var newForce bool

func init() {
	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "Overwrite an existing file")

	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	if err := createProject(args[0], types.NewDocument(), newForce); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", args[0])
	return nil
}
