package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/session"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "List, add, rename, delete and reorder sections",
}

var sectionListCmd = &cobra.Command{
	Use:   "list <project.json>",
	Short: "List sections with their ids",
	Args:  cobra.ExactArgs(1),
	RunE:  runSectionList,
}

var sectionAddCmd = &cobra.Command{
	Use:   "add <project.json> <title>",
	Short: "Append a section",
	Args:  cobra.ExactArgs(2),
	RunE:  runSectionAdd,
}

var sectionRenameCmd = &cobra.Command{
	Use:   "rename <project.json> <section-id> <title>",
	Short: "Change a section title",
	Args:  cobra.ExactArgs(3),
	RunE:  runSectionRename,
}

var sectionDeleteCmd = &cobra.Command{
	Use:   "delete <project.json> <section-id>",
	Short: "Remove a section and its entries",
	Args:  cobra.ExactArgs(2),
	RunE:  runSectionDelete,
}

var sectionMoveCmd = &cobra.Command{
	Use:   "move <project.json> <from> <to>",
	Short: "Move a section to another position (positions start at 1)",
	Args:  cobra.ExactArgs(3),
	RunE:  runSectionMove,
}

var sectionAddKind string

func init() {
	sectionAddCmd.Flags().StringVar(&sectionAddKind, "kind", string(types.KindCustom), "Section kind: education, experience, projects, skills or custom")

	sectionCmd.AddCommand(sectionListCmd, sectionAddCmd, sectionRenameCmd, sectionDeleteCmd, sectionMoveCmd)
	rootCmd.AddCommand(sectionCmd)
}

func runSectionList(cmd *cobra.Command, args []string) error {
	p, err := openProject(cmd, args[0])
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tID\tKIND\tTITLE\tENTRIES")
	for i, sec := range p.Document.Sections {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", i+1, sec.ID, sec.Kind, sec.Title, len(sec.Entries))
	}
	return w.Flush()
}

func runSectionAdd(cmd *cobra.Command, args []string) error {
	var id string
	err := editProject(cmd, args[0], func(s *session.Session) error {
		var err error
		id, err = s.AddSection(args[1], types.Kind(sectionAddKind))
		return err
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added section %s\n", id)
	return nil
}

func runSectionRename(cmd *cobra.Command, args []string) error {
	return editProject(cmd, args[0], func(s *session.Session) error {
		return s.RenameSection(args[1], args[2])
	})
}

func runSectionDelete(cmd *cobra.Command, args []string) error {
	return editProject(cmd, args[0], func(s *session.Session) error {
		return s.DeleteSection(args[1])
	})
}

func runSectionMove(cmd *cobra.Command, args []string) error {
	from, err := position(args[1], "from")
	if err != nil {
		return err
	}
	to, err := position(args[2], "to")
	if err != nil {
		return err
	}
	return editProject(cmd, args[0], func(s *session.Session) error {
		return s.MoveSection(from, to)
	})
}
