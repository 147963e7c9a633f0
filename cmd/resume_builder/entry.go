package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/session"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Add, delete and reorder the entries of a section",
}

var entryAddCmd = &cobra.Command{
	Use:   "add <project.json> <section-id>",
	Short: "Append a blank entry of the section's kind",
	Args:  cobra.ExactArgs(2),
	RunE:  runEntryAdd,
}

var entryDeleteCmd = &cobra.Command{
	Use:   "delete <project.json> <section-id> <position>",
	Short: "Remove an entry (positions start at 1)",
	Args:  cobra.ExactArgs(3),
	RunE:  runEntryDelete,
}

var entryMoveCmd = &cobra.Command{
	Use:   "move <project.json> <section-id> <from> <to>",
	Short: "Move an entry within its section (positions start at 1)",
	Args:  cobra.ExactArgs(4),
	RunE:  runEntryMove,
}

func init() {
	entryCmd.AddCommand(entryAddCmd, entryDeleteCmd, entryMoveCmd)
	rootCmd.AddCommand(entryCmd)
}

func runEntryAdd(cmd *cobra.Command, args []string) error {
	var index int
	err := editProject(cmd, args[0], func(s *session.Session) error {
		var err error
		index, err = s.AddEntry(args[1])
		return err
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added entry %d to %s\n", index+1, args[1])
	return nil
}

func runEntryDelete(cmd *cobra.Command, args []string) error {
	index, err := position(args[2], "entry")
	if err != nil {
		return err
	}
	return editProject(cmd, args[0], func(s *session.Session) error {
		return s.DeleteEntry(args[1], index)
	})
}

func runEntryMove(cmd *cobra.Command, args []string) error {
	from, err := position(args[2], "from")
	if err != nil {
		return err
	}
	to, err := position(args[3], "to")
	if err != nil {
		return err
	}
	return editProject(cmd, args[0], func(s *session.Session) error {
		return s.MoveEntry(args[1], from, to)
	})
}
