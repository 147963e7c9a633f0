package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/project"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/spelling"
)

var ignoreCmd = &cobra.Command{
	Use:   "ignore",
	Short: "Manage the words spell checking ignores in a project",
}

var ignoreListCmd = &cobra.Command{
	Use:   "list <project.json>",
	Short: "Print the ignored words",
	Args:  cobra.ExactArgs(1),
	RunE:  runIgnoreList,
}

var ignoreAddCmd = &cobra.Command{
	Use:   "add <project.json> <word>...",
	Short: "Ignore words everywhere in the project",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runIgnoreAdd,
}

var ignoreRemoveCmd = &cobra.Command{
	Use:   "remove <project.json> <word>...",
	Short: "Stop ignoring words",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runIgnoreRemove,
}

func init() {
	ignoreCmd.AddCommand(ignoreListCmd, ignoreAddCmd, ignoreRemoveCmd)
	rootCmd.AddCommand(ignoreCmd)
}

func runIgnoreList(cmd *cobra.Command, args []string) error {
	p, err := openProject(cmd, args[0])
	if err != nil {
		return err
	}
	for _, w := range spelling.NormalizeIgnoreList(p.IgnoreWords) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), w)
	}
	return nil
}

func runIgnoreAdd(cmd *cobra.Command, args []string) error {
	return updateIgnoreList(cmd, args[0], func(l *spelling.IgnoreList) {
		for _, w := range args[1:] {
			l.Add(spelling.NormalizeWord(w))
		}
	})
}

func runIgnoreRemove(cmd *cobra.Command, args []string) error {
	return updateIgnoreList(cmd, args[0], func(l *spelling.IgnoreList) {
		for _, w := range args[1:] {
			l.Remove(spelling.NormalizeWord(w))
		}
	})
}

func updateIgnoreList(cmd *cobra.Command, path string, fn func(*spelling.IgnoreList)) error {
	p, err := openProject(cmd, path)
	if err != nil {
		return err
	}
	l := spelling.NewIgnoreList(p.IgnoreWords)
	fn(l)
	p.IgnoreWords = l.Words()
	if err := project.SaveFile(path, p); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d ignored word(s)\n", len(p.IgnoreWords))
	return nil
}
