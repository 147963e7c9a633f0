package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/project"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/session"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

var editCmd = &cobra.Command{
	Use:   "edit <project.json>",
	Short: "Edit a project interactively with undo and redo",
	Long: `Reads editing commands from stdin, one per line, and keeps an undo history for the
whole session. Keystrokes sent with "type" are grouped into one undo step until typing
pauses. Type "help" for the command list. Changes are written only by "save".`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

const editHelp = `commands:
  type <field> <text>            set a header field as typing (grouped until a pause)
  set <field> <value>            set a header field
  link <linkedin|github> <kind> [label]
  section add <kind> <title>     kinds: education experience projects skills custom
  section rename <id> <title>
  section delete <id>
  section move <from> <to>
  entry add <section-id>
  entry delete <section-id> <n>
  entry move <section-id> <from> <to>
  undo | redo | reset | demo
  show | save | help | quit`

func init() {
	rootCmd.AddCommand(editCmd)
}

func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()
	return lines
}

func runEdit(cmd *cobra.Command, args []string) error {
	path := args[0]
	p, err := openProject(cmd, path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	sched := session.NewQueueScheduler(16)
	s := session.New(p.Document,
		session.WithLogger(logger),
		session.WithScheduler(sched),
		session.WithUndoLimit(settings.UndoLimit),
		session.WithIdleInterval(settings.TypingIdle()),
	)
	dirty := false
	remove := s.AddView(session.ViewFunc(func(*types.Document) { dirty = true }))
	defer remove()
	dirty = false

	lines := readLines(cmd.InOrStdin())
	for {
		select {
		case f := <-sched.C():
			f()
		case line, ok := <-lines:
			if !ok {
				return finishEdit(cmd, s, &dirty)
			}
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			switch fields[0] {
			case "quit", "exit":
				return finishEdit(cmd, s, &dirty)
			case "save":
				s.Commit()
				p.Document = s.Document()
				if err := project.SaveFile(path, p); err != nil {
					_, _ = fmt.Fprintf(out, "error: %v\n", err)
					continue
				}
				dirty = false
				_, _ = fmt.Fprintf(out, "saved %s\n", path)
				continue
			}
			if err := editCommand(cmd, s, fields); err != nil {
				_, _ = fmt.Fprintf(out, "error: %v\n", err)
			}
		}
	}
}

// finishEdit flushes any open typing burst before reading dirty, since the
// flush is what notifies the view.
func finishEdit(cmd *cobra.Command, s *session.Session, dirty *bool) error {
	s.Commit()
	if *dirty {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning: unsaved changes discarded")
	}
	return nil
}

// rest joins the fields after the first n, for free-text arguments.
func rest(fields []string, n int) string {
	if len(fields) <= n {
		return ""
	}
	return strings.Join(fields[n:], " ")
}

func need(fields []string, n int, usage string) error {
	if len(fields) < n {
		return fmt.Errorf("usage: %s", usage)
	}
	return nil
}

func editCommand(cmd *cobra.Command, s *session.Session, fields []string) error {
	out := cmd.OutOrStdout()
	switch fields[0] {
	case "help":
		_, _ = fmt.Fprintln(out, editHelp)
		return nil
	case "show":
		showDocument(out, s.Document())
		return nil
	case "type":
		if err := need(fields, 2, "type <field> <text>"); err != nil {
			return err
		}
		return s.TypeHeader(fields[1], rest(fields, 2))
	case "set":
		if err := need(fields, 2, "set <field> <value>"); err != nil {
			return err
		}
		return s.SetHeader(fields[1], rest(fields, 2))
	case "link":
		if err := need(fields, 3, "link <linkedin|github> <kind> [label]"); err != nil {
			return err
		}
		return s.SetLinkKind(fields[1], fields[2], rest(fields, 3))
	case "undo":
		if !s.Undo() {
			_, _ = fmt.Fprintln(out, "nothing to undo")
		}
		return nil
	case "redo":
		if !s.Redo() {
			_, _ = fmt.Fprintln(out, "nothing to redo")
		}
		return nil
	case "reset":
		return s.Reset()
	case "demo":
		return s.LoadDemo()
	case "section":
		return editSection(out, s, fields)
	case "entry":
		return editEntry(out, s, fields)
	}
	return fmt.Errorf("unknown command %q (try help)", fields[0])
}

func editSection(out io.Writer, s *session.Session, fields []string) error {
	if err := need(fields, 2, "section add|rename|delete|move ..."); err != nil {
		return err
	}
	switch fields[1] {
	case "add":
		if err := need(fields, 4, "section add <kind> <title>"); err != nil {
			return err
		}
		id, err := s.AddSection(rest(fields, 3), types.Kind(fields[2]))
		if err == nil {
			_, _ = fmt.Fprintf(out, "added %s\n", id)
		}
		return err
	case "rename":
		if err := need(fields, 4, "section rename <id> <title>"); err != nil {
			return err
		}
		return s.RenameSection(fields[2], rest(fields, 3))
	case "delete":
		if err := need(fields, 3, "section delete <id>"); err != nil {
			return err
		}
		return s.DeleteSection(fields[2])
	case "move":
		if err := need(fields, 4, "section move <from> <to>"); err != nil {
			return err
		}
		from, err := position(fields[2], "from")
		if err != nil {
			return err
		}
		to, err := position(fields[3], "to")
		if err != nil {
			return err
		}
		return s.MoveSection(from, to)
	}
	return fmt.Errorf("unknown section command %q", fields[1])
}

func editEntry(out io.Writer, s *session.Session, fields []string) error {
	if err := need(fields, 3, "entry add|delete|move <section-id> ..."); err != nil {
		return err
	}
	switch fields[1] {
	case "add":
		n, err := s.AddEntry(fields[2])
		if err == nil {
			_, _ = fmt.Fprintf(out, "added entry %d\n", n+1)
		}
		return err
	case "delete":
		if err := need(fields, 4, "entry delete <section-id> <n>"); err != nil {
			return err
		}
		i, err := position(fields[3], "entry")
		if err != nil {
			return err
		}
		return s.DeleteEntry(fields[2], i)
	case "move":
		if err := need(fields, 5, "entry move <section-id> <from> <to>"); err != nil {
			return err
		}
		from, err := position(fields[3], "from")
		if err != nil {
			return err
		}
		to, err := position(fields[4], "to")
		if err != nil {
			return err
		}
		return s.MoveEntry(fields[2], from, to)
	}
	return fmt.Errorf("unknown entry command %q", fields[1])
}

func showDocument(out io.Writer, doc *types.Document) {
	for _, field := range types.HeaderFields {
		value, _ := doc.Header.Get(field)
		_, _ = fmt.Fprintf(out, "%s: %s\n", field, value)
	}
	for i, sec := range doc.Sections {
		_, _ = fmt.Fprintf(out, "%d. %s [%s, %s] %d entries\n", i+1, sec.Title, sec.ID, sec.Kind, len(sec.Entries))
	}
}
