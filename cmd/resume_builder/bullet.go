package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/richtext"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/session"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

var bulletCmd = &cobra.Command{
	Use:   "bullet",
	Short: "Add, style and delete the bullets of an experience or project entry",
	Long: `Edits bullets of experience and project entries. Entry and bullet positions start at 1.

Styles apply to a range of characters given by --start and --end (0-based, end exclusive;
the default range is the whole bullet). Colors are #rrggbb.`,
}

var bulletAddCmd = &cobra.Command{
	Use:   "add <project.json> <section-id> <entry> <text>",
	Short: "Append a bullet, optionally styled",
	Args:  cobra.ExactArgs(4),
	RunE:  runBulletAdd,
}

var bulletStyleCmd = &cobra.Command{
	Use:   "style <project.json> <section-id> <entry> <bullet>",
	Short: "Change the style of part of a bullet",
	Args:  cobra.ExactArgs(4),
	RunE:  runBulletStyle,
}

var bulletDeleteCmd = &cobra.Command{
	Use:   "delete <project.json> <section-id> <entry> <bullet>",
	Short: "Remove a bullet",
	Args:  cobra.ExactArgs(4),
	RunE:  runBulletDelete,
}

var (
	bulletBold      bool
	bulletItalic    bool
	bulletUnderline bool
	bulletFont      string
	bulletSize      int
	bulletColor     string
	bulletHighlight string
	bulletStart     int
	bulletEnd       int
)

func addStyleFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&bulletBold, "bold", false, "Bold text")
	cmd.Flags().BoolVar(&bulletItalic, "italic", false, "Italic text")
	cmd.Flags().BoolVar(&bulletUnderline, "underline", false, "Underlined text")
	cmd.Flags().StringVar(&bulletFont, "font", "", "Font family (empty for the document default)")
	cmd.Flags().IntVar(&bulletSize, "size", 0, "Font size in points (0 for the document default)")
	cmd.Flags().StringVar(&bulletColor, "color", "", "Text color as #rrggbb (empty clears)")
	cmd.Flags().StringVar(&bulletHighlight, "highlight", "", "Highlight color as #rrggbb (empty clears)")
}

func init() {
	addStyleFlags(bulletAddCmd)
	addStyleFlags(bulletStyleCmd)
	bulletStyleCmd.Flags().IntVar(&bulletStart, "start", 0, "First character to style (0-based)")
	bulletStyleCmd.Flags().IntVar(&bulletEnd, "end", -1, "Character after the last one to style (-1 for the end of the bullet)")

	bulletCmd.AddCommand(bulletAddCmd, bulletStyleCmd, bulletDeleteCmd)
	rootCmd.AddCommand(bulletCmd)
}

// entryBullets returns the bullets of e and a function that rebuilds e with
// replacement bullets.
func entryBullets(e types.Entry) (types.Bullets, func(types.Bullets) types.Entry, error) {
	switch e := e.(type) {
	case types.ExperienceEntry:
		return e.Bullets, func(b types.Bullets) types.Entry { e.Bullets = b; return e }, nil
	case types.ProjectEntry:
		return e.Bullets, func(b types.Bullets) types.Entry { e.Bullets = b; return e }, nil
	}
	return nil, nil, fmt.Errorf("%s entries have no bullets", e.Kind())
}

// updateBullets replaces the bullets of one entry as a single undoable edit.
func updateBullets(s *session.Session, sectionID string, entry int, fn func(types.Bullets) (types.Bullets, error)) error {
	doc := s.Document()
	i := doc.SectionIndex(sectionID)
	if i < 0 {
		return fmt.Errorf("%w: %q", session.ErrSectionNotFound, sectionID)
	}
	entries := doc.Sections[i].Entries
	if entry >= len(entries) {
		return fmt.Errorf("%w: entry %d of %d", session.ErrIndexOutOfRange, entry, len(entries))
	}
	bullets, rebuild, err := entryBullets(entries[entry])
	if err != nil {
		return err
	}
	updated, err := fn(bullets.Clone())
	if err != nil {
		return err
	}
	return s.ReplaceEntry(sectionID, entry, rebuild(updated))
}

func colorFlag(name, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	c, ok := types.NormalizeColor(value)
	if !ok {
		return "", fmt.Errorf("invalid --%s %q (want #rrggbb)", name, value)
	}
	return c, nil
}

func runBulletAdd(cmd *cobra.Command, args []string) error {
	entry, err := position(args[2], "entry")
	if err != nil {
		return err
	}
	if strings.TrimSpace(args[3]) == "" {
		return fmt.Errorf("bullet text is required")
	}
	fg, err := colorFlag("color", bulletColor)
	if err != nil {
		return err
	}
	bg, err := colorFlag("highlight", bulletHighlight)
	if err != nil {
		return err
	}

	buf := richtext.NewBuffer(nil)
	buf.Append(args[3], &richtext.Font{
		Family:    bulletFont,
		Size:      bulletSize,
		Bold:      bulletBold,
		Italic:    bulletItalic,
		Underline: bulletUnderline,
	}, fg, bg)
	segs := richtext.Encode(buf)

	return editProject(cmd, args[0], func(s *session.Session) error {
		return updateBullets(s, args[1], entry, func(b types.Bullets) (types.Bullets, error) {
			// A lone blank bullet is the placeholder a new entry starts with.
			if len(b) == 1 && strings.TrimSpace(b[0].PlainText()) == "" {
				b = types.Bullets{}
			}
			return append(b, segs), nil
		})
	})
}

func runBulletStyle(cmd *cobra.Command, args []string) error {
	entry, err := position(args[2], "entry")
	if err != nil {
		return err
	}
	bullet, err := position(args[3], "bullet")
	if err != nil {
		return err
	}
	fg, err := colorFlag("color", bulletColor)
	if err != nil {
		return err
	}
	bg, err := colorFlag("highlight", bulletHighlight)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	fontChanged := flags.Changed("bold") || flags.Changed("italic") || flags.Changed("underline") ||
		flags.Changed("font") || flags.Changed("size")
	if !fontChanged && !flags.Changed("color") && !flags.Changed("highlight") {
		return fmt.Errorf("no style flags given")
	}

	var boundaries []int
	err = editProject(cmd, args[0], func(s *session.Session) error {
		return updateBullets(s, args[1], entry, func(b types.Bullets) (types.Bullets, error) {
			if bullet >= len(b) {
				return nil, fmt.Errorf("%w: bullet %d of %d", session.ErrIndexOutOfRange, bullet, len(b))
			}
			buf := richtext.NewCodec("", 0).Decode(b[bullet])
			start, end := bulletStart, bulletEnd
			if end < 0 {
				end = buf.Len()
			}

			if fontChanged {
				err := buf.UpdateFont(start, end, func(f richtext.Font) richtext.Font {
					if flags.Changed("bold") {
						f.Bold = bulletBold
					}
					if flags.Changed("italic") {
						f.Italic = bulletItalic
					}
					if flags.Changed("underline") {
						f.Underline = bulletUnderline
					}
					if flags.Changed("font") {
						f.Family = bulletFont
					}
					if flags.Changed("size") {
						f.Size = bulletSize
					}
					return f
				})
				if err != nil {
					return nil, err
				}
			}
			if flags.Changed("color") {
				if err := buf.SetForeground(start, end, fg); err != nil {
					return nil, err
				}
			}
			if flags.Changed("highlight") {
				if err := buf.SetBackground(start, end, bg); err != nil {
					return nil, err
				}
			}
			boundaries = richtext.Offsets(buf)
			b[bullet] = richtext.Encode(buf)
			return b, nil
		})
	})
	if err != nil {
		return err
	}

	marks := make([]string, len(boundaries))
	for i, o := range boundaries {
		marks[i] = strconv.Itoa(o)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Styled bullet %s (style boundaries: %s)\n", args[3], strings.Join(marks, " "))
	return nil
}

func runBulletDelete(cmd *cobra.Command, args []string) error {
	entry, err := position(args[2], "entry")
	if err != nil {
		return err
	}
	bullet, err := position(args[3], "bullet")
	if err != nil {
		return err
	}
	return editProject(cmd, args[0], func(s *session.Session) error {
		return updateBullets(s, args[1], entry, func(b types.Bullets) (types.Bullets, error) {
			if bullet >= len(b) {
				return nil, fmt.Errorf("%w: bullet %d of %d", session.ErrIndexOutOfRange, bullet, len(b))
			}
			return append(b[:bullet], b[bullet+1:]...), nil
		})
	})
}
