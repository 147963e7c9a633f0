package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/session"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

var headerCmd = &cobra.Command{
	Use:   "header",
	Short: "Show or change the contact header",
}

var headerShowCmd = &cobra.Command{
	Use:   "show <project.json>",
	Short: "Print every header field",
	Args:  cobra.ExactArgs(1),
	RunE:  runHeaderShow,
}

var headerSetCmd = &cobra.Command{
	Use:   "set <project.json> <field> <value>",
	Short: "Set a header field",
	Long: `Sets one header field. Fields are: ` + strings.Join(types.HeaderFields, ", ") + `.

Setting linkedin_kind or github_kind to Custom requires --custom-label, which becomes both the
kind and the display text of the link.`,
	Args: cobra.ExactArgs(3),
	RunE: runHeaderSet,
}

var headerCustomLabel string

func init() {
	headerSetCmd.Flags().StringVar(&headerCustomLabel, "custom-label", "", "Label used when a link kind is set to Custom")

	headerCmd.AddCommand(headerShowCmd, headerSetCmd)
	rootCmd.AddCommand(headerCmd)
}

func runHeaderShow(cmd *cobra.Command, args []string) error {
	p, err := openProject(cmd, args[0])
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, field := range types.HeaderFields {
		value, _ := p.Document.Header.Get(field)
		_, _ = fmt.Fprintf(w, "%s\t%s\n", field, value)
	}
	return w.Flush()
}

func runHeaderSet(cmd *cobra.Command, args []string) error {
	field, value := strings.ToLower(strings.TrimSpace(args[1])), args[2]

	if slot, ok := strings.CutSuffix(field, "_kind"); ok {
		if strings.EqualFold(strings.TrimSpace(value), types.LinkKindCustom) && strings.TrimSpace(headerCustomLabel) == "" {
			return fmt.Errorf("--custom-label is required when %s is Custom", field)
		}
		return editProject(cmd, args[0], func(s *session.Session) error {
			return s.SetLinkKind(slot, value, headerCustomLabel)
		})
	}
	return editProject(cmd, args[0], func(s *session.Session) error {
		return s.SetHeader(field, value)
	})
}
