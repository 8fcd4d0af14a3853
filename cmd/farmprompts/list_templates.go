// cmd/farmprompts/list_templates.go
package farmprompts

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/mwiater/farmprompts/internal/prompt"
)

var templatesWidth int

// listTemplatesCmd prints the templates of the active preset.
var listTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the prompt templates of the active preset",
	Long:  `The 'templates' subcommand prints each template of the configured preset, numbered, with the placeholders it uses. Long templates are truncated to --width columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := listGenerator(cmd)
		if err != nil {
			return err
		}
		printTemplates(cmd.OutOrStdout(), gen.Prompts.Templates(), templatesWidth)
		return nil
	},
}

func init() {
	listCmd.AddCommand(listTemplatesCmd)
	listTemplatesCmd.Flags().IntVarP(&templatesWidth, "width", "w", 100, "truncate templates to this many columns (0 disables)")
}

func printTemplates(w io.Writer, templates []prompt.Template, width int) {
	slotStyle := lipgloss.NewStyle().Faint(true)
	for i, t := range templates {
		text := t.String()
		if width > 0 {
			text = runewidth.Truncate(text, width, "...")
		}
		fmt.Fprintf(w, "%3d. %s\n", i+1, text)
		fmt.Fprintf(w, "     %s\n", slotStyle.Render("slots: "+strings.Join(t.Placeholders(), ", ")))
	}
}
