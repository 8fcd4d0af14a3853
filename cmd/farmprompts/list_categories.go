// cmd/farmprompts/list_categories.go
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

// listCategoriesCmd prints every category the selected preset can draw from.
var listCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the word lists and ranges of the active preset",
	Long:  `The 'categories' subcommand prints each category available to the configured preset with its size and a sample of its values. Word lists from --data-dir and the config file are applied first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := listGenerator(cmd)
		if err != nil {
			return err
		}
		printCategories(cmd.OutOrStdout(), gen.Prompts.Categories(), 72)
		return nil
	},
}

func init() {
	listCmd.AddCommand(listCategoriesCmd)
}

func printCategories(w io.Writer, categories []prompt.Category, width int) {
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	nameWidth := 0
	for _, c := range categories {
		nameWidth = max(nameWidth, runewidth.StringWidth(c.Name()))
	}

	for _, c := range categories {
		var detail string
		switch c := c.(type) {
		case *prompt.List:
			values := c.Values()
			detail = fmt.Sprintf("%4d  %s", len(values), strings.Join(values, ", "))
		case *prompt.Range:
			lo, hi := c.Bounds()
			detail = fmt.Sprintf("   #  %d..%d", lo, hi)
		}
		name := runewidth.FillRight(c.Name(), nameWidth)
		fmt.Fprintf(w, "%s  %s\n", nameStyle.Render(name), runewidth.Truncate(detail, width, "..."))
	}
}
