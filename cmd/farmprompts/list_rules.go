// cmd/farmprompts/list_rules.go
package farmprompts

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/mwiater/farmprompts/internal/response"
)

// listRulesCmd prints the response rule table and the fallback pair.
var listRulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the keyword rules used to build responses",
	Long:  `The 'rules' subcommand prints the trigger phrases checked against each prompt, in the order their advice is appended, followed by the two fallback sentences used when nothing matches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := listGenerator(cmd)
		if err != nil {
			return err
		}
		printRules(cmd.OutOrStdout(), gen.Responses)
		return nil
	},
}

func init() {
	listCmd.AddCommand(listRulesCmd)
}

func printRules(w io.Writer, s *response.Synthesizer) {
	triggerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	rules := s.Rules()

	width := 0
	for _, r := range rules {
		width = max(width, runewidth.StringWidth(r.Trigger))
	}
	for _, r := range rules {
		fmt.Fprintf(w, "%s  %s\n", triggerStyle.Render(runewidth.FillRight(r.Trigger, width)), r.Advice)
	}

	fallback := s.Fallback()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fallback:")
	fmt.Fprintf(w, "  %s\n  %s\n", fallback[0], fallback[1])
}
