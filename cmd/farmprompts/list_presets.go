// cmd/farmprompts/list_presets.go
package farmprompts

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mwiater/farmprompts/internal/config"
)

var listPresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in template presets",
	Long:  `The 'presets' subcommand prints the name, template count and description of each built-in preset. Select one with --preset or the 'preset' config key.`,
	Run: func(cmd *cobra.Command, args []string) {
		printPresets(cmd.OutOrStdout())
	},
}

func init() {
	listCmd.AddCommand(listPresetsCmd)
}

func printPresets(w io.Writer) {
	for _, name := range config.PresetNames() {
		p, _ := config.LookupPreset(name)
		marker := " "
		if name == config.DefaultPreset {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-14s %3d templates  %s\n", marker, p.Name, len(p.Templates), p.Description)
	}
}
