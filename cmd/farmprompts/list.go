// cmd/farmprompts/list.go
package farmprompts

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/farmprompts/internal/config"
)

// listCmd groups the subcommands that print word lists, templates, rules,
// presets, models and the command tree.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
	Long:  `The 'list' command groups related subcommands that list resources or information. It performs no action on its own.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.PersistentFlags().StringP("preset", "p", "", "preset to inspect (defaults to the configured preset)")
}

// listGenerator loads the configuration and builds the synthesizers for the
// preset named by --preset, falling back to the configured one.
func listGenerator(cmd *cobra.Command) (*config.Generator, error) {
	cfg, err := loadConfig(nil)
	if err != nil {
		return nil, err
	}
	if preset, _ := cmd.Flags().GetString("preset"); preset != "" {
		cfg.Preset = preset
	}
	return cfg.Build()
}
