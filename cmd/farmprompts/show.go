// cmd/farmprompts/show.go
package farmprompts

import (
	"github.com/spf13/cobra"
)

// showCmd groups subcommands that dump resolved state.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for showing resolved settings",
	Long:  `The 'show' command groups subcommands that print resolved settings. It performs no action on its own.`,
}

func init() {
	rootCmd.AddCommand(showCmd)
}
