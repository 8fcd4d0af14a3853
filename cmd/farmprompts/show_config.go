// cmd/farmprompts/show_config.go
package farmprompts

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var showConfigYAML bool

// showConfigCmd prints the configuration after defaults, the config file,
// environment variables and flags have been merged.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long:  `The 'config' subcommand prints the configuration after defaults, the config file, FARMPROMPTS_* environment variables and flags are merged. Use --yaml for output that can be saved as a config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(nil)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if showConfigYAML {
			b, err := yaml.Marshal(viper.AllSettings())
			if err != nil {
				return fmt.Errorf("could not encode config: %w", err)
			}
			_, err = out.Write(b)
			return err
		}
		_, err = pp.Fprintln(out, cfg)
		return err
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
	showConfigCmd.Flags().BoolVar(&showConfigYAML, "yaml", false, "print the merged settings as YAML")
}
