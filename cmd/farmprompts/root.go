// cmd/farmprompts/root.go
package farmprompts

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/farmprompts/internal/config"
	"github.com/mwiater/farmprompts/internal/logging"
)

var cfgFile string

// rootCmd is the base Cobra command for the farmprompts application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "farmprompts",
	Short: "Synthetic farming prompt and response generator",
	Long: `farmprompts fills farming scenario templates with random word-list values,
pairs each prompt with keyword-triggered advice, and writes the pairs to CSV.
It can also ask an Ollama model to expand a scenario interactively.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "emit JSON log lines instead of console output")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.json", rootCmd.PersistentFlags().Lookup("log-json"))
}

// loadConfig resolves the configuration from the global viper instance, which
// carries the flag bindings registered by each command, and points logging at
// logOut (stderr when nil).
func loadConfig(logOut io.Writer) (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper(), viper.GetString("config"))
	if err != nil {
		return nil, err
	}
	if err := logging.Init(logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON, Writer: logOut}); err != nil {
		return nil, err
	}
	return cfg, nil
}
