// cmd/farmprompts/interactive.go
package farmprompts

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/farmprompts/internal/config"
	"github.com/mwiater/farmprompts/internal/interactive"
	"github.com/mwiater/farmprompts/internal/ollama"
)

// startInteractive is swapped out in tests.
var startInteractive = interactive.Run

// interactiveCmd represents the 'interactive' command.
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Expand farming scenarios with an Ollama model",
	Long: `The 'interactive' command builds a short farming scenario, asks an Ollama model to
turn it into a detailed prompt, and shows the result. Press enter for another
prompt and q to quit. If the model cannot be reached the base scenario is shown.
Logs go to the file given by --log-file so they do not disturb the screen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.OpenFile(viper.GetString("interactive.log_file"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer f.Close()

		cfg, err := loadConfig(f)
		if err != nil {
			return err
		}
		opts, err := interactiveOptions(cfg, viper.GetString("interactive.preset"))
		if err != nil {
			return err
		}
		return startInteractive(opts)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	interactiveCmd.Flags().String("host", "http://localhost:11434", "Ollama base URL")
	interactiveCmd.Flags().StringP("model", "m", "llama2", "Ollama model name")
	interactiveCmd.Flags().Bool("debug", false, "show model timings under each prompt")
	interactiveCmd.Flags().String("preset", "dynamic", "template preset for the base scenario")
	interactiveCmd.Flags().String("log-file", "debug.log", "file that receives log output")

	viper.BindPFlag("ollama.host", interactiveCmd.Flags().Lookup("host"))
	viper.BindPFlag("ollama.model", interactiveCmd.Flags().Lookup("model"))
	viper.BindPFlag("ollama.debug", interactiveCmd.Flags().Lookup("debug"))
	viper.BindPFlag("interactive.preset", interactiveCmd.Flags().Lookup("preset"))
	viper.BindPFlag("interactive.log_file", interactiveCmd.Flags().Lookup("log-file"))
}

// interactiveOptions wires the base prompt generator and the Ollama enhancer.
func interactiveOptions(cfg *config.Config, preset string) (interactive.Options, error) {
	if preset != "" {
		cfg.Preset = preset
	}
	gen, err := cfg.Build()
	if err != nil {
		return interactive.Options{}, fmt.Errorf("could not build generator: %w", err)
	}
	client := ollama.NewClient(cfg.Ollama.Host, cfg.Ollama.Timeout)
	return interactive.Options{
		Prompts:  gen.Prompts,
		Enhancer: &ollama.Enhancer{Client: client, Model: cfg.Ollama.Model},
		Host:     client.BaseURL(),
		Model:    cfg.Ollama.Model,
		Debug:    cfg.Ollama.Debug,
		Timeout:  cfg.Ollama.Timeout,
	}, nil
}
