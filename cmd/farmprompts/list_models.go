// cmd/farmprompts/list_models.go
package farmprompts

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mwiater/farmprompts/internal/ollama"
)

// modelLister is satisfied by *ollama.Client.
type modelLister interface {
	BaseURL() string
	ListModels(ctx context.Context) ([]string, error)
	LoadedModels(ctx context.Context) ([]string, error)
}

// listModelsCmd implements 'list models', which enumerates the models on the
// configured Ollama host and marks the ones currently loaded.
var listModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models available on the Ollama host",
	Long:  `The 'models' subcommand lists the models installed on the Ollama host used by 'interactive', marking loaded models with an asterisk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(nil)
		if err != nil {
			return err
		}
		host := cfg.Ollama.Host
		if cmd.Flags().Changed("host") {
			host, _ = cmd.Flags().GetString("host")
		}
		client := ollama.NewClient(host, cfg.Ollama.Timeout)
		return printModels(cmd.Context(), cmd.OutOrStdout(), client)
	},
}

func init() {
	listCmd.AddCommand(listModelsCmd)
	listModelsCmd.Flags().String("host", "", "Ollama base URL (defaults to ollama.host)")
}

func printModels(ctx context.Context, w io.Writer, c modelLister) error {
	if ctx == nil {
		ctx = context.Background()
	}
	hostStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	modelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	loadedModelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("46"))

	models, err := c.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("could not list models: Ollama is not accessible on %s: %w", c.BaseURL(), err)
	}
	loaded, err := c.LoadedModels(ctx)
	if err != nil {
		return fmt.Errorf("could not get running models: %w", err)
	}

	fmt.Fprintln(w, hostStyle.Render(c.BaseURL()+":"))
	for _, m := range models {
		if slices.Contains(loaded, m) {
			fmt.Fprintln(w, "  >>> "+loadedModelStyle.Render(m+" *"))
		} else {
			fmt.Fprintln(w, "  >>> "+modelStyle.Render(m))
		}
	}
	return nil
}
