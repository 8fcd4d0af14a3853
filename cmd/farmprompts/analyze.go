// cmd/farmprompts/analyze.go
package farmprompts

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/farmprompts/internal/config"
	"github.com/mwiater/farmprompts/internal/dataset"
	"github.com/mwiater/farmprompts/internal/logging"
)

var analyzeInput string

// analyzeCmd summarizes an existing CSV without generating anything.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Summarize an existing prompts CSV",
	Long: `The 'analyze' command reads a CSV written by 'generate' and logs the same summary
counts: total prompts, distinct crops and locations, and how many prompts mention
a challenge or a technique from the configured word lists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(nil)
		if err != nil {
			return err
		}
		path := analyzeInput
		if path == "" {
			path = cfg.Output
		}
		_, err = runAnalyze(cfg, path)
		return err
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "CSV file to read (defaults to the configured output)")
}

func runAnalyze(cfg *config.Config, path string) (dataset.Summary, error) {
	gen, err := cfg.Build()
	if err != nil {
		return dataset.Summary{}, fmt.Errorf("could not build vocabulary: %w", err)
	}
	records, err := dataset.ReadFile(path)
	if err != nil {
		return dataset.Summary{}, err
	}
	summary := dataset.Analyze(records, gen.Vocabulary)
	summary.Log(logging.Component("analyze").With().Str("input", path).Logger())
	return summary, nil
}
