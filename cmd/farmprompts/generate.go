// cmd/farmprompts/generate.go
package farmprompts

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/farmprompts/internal/config"
	"github.com/mwiater/farmprompts/internal/dataset"
	"github.com/mwiater/farmprompts/internal/logging"
)

// generateCmd writes a batch of prompt/response records to CSV and logs a
// summary of the batch.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate prompt/response pairs into a CSV file",
	Long: `The 'generate' command fills random templates of the selected preset, pairs each
prompt with keyword-triggered advice, backdates it by up to a year, and writes
the records to the output CSV. A summary of the batch is logged at the end.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(nil)
		if err != nil {
			return err
		}
		_, err = runGenerate(cfg, time.Now)
		return err
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntP("count", "n", dataset.DefaultCount, "number of records to generate")
	generateCmd.Flags().StringP("output", "o", "prompts_and_responses.csv", "CSV file to write")
	generateCmd.Flags().StringP("preset", "p", config.DefaultPreset, "template preset (advanced, first-person, dynamic)")
	generateCmd.Flags().Uint64("seed", 0, "random seed; 0 picks one from the clock")
	generateCmd.Flags().String("data-dir", "", "directory with <category>.json or .yaml word lists")

	viper.BindPFlag("count", generateCmd.Flags().Lookup("count"))
	viper.BindPFlag("output", generateCmd.Flags().Lookup("output"))
	viper.BindPFlag("preset", generateCmd.Flags().Lookup("preset"))
	viper.BindPFlag("seed", generateCmd.Flags().Lookup("seed"))
	viper.BindPFlag("data_dir", generateCmd.Flags().Lookup("data-dir"))
}

// runGenerate builds the synthesizers from cfg, writes cfg.Count records to
// cfg.Output, reads the file back and summarizes it.
func runGenerate(cfg *config.Config, now func() time.Time) (dataset.Summary, error) {
	runID := uuid.NewString()
	logger := logging.Component("generate").With().Str("run_id", runID).Logger()

	gen, err := cfg.Build()
	if err != nil {
		return dataset.Summary{}, fmt.Errorf("could not build generator: %w", err)
	}

	w, err := dataset.Create(cfg.Output)
	if err != nil {
		return dataset.Summary{}, err
	}

	logger.Info().
		Str("preset", gen.Preset.Name).
		Int("count", cfg.Count).
		Str("output", cfg.Output).
		Msg("generating records")

	driver := &dataset.Driver{
		Prompts:   gen.Prompts,
		Responses: gen.Responses,
		Rand:      gen.Rand,
		Now:       now,
		Logger:    logger,
	}
	if _, err := driver.Run(cfg.Count, w); err != nil {
		w.Close()
		return dataset.Summary{}, fmt.Errorf("generation aborted: %w", err)
	}
	if err := w.Close(); err != nil {
		return dataset.Summary{}, err
	}

	records, err := dataset.ReadFile(cfg.Output)
	if err != nil {
		return dataset.Summary{}, err
	}
	summary := dataset.Analyze(records, gen.Vocabulary)
	summary.RunID = runID
	summary.Log(logger)

	logger.Info().Msgf("Data for %d prompts saved to %s", len(records), cfg.Output)
	return summary, nil
}
