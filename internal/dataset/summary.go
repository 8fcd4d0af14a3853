// internal/dataset/summary.go
package dataset

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// These patterns are a loose reading of the free text. "in" in particular
// matches plenty of non-location phrases, and \w is ASCII-only, so "São Paulo"
// counts as "S".
var (
	cropPattern     = regexp.MustCompile(`\bgrowing (\w+)`)
	locationPattern = regexp.MustCompile(`\bin (\w+)`)
)

// Vocabulary holds the phrases counted as challenge or technique mentions.
type Vocabulary struct {
	Challenges []string
	Techniques []string
}

// Summary holds best-effort counts over a batch of prompts.
type Summary struct {
	RunID               string  `json:"run_id,omitempty"`
	TotalPrompts        int     `json:"total_prompts"`
	UniqueCrops         int     `json:"unique_crops"`
	UniqueLocations     int     `json:"unique_locations"`
	ChallengesMentioned int     `json:"challenges_mentioned"`
	TechniquesMentioned int     `json:"techniques_mentioned"`
	PromptLengthMean    float64 `json:"prompt_length_mean"`
	PromptLengthStd     float64 `json:"prompt_length_std"`
	PromptLengthP50     float64 `json:"prompt_length_p50"`
	PromptLengthP95     float64 `json:"prompt_length_p95"`
}

// Analyze computes a Summary over the prompts of records.
func Analyze(records []Record, vocab Vocabulary) Summary {
	crops := make(map[string]struct{})
	locations := make(map[string]struct{})
	challenges := lowerAll(vocab.Challenges)
	techniques := lowerAll(vocab.Techniques)
	lengths := make([]int, 0, len(records))

	s := Summary{TotalPrompts: len(records)}
	for _, r := range records {
		for _, m := range cropPattern.FindAllStringSubmatch(r.Prompt, -1) {
			crops[m[1]] = struct{}{}
		}
		for _, m := range locationPattern.FindAllStringSubmatch(r.Prompt, -1) {
			locations[m[1]] = struct{}{}
		}

		lower := strings.ToLower(r.Prompt)
		if containsAny(lower, challenges) {
			s.ChallengesMentioned++
		}
		if containsAny(lower, techniques) {
			s.TechniquesMentioned++
		}
		lengths = append(lengths, utf8.RuneCountInString(r.Prompt))
	}

	s.UniqueCrops = len(crops)
	s.UniqueLocations = len(locations)
	st := describeLengths(lengths)
	s.PromptLengthMean, s.PromptLengthStd = st.mean, st.std
	s.PromptLengthP50, s.PromptLengthP95 = st.p50, st.p95
	return s
}

// Log writes one line per statistic, in a stable order.
func (s Summary) Log(logger zerolog.Logger) {
	logger.Info().Str("run_id", s.RunID).Msg("data analysis results")
	logger.Info().Int("total_prompts", s.TotalPrompts).Send()
	logger.Info().Int("unique_crops", s.UniqueCrops).Send()
	logger.Info().Int("unique_locations", s.UniqueLocations).Send()
	logger.Info().Int("challenges_mentioned", s.ChallengesMentioned).Send()
	logger.Info().Int("techniques_mentioned", s.TechniquesMentioned).Send()
	logger.Debug().
		Float64("mean", s.PromptLengthMean).
		Float64("std", s.PromptLengthStd).
		Float64("p50", s.PromptLengthP50).
		Float64("p95", s.PromptLengthP95).
		Msg("prompt length")
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
