// internal/config/build.go
package config

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/mwiater/farmprompts/internal/dataset"
	"github.com/mwiater/farmprompts/internal/prompt"
	"github.com/mwiater/farmprompts/internal/response"
)

// Generator bundles the resolved pieces of a run.
type Generator struct {
	Preset     Preset
	Rand       *rand.Rand
	Prompts    *prompt.Synthesizer
	Responses  *response.Synthesizer
	Vocabulary dataset.Vocabulary
}

// Build resolves word lists and templates and constructs the synthesizers.
// Word lists come from, in increasing precedence: the embedded data, files in
// DataDir, and Categories in the config itself.
func (c *Config) Build() (*Generator, error) {
	preset, ok := LookupPreset(c.Preset)
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, c.Preset)
	}

	lists, err := c.resolveLists(preset)
	if err != nil {
		return nil, err
	}

	ranges := make(map[string]RangeSpec, len(preset.Ranges)+len(c.Ranges))
	for name, r := range preset.Ranges {
		ranges[name] = r
	}
	for name, r := range c.Ranges {
		ranges[name] = r
	}

	var categories []prompt.Category
	for _, name := range sortedKeys(lists) {
		l, err := prompt.NewList(name, lists[name])
		if err != nil {
			return nil, fmt.Errorf("%w: category %q: %w", ErrInvalidConfig, name, err)
		}
		categories = append(categories, l)
	}
	for _, name := range sortedKeys(ranges) {
		r, err := prompt.NewRange(name, ranges[name].Min, ranges[name].Max)
		if err != nil {
			return nil, fmt.Errorf("%w: category %q: %w", ErrInvalidConfig, name, err)
		}
		categories = append(categories, r)
	}

	bindings := make(map[string]string, len(preset.Bindings)+len(c.Bindings))
	for slot, name := range preset.Bindings {
		bindings[slot] = name
	}
	for slot, name := range c.Bindings {
		bindings[slot] = name
	}

	templates := preset.Templates
	if len(c.Templates) > 0 {
		templates = c.Templates
	}

	rng := prompt.NewRand(c.Seed)
	prompts, err := prompt.New(prompt.Options{
		Templates:  templates,
		Categories: categories,
		Bindings:   bindings,
		Rand:       rng,
	})
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", preset.Name, err)
	}

	responses, err := c.responses()
	if err != nil {
		return nil, err
	}

	return &Generator{
		Preset:    preset,
		Rand:      rng,
		Prompts:   prompts,
		Responses: responses,
		Vocabulary: dataset.Vocabulary{
			Challenges: lists[slotList(bindings, "challenge")],
			Techniques: lists[slotList(bindings, "technique", "method")],
		},
	}, nil
}

func (c *Config) resolveLists(preset Preset) (map[string][]string, error) {
	lists := make(map[string][]string, len(preset.Lists))
	for _, name := range preset.Lists {
		values, err := EmbeddedList(name)
		if err != nil {
			return nil, err
		}
		lists[name] = values
	}

	if c.DataDir != "" {
		for _, name := range preset.Lists {
			values, found, err := findWordList(c.DataDir, name)
			if err != nil {
				return nil, err
			}
			if found {
				lists[name] = values
			}
		}
	}

	for name, values := range c.Categories {
		lists[name] = values
	}
	return lists, nil
}

func (c *Config) responses() (*response.Synthesizer, error) {
	rules := response.DefaultRules
	if len(c.Rules) > 0 {
		rules = c.Rules
	}
	fallback := response.DefaultFallback
	if len(c.Fallback) == 2 {
		fallback = [2]string{c.Fallback[0], c.Fallback[1]}
	}
	s, err := response.New(rules, fallback)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return s, nil
}

// slotList returns the list bound to the first of slots present in bindings,
// or "" when none is bound.
func slotList(bindings map[string]string, slots ...string) string {
	for _, slot := range slots {
		if name, ok := bindings[slot]; ok {
			return name
		}
	}
	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
