// internal/response/response.go

// Package response builds canned advice for a prompt by scanning it for
// trigger phrases.
package response

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidRule reports a rule or fallback sentence with no text.
var ErrInvalidRule = errors.New("invalid response rule")

// Rule pairs a trigger phrase with the advice it selects.
type Rule struct {
	Trigger string `json:"trigger" yaml:"trigger" mapstructure:"trigger"`
	Advice  string `json:"advice" yaml:"advice" mapstructure:"advice"`
}

// DefaultRules is the builtin advice table, checked in order.
var DefaultRules = []Rule{
	{Trigger: "organic", Advice: "Consider implementing organic pest control methods and natural fertilizers."},
	{Trigger: "climate change", Advice: "Adapt crop varieties and planting schedules to changing climate patterns."},
	{Trigger: "water scarcity", Advice: "Implement water-efficient irrigation systems like drip irrigation or rainwater harvesting."},
	{Trigger: "soil health", Advice: "Focus on building organic matter through cover cropping and minimal tillage."},
	{Trigger: "biodiversity", Advice: "Integrate polyculture systems and create habitat corridors for beneficial insects and wildlife."},
}

// DefaultFallback is used when no rule matches.
var DefaultFallback = [2]string{
	"Implement sustainable farming practices tailored to your specific crop and location.",
	"Consult with local agricultural extension services for region-specific advice.",
}

// Synthesizer turns prompt text into response text. It holds no mutable state
// and is safe for concurrent use.
type Synthesizer struct {
	rules    []Rule
	triggers []string // lowercased Rule.Trigger, same index
	fallback [2]string
}

// New validates the rule table and fallback sentences.
func New(rules []Rule, fallback [2]string) (*Synthesizer, error) {
	s := &Synthesizer{
		rules:    slices.Clone(rules),
		triggers: make([]string, len(rules)),
		fallback: fallback,
	}
	for i, r := range rules {
		if strings.TrimSpace(r.Trigger) == "" {
			return nil, fmt.Errorf("%w: rule %d has an empty trigger", ErrInvalidRule, i)
		}
		if strings.TrimSpace(r.Advice) == "" {
			return nil, fmt.Errorf("%w: rule %d (%q) has empty advice", ErrInvalidRule, i, r.Trigger)
		}
		s.triggers[i] = strings.ToLower(r.Trigger)
	}
	for i, f := range fallback {
		if strings.TrimSpace(f) == "" {
			return nil, fmt.Errorf("%w: fallback sentence %d is empty", ErrInvalidRule, i)
		}
	}
	return s, nil
}

// Default returns a Synthesizer over DefaultRules and DefaultFallback.
func Default() *Synthesizer {
	s, err := New(DefaultRules, DefaultFallback)
	if err != nil {
		panic(err)
	}
	return s
}

// Generate appends the advice of every rule whose trigger occurs in prompt,
// ignoring case, in table order. With no match it returns the two fallback
// sentences. Parts are joined by a single space.
func (s *Synthesizer) Generate(prompt string) string {
	lower := strings.ToLower(prompt)
	var parts []string
	for i, trigger := range s.triggers {
		if strings.Contains(lower, trigger) {
			parts = append(parts, s.rules[i].Advice)
		}
	}
	if len(parts) == 0 {
		parts = s.fallback[:]
	}
	return strings.Join(parts, " ")
}

// Rules returns a copy of the rule table.
func (s *Synthesizer) Rules() []Rule { return slices.Clone(s.rules) }

// Fallback returns the two fallback sentences.
func (s *Synthesizer) Fallback() [2]string { return s.fallback }
