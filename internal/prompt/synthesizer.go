// internal/prompt/synthesizer.go

// Package prompt fills sentence templates with values drawn at random from
// named categories.
package prompt

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"
	"time"
)

var (
	// ErrUnknownCategory reports a placeholder with no category behind it.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrMalformedTemplate reports template text that cannot be parsed.
	ErrMalformedTemplate = errors.New("malformed template")
	// ErrEmptyCategory reports a category that cannot produce a value.
	ErrEmptyCategory = errors.New("empty category")
	// ErrNoTemplates reports a synthesizer built without templates.
	ErrNoTemplates = errors.New("no templates configured")
)

// Options configures a Synthesizer.
type Options struct {
	// Templates are the raw template strings to choose from.
	Templates []string
	// Categories are the value sources, looked up by Name.
	Categories []Category
	// Bindings maps a placeholder name to a category name when they differ,
	// for example crop1 -> crops and crop2 -> crops. Unbound placeholders use
	// the category of the same name.
	Bindings map[string]string
	// Rand is the randomness source. Nil seeds one from the clock.
	Rand *rand.Rand
}

// Synthesizer produces prompts. It is not safe for concurrent use because the
// underlying rand.Rand is not.
type Synthesizer struct {
	templates  []Template
	categories map[string]Category
	bindings   map[string]string
	rng        *rand.Rand
}

// New parses the templates and checks that every placeholder resolves to a
// category. Any failure here is a configuration error.
func New(opts Options) (*Synthesizer, error) {
	if len(opts.Templates) == 0 {
		return nil, ErrNoTemplates
	}

	categories := make(map[string]Category, len(opts.Categories))
	for _, c := range opts.Categories {
		if c == nil {
			continue
		}
		categories[c.Name()] = c
	}

	bindings := make(map[string]string, len(opts.Bindings))
	for slot, name := range opts.Bindings {
		bindings[slot] = name
	}

	s := &Synthesizer{
		categories: categories,
		bindings:   bindings,
		rng:        opts.Rand,
	}
	if s.rng == nil {
		s.rng = NewRand(0)
	}

	for i, raw := range opts.Templates {
		t, err := ParseTemplate(raw)
		if err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		for _, slot := range t.Placeholders() {
			if _, ok := s.category(slot); !ok {
				return nil, fmt.Errorf("template %d: %w %q for placeholder {%s}", i, ErrUnknownCategory, s.categoryName(slot), slot)
			}
		}
		s.templates = append(s.templates, t)
	}

	return s, nil
}

// NewRand returns a PCG-backed source. A zero seed picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate picks a template uniformly at random and fills it. Each distinct
// placeholder is drawn once, independently, with replacement.
func (s *Synthesizer) Generate() string {
	t := s.templates[s.rng.IntN(len(s.templates))]
	values := make(map[string]string)
	for _, slot := range t.Placeholders() {
		c, _ := s.category(slot)
		values[slot] = c.Sample(s.rng)
	}
	// Every slot was validated in New, so Fill cannot fail here.
	out, _ := t.Fill(values)
	return out
}

// Templates returns the parsed templates in configuration order.
func (s *Synthesizer) Templates() []Template { return slices.Clone(s.templates) }

// Categories returns the configured categories sorted by name.
func (s *Synthesizer) Categories() []Category {
	out := make([]Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Category returns the category a placeholder draws from.
func (s *Synthesizer) Category(slot string) (Category, bool) { return s.category(slot) }

func (s *Synthesizer) categoryName(slot string) string {
	if name, ok := s.bindings[slot]; ok {
		return name
	}
	return slot
}

func (s *Synthesizer) category(slot string) (Category, bool) {
	c, ok := s.categories[s.categoryName(slot)]
	return c, ok
}
