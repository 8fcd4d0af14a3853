// internal/prompt/category.go
package prompt

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
)

// Category is a named source of interchangeable substitution values.
type Category interface {
	// Name is the key templates use to refer to the category.
	Name() string
	// Sample draws one value uniformly at random.
	Sample(r *rand.Rand) string
}

// List is a Category backed by a fixed set of strings.
type List struct {
	name   string
	values []string
}

// NewList builds a List from values. The slice is copied so later changes by
// the caller do not leak into generation.
func NewList(name string, values []string) (*List, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: category name is empty", ErrEmptyCategory)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %q has no values", ErrEmptyCategory, name)
	}
	return &List{name: name, values: slices.Clone(values)}, nil
}

// Name returns the category name.
func (l *List) Name() string { return l.name }

// Sample returns a uniformly chosen value.
func (l *List) Sample(r *rand.Rand) string {
	return l.values[r.IntN(len(l.values))]
}

// Values returns a copy of the configured values.
func (l *List) Values() []string { return slices.Clone(l.values) }

// Contains reports whether v is one of the configured values.
func (l *List) Contains(v string) bool { return slices.Contains(l.values, v) }

// Range is a Category that yields decimal integers in the closed interval [Min, Max].
type Range struct {
	name     string
	min, max int
}

// NewRange builds a Range. min must not exceed max, and the range may not cover
// every int.
func NewRange(name string, min, max int) (*Range, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: category name is empty", ErrEmptyCategory)
	}
	if min > max {
		return nil, fmt.Errorf("%w: %q has min %d > max %d", ErrEmptyCategory, name, min, max)
	}
	if uint64(max)-uint64(min) == math.MaxUint64 {
		return nil, fmt.Errorf("%w: %q spans every int", ErrEmptyCategory, name)
	}
	return &Range{name: name, min: min, max: max}, nil
}

// Name returns the category name.
func (g *Range) Name() string { return g.name }

// Sample returns a uniformly chosen integer from the range, formatted in base 10.
func (g *Range) Sample(r *rand.Rand) string {
	span := uint64(g.max) - uint64(g.min)
	return strconv.Itoa(int(uint64(g.min) + r.Uint64N(span+1)))
}

// Bounds returns the inclusive limits of the range.
func (g *Range) Bounds() (min, max int) { return g.min, g.max }
