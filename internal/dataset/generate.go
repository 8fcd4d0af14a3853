// internal/dataset/generate.go
package dataset

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
)

// DefaultCount is the number of records generated when none is requested.
const DefaultCount = 1000

// MaxAgeDays bounds how far back a generation date may be drawn.
const MaxAgeDays = 365

// PromptGenerator produces prompt text.
type PromptGenerator interface {
	Generate() string
}

// ResponseGenerator produces the response for a prompt.
type ResponseGenerator interface {
	Generate(prompt string) string
}

// Sink receives each record as soon as it is produced.
type Sink interface {
	Write(Record) error
}

// Driver runs a batch of generations.
type Driver struct {
	Prompts   PromptGenerator
	Responses ResponseGenerator
	// Rand draws the date offsets. It may be shared with Prompts.
	Rand *rand.Rand
	// Now defaults to time.Now.
	Now    func() time.Time
	Logger zerolog.Logger
}

// Run generates n records, hands each to sink and returns them all. A sink
// error stops the batch and is returned with the records produced so far.
func (d *Driver) Run(n int, sink Sink) ([]Record, error) {
	if d.Prompts == nil || d.Responses == nil {
		return nil, errors.New("driver needs prompt and response generators")
	}
	if n < 0 {
		return nil, fmt.Errorf("record count must not be negative, got %d", n)
	}
	now := d.Now
	if now == nil {
		now = time.Now
	}
	rng := d.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		p := d.Prompts.Generate()
		r := Record{
			Prompt:   p,
			Response: d.Responses.Generate(p),
			Date:     backdate(now(), rng.IntN(MaxAgeDays+1)),
		}
		if sink != nil {
			if err := sink.Write(r); err != nil {
				return records, err
			}
		}
		records = append(records, r)

		d.Logger.Info().
			Int("n", i+1).
			Str("prompt", r.Prompt).
			Str("response", r.Response).
			Str("date", r.Date.Format(DateLayout)).
			Msg("record generated")
	}
	return records, nil
}

// backdate truncates t to a calendar day and steps back days.
func backdate(t time.Time, days int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d-days, 0, 0, 0, 0, t.Location())
}
