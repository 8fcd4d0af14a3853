package dataset

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPrompts []string

func (f *fixedPrompts) Generate() string {
	p := (*f)[0]
	*f = append((*f)[1:], p)
	return p
}

type echoResponses struct{}

func (echoResponses) Generate(prompt string) string { return "re: " + prompt }

type failingSink struct{ after int }

func (f *failingSink) Write(Record) error {
	if f.after == 0 {
		return errors.New("disk full")
	}
	f.after--
	return nil
}

var fixedNow = time.Date(2026, time.March, 15, 13, 45, 0, 0, time.UTC)

func newDriver(prompts ...string) *Driver {
	fp := fixedPrompts(prompts)
	return &Driver{
		Prompts:   &fp,
		Responses: echoResponses{},
		Rand:      rand.New(rand.NewPCG(1, 2)),
		Now:       func() time.Time { return fixedNow },
		Logger:    zerolog.Nop(),
	}
}

func TestDriver_OneRecordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := Create(path)
	require.NoError(t, err)

	records, err := newDriver("growing maize in Kenya").Run(1, w)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Len(t, records, 1)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Prompt,Response,Generation Date", lines[0])

	date := records[0].Date
	assert.False(t, date.After(fixedNow))
	assert.LessOrEqual(t, fixedNow.Sub(date), time.Duration(MaxAgeDays+1)*24*time.Hour)
	assert.True(t, strings.HasSuffix(lines[1], ","+date.Format(DateLayout)))
}

func TestDriver_DatesWithinRange(t *testing.T) {
	records, err := newDriver("a", "b", "c").Run(500, nil)
	require.NoError(t, err)
	require.Len(t, records, 500)

	earliest := backdate(fixedNow, MaxAgeDays)
	today := backdate(fixedNow, 0)
	for _, r := range records {
		assert.False(t, r.Date.Before(earliest), r.Date)
		assert.False(t, r.Date.After(today), r.Date)
		assert.Equal(t, "re: "+r.Prompt, r.Response)
	}
}

func TestDriver_SinkErrorAborts(t *testing.T) {
	records, err := newDriver("x").Run(10, &failingSink{after: 3})
	require.Error(t, err)
	assert.Len(t, records, 3)
}

func TestDriver_RequiresGenerators(t *testing.T) {
	_, err := (&Driver{}).Run(1, nil)
	require.Error(t, err)
}

func TestDriver_NegativeCount(t *testing.T) {
	_, err := newDriver("x").Run(-1, nil)
	require.Error(t, err)
}

func TestWriterReadRoundTripPreservesQuotes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	in := Record{
		Prompt:   `A "quoted", comma-laden prompt`,
		Response: "Line one.\nLine two.",
		Date:     time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, w.Write(in))
	require.NoError(t, w.Close())
	assert.Equal(t, 1, w.Count())

	out, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in, out[0])
}

func TestWriterCloseEmptyWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).Close())
	assert.Equal(t, "Prompt,Response,Generation Date\n", buf.String())
}

func TestRead_BadHeader(t *testing.T) {
	_, err := Read(strings.NewReader("a,b,c\n"))
	require.ErrorIs(t, err, ErrBadHeader)

	_, err = Read(strings.NewReader(""))
	require.ErrorIs(t, err, ErrBadHeader)
}

func TestRead_BadDate(t *testing.T) {
	_, err := Read(strings.NewReader("Prompt,Response,Generation Date\np,r,yesterday\n"))
	require.Error(t, err)
}

func TestCreate_UnwritablePath(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing", "out.csv"))
	require.Error(t, err)
}

func TestAnalyze(t *testing.T) {
	records := []Record{
		{Prompt: "A farm in Kenya growing maize is facing soil erosion."},
		{Prompt: "A farm in Kenya growing wheat uses crop rotation."},
		{Prompt: "Farmers in Peru growing maize face Water Scarcity and try mulching."},
		{Prompt: "Nothing relevant here."},
	}
	vocab := Vocabulary{
		Challenges: []string{"soil erosion", "water scarcity"},
		Techniques: []string{"crop rotation", "mulching"},
	}

	s := Analyze(records, vocab)
	assert.Equal(t, 4, s.TotalPrompts)
	assert.Equal(t, 2, s.UniqueCrops)
	assert.Equal(t, 2, s.UniqueLocations)
	assert.Equal(t, 2, s.ChallengesMentioned)
	assert.Equal(t, 2, s.TechniquesMentioned)
	assert.Greater(t, s.PromptLengthMean, 0.0)
	assert.GreaterOrEqual(t, s.PromptLengthP95, s.PromptLengthP50)
}

func TestAnalyze_Empty(t *testing.T) {
	s := Analyze(nil, Vocabulary{})
	assert.Equal(t, Summary{}, s)
}

func TestDescribeLengths(t *testing.T) {
	lengths := []int{9, 2, 4, 4, 5, 4, 7, 5}
	st := describeLengths(lengths)
	assert.Equal(t, 5.0, st.mean)
	assert.Equal(t, 2.0, st.std)
	assert.Equal(t, 4.5, st.p50)
	assert.InDelta(t, 8.3, st.p95, 1e-9)
	assert.Equal(t, []int{9, 2, 4, 4, 5, 4, 7, 5}, lengths)

	single := describeLengths([]int{42})
	assert.Equal(t, lengthStats{mean: 42, p50: 42, p95: 42}, single)
	assert.Equal(t, lengthStats{}, describeLengths(nil))
}
