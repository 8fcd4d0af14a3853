package response

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_OrganicAdvice(t *testing.T) {
	s := Default()
	out := s.Generate("A 40 acre Organic farm in Oregon growing kale.")
	assert.Contains(t, out, DefaultRules[0].Advice)
}

func TestGenerate_FallbackExact(t *testing.T) {
	s := Default()
	out := s.Generate("A 40 acre hydroponic farm in Oregon growing kale.")
	assert.Equal(t, DefaultFallback[0]+" "+DefaultFallback[1], out)
}

func TestGenerate_TableOrderAndNoDedup(t *testing.T) {
	s := Default()
	prompt := "Biodiversity loss and WATER SCARCITY hit this organic farm; soil health matters."
	out := s.Generate(prompt)

	want := strings.Join([]string{
		DefaultRules[0].Advice, // organic
		DefaultRules[2].Advice, // water scarcity
		DefaultRules[3].Advice, // soil health
		DefaultRules[4].Advice, // biodiversity
	}, " ")
	assert.Equal(t, want, out)
}

func TestGenerate_DuplicateRulesBothApply(t *testing.T) {
	s, err := New([]Rule{
		{Trigger: "maize", Advice: "One."},
		{Trigger: "MAIZE", Advice: "One."},
	}, DefaultFallback)
	require.NoError(t, err)
	assert.Equal(t, "One. One.", s.Generate("growing maize"))
}

func TestGenerate_Deterministic(t *testing.T) {
	s := Default()
	prompt := "Climate change is affecting maize yields in Malawi."
	assert.Equal(t, s.Generate(prompt), s.Generate(prompt))
}

func TestGenerate_SubstringMatch(t *testing.T) {
	s := Default()
	// "organic" is matched inside "organically", as a plain substring.
	out := s.Generate("growing organically certified rice")
	assert.True(t, strings.HasPrefix(out, DefaultRules[0].Advice))
}

func TestNew_RejectsEmptyParts(t *testing.T) {
	_, err := New([]Rule{{Trigger: " ", Advice: "x"}}, DefaultFallback)
	require.ErrorIs(t, err, ErrInvalidRule)

	_, err = New([]Rule{{Trigger: "x", Advice: ""}}, DefaultFallback)
	require.ErrorIs(t, err, ErrInvalidRule)

	_, err = New(nil, [2]string{"ok", ""})
	require.ErrorIs(t, err, ErrInvalidRule)
}

func TestRules_ReturnsCopy(t *testing.T) {
	s := Default()
	rules := s.Rules()
	rules[0].Advice = "changed"
	assert.Equal(t, DefaultRules[0].Advice, s.Rules()[0].Advice)
}
