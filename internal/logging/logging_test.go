package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentTagsJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Level: "debug", JSON: true, Writer: &buf}))
	t.Cleanup(func() { _ = Init(Options{}) })

	logger := Component("generator")
	logger.Info().Int("count", 3).Msg("batch done")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "generator", entry["component"])
	assert.Equal(t, "batch done", entry["message"])
	assert.Equal(t, float64(3), entry["count"])
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	err := Init(Options{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Level: "warn", JSON: true, Writer: &buf}))
	t.Cleanup(func() { _ = Init(Options{}) })

	logger := Component("test")
	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}
