package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Domenick1991/tripplanner/config"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(config.LogConfig{Level: "warn", Format: "JSON"}, &buf)

	log.Info().Msg("hidden")
	log.Warn().Str("hop", "1").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "1", entry["hop"])
}

func TestSetupWriter_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(config.LogConfig{Level: "loud"}, &buf)

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
	log.Info().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
