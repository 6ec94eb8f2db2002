package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitProductionWritesJSON(t *testing.T) {
	Init(false)
	var buf bytes.Buffer
	SetOutput(&buf)

	Info().Str("facility", "DMV Tremont Branch").Int("fee", 100).Msg("vehicle registered")
	Debug().Msg("dropped below info")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "DMV Tremont Branch", entry["facility"])
	assert.Equal(t, float64(100), entry["fee"])
	assert.Equal(t, "vehicle registered", entry["message"])
	assert.NotContains(t, buf.String(), "dropped below info")
}
