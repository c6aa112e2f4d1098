package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if l == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &m))
		out = append(out, m)
	}
	return out
}

func TestNew_JSONConServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "debug", Service: "finflux", Out: &buf})

	log.Component("inventory").Session("org-1", "s1").Info().Msg("hola")

	got := lines(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "finflux", got[0]["service"])
	assert.Equal(t, "inventory", got[0]["component"])
	assert.Equal(t, "org-1", got[0]["org"])
	assert.Equal(t, "s1", got[0]["session"])
	assert.Equal(t, "info", got[0]["level"])
}

func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "WARN", Out: &buf})

	log.Info().Msg("no")
	log.Warn().Msg("si")

	got := lines(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "si", got[0]["message"])
}

func TestParseLevel_DesconocidoEsInfo(t *testing.T) {
	assert.Equal(t, "info", parseLevel("verbose").String())
	assert.Equal(t, "info", parseLevel("").String())
	assert.Equal(t, "trace", parseLevel(" trace ").String())
}

func TestNop_NoEscribe(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Component("x").Error().Msg("nada") })
}
