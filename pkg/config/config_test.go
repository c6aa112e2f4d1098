package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"BACKEND_BASE_URL": "https://api.example.com/"}))
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.Backend.BaseURL, "se recorta la barra final")
	assert.Equal(t, "https://api.example.com/api/auth/login", cfg.Backend.ResolvedLoginURL())
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 20*time.Second, cfg.Backend.LongTimeout)
	assert.Equal(t, 30*time.Second, cfg.Session.PollInterval)
	assert.Equal(t, 30*time.Minute, cfg.Session.Inactivity)
	assert.Equal(t, 20, cfg.Alert.ThresholdPercent)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Empty(t, cfg.SMS.Recipients)
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"BACKEND_BASE_URL":        "http://localhost:9000",
		"BACKEND_LOGIN_URL":       "http://auth.local/login",
		"POLL_INTERVAL_SECONDS":   "5",
		"ALERT_THRESHOLD_PERCENT": "25",
		"SMS_RECIPIENTS":          "+919800000001, +919800000002,,",
	}))
	require.NoError(t, err)

	assert.Equal(t, "http://auth.local/login", cfg.Backend.ResolvedLoginURL())
	assert.Equal(t, 5*time.Second, cfg.Session.PollInterval)
	assert.Equal(t, 25, cfg.Alert.ThresholdPercent)
	assert.Equal(t, []string{"+919800000001", "+919800000002"}, cfg.SMS.Recipients)
}

func TestFromViper_SinBaseURL_Error(t *testing.T) {
	_, err := fromViper(newViper(nil))
	assert.Error(t, err)
}

func TestFromViper_UmbralFueraDeRango(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{
		"BACKEND_BASE_URL":        "http://localhost:9000",
		"ALERT_THRESHOLD_PERCENT": "0",
	}))
	assert.Error(t, err)
}
