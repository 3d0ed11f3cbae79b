package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `
log:
  level: debug
  format: json
geocoding:
  url: https://geocoding.example.com/v1/search
  count: 5
  language: en
  countryCode: PH
  timeout: 5s
forecast:
  url: https://forecast.example.com/v1/forecast
  timezone: Asia/Singapore
  timeout: 5s
location:
  latitude: 52.52
  longitude: 13.41
clock:
  interval: 30s
display:
  days: 7
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load([]byte(validDoc))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "https://geocoding.example.com/v1/search", cfg.Geocoding.URL)
	assert.Equal(t, 5, cfg.Geocoding.Count)
	assert.Equal(t, "PH", cfg.Geocoding.CountryCode)
	assert.Equal(t, 5*time.Second, cfg.Geocoding.Timeout)
	assert.Equal(t, "Asia/Singapore", cfg.Forecast.Timezone)
	assert.Equal(t, 52.52, cfg.Location.Latitude)
	assert.Equal(t, 13.41, cfg.Location.Longitude)
	assert.Equal(t, 30*time.Second, cfg.Clock.Interval)
	assert.Equal(t, 7, cfg.Display.Days)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("WEATHER_GEOCODING_COUNTRY_CODE", "DE")
	t.Setenv("WEATHER_CLOCK_INTERVAL", "1m")
	t.Setenv("WEATHER_LOCATION_LATITUDE", "14.6")

	cfg, err := Load([]byte(validDoc))
	require.NoError(t, err)

	assert.Equal(t, "DE", cfg.Geocoding.CountryCode)
	assert.Equal(t, time.Minute, cfg.Clock.Interval)
	assert.Equal(t, 14.6, cfg.Location.Latitude)
	assert.Equal(t, 13.41, cfg.Location.Longitude, "unset variables keep the document value")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		env      map[string]string
		wantKind ErrorKind
	}{
		{
			name:     "malformed yaml",
			doc:      "log: [unterminated",
			wantKind: ErrParsing,
		},
		{
			name:     "bad duration in environment",
			doc:      validDoc,
			env:      map[string]string{"WEATHER_CLOCK_INTERVAL": "soon"},
			wantKind: ErrEnvironment,
		},
		{
			name:     "latitude out of range",
			doc:      validDoc,
			env:      map[string]string{"WEATHER_LOCATION_LATITUDE": "91"},
			wantKind: ErrValidation,
		},
		{
			name:     "too many days",
			doc:      validDoc,
			env:      map[string]string{"WEATHER_DISPLAY_DAYS": "30"},
			wantKind: ErrValidation,
		},
		{
			name:     "unknown timezone",
			doc:      validDoc,
			env:      map[string]string{"WEATHER_FORECAST_TIMEZONE": "Mars/Olympus"},
			wantKind: ErrValidation,
		},
		{
			name:     "missing urls",
			doc:      "display:\n  days: 7\n",
			wantKind: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load([]byte(tt.doc))
			require.Error(t, err)
			assert.Nil(t, cfg)

			var cfgErr *Error
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.wantKind, cfgErr.Kind)
			assert.Contains(t, err.Error(), string(tt.wantKind))
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := &Config{Log: LogConfig{Level: "warn", Format: "json"}}
	logger := cfg.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "component", "test")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"), "json handler expected, got %q", out)
	assert.Contains(t, out, `"component":"test"`)
}
