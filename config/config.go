// Package config loads the widget configuration.
//
// Values are resolved in three layers, lowest priority first: the YAML document
// embedded in the binary, a .env file in the working directory, and the process
// environment (WEATHER_ prefix). The result is validated once at startup.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "WEATHER"

type Config struct {
	Log       LogConfig       `yaml:"log"`
	Geocoding GeocodingConfig `yaml:"geocoding"`
	Forecast  ForecastConfig  `yaml:"forecast"`
	Location  LocationConfig  `yaml:"location"`
	Clock     ClockConfig     `yaml:"clock"`
	Display   DisplayConfig   `yaml:"display"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
}

type GeocodingConfig struct {
	URL         string        `yaml:"url" envconfig:"URL" validate:"required,url"`
	Count       int           `yaml:"count" envconfig:"COUNT" validate:"min=1,max=100"`
	Language    string        `yaml:"language" envconfig:"LANGUAGE" validate:"required"`
	CountryCode string        `yaml:"countryCode" envconfig:"COUNTRY_CODE" validate:"omitempty,len=2"`
	Timeout     time.Duration `yaml:"timeout" envconfig:"TIMEOUT" validate:"gt=0"`
}

type ForecastConfig struct {
	URL      string        `yaml:"url" envconfig:"URL" validate:"required,url"`
	Timezone string        `yaml:"timezone" envconfig:"TIMEZONE" validate:"required,timezone"`
	Timeout  time.Duration `yaml:"timeout" envconfig:"TIMEOUT" validate:"gt=0"`
}

// LocationConfig is the place shown before the user asks for another one.
type LocationConfig struct {
	Latitude  float64 `yaml:"latitude" envconfig:"LATITUDE" validate:"gte=-90,lte=90"`
	Longitude float64 `yaml:"longitude" envconfig:"LONGITUDE" validate:"gte=-180,lte=180"`
}

type ClockConfig struct {
	Interval time.Duration `yaml:"interval" envconfig:"INTERVAL" validate:"gt=0"`
}

type DisplayConfig struct {
	Days int `yaml:"days" envconfig:"DAYS" validate:"min=1,max=16"`
}

// Load parses the raw YAML defaults, applies .env and environment overrides and
// validates the result.
func Load(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, &Error{Kind: ErrParsing, Message: "failed to parse config document", Err: err}
	}

	// godotenv never overrides variables that are already set.
	_ = godotenv.Load()

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, &Error{Kind: ErrEnvironment, Message: "failed to process environment overrides", Err: err}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, &Error{Kind: ErrValidation, Message: "configuration validation failed", Err: err}
	}

	return &cfg, nil
}

// NewLogger builds a slog.Logger from the log section.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ErrorKind classifies configuration failures.
type ErrorKind string

const (
	ErrParsing     ErrorKind = "parsing"
	ErrEnvironment ErrorKind = "environment"
	ErrValidation  ErrorKind = "validation"
)

// Error is returned by Load. All configuration errors are fatal at startup.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}
