package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-resty/resty/v2"

	"weatherwidget/apis"
	"weatherwidget/config"
	"weatherwidget/manager"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=52.52&longitude=13.41&daily=temperature_2m_max,weather_code&hourly=temperature_2m&current=temperature_2m,weather_code,is_day&timezone=Asia%2FSingapore

const (
	dailyVars   = "temperature_2m_max,weather_code"
	hourlyVars  = "temperature_2m"
	currentVars = "temperature_2m,weather_code,is_day"
)

func New(cfg config.ForecastConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		client:   resty.New().SetTimeout(cfg.Timeout),
		url:      cfg.URL,
		timezone: cfg.Timezone,
		logger:   logger.With("component", "forecast"),
	}
}

type Client struct {
	client   *resty.Client
	url      string
	timezone string
	logger   *slog.Logger
}

// Forecast returns current conditions and the daily series for a coordinate
// pair, or nil when the forecast could not be fetched.
func (c *Client) Forecast(ctx context.Context, latitude, longitude float64) *manager.Forecast {
	params := map[string]string{
		"latitude":  strconv.FormatFloat(latitude, 'f', -1, 64),
		"longitude": strconv.FormatFloat(longitude, 'f', -1, 64),
		"daily":     dailyVars,
		"hourly":    hourlyVars,
		"current":   currentVars,
		"timezone":  c.timezone,
	}

	forecast, err := c.processRequest(ctx, params)
	if err != nil {
		c.logger.Log(ctx, apis.FailureLevel(ctx), "forecast failed",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil
	}

	forecast.Latitude = latitude
	forecast.Longitude = longitude

	return forecast
}

func (c *Client) processRequest(ctx context.Context, params map[string]string) (*manager.Forecast, error) {
	request := c.client.R().SetContext(ctx)
	request.SetQueryParams(params)

	response, err := request.Get(c.url)
	if err != nil {
		return nil, err
	}

	if !response.IsSuccess() {
		return nil, apis.StatusError(response)
	}

	var r result
	if err = json.Unmarshal(response.Body(), &r); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return r.forecast()
}

type result struct {
	CurrentUnits *struct {
		Temperature2m string `json:"temperature_2m"`
	} `json:"current_units"`
	Current *struct {
		Temperature2m float64 `json:"temperature_2m"`
		WeatherCode   int     `json:"weather_code"`
		IsDay         int     `json:"is_day"`
	} `json:"current"`
	Daily *struct {
		Time             []string  `json:"time"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		WeatherCode      []int     `json:"weather_code"`
	} `json:"daily"`
}

var (
	errMissingCurrent = errors.New("response has no current conditions")
	errMissingDaily   = errors.New("response has no daily series")
)

func (r result) forecast() (*manager.Forecast, error) {
	if r.Current == nil || r.CurrentUnits == nil {
		return nil, errMissingCurrent
	}
	if r.Daily == nil {
		return nil, errMissingDaily
	}

	// Keep the daily series index aligned even if upstream disagrees.
	days := min(len(r.Daily.Time), len(r.Daily.Temperature2mMax), len(r.Daily.WeatherCode))

	forecast := &manager.Forecast{
		TemperatureUnit: r.CurrentUnits.Temperature2m,
		CurrentTemp:     r.Current.Temperature2m,
		CurrentCode:     r.Current.WeatherCode,
		CurrentIsDay:    r.Current.IsDay == 1,
	}
	if r.Daily.Time != nil {
		forecast.DailyDates = r.Daily.Time[:days]
		forecast.DailyMaxTemps = r.Daily.Temperature2mMax[:days]
		forecast.DailyCodes = r.Daily.WeatherCode[:days]
	}

	return forecast, nil
}
