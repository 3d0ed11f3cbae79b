package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-resty/resty/v2"

	"weatherwidget/apis"
	"weatherwidget/config"
	"weatherwidget/manager"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Cebu&count=5&language=en&format=json&countryCode=PH

func New(cfg config.GeocodingConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		client:      resty.New().SetTimeout(cfg.Timeout),
		url:         cfg.URL,
		count:       cfg.Count,
		language:    cfg.Language,
		countryCode: cfg.CountryCode,
		logger:      logger.With("component", "geocoding"),
	}
}

type Client struct {
	client      *resty.Client
	url         string
	count       int
	language    string
	countryCode string
	logger      *slog.Logger
}

// Search returns up to count candidate locations for place. Failures are
// logged and reported as an empty result.
func (c *Client) Search(ctx context.Context, place string) []manager.Location {
	params := map[string]string{
		"name":     place,
		"count":    strconv.Itoa(c.count),
		"language": c.language,
		"format":   "json",
	}
	if c.countryCode != "" {
		params["countryCode"] = c.countryCode
	}

	locations, err := c.processRequest(ctx, params)
	if err != nil {
		c.logger.Log(ctx, apis.FailureLevel(ctx), "geocoding failed", "place", place, "error", err)
		return []manager.Location{}
	}

	return locations
}

func (c *Client) processRequest(ctx context.Context, params map[string]string) ([]manager.Location, error) {
	type responseStruct struct {
		Results []struct {
			Name        string  `json:"name"`
			Latitude    float64 `json:"latitude"`
			Longitude   float64 `json:"longitude"`
			Admin1      string  `json:"admin1"`
			Admin2      string  `json:"admin2"`
			Admin3      string  `json:"admin3"`
			Country     string  `json:"country"`
			FeatureCode string  `json:"feature_code"`
		} `json:"results"`
	}

	request := c.client.R().SetContext(ctx)
	request.SetQueryParams(params)

	response, err := request.Get(c.url)
	if err != nil {
		return nil, err
	}

	if !response.IsSuccess() {
		return nil, apis.StatusError(response)
	}

	var responseStr responseStruct
	if err = json.Unmarshal(response.Body(), &responseStr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	locations := make([]manager.Location, 0, len(responseStr.Results))
	for _, r := range responseStr.Results {
		locations = append(locations, manager.Location{
			Name:        r.Name,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
			Admin1:      r.Admin1,
			Admin2:      r.Admin2,
			Admin3:      r.Admin3,
			Country:     r.Country,
			FeatureCode: r.FeatureCode,
		})
	}

	return locations, nil
}
