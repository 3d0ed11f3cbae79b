package manager

import (
	"context"
	"strings"
)

// Default location shown at startup (Berlin).
const (
	DefaultLatitude  = 52.52
	DefaultLongitude = 13.41
)

// Geocoding resolves a free-text place name into candidate locations.
// Implementations never fail: any problem yields an empty slice.
type Geocoding interface {
	Search(ctx context.Context, place string) []Location
}

// Weather fetches a forecast for a coordinate pair. Implementations return
// nil when the forecast could not be obtained.
type Weather interface {
	Forecast(ctx context.Context, latitude, longitude float64) *Forecast
}

// Renderer receives the results of a request.
type Renderer interface {
	RenderLoading()
	RenderPlace(name string)
	RenderForecast(forecast *Forecast)
}

type Location struct {
	Name        string
	Latitude    float64
	Longitude   float64
	Admin1      string
	Admin2      string
	Admin3      string
	Country     string
	FeatureCode string
}

// Label is the human readable place name, e.g. "Cebu City, Philippines".
func (l Location) Label() string {
	parts := make([]string, 0, 2)
	for _, s := range []string{l.Name, l.Country} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// Forecast is one snapshot of current conditions plus a daily series.
// DailyDates, DailyMaxTemps and DailyCodes are index aligned.
type Forecast struct {
	Latitude        float64
	Longitude       float64
	TemperatureUnit string
	CurrentTemp     float64
	CurrentCode     int
	CurrentIsDay    bool
	DailyDates      []string
	DailyMaxTemps   []float64
	DailyCodes      []int
}
