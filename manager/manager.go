package manager

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// State of the most recent forecast request.
type State int

const (
	Idle State = iota
	Loading
	Displayed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Displayed:
		return "displayed"
	default:
		return "unknown"
	}
}

type Option func(*Manager)

// WithDefaultLocation replaces the location loaded by Init.
func WithDefaultLocation(location Location) Option {
	return func(m *Manager) {
		m.defaultLocation = location
	}
}

// Manager runs geocoding and forecast requests and hands the results to a
// Renderer. Only the most recently started request may render: starting a
// request cancels the one in flight, and results of superseded requests are
// dropped.
type Manager struct {
	geocoding       Geocoding
	weather         Weather
	renderer        Renderer
	logger          *slog.Logger
	defaultLocation Location

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	state      State
}

func New(geocoding Geocoding, weather Weather, renderer Renderer, logger *slog.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = slog.Default()
	}

	m := &Manager{
		geocoding: geocoding,
		weather:   weather,
		renderer:  renderer,
		logger:    logger.With("component", "manager"),
		defaultLocation: Location{
			Latitude:  DefaultLatitude,
			Longitude: DefaultLongitude,
		},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Init shows the loading placeholders and loads the default location.
func (m *Manager) Init(ctx context.Context) {
	m.renderer.RenderLoading()

	ctx, gen := m.begin(ctx)
	logger := m.logger.With("request_id", uuid.New().String())

	location := m.defaultLocation
	logger.DebugContext(ctx, "loading default location",
		"latitude", location.Latitude,
		"longitude", location.Longitude,
	)

	forecast := m.weather.Forecast(ctx, location.Latitude, location.Longitude)
	m.finish(logger, gen, location, forecast)
}

// Submit looks up place and displays the forecast of the last candidate the
// geocoder returned. Blank input is ignored and reported with false.
func (m *Manager) Submit(ctx context.Context, place string) bool {
	place = strings.TrimSpace(place)
	if place == "" {
		return false
	}

	ctx, gen := m.begin(ctx)
	logger := m.logger.With("request_id", uuid.New().String(), "place", place)

	locations := m.geocoding.Search(ctx, place)
	if len(locations) == 0 {
		logger.WarnContext(ctx, "no usable location", "error", ErrNotFound)
		m.finish(logger, gen, Location{}, nil)
		return true
	}

	// The last candidate is used, not the best ranked one.
	location := locations[len(locations)-1]
	logger.DebugContext(ctx, "resolved location",
		"name", location.Name,
		"candidates", len(locations),
		"latitude", location.Latitude,
		"longitude", location.Longitude,
	)

	if !m.current(gen) {
		logger.DebugContext(ctx, "request superseded before forecast")
		return true
	}

	forecast := m.weather.Forecast(ctx, location.Latitude, location.Longitude)
	m.finish(logger, gen, location, forecast)

	return true
}

// State reports the state of the latest request.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Close cancels the request in flight, if any. Its result is never rendered.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *Manager) begin(parent context.Context) (context.Context, uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		m.cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	m.cancel = cancel
	m.generation++
	m.state = Loading

	return ctx, m.generation
}

func (m *Manager) current(gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return gen == m.generation
}

// finish renders the outcome of request gen unless a newer request started.
// Rendering happens under the lock so a newer request cannot render in between.
func (m *Manager) finish(logger *slog.Logger, gen uint64, location Location, forecast *Forecast) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.generation {
		logger.Debug("dropping superseded result", "generation", gen, "latest", m.generation)
		return
	}

	// The place slot always describes this request; a failure clears it.
	label := ""
	if forecast != nil {
		label = location.Label()
	} else {
		logger.Warn("forecast unavailable, showing placeholders")
	}
	m.renderer.RenderPlace(label)
	m.renderer.RenderForecast(forecast)

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.state = Displayed
}
