package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"weatherwidget/config"
	"weatherwidget/manager"
	"weatherwidget/render"
	"weatherwidget/ticker"
)

func New(cfg *config.Config, geocoding manager.Geocoding, weather manager.Weather, logger *slog.Logger) (*cobra.Command, error) {
	var (
		watch     bool
		days      int
		latitude  float64
		longitude float64
	)

	cmd := &cobra.Command{
		Use:          "weather [place]",
		Args:         cobra.ArbitraryArgs,
		Short:        "CLI widget showing the current weather and a weekly forecast",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFlags(days, latitude, longitude); err != nil {
				return err
			}

			location := manager.Location{Latitude: latitude, Longitude: longitude}
			place := strings.TrimSpace(strings.Join(args, " "))

			if watch {
				return runWatch(cmd, cfg, geocoding, weather, logger, location, place, days)
			}
			return runOnce(cmd, geocoding, weather, logger, location, place, days)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running; every line read from stdin looks up a new place")
	cmd.Flags().IntVar(&days, "days", cfg.Display.Days, "number of days in the weekly strip")
	cmd.Flags().Float64Var(&latitude, "lat", cfg.Location.Latitude, "latitude of the default location")
	cmd.Flags().Float64Var(&longitude, "lon", cfg.Location.Longitude, "longitude of the default location")

	return cmd, nil
}

// validateFlags applies the bounds config.Load enforces on the same settings.
func validateFlags(days int, latitude, longitude float64) error {
	validate := validator.New()

	if err := validate.Var(days, "min=1,max=16"); err != nil {
		return fmt.Errorf("--days must be between 1 and 16, got %d", days)
	}
	if err := validate.Var(latitude, "gte=-90,lte=90"); err != nil {
		return fmt.Errorf("--lat must be between -90 and 90, got %g", latitude)
	}
	if err := validate.Var(longitude, "gte=-180,lte=180"); err != nil {
		return fmt.Errorf("--lon must be between -180 and 180, got %g", longitude)
	}

	return nil
}

// runOnce renders a single frame: the default location, or place when given.
func runOnce(
	cmd *cobra.Command,
	geocoding manager.Geocoding,
	weather manager.Weather,
	logger *slog.Logger,
	location manager.Location,
	place string,
	days int,
) error {
	board := render.NewBoard(days)
	pipeline := render.NewPipeline(board)

	m := manager.New(geocoding, weather, pipeline, logger, manager.WithDefaultLocation(location))
	defer m.Close()

	pipeline.RenderClock(time.Now())
	if place == "" {
		m.Init(cmd.Context())
	} else {
		pipeline.RenderLoading()
		m.Submit(cmd.Context(), place)
	}

	return render.Fprint(cmd.OutOrStdout(), board.Snapshot())
}

// runWatch keeps the widget on screen until the context is cancelled.
func runWatch(
	cmd *cobra.Command,
	cfg *config.Config,
	geocoding manager.Geocoding,
	weather manager.Weather,
	logger *slog.Logger,
	location manager.Location,
	place string,
	days int,
) error {
	ctx := cmd.Context()

	pipeline := render.NewPipeline(render.NewTerminal(cmd.OutOrStdout(), days))

	m := manager.New(geocoding, weather, pipeline, logger, manager.WithDefaultLocation(location))
	defer m.Close()

	clock := ticker.Start(ctx, cfg.Clock.Interval, pipeline.RenderClock)
	defer clock.Stop()

	// The default location loads before any input is accepted so it can
	// never supersede a place the user asked for.
	m.Init(ctx)

	g, gctx := errgroup.WithContext(ctx)
	if place != "" {
		g.Go(func() error {
			m.Submit(gctx, place)
			return nil
		})
	}

	lines := make(chan string)
	go scanLines(ctx, cmd.InOrStdin(), lines)

	for {
		select {
		case <-ctx.Done():
			m.Close()
			return g.Wait()
		case line, ok := <-lines:
			if !ok {
				// Input closed; keep the clock running until interrupted.
				lines = nil
				continue
			}
			g.Go(func() error {
				m.Submit(gctx, line)
				return nil
			})
		}
	}
}

func scanLines(ctx context.Context, r io.Reader, lines chan<- string) {
	defer close(lines)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
}
