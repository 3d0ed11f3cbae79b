package main

import (
	"context"
	_ "embed"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"weatherwidget/apis/geocoding"
	"weatherwidget/apis/openmeteo"
	"weatherwidget/cli"
	"weatherwidget/config"
)

//go:embed config.yaml
var configRaw []byte

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configRaw)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	// Frames go to stdout, logs to stderr.
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	cmd, err := cli.New(cfg, geocoding.New(cfg.Geocoding, logger), openmeteo.New(cfg.Forecast, logger), logger)
	if err != nil {
		log.Printf("new cli: %s\n", err)
		return
	}

	if err = cmd.ExecuteContext(ctx); err != nil {
		logger.Error("exec", "error", err)
		stop()
		os.Exit(1)
	}
}
