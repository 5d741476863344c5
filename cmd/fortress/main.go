// Package main is the entry point for Fortress.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/fortress/internal/game"
	"github.com/samdwyer/fortress/internal/logger"
	"github.com/samdwyer/fortress/internal/sim"
	"github.com/samdwyer/fortress/internal/telemetry"
)

type options struct {
	seed       int64
	debug      bool
	tuningPath string
	headless   bool
	ticks      int
}

func main() {
	var opts options
	flag.Int64Var(&opts.seed, "seed", 0, "world seed (0 picks one from the clock)")
	flag.BoolVar(&opts.debug, "debug", false, "run the simulation at the debug tick rate")
	flag.StringVar(&opts.tuningPath, "tuning", "", "YAML file overriding simulation constants")
	flag.BoolVar(&opts.headless, "headless", false, "run without a terminal UI, logging a census to stdout")
	flag.IntVar(&opts.ticks, "ticks", 0, "headless only: run this many ticks then exit (0 runs until interrupted)")
	flag.Parse()

	// Load .env file for local development
	// This makes FORTRESS_HONEYCOMB_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// The terminal UI owns stdout, so interactive runs log to a file.
	var fallback io.Writer
	if opts.headless {
		fallback = os.Stdout
	}
	logr, closeLog, err := logger.New(fallback)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	// run finishes its deferred telemetry shutdown before the log closes.
	err = run(logr, opts)
	if err != nil {
		logr.WithError(err).Error("fortress exited with error")
	}
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func run(logr *logrus.Logger, opts options) error {
	// Set up OTEL environment variables from our .env variables
	telemetryEnabled := setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, telemetryEnabled)
	if err != nil {
		logr.WithError(err).Warn("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logr.WithError(err).Error("telemetry shutdown failed")
			}
		}()
	}

	tuning, err := sim.LoadTuning(opts.tuningPath)
	if err != nil {
		return fmt.Errorf("invalid tuning: %w", err)
	}
	cfg := game.Config{Seed: opts.seed, Debug: opts.debug, Tuning: tuning}

	if opts.headless {
		if _, err := game.RunHeadless(ctx, cfg, logr, opts.ticks); err != nil && ctx.Err() == nil {
			return fmt.Errorf("headless run: %w", err)
		}
		return nil
	}

	g, err := game.New(cfg, logr)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}
	if err := g.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env
// vars. It reports whether an API key was found.
func setupOTelEnv() bool {
	apiKey := os.Getenv("FORTRESS_HONEYCOMB_API_KEY")
	if apiKey == "" {
		return false
	}

	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may have an unexpanded variable reference that doesn't
	// work, so we construct the headers here
	dataset := os.Getenv("FORTRESS_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "fortress"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
