package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	telemetryhttp "github.com/ecofleet/fleet-telemetry/internal/pkg/http"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/retry"
	"github.com/ecofleet/fleet-telemetry/internal/simulator"
)

func main() {
	scenarioPath := flag.String("scenario", "config/scenario.yaml", "path to the YAML scenario")
	baseURL := flag.String("base-url", "", "override the scenario base_url")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	appLogger, err := logger.NewAppLogger(logger.Config{Level: *logLevel, Type: logger.ConsoleLogger, Service: "fix-simulator"})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	logger.SetGlobalLogger(appLogger)

	scenario, err := simulator.LoadScenario(*scenarioPath)
	if err != nil {
		logger.Fatal("Failed to load scenario", logger.String("path", *scenarioPath), logger.Err(err))
	}
	if *baseURL != "" {
		scenario.BaseURL = *baseURL
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	retryConfig := retry.DefaultConfig()
	retryConfig.MaxRetries = 4
	retryConfig.RetryableFunc = retry.NetworkRetryableFunc()
	client := telemetryhttp.NewClient(scenario.BaseURL, 5*time.Second, retry.New(retryConfig))

	logger.Info("Starting fix simulator",
		logger.String("base_url", scenario.BaseURL),
		logger.Int("routes", len(scenario.Routes)),
		logger.Duration("interval", scenario.Interval))

	sent, failed := 0, 0
	for _, r := range simulator.Run(ctx, scenario, client) {
		sent += r.Sent
		failed += r.Failed
	}

	logger.Info("Fix simulator finished", logger.Int("sent", sent), logger.Int("failed", failed))
}
