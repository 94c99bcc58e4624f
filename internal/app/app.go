package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"unitconv/internal/adapters/cache"
	"unitconv/internal/adapters/httpclient"
	"unitconv/internal/api"
	"unitconv/internal/config"
	"unitconv/internal/convert"
	"unitconv/internal/convert/handler"
	httpserver "unitconv/internal/platform/http"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and the rate
// refresh scheduler.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}

	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Unit registry, built once from the embedded table
	registry, err := convert.NewRegistry()
	if err != nil {
		logrus.WithError(err).Error("Failed to build unit registry")
		return err
	}
	logrus.Info("✅ Unit registry loaded")

	// Snapshot cache
	cacheTTL := time.Duration(appCfg.RateCache.TTLSeconds) * time.Second
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	snapshotCache, err := cache.NewSnapshotCache(cacheTTL)
	if err != nil {
		logrus.WithError(err).Error("Failed to create snapshot cache")
		return err
	}
	defer snapshotCache.Close()

	// External rate client (configurable hard timeout)
	fetchTimeout := time.Duration(appCfg.RateAPI.TimeoutSeconds) * time.Second
	if fetchTimeout <= 0 {
		fetchTimeout = 5 * time.Second
	}
	if appCfg.RateAPI.BaseURL == "" {
		return fmt.Errorf("rate api base url is required")
	}
	rateClient := httpclient.NewExchangeRateClient(
		&http.Client{Timeout: fetchTimeout},
		strings.TrimSuffix(appCfg.RateAPI.BaseURL, "/"),
	)

	// Conversion dispatcher
	baseCurrency := strings.ToUpper(strings.TrimSpace(appCfg.RateAPI.BaseCurrency))
	conversionService := convert.NewService(registry, rateClient, snapshotCache, baseCurrency, fetchTimeout)

	// Background snapshot refresh
	refreshInterval := time.Duration(appCfg.Scheduler.RefreshIntervalSeconds) * time.Second
	scheduler := convert.NewScheduler(conversionService, refreshInterval)
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	conversionHandler := handler.NewConversionHandler(conversionService)
	router := api.NewRouter(conversionHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
