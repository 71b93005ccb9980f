package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	autoscout_adapter "github.com/hendrikderyck/steven-car-company/internal/adapters/autoscout"
	logger_adapter "github.com/hendrikderyck/steven-car-company/internal/adapters/logger"
	rabbitmq_adapter "github.com/hendrikderyck/steven-car-company/internal/adapters/rabbitmq"
	rest_adapter "github.com/hendrikderyck/steven-car-company/internal/adapters/rest"
	timeapi_adapter "github.com/hendrikderyck/steven-car-company/internal/adapters/timeapi"
	"github.com/hendrikderyck/steven-car-company/internal/configs"
	"github.com/hendrikderyck/steven-car-company/internal/core/port"
	"github.com/hendrikderyck/steven-car-company/internal/core/usecase"
)

// App holds every long-lived component of the service.
type App struct {
	config       *configs.AppConfig
	logger       port.LoggerPort
	fluentClient *fluent.Fluent
	queue        port.ProcessedListingQueuePort
	httpServer   *http.Server
}

// NewApp is the composition root: every dependency is created and wired
// here, nowhere else.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// Loggers first, everything after this can report its own failures.
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluent.New(fluent.Config{
			FluentHost: appConfig.FluentBit.Host,
			FluentPort: appConfig.FluentBit.Port,
			TagPrefix:  appConfig.AppName,
			Async:      true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers),
		"fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// The processed-listing feed is optional; a broken broker must never
	// keep the site from scraping, so connection failures degrade to noop.
	var queue port.ProcessedListingQueuePort = rabbitmq_adapter.NoopQueueAdapter{}
	if appConfig.RabbitMQ.Enabled {
		rabbitQueue, err := rabbitmq_adapter.NewProcessedListingEnqueueAdapter(appConfig.RabbitMQ.URL)
		if err != nil {
			appLogger.Warn("RabbitMQ unavailable, processed-listing feed disabled", port.Fields{
				"error": err.Error(),
			})
		} else {
			queue = rabbitQueue
			appLogger.Info("RabbitMQ processed-listing feed initialized.", nil)
		}
	}

	autoscoutAdapter := autoscout_adapter.NewAdapter()
	timeAdapter := timeapi_adapter.NewAdapter()
	appLogger.Info("All outgoing adapters initialized.", nil)

	fetchAllListings := usecase.NewFetchAllListingsUseCase(autoscoutAdapter, queue, appConfig.Scraper)
	fetchListingDetail := usecase.NewFetchListingDetailUseCase(autoscoutAdapter, appConfig.Scraper)
	buildCars := usecase.NewBuildCarsUseCase(fetchAllListings)
	appLogger.Info("All use cases initialized.", nil)

	server := rest_adapter.NewServer(baseLogger, fetchAllListings, buildCars, fetchListingDetail, timeAdapter)

	httpServer := &http.Server{
		Addr:         ":" + appConfig.HTTPPort,
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // a full pipeline run sits behind one GET
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		config:       appConfig,
		logger:       appLogger,
		fluentClient: fluentClient,
		queue:        queue,
		httpServer:   httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until a shutdown signal arrives.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if err := a.queue.Close(); err != nil {
			a.logger.Error("Error closing processed-listing queue", err, nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			a.logger.Info("Closing Fluent Bit connection...", nil)
			if err := a.fluentClient.Close(); err != nil {
				log.Printf("App: Error closing fluent client: %v\n", err)
			}
		}
	}()

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting", port.Fields{"addr": a.httpServer.Addr})
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received signal, shutting down", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		a.logger.Error("HTTP server failed, shutting down", err, nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("HTTP server shutdown error", err, nil)
		return err
	}

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
