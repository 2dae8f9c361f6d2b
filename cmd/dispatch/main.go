package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/loopline/dispatch/internal/pkg/config"
	"github.com/loopline/dispatch/internal/pkg/database"
	"github.com/loopline/dispatch/internal/pkg/health"
	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/middleware"
	natspkg "github.com/loopline/dispatch/internal/pkg/nats"
	"github.com/loopline/dispatch/internal/pkg/server"
	"github.com/loopline/dispatch/internal/pkg/travel"
	"github.com/loopline/dispatch/services/dispatch"
	"github.com/loopline/dispatch/services/dispatch/gateway"
	"github.com/loopline/dispatch/services/dispatch/handler"
	"github.com/loopline/dispatch/services/dispatch/repository"
	"github.com/loopline/dispatch/services/dispatch/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       configs.Logger.Level,
		FilePath:    configs.Logger.FilePath,
		ServiceName: appName,
	})
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting dispatch service",
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Initialize PostgreSQL
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Travel-time estimation: OSRM with a Redis cache in front. The use
	// case keeps its own haversine fallback for when OSRM is unreachable.
	estimator := travel.NewCachedEstimator(
		travel.NewOSRMProvider(configs.Travel, zapLogger),
		redisClient,
		configs.Travel,
	)

	dispatchRepo := repository.NewDispatchRepository(configs, postgresClient.GetDB(), redisClient)
	dispatchGW := gateway.NewDispatchGW(natsClient)
	dispatchUC := usecase.NewDispatchUC(configs, dispatchRepo, dispatchGW, estimator, zapLogger)
	dispatchHandler := handler.NewHandler(dispatchUC, natsClient)

	if err := dispatchHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RequestLoggerMiddleware(zapLogger))

	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(&configs.APIKey)

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	dispatchHandler.RegisterRoutes(e, apiKeyMiddleware)

	// Periodic sweep over waiting requests, stopped on shutdown.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go runSweepLoop(sweepCtx, dispatchUC, configs.Dispatch.SweepInterval, zapLogger)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown reported an error", logger.Err(err))
	}
	stopSweep()

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Error during component shutdown", logger.Err(err))
	}
}

// runSweepLoop drives the dispatch queue when no location pings or explicit
// search calls are arriving. Each pass picks up requests whose next-attempt
// time has come due.
func runSweepLoop(ctx context.Context, dispatchUC dispatch.DispatchUC, intervalSeconds int, zapLogger *logger.ZapLogger) {
	interval := time.Duration(intervalSeconds) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zapLogger.Info("Sweep loop stopped")
			return
		case <-ticker.C:
			sweepCtx, cancel := context.WithTimeout(ctx, interval)
			summary, err := dispatchUC.RunSweep(sweepCtx)
			cancel()
			if err != nil {
				zapLogger.Error("Dispatch sweep failed", logger.Err(err))
				continue
			}
			if summary.Evaluated > 0 {
				zapLogger.Info("Dispatch sweep completed",
					logger.Int("evaluated", summary.Evaluated),
					logger.Int("matched", summary.Matched),
					logger.Int("unmatched", summary.Unmatched),
					logger.Int("missed", summary.Missed),
					logger.Int("cancelled", summary.Cancelled))
			}
		}
	}
}
