package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/campusride/internal/pkg/config"
	"github.com/piresc/campusride/internal/pkg/database"
	"github.com/piresc/campusride/internal/pkg/fare"
	"github.com/piresc/campusride/internal/pkg/health"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/metrics"
	"github.com/piresc/campusride/internal/pkg/middleware"
	"github.com/piresc/campusride/internal/pkg/nats"
	nrpkg "github.com/piresc/campusride/internal/pkg/newrelic"
	"github.com/piresc/campusride/services/rides/gateway"
	"github.com/piresc/campusride/services/rides/handler"
	"github.com/piresc/campusride/services/rides/repository"
	"github.com/piresc/campusride/services/rides/usecase"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	appName := "rides-service"
	configPath := "config/rides.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("notifier", configs.Notifier.Driver),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := nats.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Repositories
	db := postgresClient.GetDB()
	requestRepo := repository.NewRequestRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	rideRepo := repository.NewRideRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)
	revocationRepo := repository.NewRevocationRepository(redisClient)

	// Gateways
	rideGW, err := gateway.NewRideGW(configs, natsClient)
	if err != nil {
		zapLogger.Fatal("Failed to initialize ride notifier", logger.Err(err))
	}
	defer rideGW.Close()
	profileGW := gateway.NewProfileGW(configs, redisClient)

	// Usecases
	tx := database.NewTransactor(db)
	estimator := fare.NewEstimator(configs.Fare)
	requestUC := usecase.NewRequestUC(configs, requestRepo, rideGW, profileGW, estimator)
	offerUC := usecase.NewOfferUC(configs, tx, requestRepo, offerRepo, rideRepo, rideGW)
	rideUC := usecase.NewRideUC(configs, tx, rideRepo, trackingRepo, rideGW)
	revocationUC := usecase.NewTokenRevocationUC(revocationRepo)

	ridesHandler := handler.NewHandler(requestUC, offerUC, rideUC, revocationUC, natsClient, configs, nrApp)

	if err := ridesHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Expiry sweeper
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go usecase.NewSweeper(requestUC, offerUC, configs.Rides.SweepInterval).Run(sweepCtx)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// Panic recovery first so it wraps everything else
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(echomw.RequestID())
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	if configs.Metrics.Enabled {
		e.Use(metrics.EchoMiddleware())
		e.GET(configs.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
	}

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	ridesHandler.RegisterRoutes(e, redisClient, redisClient.Client)

	go func() {
		addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.Stringer("signal", sig))

	stopSweeper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
