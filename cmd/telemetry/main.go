package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/circuitbreaker"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/config"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/database"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/health"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/middleware"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	mqttpkg "github.com/ecofleet/fleet-telemetry/internal/pkg/mqtt"
	nsqpkg "github.com/ecofleet/fleet-telemetry/internal/pkg/nsq"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/server"
	"github.com/ecofleet/fleet-telemetry/services/telemetry"
	"github.com/ecofleet/fleet-telemetry/services/telemetry/gateway"
	"github.com/ecofleet/fleet-telemetry/services/telemetry/handler"
	mqttHandler "github.com/ecofleet/fleet-telemetry/services/telemetry/handler/mqtt"
	nsqHandler "github.com/ecofleet/fleet-telemetry/services/telemetry/handler/nsq"
	"github.com/ecofleet/fleet-telemetry/services/telemetry/repository"
	"github.com/ecofleet/fleet-telemetry/services/telemetry/usecase"
	"github.com/labstack/echo/v4"
)

func main() {
	appName := "telemetry-service"
	configPath := flag.String("config", "", "path to the YAML configuration file")
	flag.Parse()

	configs, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.InitAppLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("store", configs.Database.Driver))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown := server.NewShutdownManager()
	healthService := health.NewService()

	// Route store
	routeRepo, err := newRouteStore(ctx, configs, shutdown, healthService)
	if err != nil {
		logger.Fatal("Failed to initialize route store", logger.Err(err))
	}

	// Live position cache
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
	healthService.AddChecker("redis", health.PingChecker(redisClient))
	liveRepo := repository.NewLiveRepository(redisClient)

	// Telemetry events
	var telemetryGW telemetry.TelemetryGW
	if configs.NSQ.Enabled {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			logger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		shutdown.Register("nsq-producer", func(context.Context) error {
			producer.Stop()
			return nil
		})
		healthService.AddChecker("nsq", health.CheckerFunc(func(context.Context) error {
			return producer.Ping()
		}))
		telemetryGW = gateway.NewTelemetryGW(producer, circuitbreaker.New(circuitbreaker.DefaultConfig("nsq-telemetry")))
	}

	telemetryUC := usecase.NewTelemetryUC(configs, routeRepo, liveRepo, telemetryGW)

	// Bus ingestion
	if configs.NSQ.Enabled {
		fixHandler := nsqHandler.NewFixHandler(telemetryUC)
		if err := fixHandler.InitNSQConsumer(configs.NSQ); err != nil {
			logger.Fatal("Failed to initialize NSQ consumer", logger.Err(err))
		}
		shutdown.Register("nsq-consumer", func(context.Context) error {
			fixHandler.Stop()
			return nil
		})
	}

	if configs.MQTT.Enabled {
		mqttService, err := mqttpkg.Connect(configs.MQTT)
		if err != nil {
			logger.Fatal("Failed to connect to MQTT broker", logger.Err(err))
		}
		if err := mqttHandler.NewFixHandler(telemetryUC).Subscribe(mqttService); err != nil {
			logger.Fatal("Failed to subscribe to device fixes", logger.Err(err))
		}
		shutdown.Register("mqtt", func(context.Context) error {
			mqttService.Close()
			return nil
		})
	}

	// HTTP API
	e := echo.New()
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))

	health.RegisterEndpoints(e, appName, healthService)
	logger.Info("Health checks registered", logger.String("checks", strings.Join(healthService.Names(), ",")))

	httpHandler := handler.NewHTTPHandler(telemetryUC)
	if configs.Server.FixRateLimit > 0 {
		httpHandler.Use(middleware.RouteFixRateLimiter(configs.Server.FixRateLimit, time.Minute, redisClient.GetClient()))
	}
	httpHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, configs.Server, shutdown)
	if err := srv.Run(ctx); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
		os.Exit(1)
	}
}

// newRouteStore opens the configured route store and registers its cleanup
func newRouteStore(ctx context.Context, configs *models.Config, shutdown *server.ShutdownManager, healthService *health.Service) (telemetry.RouteRepo, error) {
	switch configs.Database.Driver {
	case "mongo":
		mongoClient, err := database.NewMongoClient(configs.Mongo)
		if err != nil {
			return nil, err
		}
		shutdown.Register("mongo", mongoClient.Close)
		healthService.AddChecker("mongo", health.PingChecker(mongoClient))

		repo := repository.NewRouteMongoRepository(mongoClient.Collection(configs.Mongo.Collection))
		indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := repo.EnsureIndexes(indexCtx); err != nil {
			return nil, fmt.Errorf("failed to create route indexes: %w", err)
		}
		return repo, nil

	case "postgres", "mysql":
		sqlClient, err := database.NewSQLClient(configs.Database)
		if err != nil {
			return nil, err
		}
		shutdown.Register(configs.Database.Driver, func(context.Context) error { return sqlClient.Close() })
		healthService.AddChecker(configs.Database.Driver, health.PingChecker(sqlClient))
		return repository.NewRouteSQLRepository(sqlClient.GetDB()), nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", configs.Database.Driver)
	}
}
