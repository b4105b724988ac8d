package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/flexwork/internal/pkg/config"
	"github.com/piresc/flexwork/internal/pkg/database"
	"github.com/piresc/flexwork/internal/pkg/health"
	"github.com/piresc/flexwork/internal/pkg/logger"
	"github.com/piresc/flexwork/internal/pkg/mailer"
	"github.com/piresc/flexwork/internal/pkg/middleware"
	natspkg "github.com/piresc/flexwork/internal/pkg/nats"
	nrpkg "github.com/piresc/flexwork/internal/pkg/newrelic"
	"github.com/piresc/flexwork/internal/pkg/server"
	"github.com/piresc/flexwork/internal/utils"
	authGateway "github.com/piresc/flexwork/services/auth/gateway"
	authHandler "github.com/piresc/flexwork/services/auth/handler"
	authHTTP "github.com/piresc/flexwork/services/auth/handler/http"
	authRepository "github.com/piresc/flexwork/services/auth/repository"
	authUsecase "github.com/piresc/flexwork/services/auth/usecase"
	workspaceGateway "github.com/piresc/flexwork/services/workspace/gateway"
	workspaceHandler "github.com/piresc/flexwork/services/workspace/handler"
	workspaceHTTP "github.com/piresc/flexwork/services/workspace/handler/http"
	workspaceRepository "github.com/piresc/flexwork/services/workspace/repository"
	workspaceUsecase "github.com/piresc/flexwork/services/workspace/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "workspace-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/workspace.env"
	}
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
		defer nrApp.Shutdown(10 * time.Second)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize NATS and the invitation stream
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	streamCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := natsClient.EnsureStream(streamCtx, natspkg.WorkspaceStreamConfig()); err != nil {
		zapLogger.Fatal("Failed to ensure JetStream stream", zap.Error(err))
	}
	cancel()

	sender := mailer.New(configs.Mail, zapLogger)

	// Auth
	authRepo := authRepository.NewAuthRepo(configs, postgresClient.GetDB())
	authGW := authGateway.NewAuthGW(sender, redisClient)
	authUC := authUsecase.NewAuthUC(authRepo, authGW, configs)
	authRoutes := authHandler.NewHandler(authHTTP.NewAuthHandler(authUC))

	// Workspace
	workspaceRepo := workspaceRepository.NewWorkspaceRepo(postgresClient.GetDB())
	workspaceGW := workspaceGateway.NewWorkspaceGW(natspkg.NewProducer(natsClient), sender, redisClient)
	workspaceUC := workspaceUsecase.NewWorkspaceUC(workspaceRepo, workspaceGW, configs)
	workspaceRoutes := workspaceHandler.NewHandler(workspaceHTTP.NewWorkspaceHandler(workspaceUC))

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()

	// Add middlewares
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewService(appName, configs.App.Version)
	healthService.AddChecker("postgres", postgresClient)
	healthService.AddChecker("redis", redisClient)
	healthService.AddChecker("nats", natsClient)
	health.RegisterEndpoints(e, healthService)

	// Register service routes
	authRoutes.RegisterRoutes(e, middleware.IPRateLimiter(configs.RateLimit.AuthPerMinute, time.Minute, redisClient.GetClient()))
	workspaceRoutes.RegisterRoutes(e, middleware.JWTAuthMiddleware(configs.JWT))

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error {
		natsClient.Close()
		return nil
	})
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.String("app", appName), zap.Error(err))
	}
}
