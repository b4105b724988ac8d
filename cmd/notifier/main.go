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
	"github.com/piresc/flexwork/services/workspace/gateway"
	natsHandler "github.com/piresc/flexwork/services/workspace/handler/nats"
	"github.com/piresc/flexwork/services/workspace/repository"
	"github.com/piresc/flexwork/services/workspace/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "invitation-notifier"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/notifier.env"
	}
	configs := config.InitConfig(configPath)

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
		zap.Int("concurrency", configs.NATS.WorkerConcurrency),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	// The job only consumes, so the gateway gets no publisher
	workspaceRepo := repository.NewWorkspaceRepo(postgresClient.GetDB())
	workspaceGW := gateway.NewWorkspaceGW(nil, mailer.New(configs.Mail, zapLogger), redisClient)
	workspaceUC := usecase.NewWorkspaceUC(workspaceRepo, workspaceGW, configs)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := natsClient.EnsureStream(initCtx, natspkg.WorkspaceStreamConfig()); err != nil {
		zapLogger.Fatal("Failed to ensure JetStream stream", zap.Error(err))
	}
	invitationHandler := natsHandler.NewInvitationHandler(workspaceUC)
	consumerCfg := natspkg.InvitationConsumerConfig(configs.NATS.MaxDeliver, configs.NATS.AckWait)
	if err := invitationHandler.InitConsumer(initCtx, natsClient, consumerCfg, configs.NATS.WorkerConcurrency); err != nil {
		zapLogger.Fatal("Failed to start invitation consumer", zap.Error(err))
	}
	cancel()

	// Health endpoints only; the worker has no public API
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	healthService := health.NewService(appName, configs.App.Version)
	healthService.AddChecker("postgres", postgresClient)
	healthService.AddChecker("redis", redisClient)
	healthService.AddChecker("nats", natsClient)
	health.RegisterEndpoints(e, healthService)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error {
		invitationHandler.Stop()
		return nil
	})
	srv.OnShutdown(func(context.Context) error {
		natsClient.Close()
		return nil
	})
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Worker stopped with error", zap.String("app", appName), zap.Error(err))
	}
}
