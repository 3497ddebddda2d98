package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vibe-gaming/cities/contract"
	apiHttp "github.com/vibe-gaming/cities/internal/api/http"
	"github.com/vibe-gaming/cities/internal/config"
	"github.com/vibe-gaming/cities/internal/db"
	"github.com/vibe-gaming/cities/internal/repository"
	"github.com/vibe-gaming/cities/internal/server"
	"github.com/vibe-gaming/cities/internal/service"
	"github.com/vibe-gaming/cities/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables, the first argument overrides the port
	cfg := config.MustLoad(os.Args[1:])

	// Dependencies
	appLogger := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	appLogger.Info("starting cities api", zap.String("log_level", cfg.LogLevel))
	appLogger.Debug("debug messages are enabled")

	ctx := context.Background()

	contractValidator, err := contract.NewContractValidator(ctx)
	if err != nil {
		appLogger.Error("api contract load failed", zap.Error(err))
		os.Exit(1)
	}
	citySchema, err := contract.NewCitySchemaValidator()
	if err != nil {
		appLogger.Error("city schema compile failed", zap.Error(err))
		os.Exit(1)
	}

	// Init database
	mongoClient, err := db.New(ctx, cfg.Database)
	if err != nil {
		appLogger.Error("cannot connect to mongo", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			appLogger.Error("error when disconnecting", zap.Error(err))
		}
	}()
	appLogger.Info("connected to mongo",
		zap.String("database", cfg.Database.Name),
		zap.String("collection", cfg.Database.Collection),
	)

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(db.Collection(mongoClient, cfg.Database))
	services := service.NewServices(service.Deps{
		Repos: repos,
	})
	handlers := apiHttp.NewHandlers(services, cfg, contractValidator, citySchema)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("addr", srv.Addr()), zap.Time("at", time.Now()))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	shutdownCtx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(shutdownCtx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	appLogger.Info("app stopped")
}
