package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"walletsync/internal/config"
	"walletsync/internal/logging"
	"walletsync/internal/token"
	"walletsync/internal/userservice/client"
	"walletsync/internal/userservice/handlers"
	"walletsync/internal/userservice/outbox"
	"walletsync/internal/userservice/repository"
	"walletsync/internal/userservice/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.LoadUserConfig()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	logger := logging.SetupLogger(cfg.LogLevel)

	gin.SetMode(gin.ReleaseMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	poolConfig, err := pgxpool.ParseConfig(cfg.DBURL)
	if err != nil {
		logger.Error("failed to parse db config", "err", err)
		os.Exit(1)
	}
	poolConfig.MaxConns = int32(cfg.DBMaxConns)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	tokens := token.NewManager(cfg.JWTSecret, cfg.InternalJWTSecret)
	walletClient := client.NewWalletClient(cfg.WalletServiceURL, tokens, logger)

	userRepo := repository.NewUserPGRepository(pool, logger)
	outboxRepo := repository.NewOutboxPGRepository(pool, logger)
	userService := service.NewUserService(userRepo, outboxRepo, walletClient, tokens, logger)
	handler := handlers.NewUserHTTPHandler(userService)

	relayCtx, stopRelay := context.WithCancel(context.Background())
	defer stopRelay()
	if cfg.RelayEnabled {
		relay := outbox.NewRelay(outboxRepo, outboxRepo, walletClient, logger, cfg.RelayInterval, cfg.RelayGrace, cfg.RelayMaxAttempts)
		go relay.Run(relayCtx)
	}

	r := gin.Default()
	handler.RegisterRoutes(r, handlers.Authenticate(tokens))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Starting user service", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil {
			logger.Error("Server failed", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")
	stopRelay()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("Server forced to shutdown", "err", err)
	}
	logger.Info("Server exiting")
}
