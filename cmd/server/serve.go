package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sams408/safeon-id-vault/config"
	"github.com/sams408/safeon-id-vault/internal/delivery"
	grpcHandler "github.com/sams408/safeon-id-vault/internal/delivery/grpc"
	"github.com/sams408/safeon-id-vault/internal/events"
	"github.com/sams408/safeon-id-vault/internal/i18n"
	"github.com/sams408/safeon-id-vault/internal/repository"
	"github.com/sams408/safeon-id-vault/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

var secureCookie bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the gRPC health endpoint",
	RunE:  serve,
}

func init() {
	serveCmd.Flags().BoolVar(&secureCookie, "secure-cookie", false, "Mark the session cookie as HTTPS-only")
}

func serve(cmd *cobra.Command, args []string) error {
	logger := setupLogger("info", "json")
	cfg := config.LoadConfig(logger)
	logger = setupLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Info("Starting SafeOn admin service...")

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Errorf("Error closing database connection: %v", err)
		} else {
			logger.Info("Database connection closed.")
		}
	}()

	publisher := events.New(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Errorf("Error closing event publisher: %v", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := delivery.NewRouter(delivery.RouterConfig{
		Store:        store,
		Publisher:    publisher,
		Translator:   i18n.New(cfg.DefaultLanguage, cfg.FallbackLanguage),
		Auth:         usecase.NewAuthUseCase(store.Accounts, cfg.JWTSecret, cfg.TokenTTL, logger),
		CORSOrigins:  cfg.CORSOrigins,
		SecureCookie: secureCookie,
		Registry:     registry,
		Logger:       logger,
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.GrpcPort)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.GrpcPort, err)
	}
	grpcServer, checker := grpcHandler.NewServer(store, cfg.HealthInterval, logger)
	go checker.Run(ctx)

	go func() {
		logger.Infof("gRPC server listening on %s", cfg.GrpcPort)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			logger.Errorf("Failed to serve gRPC: %v", err)
			stop()
		}
		logger.Info("gRPC server stopped serving.")
	}()

	go func() {
		logger.Infof("HTTP server listening on %s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("Failed to serve HTTP: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Warn("Shutdown signal received...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("HTTP server forced to shut down: %v", err)
	}
	logger.Info("HTTP server stopped.")

	grpcServer.GracefulStop()
	logger.Info("gRPC server gracefully stopped.")
	logger.Info("SafeOn admin service shut down gracefully.")
	return nil
}
