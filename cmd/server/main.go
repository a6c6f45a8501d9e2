// Package main is the entry point for the Roomify API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/anmds2025/roomify/internal/domain/auth"
	v1 "github.com/anmds2025/roomify/internal/infrastructure/http/v1"
	"github.com/anmds2025/roomify/internal/infrastructure/metrics"
	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres"
	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres/auth_repo"
	"github.com/anmds2025/roomify/pkg/logger"
	"github.com/anmds2025/roomify/pkg/numerator"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting roomify server")

	// --- Database ---
	dsn := mustEnv("DATABASE_URL")
	poolCfg := postgres.DefaultPoolConfig(dsn)
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- JWT ---
	jwtSecret := mustEnv("JWT_SECRET")
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(jwtSecret))

	// --- Auth ---
	userRepo := auth_repo.NewUserRepo(txManager)
	tokenRepo := auth_repo.NewTokenRepo(txManager)
	authService := auth.NewService(userRepo, tokenRepo, txManager, jwtService, auth.DefaultServiceConfig())

	// --- Numerator ---
	numeratorService := numerator.New(pool)

	// --- Metrics ---
	m := metrics.New()
	m.RegisterPool(pool)

	// --- Audit ---
	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit service", "error", err)
	}

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:         pool,
		TxManager:    txManager,
		Logger:       log,
		JWTValidator: jwtService,
		AuthService:  authService,
		Numerator:    numeratorService,
		Metrics:      m,
		Audit:        auditService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
