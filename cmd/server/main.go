package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diewo77/go-srm/auth"
	"github.com/diewo77/go-srm/internal/audit"
	"github.com/diewo77/go-srm/internal/config"
	"github.com/diewo77/go-srm/internal/db"
	"github.com/diewo77/go-srm/internal/logging"
	"github.com/diewo77/go-srm/internal/policy"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var migrateOnlyFlag = pflag.Bool("migrate-only", false, "Run DB migrations and exit")

func main() {
	pflag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()
	logger, err := logging.New(cfg.App.LogLevel, cfg.App.LogFormat, "srm-server")
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dbConn, err := db.Connect(cfg.Database, logger)
	if err != nil {
		return err
	}

	if *migrateOnlyFlag {
		if err := migrate(cfg, dbConn); err != nil {
			return err
		}
		logger.Info("migrations completed")
		return nil
	}
	if cfg.App.Migrations || cfg.App.Dev {
		if err := migrate(cfg, dbConn); err != nil {
			return err
		}
		logger.Info("migrations completed")
	}

	var sinks []audit.Sink
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		sinks = append(sinks, audit.NewRedisStreamSink(rdb, cfg.Redis.AuditStream, int64(cfg.Redis.StreamMaxLen)))
		logger.Info("audit stream enabled", zap.String("addr", cfg.Redis.Addr), zap.String("stream", cfg.Redis.AuditStream))
	}

	sessions := auth.NewSessions(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL, cfg.Auth.SecureCookies)
	routerCfg := policy.NewRouterConfig(dbConn, audit.NewLog(dbConn, logger, sinks...), sessions, cfg.Company.PDF(), logger)
	app := NewApp(dbConn, routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      logging.Middleware(logger, app),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port), zap.Bool("dev", cfg.App.Dev))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
		logger.Info("shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped gracefully")
	return nil
}

// migrate runs the versioned SQL migrations on postgres when MIGRATIONS is
// set and falls back to AutoMigrate otherwise.
func migrate(cfg *config.Config, dbConn *gorm.DB) error {
	if cfg.App.Migrations && cfg.Database.Driver == "postgres" {
		return db.MigrateSQL(cfg.Database.URL())
	}
	return db.Migrate(dbConn)
}
