// Command seed-admin creates or resets the admin account.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/diewo77/go-srm/internal/config"
	"github.com/diewo77/go-srm/internal/db"
	"github.com/diewo77/go-srm/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	email := pflag.String("email", envOr("ADMIN_EMAIL", "admin@company.com"), "admin email")
	name := pflag.String("name", envOr("ADMIN_NAME", "Admin User"), "admin display name")
	password := pflag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password (defaults to ADMIN_PASSWORD)")
	pflag.Parse()

	cfg := config.Load()
	logger, err := logging.New(cfg.App.LogLevel, cfg.App.LogFormat, "srm-seed-admin")
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if *password == "" {
		logger.Fatal("ADMIN_PASSWORD or --password is required")
	}

	conn, err := db.Connect(cfg.Database, logger)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	if err := db.Migrate(conn); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	user, err := db.SeedAdmin(ctx, conn, *email, *name, *password)
	if err != nil {
		logger.Fatal("seed admin", zap.Error(err))
	}
	logger.Info("admin account ready", zap.String("id", user.ID), zap.String("email", user.Email))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
