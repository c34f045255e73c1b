package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nfl-hq-service/internal/config"
	"github.com/preston-bernstein/nfl-hq-service/internal/logging"
	"github.com/preston-bernstein/nfl-hq-service/internal/server"
)

const (
	appName    = "nfl-hq-service"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	dotenvErr := config.LoadDotEnv()
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		File:    cfg.Logging.File,
		Service: appName,
		Version: appVersion,
	})
	if dotenvErr != nil {
		logging.Warn(logger, "failed to load .env", "error", dotenvErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "server setup failed", err)
		return 1
	}
	srv.Run(ctx, stop)
	return 0
}
