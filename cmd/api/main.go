package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"taskbridge/config"
	"taskbridge/internal/app"
	"taskbridge/internal/store"
	"taskbridge/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatal("failed to parse config: ", err)
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatal("failed to init logger: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(ctx, cfg.Bun)
	if err != nil {
		logger.Error("failed to connect db", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := store.Migrate(ctx, db); err != nil {
		logger.Error("failed to migrate", "err", err)
		os.Exit(1)
	}

	a := app.New(cfg, db, *logger)
	if err := a.Server.Run(ctx); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
