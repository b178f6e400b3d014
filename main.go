package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/ttv9934/device-management-app/config"
	"github.com/ttv9934/device-management-app/db"
	"github.com/ttv9934/device-management-app/web"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()

	database, err := db.New(cfg)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	if err := database.Init(); err != nil {
		logger.Fatal("failed to run migrations/init", zap.Error(err))
	}

	if err := web.New(database, cfg, logger).Serve(); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}
}
