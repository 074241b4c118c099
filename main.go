package main

import (
	"context"
	"log"
	"time"

	"renovation-tracker/cmd"
	"renovation-tracker/internal/data/repository"
	"renovation-tracker/internal/wire"
	"renovation-tracker/pkg/database"
	"renovation-tracker/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureSchema(ctx, db); err != nil {
		logger.Fatal("Failed to create schema", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)

	app, err := wire.Wiring(repos, db, config, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	if err := app.Service.Auth.BootstrapAdmin(ctx); err != nil {
		logger.Fatal("Failed to bootstrap admin account", zap.Error(err))
	}
	if err := app.Service.Auth.PurgeExpiredSessions(ctx); err != nil {
		logger.Warn("Failed to purge expired sessions", zap.Error(err))
	}

	cmd.APIServer(app.Router, config.App.Port, logger)
}
