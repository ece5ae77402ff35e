package main

import (
	"context"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/wayfinder/wayfinder-api/internal/config"
	"github.com/wayfinder/wayfinder-api/internal/database"
	"github.com/wayfinder/wayfinder-api/internal/repository"
	"github.com/wayfinder/wayfinder-api/internal/seeder"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	logger.Info("Connected to database", zap.String("type", string(cfg.DB.Type)))

	// Auto-migrate if using memory DB to ensure schema exists
	if cfg.DB.IsMemory() {
		driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
		if err != nil {
			logger.Fatal("Failed to init sqlite migration driver", zap.Error(err))
		}
		m, err := migrate.NewWithDatabaseInstance("file://migrations/sqlite", "sqlite3", driver)
		if err != nil {
			logger.Fatal("Failed to init migration", zap.Error(err))
		}
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			logger.Fatal("Failed to run migration", zap.Error(err))
		}
	}

	repos := repository.NewRepositories(db, cfg.DB.Type)

	logger.Info("Starting catalog import...")
	s := seeder.New(seeder.NewParser(cfg.Seeder), repos.Geo, logger)
	if err := s.Run(ctx); err != nil {
		logger.Fatal("Catalog import failed", zap.Error(err))
	}
}
