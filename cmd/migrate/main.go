package main

import (
	"context"

	"gamerental/internal/app/config"
	"gamerental/internal/app/repository"

	"github.com/sirupsen/logrus"
)

// default coarse roles
var levels = []string{"Admin", "Employee"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// repository.New runs AutoMigrate for every model
	repo, err := repository.New(cfg.DatabaseDSN)
	if err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
	defer repo.Close()

	logrus.Info("Database migration completed successfully")

	created, err := repo.SeedLevels(context.Background(), levels)
	if err != nil {
		logrus.Fatalf("Failed to seed levels: %v", err)
	}
	logrus.Infof("Seeded %d level(s)", created)
}
