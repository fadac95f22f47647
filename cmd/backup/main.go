package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Chetan55567/portfolio-api/adapters/media_storage"
	backupUC "github.com/Chetan55567/portfolio-api/internal/application/usecase/backup"
	"github.com/Chetan55567/portfolio-api/internal/config"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
)

// One-shot job: archive the data directory and push it to Cloudinary.
// Meant to run from cron next to the server process.
func main() {
	fmt.Println("Starting Portfolio backup job...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("backup requires Cloudinary to be configured", err)
	}

	useCase := backupUC.NewBackupUseCase(cfg, uploader, appLogger)
	if err := useCase.Execute(context.Background()); err != nil {
		appLogger.Fatal("backup failed", err)
	}
}
