package main

import (
	"context"
	"os"

	"artreport/app"
	"artreport/internal"
	"artreport/internal/config"
)

func main() {
	logger := internal.DefaultLogger

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	service := app.NewReportService(cfg, logger)
	manifest, err := service.Run(context.Background())
	if err != nil {
		logger.Error("report run %s failed: %v", manifest.RunID, err)
		os.Exit(1)
	}

	logger.Info("report written to %s", cfg.Report.OutputDir)
}
