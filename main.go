package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sev7enITA/DDPFramework/internal/config"
	"github.com/sev7enITA/DDPFramework/internal/logger"
	"github.com/sev7enITA/DDPFramework/internal/reports"
	"github.com/sev7enITA/DDPFramework/internal/server"
	"github.com/sev7enITA/DDPFramework/internal/storage"
)

func main() {
	serve := flag.Bool("serve", false, "start the preview server after generating the report")
	skipGenerate := flag.Bool("skip-generate", false, "do not generate a report on startup (preview only)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Info("Starting DDP Framework report generator", map[string]interface{}{
		"version":     config.GetVersion(),
		"environment": cfg.Environment,
		"deployment":  cfg.DeploymentMode,
	})

	storageClient, err := storage.NewStorageClient(ctx, storage.DeploymentMode(cfg.DeploymentMode), cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", err)
	}
	defer storageClient.Close()

	if !*skipGenerate {
		service := reports.NewReportService(cfg, storageClient)
		folderPath, err := service.GenerateReport(ctx)
		if err != nil {
			logger.Error("Report generation failed", err)
			os.Exit(1)
		}
		logger.Info("Report published", map[string]interface{}{"folder": folderPath})
	}

	if *serve {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.NewServer(cfg, storageClient)
		if err := srv.Start(ctx); err != nil {
			logger.Fatal("Preview server failed", err)
		}
	}
}
