package reports

import (
	"context"
	"fmt"

	"github.com/sev7enITA/DDPFramework/internal/config"
	"github.com/sev7enITA/DDPFramework/internal/logger"
	"github.com/sev7enITA/DDPFramework/internal/storage"
)

// ReportService orchestrates report generation and publishing
type ReportService struct {
	fileGenerator *FileGenerator
	orchestrator  *StorageOrchestrator
}

// NewReportService creates a new report service
func NewReportService(cfg *config.Config, storageClient storage.StorageClient) *ReportService {
	return &ReportService{
		fileGenerator: NewFileGenerator(cfg.ChartWidth, cfg.ChartHeight),
		orchestrator:  NewStorageOrchestrator(storageClient),
	}
}

// GenerateReport generates a complete report and publishes it. Returns the
// report folder path.
func (rs *ReportService) GenerateReport(ctx context.Context) (string, error) {
	logger.Info("Starting report generation")

	files, err := rs.fileGenerator.GenerateAllFiles(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to generate report files: %w", err)
	}

	if err := rs.orchestrator.StoreAllFiles(ctx, files); err != nil {
		return "", fmt.Errorf("failed to store report files: %w", err)
	}

	logger.Info("Report generation completed", map[string]interface{}{"folder": files.FolderPath})
	return files.FolderPath, nil
}
