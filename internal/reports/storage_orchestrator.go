package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sev7enITA/DDPFramework/internal/logger"
	"github.com/sev7enITA/DDPFramework/internal/storage"
)

// StorageOrchestrator handles the business logic of storing generated files
type StorageOrchestrator struct {
	storage storage.StorageClient
}

// NewStorageOrchestrator creates a new storage orchestrator
func NewStorageOrchestrator(storageClient storage.StorageClient) *StorageOrchestrator {
	return &StorageOrchestrator{
		storage: storageClient,
	}
}

// StoreAllFiles publishes a generated report. Every file is first written to
// a scratch directory so an unwritable artifact fails the run before
// anything reaches the report destination; only then are the files handed
// to the storage backend, with index.html last so a partially published
// folder never lists as a finished report.
func (so *StorageOrchestrator) StoreAllFiles(ctx context.Context, files *GeneratedFiles) error {
	tempDir, err := os.MkdirTemp("", fmt.Sprintf("ddp_stage_%d_*", time.Now().Unix()))
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	staged, err := so.writeFilesToStage(tempDir, files)
	if err != nil {
		return fmt.Errorf("failed to stage files: %w", err)
	}

	for _, filename := range staged {
		data, err := os.ReadFile(filepath.Join(tempDir, filename))
		if err != nil {
			return fmt.Errorf("failed to read staged file %s: %w", filename, err)
		}
		if err := so.storage.StoreFile(ctx, data, filename, files.Timestamp); err != nil {
			return fmt.Errorf("failed to store %s: %w", filename, err)
		}
	}

	logger.Info("Report published", map[string]interface{}{
		"folder": files.FolderPath,
		"files":  len(staged),
	})
	return nil
}

// writeFilesToStage writes all generated files to the staging directory and
// returns the filenames in publish order
func (so *StorageOrchestrator) writeFilesToStage(tempDir string, files *GeneratedFiles) ([]string, error) {
	var staged []string

	write := func(filename string, data []byte) error {
		if err := os.WriteFile(filepath.Join(tempDir, filename), data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}
		staged = append(staged, filename)
		return nil
	}

	for filename, data := range files.ChartFiles {
		if err := write(filename, data); err != nil {
			return nil, err
		}
	}
	for filename, data := range files.Documents {
		if err := write(filename, data); err != nil {
			return nil, err
		}
	}
	for filename, data := range files.Previews {
		if err := write(filename, data); err != nil {
			return nil, err
		}
	}
	if err := write("dashboard.html", files.DashboardHTML); err != nil {
		return nil, err
	}

	// index.html goes last
	if err := write("index.html", files.IndexHTML); err != nil {
		return nil, err
	}

	return staged, nil
}
