package storage

import (
	"context"
	"time"
)

// StorageClient defines the interface for report storage backends
type StorageClient interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores a file inside the report folder derived from timestamp
	StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error

	// GetFile retrieves a file from the specified path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// FileExists checks if a file exists at the specified path
	FileExists(ctx context.Context, filePath string) (bool, error)

	// ListReports lists recent report index pages, newest first
	ListReports(ctx context.Context, limit int) ([]string, error)

	// GetLatestReport returns the path of the most recent report index page
	GetLatestReport(ctx context.Context) (string, error)
}
