package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewLocalStorageClient(t *testing.T) {
	tempDir := t.TempDir()
	baseDir := filepath.Join(tempDir, "artifacts")

	client, err := NewLocalStorageClient(baseDir)
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	defer client.Close()

	if client.BaseDir() != baseDir {
		t.Errorf("Expected BaseDir to be '%s', got '%s'", baseDir, client.BaseDir())
	}

	// Verify directory was created
	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		t.Error("base directory was not created")
	}
}

func TestLocalStorageClient_Close(t *testing.T) {
	client, err := NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}

	// Close should not return error
	if err := client.Close(); err != nil {
		t.Errorf("Close() returned unexpected error: %v", err)
	}
}

func TestLocalStorageClient_StoreAndGetFile(t *testing.T) {
	client, err := NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	timestamp := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	content := []byte("<html>report</html>")

	if err := client.StoreFile(ctx, content, "index.html", timestamp); err != nil {
		t.Fatalf("StoreFile failed: %v", err)
	}

	relPath := filepath.Join(GenerateReportFolderPath(timestamp), "index.html")
	data, err := client.GetFile(ctx, relPath)
	if err != nil {
		t.Fatalf("GetFile failed: %v", err)
	}
	if string(data) != string(content) {
		t.Errorf("Expected file content '%s', got '%s'", content, data)
	}

	exists, err := client.FileExists(ctx, relPath)
	if err != nil {
		t.Fatalf("FileExists failed: %v", err)
	}
	if !exists {
		t.Error("Expected stored file to exist")
	}

	exists, err = client.FileExists(ctx, "no/such/file.html")
	if err != nil {
		t.Fatalf("FileExists failed for missing file: %v", err)
	}
	if exists {
		t.Error("Expected missing file to not exist")
	}
}

func TestLocalStorageClient_ListReports(t *testing.T) {
	client, err := NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	timestamps := []time.Time{
		time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 30, 8, 0, 0, 0, time.UTC),
	}
	for _, ts := range timestamps {
		if err := client.StoreFile(ctx, []byte("report"), "index.html", ts); err != nil {
			t.Fatalf("StoreFile failed: %v", err)
		}
		// Extra files must not show up in the listing
		if err := client.StoreFile(ctx, []byte("chart"), "threat_timeline.png", ts); err != nil {
			t.Fatalf("StoreFile failed: %v", err)
		}
	}

	reports, err := client.ListReports(ctx, 0)
	if err != nil {
		t.Fatalf("ListReports failed: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("Expected 3 reports, got %d: %v", len(reports), reports)
	}

	// Newest first
	newest := filepath.Join(GenerateReportFolderPath(timestamps[2]), "index.html")
	if reports[0] != newest {
		t.Errorf("Expected newest report '%s' first, got '%s'", newest, reports[0])
	}

	limited, err := client.ListReports(ctx, 2)
	if err != nil {
		t.Fatalf("ListReports with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 reports with limit, got %d", len(limited))
	}

	latest, err := client.GetLatestReport(ctx)
	if err != nil {
		t.Fatalf("GetLatestReport failed: %v", err)
	}
	if latest != newest {
		t.Errorf("Expected latest report '%s', got '%s'", newest, latest)
	}
}

func TestLocalStorageClient_GetLatestReportEmpty(t *testing.T) {
	client, err := NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	defer client.Close()

	if _, err := client.GetLatestReport(context.Background()); err == nil {
		t.Error("Expected error when no reports exist")
	}
}
