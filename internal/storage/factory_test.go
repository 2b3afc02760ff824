package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sev7enITA/DDPFramework/internal/config"
)

func TestNewStorageClientLocal(t *testing.T) {
	cfg := &config.Config{
		OutputDir: filepath.Join(t.TempDir(), "artifacts"),
	}

	client, err := NewStorageClient(context.Background(), DeploymentLocal, cfg)
	if err != nil {
		t.Fatalf("Failed to create local storage client: %v", err)
	}
	defer client.Close()

	if _, ok := client.(*LocalStorageClient); !ok {
		t.Errorf("Expected *LocalStorageClient, got %T", client)
	}
}

func TestNewStorageClientLocalDefaultDir(t *testing.T) {
	// An empty OutputDir falls back to "artifacts"; run inside a temp dir so
	// the fallback directory does not pollute the working tree.
	originalDir, _ := os.Getwd()
	defer os.Chdir(originalDir)
	os.Chdir(t.TempDir())

	cfg := &config.Config{}
	client, err := NewStorageClient(context.Background(), DeploymentLocal, cfg)
	if err != nil {
		t.Fatalf("Failed to create local storage client with default dir: %v", err)
	}
	defer client.Close()

	local, ok := client.(*LocalStorageClient)
	if !ok {
		t.Fatalf("Expected *LocalStorageClient, got %T", client)
	}
	if local.BaseDir() != "artifacts" {
		t.Errorf("Expected default base dir 'artifacts', got '%s'", local.BaseDir())
	}
}

func TestNewStorageClientGCSWithoutBucket(t *testing.T) {
	cfg := &config.Config{}

	if _, err := NewStorageClient(context.Background(), DeploymentGCS, cfg); err == nil {
		t.Error("Expected error when GCS_BUCKET is not set")
	}
}

func TestNewStorageClientUnsupportedMode(t *testing.T) {
	cfg := &config.Config{}

	if _, err := NewStorageClient(context.Background(), DeploymentMode("s3"), cfg); err == nil {
		t.Error("Expected error for unsupported deployment mode")
	}
}
