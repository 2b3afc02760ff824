package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the report generator
type Config struct {
	// Output configuration
	OutputDir      string `env:"OUTPUT_DIR,default=./artifacts"`
	DeploymentMode string `env:"DEPLOYMENT_MODE,default=local"`

	// GCP configuration (optional for local runs)
	GCPProjectID string `env:"GCP_PROJECT_ID"`
	GCSBucket    string `env:"GCS_BUCKET"`

	// Chart rendering configuration
	ChartWidth  int `env:"CHART_WIDTH,default=1600"`
	ChartHeight int `env:"CHART_HEIGHT,default=1200"`

	// Preview server configuration
	PreviewPort string `env:"PREVIEW_PORT,default=8981"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
