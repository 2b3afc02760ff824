package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sev7enITA/DDPFramework/internal/config"
	"github.com/sev7enITA/DDPFramework/internal/logger"
	"github.com/sev7enITA/DDPFramework/internal/reports"
	"github.com/sev7enITA/DDPFramework/internal/storage"
)

// Server serves published reports and can trigger new generations
type Server struct {
	Config  *config.Config
	Storage storage.StorageClient
	Service *reports.ReportService

	generateMutex sync.Mutex
	httpServer    *http.Server
}

// NewServer creates a new preview server instance
func NewServer(cfg *config.Config, storageClient storage.StorageClient) *Server {
	return &Server{
		Config:  cfg,
		Storage: storageClient,
		Service: reports.NewReportService(cfg, storageClient),
	}
}

// SetupRoutes configures HTTP routes
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HandleRoot)
	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/generate", s.HandleGenerate)
	mux.HandleFunc("/reports/", s.HandleFileProxy)
	mux.HandleFunc("/api/reports", s.HandleListReports)
	return mux
}

// Start runs the HTTP server until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              ":" + s.Config.PreviewPort,
		Handler:           s.SetupRoutes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Preview server listening", map[string]interface{}{"port": s.Config.PreviewPort})
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("preview server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// Close releases server resources
func (s *Server) Close() error {
	return s.Storage.Close()
}
