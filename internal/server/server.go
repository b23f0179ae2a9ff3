// Package server provides the HTTP API for the job aggregator.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/job-aggregator/internal/config"
	"github.com/jonathan/job-aggregator/internal/types"
)

// Searcher aggregates job listings for a skill.
type Searcher interface {
	Search(ctx context.Context, skill string) ([]types.JobListing, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	searcher   Searcher
	staticDir  string
}

// New creates a new server instance
func New(cfg config.Config, searcher Searcher) *Server {
	s := &Server{
		searcher:  searcher,
		staticDir: cfg.StaticDir,
	}

	// Every provider call is bounded by ProviderTimeout; leave headroom
	// for the four of them when running sequentially.
	writeTimeout := 4*cfg.ProviderTimeout.Std() + 15*time.Second

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the routed handler wrapped in middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/jobs", s.handleJobs)
	mux.HandleFunc("GET /api/jobs/{$}", s.handleJobs)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Anything else is a static asset
	mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))

	return s.withRequestID(s.withLogging(s.withRecover(s.withCORS(mux))))
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start begins listening for requests and blocks until SIGINT/SIGTERM.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server running at http://localhost%s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
