package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bombgrid/internal/server"
)

var flagHTTPAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP detonation server",
	Long: `Start an HTTP server that detonates grids sent in request bodies.

Endpoints:
  POST /detonate?x=<x>&y=<y>[&format=text|yaml]  - Body is the grid; returns the resulting grid
  GET  /runs[?limit=<n>]                          - Recent journaled runs as JSON
  GET  /healthz                                   - Liveness probe

Failed detonations answer 422 and bad parameters 400, both with an
"ERROR: <description>" body.

Examples:
  bombgrid serve                     # Listen on the configured address (default :8080)
  bombgrid serve --http :9000        # Listen on port 9000
  bombgrid serve --journal           # Record every request in the journal

Try it with:
  curl --data-binary @maze.txt 'localhost:8080/detonate?x=0&y=0'`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP server address (host:port)")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagHTTPAddr != "" {
		cfg.Server.Address = flagHTTPAddr
	}

	svc, store, cleanup := newService()
	defer cleanup()

	var runs server.RunLister
	if store != nil {
		runs = store
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      server.NewServer(svc, runs, logger, server.Options{MaxBodyBytes: cfg.Server.MaxBodyBytes}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("listening", "address", cfg.Server.Address, "journal", store != nil)
	fmt.Println("Press Ctrl+C to stop")

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
