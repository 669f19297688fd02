// Package server exposes detonation over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/bombgrid/internal/runner"
	"github.com/vovakirdan/bombgrid/internal/storage"
)

// RunLister reads recent journal entries. *storage.Store satisfies it.
type RunLister interface {
	RecentRuns(limit int) ([]storage.Run, error)
}

// Options tune request handling.
type Options struct {
	MaxBodyBytes int64 // Largest accepted grid body
}

// NewServer wires routes and returns an http.Handler.
// runs may be nil when the journal is disabled.
func NewServer(svc *runner.Service, runs RunLister, logger *log.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}

	h := &handlers{svc: svc, runs: runs, logger: logger, maxBody: opts.MaxBodyBytes}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Get("/healthz", h.health)
	r.Post("/detonate", h.detonate)
	r.Get("/runs", h.listRuns)
	return r
}

// requestLogger logs one line per request.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}
