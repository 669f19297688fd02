package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/bombgrid/internal/registry"
	"github.com/vovakirdan/bombgrid/internal/runner"
)

type handlers struct {
	svc     *runner.Service
	runs    RunLister
	logger  *log.Logger
	maxBody int64
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok\n")
}

// detonate handles POST /detonate?x=&y=&format= with the grid as body.
func (h *handlers) detonate(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set("X-Request-ID", requestID)

	q := r.URL.Query()
	x, err := runner.ParseCoord(q.Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("x: %w", err))
		return
	}
	y, err := runner.ParseCoord(q.Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("y: %w", err))
		return
	}
	format := q.Get("format")
	if format == "" {
		format = runner.DefaultFormat
	}
	if !registry.Exists(format) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown format %q", format))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("grid larger than %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Errorf("cannot read body: %w", err))
		return
	}

	out, err := h.svc.DetonateBytes("http", format, body, x, y)
	if err != nil {
		h.logger.Debug("detonate rejected", "request", requestID, "error", err)
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	if out.RunID != "" {
		w.Header().Set("X-Run-ID", out.RunID)
	}
	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Output)
}

// runView is the JSON form of a journal entry.
type runView struct {
	ID               string    `json:"id"`
	Input            string    `json:"input"`
	X                int       `json:"x"`
	Y                int       `json:"y"`
	Size             int       `json:"size"`
	Outcome          string    `json:"outcome"`
	Message          string    `json:"message,omitempty"`
	BombsDetonated   int       `json:"bombs_detonated"`
	EnemiesHit       int       `json:"enemies_hit"`
	EnemiesDestroyed int       `json:"enemies_destroyed"`
	CreatedAt        time.Time `json:"created_at"`
}

func (h *handlers) listRuns(w http.ResponseWriter, r *http.Request) {
	if h.runs == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "journal disabled"})
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("invalid limit %q", s)})
			return
		}
		limit = n
	}

	runs, err := h.runs.RecentRuns(limit)
	if err != nil {
		h.logger.Error("list runs failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "cannot read journal"})
		return
	}

	views := make([]runView, 0, len(runs))
	for _, run := range runs {
		views = append(views, runView{
			ID:               run.ID,
			Input:            run.Input,
			X:                run.X,
			Y:                run.Y,
			Size:             run.Size,
			Outcome:          run.Outcome,
			Message:          run.Message,
			BombsDetonated:   run.Summary.BombsDetonated,
			EnemiesHit:       run.Summary.EnemiesHit,
			EnemiesDestroyed: run.Summary.EnemiesDestroyed,
			CreatedAt:        run.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, views)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, "ERROR: "+err.Error()+"\n")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func contentType(format string) string {
	if format == "yaml" {
		return "application/yaml"
	}
	return "text/plain; charset=utf-8"
}
