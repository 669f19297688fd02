// Package runner drives a single detonation end to end: it loads a grid in
// any registered format, detonates it and writes either the resulting grid
// or an error line next to the input's name in the output directory.
package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bombgrid/internal/maze"
	"github.com/vovakirdan/bombgrid/internal/registry"
	"github.com/vovakirdan/bombgrid/internal/storage"
)

// DefaultFormat is used when neither a format name nor a known file
// extension selects one.
const DefaultFormat = "text"

// ErrInvalidCoordinate is returned for coordinates that are not integers.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Journal records finished runs. *storage.Store satisfies it.
type Journal interface {
	SaveRun(run storage.Run) (string, error)
}

// Service runs detonations. It is safe for concurrent use as long as the
// journal is.
type Service struct {
	logger  *log.Logger
	journal Journal
}

// New creates a Service. journal may be nil to disable run recording.
func New(logger *log.Logger, journal Journal) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{logger: logger, journal: journal}
}

// Request describes one file-based detonation.
type Request struct {
	InputPath string
	OutputDir string
	X, Y      int
	Format    string // Optional; chosen from the input extension when empty
}

// OutputPath returns the file the request writes to: the input's base name
// inside the output directory.
func (r Request) OutputPath() string {
	return filepath.Join(r.OutputDir, filepath.Base(r.InputPath))
}

// Outcome is the result of a successful detonation.
type Outcome struct {
	RunID   string
	Before  *maze.Grid
	After   *maze.Grid
	Output  []byte
	Summary maze.Summary
}

// ParseCoord parses one command line coordinate.
func ParseCoord(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidCoordinate, s)
	}
	return n, nil
}

// Run loads the input file, detonates it and writes the output file.
// On failure the output file holds a single "ERROR: ..." line instead and
// the failure is returned. The returned error also reports when neither
// file could be written.
func (s *Service) Run(req Request) (*Outcome, error) {
	logger := s.logger.With("input", req.InputPath, "x", req.X, "y", req.Y)

	f, before, err := load(req)
	var out *Outcome
	if err == nil {
		out, err = detonate(f, before, req.X, req.Y)
	}
	if err != nil {
		logger.Error("detonation failed", "error", err)
		s.record(logger, storage.Run{
			Input:   filepath.Base(req.InputPath),
			X:       req.X,
			Y:       req.Y,
			Size:    before.Size(),
			Outcome: storage.OutcomeError,
			Message: err.Error(),
		})
		if werr := WriteError(req.OutputPath(), err); werr != nil {
			return nil, errors.Join(err, werr)
		}
		return nil, err
	}

	if err := os.WriteFile(req.OutputPath(), out.Output, 0o644); err != nil {
		err = fmt.Errorf("cannot write output: %w", err)
		logger.Error("write failed", "path", req.OutputPath(), "error", err)
		return nil, err
	}

	out.RunID = s.record(logger, storage.Run{
		Input:   filepath.Base(req.InputPath),
		X:       req.X,
		Y:       req.Y,
		Size:    out.After.Size(),
		Outcome: storage.OutcomeOK,
		Summary: out.Summary,
	})
	logger.Info("detonated",
		"output", req.OutputPath(),
		"bombs", out.Summary.BombsDetonated,
		"destroyed", out.Summary.EnemiesDestroyed,
	)
	return out, nil
}

// Fail writes the error file for a request that could not even be started,
// such as one with unparsable coordinates, and records it.
func (s *Service) Fail(req Request, cause error) error {
	s.logger.Error("detonation failed", "input", req.InputPath, "error", cause)
	s.record(s.logger, storage.Run{
		Input:   filepath.Base(req.InputPath),
		X:       req.X,
		Y:       req.Y,
		Outcome: storage.OutcomeError,
		Message: cause.Error(),
	})
	if err := WriteError(req.OutputPath(), cause); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

// DetonateBytes decodes data with the named format, detonates it and
// encodes the result with the same format. The run is recorded under the
// given input label.
func (s *Service) DetonateBytes(label, format string, data []byte, x, y int) (*Outcome, error) {
	logger := s.logger.With("input", label, "format", format, "x", x, "y", y)

	f, err := registry.Resolve(format, "", DefaultFormat)
	if err != nil {
		return nil, err
	}

	before, err := f.Decode(data)
	var out *Outcome
	if err == nil {
		out, err = detonate(f, before, x, y)
	}
	if err != nil {
		logger.Warn("detonation failed", "error", err)
		s.record(logger, storage.Run{
			Input:   label,
			X:       x,
			Y:       y,
			Size:    before.Size(),
			Outcome: storage.OutcomeError,
			Message: err.Error(),
		})
		return nil, err
	}

	out.RunID = s.record(logger, storage.Run{
		Input:   label,
		X:       x,
		Y:       y,
		Size:    out.After.Size(),
		Outcome: storage.OutcomeOK,
		Summary: out.Summary,
	})
	logger.Debug("detonated", "bombs", out.Summary.BombsDetonated)
	return out, nil
}

// WriteError writes "ERROR: <cause>" as the only line of path.
func WriteError(path string, cause error) error {
	line := "ERROR: " + cause.Error() + "\n"
	if err := os.WriteFile(path, []byte(line), 0o644); err != nil {
		return fmt.Errorf("cannot write error file: %w", err)
	}
	return nil
}

func load(req Request) (registry.Format, *maze.Grid, error) {
	f, err := registry.Resolve(req.Format, req.InputPath, DefaultFormat)
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(req.InputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read input: %w", err)
	}
	g, err := f.Decode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load grid: %w", err)
	}
	return f, g, nil
}

// detonate works on a clone so before stays intact for the summary.
func detonate(f registry.Format, before *maze.Grid, x, y int) (*Outcome, error) {
	after := before.Clone()
	if err := maze.Detonate(after, x, y); err != nil {
		return nil, err
	}
	data, err := f.Encode(after)
	if err != nil {
		return nil, fmt.Errorf("cannot encode grid: %w", err)
	}
	return &Outcome{
		Before:  before,
		After:   after,
		Output:  data,
		Summary: maze.Summarize(before, after),
	}, nil
}

// record saves the run when a journal is configured and returns its ID.
// Journal failures are logged and never fail the detonation.
func (s *Service) record(logger *log.Logger, run storage.Run) string {
	if s.journal == nil {
		return ""
	}
	id, err := s.journal.SaveRun(run)
	if err != nil {
		logger.Warn("journal write failed", "error", err)
		return ""
	}
	return id
}
