package batch

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/storage"
)

// GameFunc plays game number index to completion
type GameFunc func(ctx context.Context, index int) (model.GameSummary, error)

// Stats aggregates a set of results
type Stats struct {
	Games       int     `json:"games"`
	TotalLines  int     `json:"total_lines"`
	BestLines   int     `json:"best_lines"`
	WorstLines  int     `json:"worst_lines"`
	MeanLines   float64 `json:"mean_lines"`
	TotalPieces int     `json:"total_pieces"`
}

// Runner plays independent games concurrently and records each result
type Runner struct {
	store    storage.Storage
	parallel int
	logger   *slog.Logger
}

// NewRunner creates a Runner playing at most parallel games at once
func NewRunner(store storage.Storage, parallel int, logger *slog.Logger) *Runner {
	if parallel < 1 {
		parallel = 1
	}
	return &Runner{
		store:    store,
		parallel: parallel,
		logger:   logger.With(slog.String("component", "batch")),
	}
}

// Run plays games and returns the stored results in completion order.
// The first failing game cancels the rest.
func (r *Runner) Run(ctx context.Context, games int, play GameFunc) ([]model.GameSummary, error) {
	if games < 1 {
		return nil, fmt.Errorf("%w: games must be at least 1", model.ErrInvalidConfig)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)
	for i := 0; i < games; i++ {
		g.Go(func() error {
			summary, err := play(ctx, i)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			r.logger.Debug("game finished",
				slog.Int("index", i),
				slog.String("session_id", summary.SessionID),
				slog.Int("lines", summary.LinesCleared))
			return r.store.SaveResult(ctx, summary)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results, err := r.store.ListResults(ctx)
	if err != nil {
		return nil, err
	}
	r.logger.Info("batch finished", slog.Int("games", len(results)))
	return results, nil
}

// Summarize computes aggregate line and piece counts
func Summarize(results []model.GameSummary) Stats {
	stats := Stats{Games: len(results)}
	for i, res := range results {
		stats.TotalLines += res.LinesCleared
		stats.TotalPieces += res.Pieces
		if i == 0 || res.LinesCleared > stats.BestLines {
			stats.BestLines = res.LinesCleared
		}
		if i == 0 || res.LinesCleared < stats.WorstLines {
			stats.WorstLines = res.LinesCleared
		}
	}
	if stats.Games > 0 {
		stats.MeanLines = float64(stats.TotalLines) / float64(stats.Games)
	}
	return stats
}
