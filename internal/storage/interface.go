package storage

import (
	"context"

	"github.com/mcoot/blockfall/internal/model"
)

// Storage keeps the summaries of finished sessions
type Storage interface {
	SaveResult(ctx context.Context, result model.GameSummary) error
	GetResult(ctx context.Context, sessionID string) (model.GameSummary, error)
	// ListResults returns every result in the order it was saved
	ListResults(ctx context.Context) ([]model.GameSummary, error)
}
