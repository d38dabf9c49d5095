package memory

import (
	"context"
	"sync"

	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// It is safe for concurrent sessions.
type Storage struct {
	mu sync.RWMutex

	results map[string]model.GameSummary
	order   []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		results: make(map[string]model.GameSummary),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Result operations

// SaveResult stores a summary, replacing any earlier one for the same session
func (s *Storage) SaveResult(ctx context.Context, result model.GameSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.results[result.SessionID]; !ok {
		s.order = append(s.order, result.SessionID)
	}
	s.results[result.SessionID] = result
	return nil
}

func (s *Storage) GetResult(ctx context.Context, sessionID string) (model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[sessionID]
	if !ok {
		return model.GameSummary{}, model.ErrResultNotFound
	}
	return result, nil
}

func (s *Storage) ListResults(ctx context.Context) ([]model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]model.GameSummary, 0, len(s.order))
	for _, id := range s.order {
		results = append(results, s.results[id])
	}
	return results, nil
}
