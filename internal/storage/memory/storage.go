package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/sugoroku/internal/model"
	"github.com/mcoot/sugoroku/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	results map[model.GameID]*model.GameSummary
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		results: make(map[model.GameID]*model.GameSummary),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveResult(ctx context.Context, summary *model.GameSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[summary.ID] = cloneSummary(summary)
	return nil
}

func (s *Storage) GetResult(ctx context.Context, id model.GameID) (*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary, ok := s.results[id]
	if !ok {
		return nil, model.ErrResultNotFound
	}
	return cloneSummary(summary), nil
}

func (s *Storage) ListResults(ctx context.Context, limit int) ([]*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*model.GameSummary, 0, len(s.results))
	for _, summary := range s.results {
		results = append(results, cloneSummary(summary))
	}
	sort.Slice(results, func(i, j int) bool {
		if !results[i].CompletedAt.Equal(results[j].CompletedAt) {
			return results[i].CompletedAt.After(results[j].CompletedAt)
		}
		return results[i].ID < results[j].ID
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (s *Storage) DeleteResult(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.results, id)
	return nil
}

// cloneSummary copies a summary so callers cannot mutate stored state
func cloneSummary(summary *model.GameSummary) *model.GameSummary {
	clone := *summary
	clone.Rankings = make([]model.Ranking, len(summary.Rankings))
	copy(clone.Rankings, summary.Rankings)
	return &clone
}
