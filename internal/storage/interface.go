package storage

import (
	"context"

	"github.com/mcoot/sugoroku/internal/model"
)

// Storage defines the interface for the finished-game archive
type Storage interface {
	// SaveResult stores or replaces a finished game
	SaveResult(ctx context.Context, summary *model.GameSummary) error

	// GetResult returns model.ErrResultNotFound for unknown ids
	GetResult(ctx context.Context, id model.GameID) (*model.GameSummary, error)

	// ListResults returns finished games newest first. limit <= 0 returns all.
	ListResults(ctx context.Context, limit int) ([]*model.GameSummary, error)

	// DeleteResult removes a finished game; unknown ids are not an error
	DeleteResult(ctx context.Context, id model.GameID) error
}
