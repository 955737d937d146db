package results

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/mcoot/sugoroku/internal/dependencies/clock"
	"github.com/mcoot/sugoroku/internal/model"
	"github.com/mcoot/sugoroku/internal/storage"
)

// Standing is one player's record across every archived game
type Standing struct {
	Player      string
	Played      int
	Wins        int
	AverageRank float64
}

// Service archives finished games and derives the leaderboard
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new results service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger.With(slog.String("component", "results")),
	}
}

// Record stores a finished game, filling in a missing id or completion time
func (s *Service) Record(ctx context.Context, summary *model.GameSummary) error {
	if summary == nil {
		return fmt.Errorf("recording result: nil summary")
	}
	if summary.ID == "" {
		summary.ID = model.GameID(uuid.NewString())
	}
	if summary.CompletedAt.IsZero() {
		summary.CompletedAt = s.clock.Now()
	}

	if err := s.storage.SaveResult(ctx, summary); err != nil {
		return err
	}

	s.logger.Info("result recorded",
		slog.String("game_id", string(summary.ID)),
		slog.String("winner", summary.Winner()),
		slog.Int("player_count", len(summary.Rankings)),
	)
	return nil
}

// Get returns one archived game
func (s *Service) Get(ctx context.Context, id model.GameID) (*model.GameSummary, error) {
	return s.storage.GetResult(ctx, id)
}

// List returns archived games newest first. limit <= 0 returns all.
func (s *Service) List(ctx context.Context, limit int) ([]*model.GameSummary, error) {
	return s.storage.ListResults(ctx, limit)
}

// Leaderboard ranks every player who finished an archived game: most wins
// first, then best average rank, then name
func (s *Service) Leaderboard(ctx context.Context) ([]Standing, error) {
	summaries, err := s.storage.ListResults(ctx, 0)
	if err != nil {
		return nil, err
	}

	type tally struct {
		played, wins, rankSum int
	}
	tallies := make(map[string]*tally)
	for _, summary := range summaries {
		for _, ranking := range summary.Rankings {
			t, ok := tallies[ranking.Player]
			if !ok {
				t = &tally{}
				tallies[ranking.Player] = t
			}
			t.played++
			t.rankSum += ranking.Rank
			if ranking.Rank == 1 {
				t.wins++
			}
		}
	}

	standings := make([]Standing, 0, len(tallies))
	for player, t := range tallies {
		standings = append(standings, Standing{
			Player:      player,
			Played:      t.played,
			Wins:        t.wins,
			AverageRank: float64(t.rankSum) / float64(t.played),
		})
	}
	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.AverageRank != b.AverageRank {
			return a.AverageRank < b.AverageRank
		}
		return a.Player < b.Player
	})
	return standings, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Record(ctx context.Context, summary *model.GameSummary) error
	Get(ctx context.Context, id model.GameID) (*model.GameSummary, error)
	List(ctx context.Context, limit int) ([]*model.GameSummary, error)
	Leaderboard(ctx context.Context) ([]Standing, error)
}

var _ ServiceInterface = (*Service)(nil)
