package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/sugoroku/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
	base    time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.ResultTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
	s.base = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) summary(id model.GameID, completedAfter time.Duration) *model.GameSummary {
	return &model.GameSummary{
		ID:    id,
		Title: "Test Board",
		Rankings: []model.Ranking{
			{Player: "Alice", Rank: 1},
			{Player: "Bob", Rank: 2},
		},
		Turns:       7,
		StartedAt:   s.base,
		CompletedAt: s.base.Add(completedAfter),
	}
}

func (s *StorageSuite) TestNewConnects() {
	cfg := DefaultConfig()
	cfg.URL = "redis://" + s.mini.Addr()

	store, err := New(cfg)
	s.Require().NoError(err)
	s.NoError(store.Close())
}

func (s *StorageSuite) TestNewFailsWhenServerUnreachable() {
	mini := miniredis.RunT(s.T())
	addr := mini.Addr()
	mini.Close()

	cfg := DefaultConfig()
	cfg.URL = "redis://" + addr

	store, err := New(cfg)
	s.Error(err)
	s.Nil(store)
}

func (s *StorageSuite) TestSaveAndGetResult() {
	summary := s.summary("game-1", time.Minute)

	err := s.storage.SaveResult(s.ctx, summary)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetResult(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(summary.ID, retrieved.ID)
	s.Equal(summary.Rankings, retrieved.Rankings)
	s.True(summary.CompletedAt.Equal(retrieved.CompletedAt))
}

func (s *StorageSuite) TestGetResultNotFound() {
	_, err := s.storage.GetResult(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrResultNotFound)
}

func (s *StorageSuite) TestResultTTL() {
	_ = s.storage.SaveResult(s.ctx, s.summary("game-1", time.Minute))

	ttl := s.mini.TTL(resultKey("game-1"))
	s.True(ttl > 0, "Result should have TTL")
}

func (s *StorageSuite) TestResultWithoutTTL() {
	s.storage.cfg.ResultTTL = 0
	_ = s.storage.SaveResult(s.ctx, s.summary("game-1", time.Minute))

	s.Equal(time.Duration(0), s.mini.TTL(resultKey("game-1")))
}

func (s *StorageSuite) TestListResultsNewestFirst() {
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.summary("old", time.Minute)))
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.summary("new", time.Hour)))
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.summary("mid", 10*time.Minute)))

	results, err := s.storage.ListResults(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(results, 3)
	s.Equal(model.GameID("new"), results[0].ID)
	s.Equal(model.GameID("mid"), results[1].ID)
	s.Equal(model.GameID("old"), results[2].ID)
}

func (s *StorageSuite) TestListResultsLimit() {
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.summary("old", time.Minute)))
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.summary("new", time.Hour)))

	results, err := s.storage.ListResults(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal(model.GameID("new"), results[0].ID)
}

func (s *StorageSuite) TestListResultsEmpty() {
	results, err := s.storage.ListResults(s.ctx, 0)
	s.Require().NoError(err)
	s.Empty(results)
}

func (s *StorageSuite) TestListResultsDropsExpired() {
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.summary("kept", time.Minute)))
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.summary("expired", time.Hour)))

	s.mini.Del(resultKey("expired"))

	results, err := s.storage.ListResults(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal(model.GameID("kept"), results[0].ID)

	members, err := s.mini.ZMembers(resultsByCompletionKey())
	s.Require().NoError(err)
	s.Equal([]string{"kept"}, members)
}

func (s *StorageSuite) TestDeleteResult() {
	s.Require().NoError(s.storage.SaveResult(s.ctx, s.summary("game-1", time.Minute)))

	err := s.storage.DeleteResult(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetResult(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrResultNotFound)

	results, err := s.storage.ListResults(s.ctx, 0)
	s.Require().NoError(err)
	s.Empty(results)
}
