package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/sugoroku/internal/locale"
	"github.com/mcoot/sugoroku/internal/model"
	"github.com/mcoot/sugoroku/internal/services/game"
	redisstorage "github.com/mcoot/sugoroku/internal/storage/redis"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) newGame(players ...string) *game.Controller {
	world, err := s.app.NewTestWorld()
	s.Require().NoError(err)
	roster, err := model.NewRoster(players)
	s.Require().NoError(err)

	controller, err := s.app.NewGame(world, roster, locale.NewPrinter(locale.English))
	s.Require().NoError(err)
	return controller
}

// Test: Complete game flow from the first roll to the archived result
func (s *IntegrationSuite) TestCompleteGameFlow() {
	controller := s.newGame("Alice", "Bob")

	// Step 1: Alice rolls 3, lands on Tailwind and is pushed onto the goal
	s.app.MockRandom.QueueIntn(2)
	dice, events, err := controller.RollRandom(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, dice)
	s.Equal(model.EventRolled, events[0].Type)
	s.Equal(model.EventArrived, events[1].Type)
	s.Equal(1, events[1].Rank)
	s.Equal(model.PhaseResult, controller.Phase())
	s.Equal("Bob", controller.CurrentPlayer())
	s.Require().NoError(controller.Acknowledge())

	// Step 2: a die outside 1-3 is rejected and Bob keeps the turn
	_, err = controller.Roll(s.ctx, 4)
	s.ErrorIs(err, model.ErrDiceOutOfRange)
	s.Equal("Bob", controller.CurrentPlayer())
	s.Equal(model.PhaseRoll, controller.Phase())

	// Step 3: Bob rolls 2 into the Bog and the rest of the lap is skipped
	s.app.MockRandom.QueueIntn(1)
	dice, _, err = controller.RollRandom(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, dice)
	s.Equal(model.PhaseSkip, controller.Phase())
	s.Equal(map[string]uint8{}, controller.Resting())

	_, err = controller.Roll(s.ctx, 1)
	s.ErrorIs(err, model.ErrWrongPhase)

	_, err = controller.Skip(s.ctx)
	s.Require().NoError(err)
	s.Equal("Bob", controller.CurrentPlayer())

	// Step 4: Bob rolls 3 and reaches the goal, finishing the game
	s.app.MockRandom.QueueIntn(2)
	_, _, err = controller.RollRandom(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.PhaseFinished, controller.Phase())
	s.Equal([]int{3, 3, 3}, s.app.MockRandom.Bounds)

	summary := controller.Summary()
	s.Equal([]model.Ranking{{Player: "Alice", Rank: 1}, {Player: "Bob", Rank: 2}}, summary.Rankings)

	list, err := s.app.ResultsService.List(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(controller.ID(), list[0].ID)
}

func (s *IntegrationSuite) TestRestingLapAndArchive() {
	controller := s.newGame("Alice", "Bob")
	started := s.app.MockClock.Now()

	_, err := controller.Roll(s.ctx, 3)
	s.Require().NoError(err)
	s.Require().NoError(controller.Acknowledge())

	// Bob lands in the Bog; nobody else can move so the lap is skipped
	events, err := controller.Roll(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal(model.PhaseSkip, controller.Phase())
	s.Equal(model.EventSkipped, events[len(events)-1].Type)
	s.Equal("Bob", events[len(events)-1].Player)

	_, err = controller.Skip(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.PhaseRoll, controller.Phase())
	s.Equal("Bob", controller.CurrentPlayer())

	s.app.MockClock.Advance(10 * time.Minute)
	events, err = controller.Roll(s.ctx, 3)
	s.Require().NoError(err)
	s.Equal(model.PhaseFinished, controller.Phase())
	s.Equal(model.EventGameFinished, events[len(events)-1].Type)

	stored, err := s.app.ResultsService.Get(s.ctx, controller.ID())
	s.Require().NoError(err)
	s.Equal("Alice", stored.Winner())
	s.Equal("Test Trip", stored.Title)
	s.Equal(3, stored.Turns)
	s.Equal(started, stored.StartedAt)
	s.Equal(started.Add(10*time.Minute), stored.CompletedAt)

	standings, err := s.app.ResultsService.Leaderboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(standings, 2)
	s.Equal("Alice", standings[0].Player)
	s.Equal(1, standings[0].Wins)
	s.Equal("Bob", standings[1].Player)
	s.Equal(2.0, standings[1].AverageRank)
}

func (s *IntegrationSuite) TestNewGameRequiresPlayers() {
	world, err := s.app.NewTestWorld()
	s.Require().NoError(err)

	_, err = s.app.NewGame(world, nil, locale.NewPrinter(locale.English))
	s.ErrorIs(err, model.ErrNoPlayer)
}

func (s *IntegrationSuite) TestCloseMemoryStorage() {
	s.NoError(s.app.Close())
}

// Factory construction

type FactorySuite struct {
	suite.Suite
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactorySuite))
}

func (s *FactorySuite) TestDefaultsToMemory() {
	app, err := New(Config{})
	s.Require().NoError(err)
	s.NotNil(app.Storage)
	s.NotNil(app.ResultsService)
	s.NotNil(app.Resolver)
	s.NotNil(app.Logger)
}

func (s *FactorySuite) TestRedisRequiresConfig() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

func (s *FactorySuite) TestRedisBadURL() {
	cfg := redisstorage.DefaultConfig()
	cfg.URL = "not a url"
	_, err := New(Config{StorageType: StorageTypeRedis, RedisConfig: &cfg})
	s.Error(err)
}

func (s *FactorySuite) TestUnknownStorageType() {
	_, err := New(Config{StorageType: "sqlite"})
	s.Error(err)
}
