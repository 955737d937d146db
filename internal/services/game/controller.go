package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/message"

	"github.com/mcoot/sugoroku/internal/dependencies/clock"
	"github.com/mcoot/sugoroku/internal/dependencies/random"
	"github.com/mcoot/sugoroku/internal/model"
	"github.com/mcoot/sugoroku/internal/services/board"
	"github.com/mcoot/sugoroku/internal/services/turn"
)

// ResultRecorder archives finished games
type ResultRecorder interface {
	Record(ctx context.Context, summary *model.GameSummary) error
}

// Controller drives one game: it holds the roster, the board and whose turn
// it is, and moves through the roll, result and skip phases
type Controller struct {
	world    *board.World
	roster   *model.Roster
	resolver turn.ResolverInterface
	recorder ResultRecorder
	printer  *message.Printer
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger

	id              model.GameID
	current         string
	phase           model.GamePhase
	turn            int
	lastDescription string
	events          []model.Event
	startedAt       time.Time
	summary         *model.GameSummary
}

// NewController starts a game with the first roster player to move.
// recorder may be nil when finished games should not be archived.
func NewController(
	world *board.World,
	roster *model.Roster,
	resolver turn.ResolverInterface,
	recorder ResultRecorder,
	printer *message.Printer,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) (*Controller, error) {
	if roster == nil || roster.Len() == 0 {
		return nil, model.ErrNoPlayer
	}

	id := model.GameID(uuid.NewString())
	c := &Controller{
		world:           world,
		roster:          roster,
		resolver:        resolver,
		recorder:        recorder,
		printer:         printer,
		clock:           clock,
		random:          random,
		logger:          logger.With(slog.String("game_id", string(id))),
		id:              id,
		current:         roster.First(),
		phase:           model.PhaseRoll,
		lastDescription: world.StartDescription(printer),
		startedAt:       clock.Now(),
	}

	c.logger.Info("game started",
		slog.String("title", world.Title()),
		slog.Int("player_count", roster.Len()),
		slog.Int("area_count", world.Len()),
	)

	return c, nil
}

// ID returns the game's identifier
func (c *Controller) ID() model.GameID {
	return c.id
}

// World returns the board being played
func (c *Controller) World() *board.World {
	return c.world
}

// Roster returns the players of this game
func (c *Controller) Roster() *model.Roster {
	return c.roster
}

// Printer returns the printer used for board descriptions
func (c *Controller) Printer() *message.Printer {
	return c.printer
}

// CurrentPlayer returns the player whose turn it is
func (c *Controller) CurrentPlayer() string {
	return c.current
}

// Phase returns what the game is waiting for
func (c *Controller) Phase() model.GamePhase {
	return c.phase
}

// Turn returns the number of resolved rolls
func (c *Controller) Turn() int {
	return c.turn
}

// LastDescription returns the description of the area reached by the last roll
func (c *Controller) LastDescription() string {
	return c.lastDescription
}

// Events returns every event recorded so far
func (c *Controller) Events() []model.Event {
	result := make([]model.Event, len(c.events))
	copy(result, c.events)
	return result
}

// Roll resolves a die value for the current player and passes the turn on.
// An out-of-range die returns an error matching model.ErrDiceOutOfRange and
// leaves the game untouched so the same player can try again.
func (c *Controller) Roll(ctx context.Context, dice int) ([]model.Event, error) {
	if err := c.requirePhase(model.PhaseRoll); err != nil {
		return nil, err
	}

	player := c.current
	before := c.arrivalSnapshot()

	description, err := c.world.ResolveRoll(c.printer, dice, player, c.roster.Order(), c.roster.Statuses())
	if err != nil {
		if errors.Is(err, model.ErrDiceOutOfRange) {
			c.logger.Info("dice rejected",
				slog.String("player", player),
				slog.Int("dice", dice),
			)
			return c.record(model.Event{Type: model.EventDiceRejected, Turn: c.turn, Player: player, Dice: dice}), err
		}
		c.logger.Error("failed to resolve roll",
			slog.String("player", player),
			slog.Int("dice", dice),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.turn++
	c.lastDescription = description

	status, err := c.roster.Status(player)
	if err != nil {
		return nil, err
	}
	events := []model.Event{{
		Type:     model.EventRolled,
		Turn:     c.turn,
		Player:   player,
		Dice:     dice,
		Position: status.Position(),
	}}
	events = append(events, c.arrivalEvents(before)...)

	advanced, err := c.advance(ctx, model.PhaseResult)
	events = append(events, advanced...)
	return c.record(events...), err
}

// RollRandom draws a die value from the random source and rolls it
func (c *Controller) RollRandom(ctx context.Context) (int, []model.Event, error) {
	if err := c.requirePhase(model.PhaseRoll); err != nil {
		return 0, nil, err
	}
	dice := c.world.DiceMin() + c.random.Intn(c.world.DiceMax()-c.world.DiceMin()+1)
	events, err := c.Roll(ctx, dice)
	return dice, events, err
}

// Acknowledge confirms the result of the last roll and hands the dice over
func (c *Controller) Acknowledge() error {
	if err := c.requirePhase(model.PhaseResult); err != nil {
		return err
	}
	c.phase = model.PhaseRoll
	return nil
}

// Skip confirms a lap in which every remaining player was resting and looks
// for the next player again. Each lap consumes one pending skip per player.
func (c *Controller) Skip(ctx context.Context) ([]model.Event, error) {
	if err := c.requirePhase(model.PhaseSkip); err != nil {
		return nil, err
	}
	events, err := c.advance(ctx, model.PhaseRoll)
	return c.record(events...), err
}

// Summary returns the rankings of the players who reached the goal so far
func (c *Controller) Summary() *model.GameSummary {
	if c.summary != nil {
		return c.summary
	}

	var rankings []model.Ranking
	for _, name := range c.roster.Order() {
		status, err := c.roster.Status(name)
		if err != nil {
			continue
		}
		if rank, ok := status.ArrivalRank(); ok {
			rankings = append(rankings, model.Ranking{Player: name, Rank: rank})
		}
	}
	sort.Slice(rankings, func(i, j int) bool { return rankings[i].Rank < rankings[j].Rank })

	return &model.GameSummary{
		ID:          c.id,
		Title:       c.world.Title(),
		Rankings:    rankings,
		Turns:       c.turn,
		StartedAt:   c.startedAt,
		CompletedAt: c.clock.Now(),
	}
}

// advance hands the turn to the next eligible player, entering then phase.
// A lap where every remaining player only burns a skip leaves the game in the
// skip phase; a lap with nobody left finishes the game.
func (c *Controller) advance(ctx context.Context, then model.GamePhase) ([]model.Event, error) {
	skipsBefore := c.skipSnapshot()

	next, ok, err := c.resolver.NextPlayer(c.current, c.roster.Order(), c.roster.Statuses())
	if err != nil {
		return nil, err
	}

	events := c.skipEvents(skipsBefore)
	switch {
	case ok:
		c.current = next
		c.phase = then
		events = append(events, model.Event{Type: model.EventTurnPassed, Turn: c.turn, Player: next})
		return events, nil
	case c.anyActive():
		c.phase = model.PhaseSkip
		return events, nil
	default:
		return append(events, c.finish()...), c.archive(ctx)
	}
}

// Resting returns the players who still have turns to forfeit
func (c *Controller) Resting() map[string]uint8 {
	resting := make(map[string]uint8)
	for name, status := range c.roster.Statuses() {
		if !status.Arrived() && status.PendingSkips() > 0 {
			resting[name] = status.PendingSkips()
		}
	}
	return resting
}

func (c *Controller) finish() []model.Event {
	c.phase = model.PhaseFinished
	c.summary = c.Summary()

	c.logger.Info("game finished",
		slog.String("winner", c.summary.Winner()),
		slog.Int("turns", c.turn),
	)

	return []model.Event{{Type: model.EventGameFinished, Turn: c.turn}}
}

func (c *Controller) archive(ctx context.Context) error {
	if c.recorder == nil {
		return nil
	}
	if err := c.recorder.Record(ctx, c.summary); err != nil {
		c.logger.Error("failed to record result", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", model.ErrResultNotRecorded, err)
	}
	return nil
}

func (c *Controller) requirePhase(phase model.GamePhase) error {
	if c.phase == model.PhaseFinished {
		return model.ErrGameFinished
	}
	if c.phase != phase {
		return fmt.Errorf("%w: expected %s, in %s", model.ErrWrongPhase, phase, c.phase)
	}
	return nil
}

func (c *Controller) anyActive() bool {
	for _, status := range c.roster.Statuses() {
		if !status.Arrived() {
			return true
		}
	}
	return false
}

func (c *Controller) arrivalSnapshot() map[string]bool {
	snapshot := make(map[string]bool, c.roster.Len())
	for name, status := range c.roster.Statuses() {
		snapshot[name] = status.Arrived()
	}
	return snapshot
}

func (c *Controller) arrivalEvents(before map[string]bool) []model.Event {
	var events []model.Event
	for _, name := range c.roster.Order() {
		status, err := c.roster.Status(name)
		if err != nil || before[name] || !status.Arrived() {
			continue
		}
		rank, _ := status.ArrivalRank()
		events = append(events, model.Event{
			Type:     model.EventArrived,
			Turn:     c.turn,
			Player:   name,
			Position: status.Position(),
			Rank:     rank,
		})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Rank < events[j].Rank })
	return events
}

func (c *Controller) skipSnapshot() map[string]uint8 {
	snapshot := make(map[string]uint8, c.roster.Len())
	for name, status := range c.roster.Statuses() {
		snapshot[name] = status.PendingSkips()
	}
	return snapshot
}

func (c *Controller) skipEvents(before map[string]uint8) []model.Event {
	var events []model.Event
	for _, name := range c.roster.Order() {
		status, err := c.roster.Status(name)
		if err != nil || status.PendingSkips() >= before[name] {
			continue
		}
		events = append(events, model.Event{
			Type:     model.EventSkipped,
			Turn:     c.turn,
			Player:   name,
			Position: status.Position(),
			Skips:    int(status.PendingSkips()),
		})
	}
	return events
}

func (c *Controller) record(events ...model.Event) []model.Event {
	c.events = append(c.events, events...)
	return events
}

// Interface for dependency injection
type ControllerInterface interface {
	ID() model.GameID
	World() *board.World
	Roster() *model.Roster
	Printer() *message.Printer
	CurrentPlayer() string
	Phase() model.GamePhase
	Turn() int
	LastDescription() string
	Events() []model.Event
	Roll(ctx context.Context, dice int) ([]model.Event, error)
	RollRandom(ctx context.Context) (int, []model.Event, error)
	Acknowledge() error
	Skip(ctx context.Context) ([]model.Event, error)
	Resting() map[string]uint8
	Summary() *model.GameSummary
}

var _ ControllerInterface = (*Controller)(nil)
