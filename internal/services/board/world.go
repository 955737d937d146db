package board

import (
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/text/message"

	"github.com/mcoot/sugoroku/internal/model"
)

// DefaultDiceMin is the smallest accepted die value unless zero is allowed
const DefaultDiceMin = 1

// Definition describes a board before the start and goal squares are added
type Definition struct {
	Title            string
	OpeningMessage   string
	StartDescription string
	GoalDescription  string
	DiceMax          int
	AllowZeroDice    bool         // Accept 0 as a die value
	Areas            []model.Area // Squares between start and goal
}

// World owns the board and the goal bookkeeping for one game
type World struct {
	title          string
	openingMessage string
	diceMin        int
	diceMax        int
	areas          []model.Area
	goalArrivals   int
	logger         *slog.Logger
}

// New builds a world from a definition, adding the start and goal squares
func New(def Definition, logger *slog.Logger) (*World, error) {
	diceMin := DefaultDiceMin
	if def.AllowZeroDice {
		diceMin = 0
	}
	if def.DiceMax < diceMin || def.DiceMax < 1 {
		return nil, fmt.Errorf("%w: dice_max must be at least 1, got %d", model.ErrInvalidBoard, def.DiceMax)
	}

	areas := make([]model.Area, 0, len(def.Areas)+2)
	areas = append(areas, model.NewArea(def.StartDescription))
	areas = append(areas, def.Areas...)
	areas = append(areas, model.NewArea(def.GoalDescription))

	return &World{
		title:          def.Title,
		openingMessage: def.OpeningMessage,
		diceMin:        diceMin,
		diceMax:        def.DiceMax,
		areas:          areas,
		logger:         logger.With(slog.String("component", "world")),
	}, nil
}

// Title returns the board title
func (w *World) Title() string {
	return w.title
}

// OpeningMessage returns the message shown before the first turn
func (w *World) OpeningMessage() string {
	return w.openingMessage
}

// DiceMin returns the smallest accepted die value
func (w *World) DiceMin() int {
	return w.diceMin
}

// DiceMax returns the largest accepted die value
func (w *World) DiceMax() int {
	return w.diceMax
}

// Areas returns a copy of all areas, start first and goal last
func (w *World) Areas() []model.Area {
	result := make([]model.Area, len(w.areas))
	copy(result, w.areas)
	return result
}

// Area returns the area at an index
func (w *World) Area(index int) (model.Area, bool) {
	if index < 0 || index >= len(w.areas) {
		return model.Area{}, false
	}
	return w.areas[index], true
}

// Len returns the number of areas including start and goal
func (w *World) Len() int {
	return len(w.areas)
}

// GoalIndex returns the index of the goal square
func (w *World) GoalIndex() int {
	return len(w.areas) - 1
}

// GoalArrivals returns how many players have reached the goal so far
func (w *World) GoalArrivals() int {
	return w.goalArrivals
}

// StartDescription describes the start square
func (w *World) StartDescription(p *message.Printer) string {
	return w.areas[0].Describe(p)
}

// ValidateDice checks a die value against the accepted range
func (w *World) ValidateDice(dice int) error {
	if dice < w.diceMin || dice > w.diceMax {
		return &model.DiceOutOfRangeError{Value: dice, Min: w.diceMin, Max: w.diceMax}
	}
	return nil
}

// ResolveRoll moves the current player by the die value, applies the landed
// area's effects and records goal arrivals. It returns the description of the
// area the current player stands on afterwards.
//
// An out-of-range die fails with ErrDiceOutOfRange before anything changes.
// Effect failures are returned as-is; mutations made before them are kept.
func (w *World) ResolveRoll(
	p *message.Printer,
	dice int,
	current string,
	order []string,
	statuses map[string]*model.PlayerStatus,
) (string, error) {
	if err := w.ValidateDice(dice); err != nil {
		return "", err
	}

	status, err := model.LookupStatus(statuses, current)
	if err != nil {
		return "", err
	}
	status.GoForward(dice)
	w.checkGoal(order, statuses)

	landed, err := w.areaAt(current, status.Position())
	if err != nil {
		return "", err
	}

	w.logger.Debug("dice rolled",
		slog.String("player", current),
		slog.Int("dice", dice),
		slog.Int("position", status.Position()),
	)

	if err := landed.Execute(current, order, statuses); err != nil {
		return "", err
	}
	w.checkGoal(order, statuses)

	final, err := w.areaAt(current, status.Position())
	if err != nil {
		return "", err
	}
	return final.Describe(p), nil
}

func (w *World) areaAt(player string, position int) (model.Area, error) {
	area, ok := w.Area(position)
	if !ok {
		return model.Area{}, &model.PositionOutOfRangeError{Player: player, Position: position}
	}
	return area, nil
}

// checkGoal clamps every player past the goal back onto it and ranks the
// newly arrived ones.
// Players arriving in the same pass are ranked in roster order.
func (w *World) checkGoal(order []string, statuses map[string]*model.PlayerStatus) {
	goal := w.GoalIndex()
	arrived := 0
	for _, name := range goalCheckOrder(order, statuses) {
		status := statuses[name]
		if status == nil || status.Position() < goal {
			continue
		}
		if status.Arrived() {
			status.SetPosition(goal)
			continue
		}
		status.SetPosition(goal)
		arrived++
		status.SetArrivalRank(w.goalArrivals + arrived)

		w.logger.Debug("player reached goal",
			slog.String("player", name),
			slog.Int("rank", w.goalArrivals+arrived),
		)
	}
	w.goalArrivals += arrived
}

// goalCheckOrder lists roster names first, then any other status keys sorted
func goalCheckOrder(order []string, statuses map[string]*model.PlayerStatus) []string {
	names := make([]string, 0, len(statuses))
	inOrder := make(map[string]struct{}, len(order))
	for _, name := range order {
		if _, ok := statuses[name]; !ok {
			continue
		}
		if _, dup := inOrder[name]; dup {
			continue
		}
		inOrder[name] = struct{}{}
		names = append(names, name)
	}

	var rest []string
	for name := range statuses {
		if _, ok := inOrder[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}
