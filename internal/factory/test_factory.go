package factory

import (
	"time"

	"github.com/mcoot/sugoroku/internal/dependencies/mocks"
	"github.com/mcoot/sugoroku/internal/model"
	"github.com/mcoot/sugoroku/internal/services/board"
	"github.com/mcoot/sugoroku/internal/storage/memory"
	"github.com/mcoot/sugoroku/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// NewTestWorld builds a short board: Start, Meadow, Bog (SkipSelf 1),
// Tailwind (PushSelf 2), Hill, Goal. Dice go up to 3.
func (t *TestApp) NewTestWorld() (*board.World, error) {
	return board.New(board.Definition{
		Title:            "Test Trip",
		OpeningMessage:   "Good luck",
		StartDescription: "Start",
		GoalDescription:  "Goal",
		DiceMax:          3,
		Areas: []model.Area{
			model.NewArea("Meadow"),
			model.NewArea("Bog", model.SkipSelf(1)),
			model.NewArea("Tailwind", model.PushSelf(2)),
			model.NewArea("Hill"),
		},
	}, t.Logger)
}
