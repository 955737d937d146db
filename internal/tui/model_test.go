package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/sugoroku/internal/dependencies/mocks"
	"github.com/mcoot/sugoroku/internal/locale"
	"github.com/mcoot/sugoroku/internal/model"
	"github.com/mcoot/sugoroku/internal/services/board"
	"github.com/mcoot/sugoroku/internal/services/game"
	"github.com/mcoot/sugoroku/internal/services/turn"
	"github.com/mcoot/sugoroku/internal/testutil"
)

type ModelSuite struct {
	suite.Suite
	random     *mocks.MockRandom
	controller *game.Controller
	model      Model
}

func TestModelSuite(t *testing.T) {
	suite.Run(t, new(ModelSuite))
}

func (s *ModelSuite) SetupTest() {
	world, err := board.New(board.Definition{
		Title:            "Mountain Path",
		OpeningMessage:   "Climb to the summit.",
		StartDescription: "Trailhead",
		GoalDescription:  "Summit",
		DiceMax:          6,
		Areas: []model.Area{
			model.NewArea("Forest"),
			model.NewArea("Hut", model.SkipSelf(1)),
		},
	}, testutil.NopLogger())
	s.Require().NoError(err)

	roster, err := model.NewRoster([]string{"Alice", "Bob"})
	s.Require().NoError(err)

	s.random = mocks.NewMockRandom()
	s.controller, err = game.NewController(
		world,
		roster,
		turn.New(testutil.NopLogger()),
		nil,
		locale.NewPrinter(locale.English),
		mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
		s.random,
		testutil.NopLogger(),
	)
	s.Require().NoError(err)

	s.model = New(context.Background(), s.controller, testutil.NopLogger())
}

func (s *ModelSuite) send(msg tea.KeyMsg) tea.Cmd {
	next, cmd := s.model.Update(msg)
	s.model = next.(Model)
	return cmd
}

func (s *ModelSuite) enter() tea.Cmd {
	return s.send(tea.KeyMsg{Type: tea.KeyEnter})
}

func (s *ModelSuite) typeText(text string) {
	s.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func (s *ModelSuite) isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func (s *ModelSuite) TestStartsOnTitle() {
	s.Equal(ScreenTitle, s.model.Screen())
	view := s.model.View()
	s.Contains(view, "Mountain Path")
	s.Contains(view, "Climb to the summit.")
	s.Contains(view, "Press Enter to start.")
}

func (s *ModelSuite) TestEnterStartsGame() {
	s.enter()
	s.Equal(ScreenPlay, s.model.Screen())
	s.Contains(s.model.View(), "Alice, roll the dice (1-6). >>> ")
}

func (s *ModelSuite) TestStartSquareShownBeforeFirstRoll() {
	s.enter()
	s.Contains(s.model.View(), "Trailhead")

	s.typeText("1")
	s.enter()
	s.enter()
	view := s.model.View()
	s.NotContains(view, "Trailhead")
	s.NotContains(view, "Forest")
}

func (s *ModelSuite) TestTypingDice() {
	s.enter()
	s.typeText("1a2")
	s.Equal("12", s.model.Dice())

	s.send(tea.KeyMsg{Type: tea.KeyBackspace})
	s.Equal("1", s.model.Dice())
	s.Contains(s.model.View(), ">>> 1")
}

func (s *ModelSuite) TestEnterWithoutDiceDoesNothing() {
	s.enter()
	s.enter()
	s.Equal(model.PhaseRoll, s.controller.Phase())
	s.Equal(0, s.controller.Turn())
}

func (s *ModelSuite) TestRollShowsResult() {
	s.enter()
	s.typeText("1")
	s.enter()

	s.Equal(model.PhaseResult, s.controller.Phase())
	s.Equal("", s.model.Dice())
	view := s.model.View()
	s.Contains(view, "Forest")
	s.Contains(view, "Press Enter.")

	s.enter()
	s.Equal(model.PhaseRoll, s.controller.Phase())
	s.Contains(s.model.View(), "Bob, roll the dice")
}

func (s *ModelSuite) TestOutOfRangeDiceLetsSamePlayerRetry() {
	s.enter()
	s.typeText("9")
	s.enter()

	s.Contains(s.model.View(), "The dice value is out of range: 9")
	s.Equal("Alice", s.controller.CurrentPlayer())

	// Digits are ignored until the message is dismissed
	s.typeText("3")
	s.Equal("", s.model.Dice())

	s.enter()
	s.typeText("2")
	s.enter()
	s.Equal("Bob", s.controller.CurrentPlayer())
}

func (s *ModelSuite) TestRandomRoll() {
	s.random.QueueIntn(0)
	s.enter()
	s.typeText("r")

	s.Equal(model.PhaseResult, s.controller.Phase())
	s.Contains(s.model.View(), "Forest")
}

func (s *ModelSuite) TestArrivalNotice() {
	s.enter()
	s.typeText("6")
	s.enter()

	s.Contains(s.model.View(), "Alice reached the goal in place 1.")
}

func (s *ModelSuite) TestRestingNotice() {
	s.enter()
	s.typeText("2")
	s.enter() // Alice rests at the hut
	s.enter()
	s.typeText("1")
	s.enter() // Bob rolls; Alice's rest is consumed

	s.Contains(s.model.View(), "Alice is resting. Remaining: 0")
	s.Equal("Bob", s.controller.CurrentPlayer())
}

func (s *ModelSuite) TestQuitMenu() {
	s.enter()
	s.send(tea.KeyMsg{Type: tea.KeyEsc})
	s.Equal(ScreenQuit, s.model.Screen())
	s.Contains(s.model.View(), "Quit the game?")

	cmd := s.typeAndCapture("n")
	s.False(s.isQuit(cmd))
	s.Equal(ScreenPlay, s.model.Screen())

	s.send(tea.KeyMsg{Type: tea.KeyEsc})
	cmd = s.typeAndCapture("Y")
	s.True(s.isQuit(cmd))
}

func (s *ModelSuite) typeAndCapture(text string) tea.Cmd {
	return s.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func (s *ModelSuite) TestQuitMenuFromTitleReturnsToTitle() {
	s.send(tea.KeyMsg{Type: tea.KeyEsc})
	s.enter()
	s.Equal(ScreenTitle, s.model.Screen())
}

func (s *ModelSuite) TestCtrlTShowsTitle() {
	s.enter()
	s.typeText("4")
	s.send(tea.KeyMsg{Type: tea.KeyCtrlT})
	s.Equal(ScreenTitle, s.model.Screen())

	s.enter()
	s.Equal(ScreenPlay, s.model.Screen())
	s.Equal("4", s.model.Dice())
}

func (s *ModelSuite) TestCtrlCQuits() {
	s.True(s.isQuit(s.send(tea.KeyMsg{Type: tea.KeyCtrlC})))
}

func (s *ModelSuite) TestFinishedGame() {
	s.enter()
	s.typeText("6")
	s.enter()
	s.enter()
	s.typeText("6")
	s.enter()

	s.Equal(model.PhaseFinished, s.controller.Phase())
	s.Contains(s.model.View(), "Everyone has reached the goal.")

	// Only the quit menu is left
	s.enter()
	s.Equal(model.PhaseFinished, s.controller.Phase())
	s.Nil(s.model.Err())
}

type failingRecorder struct{}

func (failingRecorder) Record(ctx context.Context, summary *model.GameSummary) error {
	return errors.New("archive unavailable")
}

func (s *ModelSuite) TestUnrecordedResultKeepsFinishedScreen() {
	controller, err := game.NewController(
		s.controller.World(),
		mustRoster(s.T(), "Alice", "Bob"),
		turn.New(testutil.NopLogger()),
		failingRecorder{},
		locale.NewPrinter(locale.English),
		mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
		s.random,
		testutil.NopLogger(),
	)
	s.Require().NoError(err)
	s.controller = controller
	s.model = New(context.Background(), controller, testutil.NopLogger())

	s.enter()
	s.typeText("6")
	s.enter()
	s.enter()
	s.typeText("6")
	cmd := s.enter()

	s.False(s.isQuit(cmd))
	s.Nil(s.model.Err())
	s.Equal(model.PhaseFinished, controller.Phase())
	view := s.model.View()
	s.Contains(view, "Everyone has reached the goal.")
	s.Contains(view, "The result of this game could not be saved.")
	s.Contains(view, "Bob reached the goal in place 2.")
}

func mustRoster(t *testing.T, names ...string) *model.Roster {
	t.Helper()
	roster, err := model.NewRoster(names)
	if err != nil {
		t.Fatal(err)
	}
	return roster
}

func (s *ModelSuite) TestWindowSize() {
	next, _ := s.model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	s.model = next.(Model)
	s.Equal(120, s.model.width)
}
