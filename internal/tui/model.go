package tui

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"

	"github.com/mcoot/sugoroku/internal/locale"
	"github.com/mcoot/sugoroku/internal/model"
	"github.com/mcoot/sugoroku/internal/services/game"
)

// Screen is what the terminal currently shows
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenPlay
	ScreenQuit
)

// maxDiceDigits keeps the typed die value within int range
const maxDiceDigits = 9

// Model is the bubbletea model for one game
type Model struct {
	ctx        context.Context
	controller game.ControllerInterface
	printer    *message.Printer
	logger     *slog.Logger
	keys       keyMap
	styles     styles

	screen   Screen
	previous Screen
	dice     string
	rejected bool
	notices  []string
	width    int
	err      error
	quitting bool
}

// New creates the model for a game that has not started yet
func New(ctx context.Context, controller game.ControllerInterface, logger *slog.Logger) Model {
	return Model{
		ctx:        ctx,
		controller: controller,
		printer:    controller.Printer(),
		logger:     logger.With(slog.String("component", "tui")),
		keys:       defaultKeyMap(),
		styles:     defaultStyles(),
		screen:     ScreenTitle,
		previous:   ScreenPlay,
		width:      defaultWidth,
	}
}

// Screen returns the current screen
func (m Model) Screen() Screen {
	return m.screen
}

// Dice returns the die value typed so far
func (m Model) Dice() string {
	return m.dice
}

// Err returns the error that ended the session, if any
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Interrupt) {
		return m.quit()
	}

	if m.screen == ScreenQuit {
		if msg.String() == "y" || msg.String() == "Y" {
			return m.quit()
		}
		m.screen = m.previous
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.previous = m.screen
		m.screen = ScreenQuit
		return m, nil
	case key.Matches(msg, m.keys.Redraw):
		return m, tea.ClearScreen
	case key.Matches(msg, m.keys.Title) && m.screen != ScreenTitle:
		m.previous = m.screen
		m.screen = ScreenTitle
		return m, nil
	}

	if m.screen == ScreenTitle {
		if key.Matches(msg, m.keys.Confirm) {
			m.screen = ScreenPlay
		}
		return m, nil
	}
	return m.handlePlayKey(msg)
}

func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.controller.Phase() {
	case model.PhaseRoll:
		return m.handleRollKey(msg)
	case model.PhaseResult:
		if key.Matches(msg, m.keys.Confirm) {
			if err := m.controller.Acknowledge(); err != nil {
				return m.fail(err)
			}
			m.notices = nil
		}
	case model.PhaseSkip:
		if key.Matches(msg, m.keys.Confirm) {
			events, err := m.controller.Skip(m.ctx)
			return m.afterEvents(events, err)
		}
	}
	return m, nil
}

func (m Model) handleRollKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.rejected {
		if key.Matches(msg, m.keys.Confirm) {
			m.rejected = false
			m.notices = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Confirm):
		if m.dice == "" {
			return m, nil
		}
		dice, err := strconv.Atoi(m.dice)
		if err != nil {
			return m.fail(err)
		}
		m.dice = ""
		events, err := m.controller.Roll(m.ctx, dice)
		return m.afterRoll(dice, events, err)
	case key.Matches(msg, m.keys.Random):
		if m.dice != "" {
			return m, nil
		}
		dice, events, err := m.controller.RollRandom(m.ctx)
		return m.afterRoll(dice, events, err)
	case key.Matches(msg, m.keys.Delete):
		if m.dice != "" {
			m.dice = m.dice[:len(m.dice)-1]
		}
	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' && len(m.dice) < maxDiceDigits {
				m.dice += string(r)
			}
		}
	}
	return m, nil
}

func (m Model) afterRoll(dice int, events []model.Event, err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, model.ErrDiceOutOfRange) {
		m.rejected = true
		m.notices = []string{m.printer.Sprintf(locale.DiceOutOfRange, dice)}
		return m, nil
	}
	return m.afterEvents(events, err)
}

// afterEvents shows the notices for events. A finished game whose result
// could not be archived stays on screen with a notice.
func (m Model) afterEvents(events []model.Event, err error) (tea.Model, tea.Cmd) {
	notices := m.describeEvents(events)
	if errors.Is(err, model.ErrResultNotRecorded) {
		notices = append(notices, m.printer.Sprintf(locale.ResultNotRecorded))
		err = nil
	}
	if err != nil {
		return m.fail(err)
	}
	m.notices = notices
	return m, nil
}

// describeEvents turns arrivals and consumed skips into message lines
func (m Model) describeEvents(events []model.Event) []string {
	var lines []string
	for _, e := range events {
		switch e.Type {
		case model.EventArrived:
			lines = append(lines, m.printer.Sprintf(locale.PlayerArrived, e.Player, e.Rank))
		case model.EventSkipped:
			lines = append(lines, m.printer.Sprintf(locale.PlayerResting, e.Player, e.Skips))
		}
	}
	return lines
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error("game aborted", slog.String("error", err.Error()))
	m.err = err
	return m.quit()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// Run plays a game in the terminal until the players quit
func Run(ctx context.Context, controller game.ControllerInterface, logger *slog.Logger, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(New(ctx, controller, logger), opts...).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
