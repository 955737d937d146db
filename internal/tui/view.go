package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/mcoot/sugoroku/internal/locale"
	"github.com/mcoot/sugoroku/internal/model"
)

const (
	defaultWidth = 80
	playersWidth = 24
)

type styles struct {
	title    lipgloss.Style
	panel    lipgloss.Style
	current  lipgloss.Style
	arrived  lipgloss.Style
	notice   lipgloss.Style
	guidance lipgloss.Style
}

func defaultStyles() styles {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		panel:    panel,
		current:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		arrived:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		guidance: lipgloss.NewStyle().Faint(true),
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	world := m.controller.World()
	sections := []string{
		m.styles.title.Render(world.Title()),
		lipgloss.JoinHorizontal(lipgloss.Top, m.playersPanel(), m.mainPanel()),
	}
	if len(m.notices) > 0 {
		sections = append(sections, m.styles.notice.Render(strings.Join(m.notices, "\n")))
	}
	sections = append(sections, m.prompt(), m.styles.guidance.Render(m.guidance()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// playersPanel lists every player in turn order with position, skips and rank
func (m Model) playersPanel() string {
	roster := m.controller.Roster()
	goal := m.controller.World().GoalIndex()

	lines := []string{m.printer.Sprintf(locale.ColumnName)}
	for _, name := range roster.Order() {
		status, err := roster.Status(name)
		if err != nil {
			continue
		}

		line := fmt.Sprintf("%s %d/%d", name, status.Position(), goal)
		if skips := status.PendingSkips(); skips > 0 {
			line += fmt.Sprintf(" (-%d)", skips)
		}
		switch rank, arrived := status.ArrivalRank(); {
		case arrived:
			lines = append(lines, m.styles.arrived.Render(fmt.Sprintf("  %s #%d", line, rank)))
		case name == m.controller.CurrentPlayer() && m.controller.Phase() != model.PhaseFinished:
			lines = append(lines, m.styles.current.Render("> "+line))
		default:
			lines = append(lines, "  "+line)
		}
	}
	return m.styles.panel.Width(playersWidth).Render(strings.Join(lines, "\n"))
}

// mainPanel shows the opening message, the start square before the first
// roll, or the area reached by the last roll
func (m Model) mainPanel() string {
	width := max(m.width-playersWidth-8, 20)

	var text string
	switch {
	case m.screen == ScreenTitle:
		text = m.controller.World().OpeningMessage()
	case m.controller.Phase() == model.PhaseRoll && m.controller.Turn() > 0:
		text = ""
	default:
		text = m.controller.LastDescription()
	}
	return m.styles.panel.Width(width).Render(wordwrap.String(strings.TrimRight(text, "\n"), width-2))
}

func (m Model) prompt() string {
	if m.screen == ScreenQuit {
		return m.printer.Sprintf(locale.PromptQuit)
	}
	if m.screen == ScreenTitle {
		return m.printer.Sprintf(locale.PromptStart)
	}

	switch m.controller.Phase() {
	case model.PhaseRoll:
		if m.rejected {
			return m.printer.Sprintf(locale.PromptEnter)
		}
		world := m.controller.World()
		return m.printer.Sprintf(locale.PromptDiceRoll, m.controller.CurrentPlayer(), world.DiceMin(), world.DiceMax()) + m.dice
	case model.PhaseFinished:
		return m.printer.Sprintf(locale.PromptGameFinished)
	default:
		return m.printer.Sprintf(locale.PromptEnter)
	}
}

func (m Model) guidance() string {
	items := []string{
		m.printer.Sprintf(locale.GuidanceQuit),
		m.printer.Sprintf(locale.GuidanceRedraw),
	}
	if m.screen != ScreenTitle {
		items = append(items, m.printer.Sprintf(locale.GuidanceTitle))
	}
	if m.screen == ScreenPlay && m.controller.Phase() == model.PhaseRoll && !m.rejected {
		items = append(items, m.printer.Sprintf(locale.GuidanceRandom))
	}
	return strings.Join(items, "  ")
}
