package model

import (
	"strings"

	"golang.org/x/text/message"

	"github.com/mcoot/sugoroku/internal/locale"
)

// Area is one square of the board
type Area struct {
	description string
	effects     []Effect
}

// NewArea creates an area. Without effects the area gets a single NoEffect.
func NewArea(description string, effects ...Effect) Area {
	if len(effects) == 0 {
		effects = []Effect{NoEffect()}
	}
	list := make([]Effect, len(effects))
	copy(list, effects)
	return Area{
		description: description,
		effects:     list,
	}
}

// Description returns the narrative text of the area
func (a Area) Description() string {
	return a.description
}

// Effects returns a copy of the area's effects in execution order
func (a Area) Effects() []Effect {
	result := make([]Effect, len(a.effects))
	copy(result, a.effects)
	return result
}

// Execute applies every effect in order. The first failure stops execution;
// effects applied before it are kept.
func (a Area) Execute(current string, order []string, statuses map[string]*PlayerStatus) error {
	for _, effect := range a.effects {
		if err := effect.Apply(current, order, statuses); err != nil {
			return err
		}
	}
	return nil
}

// Describe returns the narrative text followed by a bullet list of effects
func (a Area) Describe(p *message.Printer) string {
	var sb strings.Builder
	sb.WriteString(a.description)
	sb.WriteString("\n\n")
	sb.WriteString(p.Sprintf(locale.EffectsHeading))
	sb.WriteString("\n")
	for _, effect := range a.effects {
		sb.WriteString("- ")
		sb.WriteString(effect.Describe(p))
		sb.WriteString("\n")
	}
	return sb.String()
}
