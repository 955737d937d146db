package model

import (
	"fmt"

	"golang.org/x/text/message"

	"github.com/mcoot/sugoroku/internal/locale"
)

// EffectKind identifies the rule an area applies when a player lands on it
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectGoToStart
	EffectSkipSelf
	EffectPushSelf
	EffectPullSelf
	EffectPushOthersAll
	EffectPullOthersAll
)

var effectKindNames = map[EffectKind]string{
	EffectNone:          "NoEffect",
	EffectGoToStart:     "GoToStart",
	EffectSkipSelf:      "SkipSelf",
	EffectPushSelf:      "PushSelf",
	EffectPullSelf:      "PullSelf",
	EffectPushOthersAll: "PushOthersAll",
	EffectPullOthersAll: "PullOthersAll",
}

// String returns the name used for the kind in board files
func (k EffectKind) String() string {
	if name, ok := effectKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EffectKind(%d)", int(k))
}

// Effect is a single area rule. Only the parameter belonging to Kind is used:
// Times for SkipSelf, Num for the push and pull kinds.
type Effect struct {
	Kind  EffectKind
	Times uint8
	Num   int
}

// NoEffect returns an effect that does nothing
func NoEffect() Effect {
	return Effect{Kind: EffectNone}
}

// GoToStart returns an effect sending the current player back to the start
func GoToStart() Effect {
	return Effect{Kind: EffectGoToStart}
}

// SkipSelf returns an effect adding skipped turns to the current player
func SkipSelf(times uint8) Effect {
	return Effect{Kind: EffectSkipSelf, Times: times}
}

// PushSelf returns an effect advancing the current player
func PushSelf(num int) Effect {
	return Effect{Kind: EffectPushSelf, Num: num}
}

// PullSelf returns an effect moving the current player back
func PullSelf(num int) Effect {
	return Effect{Kind: EffectPullSelf, Num: num}
}

// PushOthersAll returns an effect advancing every other player
func PushOthersAll(num int) Effect {
	return Effect{Kind: EffectPushOthersAll, Num: num}
}

// PullOthersAll returns an effect moving every other player back
func PullOthersAll(num int) Effect {
	return Effect{Kind: EffectPullOthersAll, Num: num}
}

// Describe renders the effect as a sentence in the printer's locale
func (e Effect) Describe(p *message.Printer) string {
	switch e.Kind {
	case EffectNone:
		return p.Sprintf(locale.EffectNone)
	case EffectGoToStart:
		return p.Sprintf(locale.EffectGoToStart)
	case EffectSkipSelf:
		return p.Sprintf(locale.EffectSkipSelf, e.Times)
	case EffectPushSelf:
		return p.Sprintf(locale.EffectPushSelf, e.Num)
	case EffectPullSelf:
		return p.Sprintf(locale.EffectPullSelf, e.Num)
	case EffectPushOthersAll:
		return p.Sprintf(locale.EffectPushOthersAll, e.Num)
	case EffectPullOthersAll:
		return p.Sprintf(locale.EffectPullOthersAll, e.Num)
	default:
		return e.Kind.String()
	}
}

// Apply mutates the status table for a player landing on the area.
// Players are addressed by name; a missing name fails with ErrPlayerNotFound.
// The others-variants leave players who already reached the goal in place.
func (e Effect) Apply(current string, order []string, statuses map[string]*PlayerStatus) error {
	switch e.Kind {
	case EffectNone:
		return nil
	case EffectGoToStart:
		status, err := LookupStatus(statuses, current)
		if err != nil {
			return err
		}
		status.SetPosition(0)
	case EffectSkipSelf:
		status, err := LookupStatus(statuses, current)
		if err != nil {
			return err
		}
		status.AddSkips(e.Times)
	case EffectPushSelf:
		status, err := LookupStatus(statuses, current)
		if err != nil {
			return err
		}
		status.GoForward(e.Num)
	case EffectPullSelf:
		status, err := LookupStatus(statuses, current)
		if err != nil {
			return err
		}
		status.GoBackward(e.Num)
	case EffectPushOthersAll, EffectPullOthersAll:
		for _, name := range order {
			if name == current {
				continue
			}
			status, err := LookupStatus(statuses, name)
			if err != nil {
				return err
			}
			if status.Arrived() {
				continue
			}
			if e.Kind == EffectPushOthersAll {
				status.GoForward(e.Num)
			} else {
				status.GoBackward(e.Num)
			}
		}
	default:
		return fmt.Errorf("%w: %s", ErrAreaTypeNotFound, e.Kind)
	}
	return nil
}

// String renders the effect in the board file syntax
func (e Effect) String() string {
	switch e.Kind {
	case EffectSkipSelf:
		return fmt.Sprintf("%s: times=%d", e.Kind, e.Times)
	case EffectPushSelf, EffectPullSelf, EffectPushOthersAll, EffectPullOthersAll:
		return fmt.Sprintf("%s: num=%d", e.Kind, e.Num)
	default:
		return e.Kind.String() + ":"
	}
}
