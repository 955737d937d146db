package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Roster errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrDuplicatePlayer = errors.New("duplicate player")
	ErrNoPlayer        = errors.New("there is no player")

	// Board errors
	ErrAreaTypeNotFound   = errors.New("area type not found")
	ErrDiceOutOfRange     = errors.New("dice is out of range")
	ErrPositionOutOfRange = errors.New("position is out of range")
	ErrInvalidBoard       = errors.New("invalid board definition")

	// Effect specification errors
	ErrEffectFormat       = errors.New("malformed effect specification")
	ErrDuplicateParameter = errors.New("duplicate parameter")
	ErrWrongParameter     = errors.New("wrong parameter")
	ErrMissingParameter   = errors.New("missing parameter")
	ErrParameterParse     = errors.New("failed to parse parameter")

	// Game errors
	ErrGameFinished = errors.New("game is already finished")
	ErrWrongPhase   = errors.New("action not allowed in the current phase")

	// Results errors
	ErrResultNotFound    = errors.New("result not found")
	ErrResultNotRecorded = errors.New("result could not be recorded")
)

// DiceOutOfRangeError reports a die value outside the board's accepted range.
// It matches ErrDiceOutOfRange with errors.Is.
type DiceOutOfRangeError struct {
	Value int
	Min   int
	Max   int
}

func (e *DiceOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %d (expected %d to %d)", ErrDiceOutOfRange, e.Value, e.Min, e.Max)
}

func (e *DiceOutOfRangeError) Is(target error) bool {
	return target == ErrDiceOutOfRange
}

// PositionOutOfRangeError reports a player standing outside the area list
type PositionOutOfRangeError struct {
	Player   string
	Position int
}

func (e *PositionOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %s %d", ErrPositionOutOfRange, e.Player, e.Position)
}

func (e *PositionOutOfRangeError) Is(target error) bool {
	return target == ErrPositionOutOfRange
}

// playerNotFound wraps ErrPlayerNotFound with the missing name
func playerNotFound(name string) error {
	return fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
}
