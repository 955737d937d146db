package model

import (
	"fmt"
	"math"
)

// PlayerStatus is the mutable per-player game state
type PlayerStatus struct {
	position     int
	pendingSkips uint8
	arrivalRank  int // 0 until the player reaches the goal
}

// NewPlayerStatus returns a status standing on the start square
func NewPlayerStatus() *PlayerStatus {
	return &PlayerStatus{}
}

// Position returns the index of the area the player stands on
func (s *PlayerStatus) Position() int {
	return s.position
}

// SetPosition moves the player to an absolute index.
// Negative values are clamped to the start square.
func (s *PlayerStatus) SetPosition(position int) {
	s.position = max(position, 0)
}

// GoForward advances the player by n squares, saturating instead of overflowing
func (s *PlayerStatus) GoForward(n int) {
	if n <= 0 {
		return
	}
	if n > math.MaxInt-s.position {
		s.position = math.MaxInt
		return
	}
	s.position += n
}

// GoBackward moves the player back by n squares, stopping at the start
func (s *PlayerStatus) GoBackward(n int) {
	if n <= 0 {
		return
	}
	if n >= s.position {
		s.position = 0
		return
	}
	s.position -= n
}

// PendingSkips returns the number of turns the player still has to forfeit
func (s *PlayerStatus) PendingSkips() uint8 {
	return s.pendingSkips
}

// AddSkips increases the pending skips, saturating at the maximum
func (s *PlayerStatus) AddSkips(n uint8) {
	if n > math.MaxUint8-s.pendingSkips {
		s.pendingSkips = math.MaxUint8
		return
	}
	s.pendingSkips += n
}

// SubSkips decreases the pending skips, saturating at zero
func (s *PlayerStatus) SubSkips(n uint8) {
	if n >= s.pendingSkips {
		s.pendingSkips = 0
		return
	}
	s.pendingSkips -= n
}

// ArrivalRank returns the 1-based order in which the player reached the goal
func (s *PlayerStatus) ArrivalRank() (int, bool) {
	return s.arrivalRank, s.arrivalRank > 0
}

// Arrived returns true once the player has reached the goal
func (s *PlayerStatus) Arrived() bool {
	return s.arrivalRank > 0
}

// SetArrivalRank records the arrival rank. A rank is written at most once;
// later calls are ignored and report false.
func (s *PlayerStatus) SetArrivalRank(rank int) bool {
	if s.arrivalRank > 0 || rank <= 0 {
		return false
	}
	s.arrivalRank = rank
	return true
}

// Roster is the fixed turn order and the status of every player in it
type Roster struct {
	order    []string
	statuses map[string]*PlayerStatus
}

// NewRoster builds a roster in the given turn order.
// Names must be unique and at least one player is required.
func NewRoster(names []string) (*Roster, error) {
	if len(names) == 0 {
		return nil, ErrNoPlayer
	}

	order := make([]string, 0, len(names))
	statuses := make(map[string]*PlayerStatus, len(names))
	for _, name := range names {
		if _, ok := statuses[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, name)
		}
		statuses[name] = NewPlayerStatus()
		order = append(order, name)
	}

	return &Roster{
		order:    order,
		statuses: statuses,
	}, nil
}

// Order returns a copy of the turn order
func (r *Roster) Order() []string {
	result := make([]string, len(r.order))
	copy(result, r.order)
	return result
}

// Len returns the number of players
func (r *Roster) Len() int {
	return len(r.order)
}

// First returns the player who starts the game
func (r *Roster) First() string {
	return r.order[0]
}

// Status returns the status of the named player
func (r *Roster) Status(name string) (*PlayerStatus, error) {
	return LookupStatus(r.statuses, name)
}

// Statuses returns the live status table.
// Only the game engine should mutate the returned statuses.
func (r *Roster) Statuses() map[string]*PlayerStatus {
	return r.statuses
}

// LookupStatus finds a player's status, failing with ErrPlayerNotFound
func LookupStatus(statuses map[string]*PlayerStatus, name string) (*PlayerStatus, error) {
	status, ok := statuses[name]
	if !ok || status == nil {
		return nil, playerNotFound(name)
	}
	return status, nil
}
