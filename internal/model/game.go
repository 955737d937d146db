package model

import "time"

// GameID uniquely identifies a finished game in the results archive
type GameID string

// GamePhase represents what the game is waiting for
type GamePhase string

const (
	PhaseRoll     GamePhase = "roll"     // Waiting for the current player's die
	PhaseResult   GamePhase = "result"   // Roll resolved, waiting for acknowledgement
	PhaseSkip     GamePhase = "skip"     // Every remaining player rested through the last lap
	PhaseFinished GamePhase = "finished" // Every player has reached the goal
)

// Ranking is one player's final placing
type Ranking struct {
	Player string
	Rank   int
}

// GameSummary is the record of a finished game.
// In-progress games are never stored.
type GameSummary struct {
	ID          GameID
	Title       string
	Rankings    []Ranking // Ordered by rank
	Turns       int
	StartedAt   time.Time
	CompletedAt time.Time
}

// Winner returns the player ranked first, or empty if nobody arrived
func (g *GameSummary) Winner() string {
	for _, r := range g.Rankings {
		if r.Rank == 1 {
			return r.Player
		}
	}
	return ""
}

// RankOf returns the rank of a player in this game
func (g *GameSummary) RankOf(player string) (int, bool) {
	for _, r := range g.Rankings {
		if r.Player == player {
			return r.Rank, true
		}
	}
	return 0, false
}
