package response

import (
	"time"

	"golang.org/x/text/message"

	"github.com/mcoot/sugoroku/internal/model"
	"github.com/mcoot/sugoroku/internal/services/board"
	"github.com/mcoot/sugoroku/internal/services/results"
)

// Effect represents one area rule in API responses
type Effect struct {
	Kind        string `json:"kind"`
	Spec        string `json:"spec"`
	Description string `json:"description"`
}

// Area represents one board square in API responses
type Area struct {
	Index       int      `json:"index"`
	Description string   `json:"description"`
	Effects     []Effect `json:"effects"`
}

// AreaFromModel converts a model.Area at a board index
func AreaFromModel(index int, a model.Area, p *message.Printer) Area {
	effects := make([]Effect, 0, len(a.Effects()))
	for _, e := range a.Effects() {
		effects = append(effects, Effect{
			Kind:        e.Kind.String(),
			Spec:        e.String(),
			Description: e.Describe(p),
		})
	}
	return Area{
		Index:       index,
		Description: a.Description(),
		Effects:     effects,
	}
}

// Board is the response for the board endpoint
type Board struct {
	Title          string `json:"title"`
	OpeningMessage string `json:"opening_message"`
	DiceMin        int    `json:"dice_min"`
	DiceMax        int    `json:"dice_max"`
	GoalIndex      int    `json:"goal_index"`
	Areas          []Area `json:"areas"`
}

// BoardFromWorld converts a board.World
func BoardFromWorld(w *board.World, p *message.Printer) Board {
	areas := make([]Area, 0, w.Len())
	for i, a := range w.Areas() {
		areas = append(areas, AreaFromModel(i, a, p))
	}
	return Board{
		Title:          w.Title(),
		OpeningMessage: w.OpeningMessage(),
		DiceMin:        w.DiceMin(),
		DiceMax:        w.DiceMax(),
		GoalIndex:      w.GoalIndex(),
		Areas:          areas,
	}
}

// Ranking represents a player's placing in API responses
type Ranking struct {
	Player string `json:"player"`
	Rank   int    `json:"rank"`
}

// Result represents a finished game
type Result struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Winner      string    `json:"winner,omitempty"`
	Rankings    []Ranking `json:"rankings"`
	Turns       int       `json:"turns"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// ResultFromModel converts a model.GameSummary
func ResultFromModel(g *model.GameSummary) Result {
	rankings := make([]Ranking, 0, len(g.Rankings))
	for _, r := range g.Rankings {
		rankings = append(rankings, Ranking{Player: r.Player, Rank: r.Rank})
	}
	return Result{
		ID:          string(g.ID),
		Title:       g.Title,
		Winner:      g.Winner(),
		Rankings:    rankings,
		Turns:       g.Turns,
		StartedAt:   g.StartedAt,
		CompletedAt: g.CompletedAt,
	}
}

// ResultList is the response for the results endpoint
type ResultList struct {
	Results []Result `json:"results"`
}

// ResultListFromModel converts a list of summaries
func ResultListFromModel(summaries []*model.GameSummary) ResultList {
	list := ResultList{Results: make([]Result, 0, len(summaries))}
	for _, g := range summaries {
		list.Results = append(list.Results, ResultFromModel(g))
	}
	return list
}

// Standing represents one leaderboard row
type Standing struct {
	Player      string  `json:"player"`
	Played      int     `json:"played"`
	Wins        int     `json:"wins"`
	AverageRank float64 `json:"average_rank"`
}

// Leaderboard is the response for the leaderboard endpoint
type Leaderboard struct {
	Standings []Standing `json:"standings"`
}

// LeaderboardFromStandings converts results.Standing rows
func LeaderboardFromStandings(standings []results.Standing) Leaderboard {
	board := Leaderboard{Standings: make([]Standing, 0, len(standings))}
	for _, s := range standings {
		board.Standings = append(board.Standings, Standing{
			Player:      s.Player,
			Played:      s.Played,
			Wins:        s.Wins,
			AverageRank: s.AverageRank,
		})
	}
	return board
}

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}
