package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/sugoroku/internal/api/response"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case BoardCheck:
		o.printBoardCheck(v)
	case ExportResult:
		o.printExportResult(v)
	case response.Result:
		o.printResult(v)
	case response.ResultList:
		o.printResultList(v)
	case response.Leaderboard:
		o.printLeaderboard(v)
	case GameOutcome:
		o.printGameOutcome(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// BoardCheck is the result of validating a board file
type BoardCheck struct {
	Path  string         `json:"path"`
	Board response.Board `json:"board"`
	// Text holds each area as the game shows it, start first
	Text []string `json:"-"`
}

// ExportResult names a written document
type ExportResult struct {
	Format string `json:"format"`
	Path   string `json:"path"`
}

// GameOutcome reports how a played game ended
type GameOutcome struct {
	ID       string             `json:"id"`
	Finished bool               `json:"finished"`
	Turns    int                `json:"turns"`
	Rankings []response.Ranking `json:"rankings"`
}

func (o *Output) printBoardCheck(b BoardCheck) {
	fmt.Fprintf(o.w, "Board: %s\n", b.Board.Title)
	fmt.Fprintf(o.w, "File: %s\n", b.Path)
	fmt.Fprintf(o.w, "Dice: %d-%d\n", b.Board.DiceMin, b.Board.DiceMax)
	fmt.Fprintf(o.w, "Areas: %d (goal at %d)\n", len(b.Board.Areas), b.Board.GoalIndex)
	for i, text := range b.Text {
		fmt.Fprintf(o.w, "\n[%d]\n%s", i, text)
	}
}

func (o *Output) printExportResult(e ExportResult) {
	fmt.Fprintf(o.w, "Wrote %s: %s\n", e.Format, e.Path)
}

func (o *Output) printResult(r response.Result) {
	fmt.Fprintf(o.w, "Game: %s\n", r.ID)
	fmt.Fprintf(o.w, "Board: %s\n", r.Title)
	fmt.Fprintf(o.w, "Turns: %d\n", r.Turns)
	fmt.Fprintf(o.w, "Completed: %s\n", r.CompletedAt.Format("2006-01-02 15:04"))
	o.printRankings(r.Rankings)
}

func (o *Output) printRankings(rankings []response.Ranking) {
	for _, rk := range rankings {
		fmt.Fprintf(o.w, "  %d. %s\n", rk.Rank, rk.Player)
	}
}

func (o *Output) printResultList(l response.ResultList) {
	if len(l.Results) == 0 {
		fmt.Fprintln(o.w, "No results recorded")
		return
	}
	for _, r := range l.Results {
		players := make([]string, 0, len(r.Rankings))
		for _, rk := range r.Rankings {
			players = append(players, rk.Player)
		}
		fmt.Fprintf(o.w, "%s  %s  %-20s %s\n",
			r.CompletedAt.Format("2006-01-02 15:04"), r.ID, r.Title, strings.Join(players, " > "))
	}
}

func (o *Output) printLeaderboard(l response.Leaderboard) {
	if len(l.Standings) == 0 {
		fmt.Fprintln(o.w, "No results recorded")
		return
	}
	fmt.Fprintf(o.w, "%-20s %6s %6s %8s\n", "Player", "Played", "Wins", "Avg rank")
	for _, s := range l.Standings {
		fmt.Fprintf(o.w, "%-20s %6d %6d %8.2f\n", s.Player, s.Played, s.Wins, s.AverageRank)
	}
}

func (o *Output) printGameOutcome(g GameOutcome) {
	if !g.Finished {
		fmt.Fprintf(o.w, "Game %s stopped after %d turn(s)\n", g.ID, g.Turns)
	} else {
		fmt.Fprintf(o.w, "Game %s finished after %d turn(s)\n", g.ID, g.Turns)
	}
	o.printRankings(g.Rankings)
}
