package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mcoot/sugoroku/internal/model"
	"github.com/mcoot/sugoroku/internal/services/board"
)

// ErrUnknownKey is returned when a board or player file has a key nobody reads
var ErrUnknownKey = errors.New("unknown key")

// worldFile is the layout of a board file:
//
//	[general]
//	title = "..."
//	opening_msg = "..."
//	start_description = "..."
//	goal_description = "..."
//	dice_max = 6
//
//	[[area]]
//	description = "..."
//	[[area.effect]]
//	element = "PushSelf: num=2"
type worldFile struct {
	General struct {
		Title            string `toml:"title"`
		OpeningMessage   string `toml:"opening_msg"`
		StartDescription string `toml:"start_description"`
		GoalDescription  string `toml:"goal_description"`
		DiceMax          int    `toml:"dice_max"`
		AllowZeroDice    bool   `toml:"allow_zero_dice"`
	} `toml:"general"`
	Area []struct {
		Description string `toml:"description"`
		Effect      []struct {
			Element string `toml:"element"`
		} `toml:"effect"`
	} `toml:"area"`
}

// LoadWorld reads a board file
func LoadWorld(path string, logger *slog.Logger) (*board.World, error) {
	def, err := LoadDefinition(path)
	if err != nil {
		return nil, err
	}
	world, err := board.New(def, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return world, nil
}

// LoadDefinition reads a board file without building the world
func LoadDefinition(path string) (board.Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return board.Definition{}, err
	}
	defer f.Close()

	def, err := ParseDefinition(f)
	if err != nil {
		return board.Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// ParseDefinition decodes a board file. Every effect string is parsed here
// so a bad board fails before any game starts.
func ParseDefinition(r io.Reader) (board.Definition, error) {
	var file worldFile
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return board.Definition{}, err
	}
	if err := rejectUndecoded(md); err != nil {
		return board.Definition{}, err
	}

	areas := make([]model.Area, 0, len(file.Area))
	for i, a := range file.Area {
		effects := make([]model.Effect, 0, len(a.Effect))
		for _, e := range a.Effect {
			effect, err := model.ParseEffect(e.Element)
			if err != nil {
				// Area indexes in messages count the start square
				return board.Definition{}, fmt.Errorf("area %d: %w", i+1, err)
			}
			effects = append(effects, effect)
		}
		areas = append(areas, model.NewArea(a.Description, effects...))
	}

	return board.Definition{
		Title:            file.General.Title,
		OpeningMessage:   file.General.OpeningMessage,
		StartDescription: file.General.StartDescription,
		GoalDescription:  file.General.GoalDescription,
		DiceMax:          file.General.DiceMax,
		AllowZeroDice:    file.General.AllowZeroDice,
		Areas:            areas,
	}, nil
}
