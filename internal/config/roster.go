package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mcoot/sugoroku/internal/model"
)

// ErrMissingName is returned for a player entry without a name
var ErrMissingName = errors.New("player has no name")

// rosterFile is the layout of a player list:
//
//	[[player]]
//	name = "Alice"
type rosterFile struct {
	Player []struct {
		Name string `toml:"name"`
	} `toml:"player"`
}

// LoadRoster reads a player list file
func LoadRoster(path string) (*model.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	roster, err := ParseRoster(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return roster, nil
}

// ParseRoster decodes a player list in turn order
func ParseRoster(r io.Reader) (*model.Roster, error) {
	var file rosterFile
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, err
	}
	if err := rejectUndecoded(md); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(file.Player))
	for i, p := range file.Player {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrMissingName, i+1)
		}
		names = append(names, p.Name)
	}
	return model.NewRoster(names)
}

// rejectUndecoded fails on keys that do not map to any field
func rejectUndecoded(md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownKey, undecoded[0])
	}
	return nil
}
