package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/sugoroku/internal/model"
	"github.com/mcoot/sugoroku/internal/testutil"
)

const testWorld = `
[general]
title = "River Trip"
opening_msg = "Paddle to the sea."
start_description = "The spring"
goal_description = "The sea"
dice_max = 6

[[area]]
description = "A calm pool"

[[area]]
description = "Rapids"
[[area.effect]]
element = "PushSelf: num=2"
[[area.effect]]
element = "SkipSelf: times=1"
`

type ConfigSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

// Roster tests

func (s *ConfigSuite) TestParseRoster() {
	roster, err := ParseRoster(strings.NewReader(`
[[player]]
name = "Alice"
[[player]]
name = "Bob"
`))
	s.Require().NoError(err)
	s.Equal([]string{"Alice", "Bob"}, roster.Order())
}

func (s *ConfigSuite) TestParseRosterDuplicate() {
	_, err := ParseRoster(strings.NewReader(`
[[player]]
name = "Alice"
[[player]]
name = "Alice"
`))
	s.ErrorIs(err, model.ErrDuplicatePlayer)
}

func (s *ConfigSuite) TestParseRosterEmpty() {
	_, err := ParseRoster(strings.NewReader(""))
	s.ErrorIs(err, model.ErrNoPlayer)
}

func (s *ConfigSuite) TestParseRosterMissingName() {
	_, err := ParseRoster(strings.NewReader("[[player]]\n"))
	s.ErrorIs(err, ErrMissingName)
}

func (s *ConfigSuite) TestParseRosterUnknownKey() {
	_, err := ParseRoster(strings.NewReader(`
[[player]]
name = "Alice"
colour = "red"
`))
	s.ErrorIs(err, ErrUnknownKey)
	s.Contains(err.Error(), "colour")
}

func (s *ConfigSuite) TestLoadRosterMissingFile() {
	_, err := LoadRoster(filepath.Join(s.dir, "missing.toml"))
	s.ErrorIs(err, os.ErrNotExist)
}

// World tests

func (s *ConfigSuite) TestParseDefinition() {
	def, err := ParseDefinition(strings.NewReader(testWorld))
	s.Require().NoError(err)

	s.Equal("River Trip", def.Title)
	s.Equal("Paddle to the sea.", def.OpeningMessage)
	s.Equal(6, def.DiceMax)
	s.False(def.AllowZeroDice)
	s.Require().Len(def.Areas, 2)
	s.Equal([]model.Effect{model.NoEffect()}, def.Areas[0].Effects())
	s.Equal([]model.Effect{model.PushSelf(2), model.SkipSelf(1)}, def.Areas[1].Effects())
}

func (s *ConfigSuite) TestLoadWorld() {
	path := s.writeFile("world.toml", testWorld)

	world, err := LoadWorld(path, testutil.NopLogger())
	s.Require().NoError(err)

	s.Equal(4, world.Len())
	start, _ := world.Area(0)
	s.Equal("The spring", start.Description())
	goal, _ := world.Area(world.GoalIndex())
	s.Equal("The sea", goal.Description())
}

func (s *ConfigSuite) TestLoadWorldAllowZeroDice() {
	path := s.writeFile("world.toml", "[general]\ndice_max = 3\nallow_zero_dice = true\n")

	world, err := LoadWorld(path, testutil.NopLogger())
	s.Require().NoError(err)
	s.Equal(0, world.DiceMin())
}

func (s *ConfigSuite) TestLoadWorldInvalidDiceMax() {
	path := s.writeFile("world.toml", "[general]\ntitle = \"No dice\"\n")

	_, err := LoadWorld(path, testutil.NopLogger())
	s.ErrorIs(err, model.ErrInvalidBoard)
	s.Contains(err.Error(), path)
}

func (s *ConfigSuite) TestParseDefinitionBadEffect() {
	_, err := ParseDefinition(strings.NewReader(`
[general]
dice_max = 6

[[area]]
description = "Broken"
[[area.effect]]
element = "SkipSelf: turns=3"
`))
	s.ErrorIs(err, model.ErrWrongParameter)
	s.Contains(err.Error(), "area 1")
}

func (s *ConfigSuite) TestParseDefinitionUnknownEffect() {
	_, err := ParseDefinition(strings.NewReader(`
[general]
dice_max = 6

[[area]]
description = "Odd"
[[area.effect]]
element = "Teleport: num=3"
`))
	s.ErrorIs(err, model.ErrAreaTypeNotFound)
}

func (s *ConfigSuite) TestParseDefinitionUnknownKey() {
	_, err := ParseDefinition(strings.NewReader("[general]\ndice_max = 6\ndice_min = 0\n"))
	s.ErrorIs(err, ErrUnknownKey)
}

func (s *ConfigSuite) TestParseDefinitionSyntaxError() {
	_, err := ParseDefinition(strings.NewReader("[general\n"))
	s.Error(err)
}

// Environment tests

func (s *ConfigSuite) TestLoadAppConfigDefaults() {
	for _, key := range []string{"SUGOROKU_LOCALE", "SUGOROKU_LOG_LEVEL", "SUGOROKU_LOG_FORMAT", "STORAGE_TYPE", "REDIS_URL", "SUGOROKU_HTTP_PORT"} {
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}

	cfg, err := LoadAppConfig()
	s.Require().NoError(err)
	s.Equal("warn", cfg.LogLevel)
	s.Equal(LogFormatJSON, cfg.LogFormat)
	s.Equal("memory", cfg.StorageType)
	s.Equal(8080, cfg.HTTPPort)
	s.Empty(cfg.Locale)
}

func (s *ConfigSuite) TestLoadAppConfigFromEnv() {
	s.T().Setenv("SUGOROKU_LOCALE", "ja")
	s.T().Setenv("STORAGE_TYPE", "redis")
	s.T().Setenv("REDIS_URL", "redis://cache:6379")
	s.T().Setenv("SUGOROKU_HTTP_PORT", "9090")

	cfg, err := LoadAppConfig()
	s.Require().NoError(err)
	s.Equal("ja", cfg.Locale)
	s.Equal("redis", cfg.StorageType)
	s.Equal("redis://cache:6379", cfg.RedisURL)
	s.Equal(9090, cfg.HTTPPort)
}

func (s *ConfigSuite) TestLoadAppConfigBadPort() {
	s.T().Setenv("SUGOROKU_HTTP_PORT", "eighty")

	_, err := LoadAppConfig()
	s.Error(err)
	s.Contains(err.Error(), "parse env:")
}

func (s *ConfigSuite) TestNewLogger() {
	var sb strings.Builder
	logger, err := NewLogger(&sb, "info", LogFormatText)
	s.Require().NoError(err)

	logger.Debug("hidden")
	logger.Info("shown", "player", "Alice")
	s.NotContains(sb.String(), "hidden")
	s.Contains(sb.String(), "player=Alice")

	_, err = NewLogger(&sb, "loud", LogFormatJSON)
	s.Error(err)
	_, err = NewLogger(&sb, "info", "xml")
	s.Error(err)
}
