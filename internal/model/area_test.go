package model

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/sugoroku/internal/locale"
)

type AreaSuite struct {
	suite.Suite
}

func TestAreaSuite(t *testing.T) {
	suite.Run(t, new(AreaSuite))
}

func (s *AreaSuite) TestDefaultsToNoEffect() {
	area := NewArea("Meadow")
	s.Equal([]Effect{NoEffect()}, area.Effects())
}

func (s *AreaSuite) TestDescribe() {
	area := NewArea("A windy bridge", PushSelf(2), SkipSelf(1))

	described := area.Describe(locale.NewPrinter(locale.English))
	s.Equal("A windy bridge\n\nEffects\n- Advance 2 square(s).\n- Skip the next 1 turn(s).\n", described)
}

func (s *AreaSuite) TestDescribeJapanese() {
	area := NewArea("橋")

	described := area.Describe(locale.NewPrinter(locale.Japanese))
	s.Equal("橋\n\n効果\n- なし\n", described)
}

func (s *AreaSuite) TestExecuteInOrder() {
	statuses := map[string]*PlayerStatus{"A": NewPlayerStatus()}
	area := NewArea("", PushSelf(4), PullSelf(1), SkipSelf(2))

	s.Require().NoError(area.Execute("A", []string{"A"}, statuses))
	s.Equal(3, statuses["A"].Position())
	s.Equal(uint8(2), statuses["A"].PendingSkips())
}

func (s *AreaSuite) TestExecuteAbortsWithoutRollback() {
	statuses := map[string]*PlayerStatus{"A": NewPlayerStatus()}
	area := NewArea("", PushOthersAll(1), SkipSelf(1))

	err := area.Execute("A", []string{"A", "Ghost"}, statuses)
	s.ErrorIs(err, ErrPlayerNotFound)
	s.Equal(uint8(0), statuses["A"].PendingSkips())

	area = NewArea("", PushSelf(2), PushSelf(1))
	err = area.Execute("Ghost", []string{"A"}, statuses)
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *AreaSuite) TestEffectsIsACopy() {
	area := NewArea("", PushSelf(2))
	effects := area.Effects()
	effects[0] = GoToStart()
	s.Equal(PushSelf(2), area.Effects()[0])
}
