package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blockfall/internal/dependencies/mocks"
	"github.com/mcoot/blockfall/internal/events"
	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/services/bag"
	"github.com/mcoot/blockfall/internal/services/game"
	"github.com/mcoot/blockfall/internal/testutil"
)

// kindBag always deals the same kind
type kindBag struct {
	kind model.ShapeKind
}

func (b *kindBag) Next() model.ShapeKind {
	return b.kind
}

func (b *kindBag) CreateRandomPiece() model.Piece {
	piece, _ := model.NewPiece(b.kind, bag.DefaultSpawn)
	return piece
}

// fixedStrategy returns the same placement and counts how often it was asked
type fixedStrategy struct {
	placement Placement
	calls     int
}

func (f *fixedStrategy) ChoosePlacement(_ *model.Grid, _ model.Piece) Placement {
	f.calls++
	return f.placement
}

type ServiceSuite struct {
	suite.Suite
	clock    *mocks.MockClock
	engine   *game.Engine
	strategy *fixedStrategy
	bot      *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.strategy = &fixedStrategy{}
	s.withKind(model.ShapeT)
}

func (s *ServiceSuite) withKind(kind model.ShapeKind) {
	engine, err := game.NewEngine(game.DefaultConfig(), &kindBag{kind: kind}, s.clock, events.Discard{}, testutil.NopLogger())
	s.Require().NoError(err)
	s.engine = engine
	s.bot = NewService(engine, s.strategy, testutil.NopLogger())
}

// pollAndApply issues one bot poll against the engine and returns what it asked for
func (s *ServiceSuite) pollAndApply() model.Command {
	cmds := s.bot.Poll()
	s.Require().Len(cmds, 1)
	_, err := s.engine.Apply(cmds[0])
	s.Require().NoError(err)
	return cmds[0]
}

// Poll tests

func (s *ServiceSuite) TestPollRotatesThenShiftsThenDrops() {
	s.strategy.placement = Placement{Rotation: 1, Col: 5}

	s.Equal(model.CommandRotateForward, s.pollAndApply())
	s.Equal(model.CommandMoveRight, s.pollAndApply())
	s.Equal(model.CommandMoveRight, s.pollAndApply())
	s.Equal(model.CommandSoftDrop, s.pollAndApply())

	current := s.engine.Current()
	s.Equal(1, current.Rotation)
	s.Equal(5, current.Position.Col)
	s.Equal(1, current.Position.Row)
}

func (s *ServiceSuite) TestPollShiftsLeft() {
	s.strategy.placement = Placement{Rotation: 0, Col: 1}

	s.Equal(model.CommandMoveLeft, s.pollAndApply())
	s.Equal(model.CommandMoveLeft, s.pollAndApply())
	s.Equal(model.CommandSoftDrop, s.pollAndApply())
	s.Equal(1, s.engine.Current().Position.Col)
}

func (s *ServiceSuite) TestPollGivesUpOnBlockedShift() {
	s.strategy.placement = Placement{Rotation: 0, Col: -5}

	// T at rotation 0 occupies offset columns 0..2, so origin 0 is the wall
	for i := 0; i < 3; i++ {
		s.Equal(model.CommandMoveLeft, s.pollAndApply())
	}
	s.Equal(model.CommandSoftDrop, s.pollAndApply())
	s.Equal(0, s.engine.Current().Position.Col)
}

func (s *ServiceSuite) TestPollPlansOncePerPiece() {
	s.strategy.placement = Placement{Rotation: 0, Col: 3}

	s.bot.Poll()
	s.bot.Poll()
	s.Equal(1, s.strategy.calls)

	for !s.engine.Tick().Locked {
	}
	s.bot.Poll()
	s.Equal(2, s.strategy.calls)
}

func (s *ServiceSuite) TestPollReturnsNothingAfterGameOver() {
	for !s.engine.IsGameOver() {
		s.engine.Tick()
	}
	s.Nil(s.bot.Poll())
}

func (s *ServiceSuite) TestGreedyBotSurvivesLongerThanIdle() {
	s.withKind(model.ShapeO)
	s.bot = NewService(s.engine, NewGreedyStrategy(DefaultWeights()), testutil.NopLogger())

	// O pieces packed edge to edge fill rows, so the greedy bot should clear lines
	for i := 0; i < 2000 && !s.engine.IsGameOver(); i++ {
		for _, cmd := range s.bot.Poll() {
			_, _ = s.engine.Apply(cmd)
		}
		s.engine.Tick()
	}
	s.Positive(s.engine.LinesCleared())
}

// NewStrategy tests

func (s *ServiceSuite) TestNewStrategyByName() {
	for _, name := range ValidStrategies() {
		strategy, err := NewStrategy(name, mocks.NewMockRandom())
		s.NoError(err)
		s.NotNil(strategy)
	}
}

func (s *ServiceSuite) TestNewStrategyUnknown() {
	_, err := NewStrategy("clairvoyant", mocks.NewMockRandom())
	s.ErrorIs(err, model.ErrInvalidConfig)
}
