package bag

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blockfall/internal/dependencies/mocks"
	"github.com/mcoot/blockfall/internal/dependencies/random"
	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	svc, err := New(DefaultConfig(), s.random, testutil.NopLogger())
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) drawCycle(svc *Service) map[model.ShapeKind]int {
	counts := make(map[model.ShapeKind]int)
	for i := 0; i < len(DefaultConfig().Base); i++ {
		counts[svc.Next()]++
	}
	return counts
}

// Next tests

func (s *ServiceSuite) TestNextRefillsAndShufflesWhenEmpty() {
	s.service.Next()

	s.Equal([]int{9}, s.random.ShuffleCalls)
	s.Equal(1, s.service.Refills())
	s.Len(s.service.Remaining(), 8)
}

func (s *ServiceSuite) TestNextRemovesPickedIndex() {
	// Identity shuffle: bag is I O T S Z J L J L
	s.random.QueueIntn(2, 0)

	s.Equal(model.ShapeT, s.service.Next())
	s.Equal(model.ShapeI, s.service.Next())
	s.Equal([]model.ShapeKind{
		model.ShapeO, model.ShapeS, model.ShapeZ,
		model.ShapeJ, model.ShapeL, model.ShapeJ, model.ShapeL,
	}, s.service.Remaining())
}

func (s *ServiceSuite) TestFullCycleDealsDuplicatedKindsTwice() {
	counts := s.drawCycle(s.service)

	s.Len(counts, model.ShapeKindCount)
	for _, kind := range []model.ShapeKind{model.ShapeI, model.ShapeO, model.ShapeT, model.ShapeS, model.ShapeZ} {
		s.Equal(1, counts[kind], "kind %s", kind)
	}
	s.Equal(2, counts[model.ShapeJ])
	s.Equal(2, counts[model.ShapeL])
	s.Empty(s.service.Remaining())
	s.Equal(1, s.service.Refills())
}

func (s *ServiceSuite) TestFullCycleWithSeededRandom() {
	svc, err := New(DefaultConfig(), random.NewSeeded(1234), testutil.NopLogger())
	s.Require().NoError(err)

	for cycle := 0; cycle < 5; cycle++ {
		counts := s.drawCycle(svc)
		s.Len(counts, model.ShapeKindCount)
		s.Equal(2, counts[model.ShapeJ])
		s.Equal(2, counts[model.ShapeL])
		s.Equal(1, counts[model.ShapeI])
	}
	s.Equal(5, svc.Refills())
}

func (s *ServiceSuite) TestSecondCycleRefillsAgain() {
	s.drawCycle(s.service)
	s.service.Next()

	s.Equal([]int{9, 9}, s.random.ShuffleCalls)
	s.Equal(2, s.service.Refills())
}

func (s *ServiceSuite) TestPopFrontIgnoresIndexDraw() {
	cfg := DefaultConfig()
	cfg.Mode = DrawModePopFront
	svc, err := New(cfg, s.random, testutil.NopLogger())
	s.Require().NoError(err)

	s.random.QueueIntn(5, 5, 5)
	s.Equal(model.ShapeI, svc.Next())
	s.Equal(model.ShapeO, svc.Next())
	s.Equal(model.ShapeT, svc.Next())
}

func (s *ServiceSuite) TestShuffleOrderIsRespected() {
	cfg := DefaultConfig()
	cfg.Mode = DrawModePopFront
	svc, err := New(cfg, s.random, testutil.NopLogger())
	s.Require().NoError(err)

	// Reverse the bag
	s.random.ShuffleFunc = func(n int, swap func(i, j int)) {
		for i := 0; i < n/2; i++ {
			swap(i, n-1-i)
		}
	}

	s.Equal(model.ShapeL, svc.Next())
	s.Equal(model.ShapeJ, svc.Next())
	s.Equal(model.ShapeL, svc.Next())
}

// CreateRandomPiece tests

func (s *ServiceSuite) TestCreateRandomPieceSpawnsAtDefaultPosition() {
	s.random.QueueIntn(1) // O

	piece := s.service.CreateRandomPiece()

	s.Equal(model.ShapeO, piece.Kind)
	s.Equal(0, piece.Rotation)
	s.Equal(model.Cell{Col: 3, Row: 0}, piece.Position)
	s.Equal(model.Color{R: 255, G: 255, B: 0, A: 255}, piece.Color)
}

// Config tests

func (s *ServiceSuite) TestNewRejectsEmptyBase() {
	cfg := DefaultConfig()
	cfg.Base = nil
	_, err := New(cfg, s.random, testutil.NopLogger())
	s.ErrorIs(err, model.ErrInvalidConfig)
}

func (s *ServiceSuite) TestNewRejectsUnknownKind() {
	cfg := DefaultConfig()
	cfg.Base = []model.ShapeKind{model.ShapeI, model.ShapeKind(42)}
	_, err := New(cfg, s.random, testutil.NopLogger())
	s.ErrorIs(err, model.ErrUnknownShape)
}

func (s *ServiceSuite) TestNewRejectsUnknownMode() {
	cfg := DefaultConfig()
	cfg.Mode = "lottery"
	_, err := New(cfg, s.random, testutil.NopLogger())
	s.ErrorIs(err, model.ErrInvalidConfig)
}
