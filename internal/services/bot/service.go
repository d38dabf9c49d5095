package bot

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/blockfall/internal/dependencies/random"
	"github.com/mcoot/blockfall/internal/model"
)

// Board is the read-only view of the engine a bot plays against
type Board interface {
	Current() model.Piece
	Grid() *model.Grid
	IsValidPosition(p model.Piece) bool
	PiecesSpawned() int
	IsGameOver() bool
}

// plan tracks progress towards a placement for one piece
type plan struct {
	sequence  int // PiecesSpawned value when the plan was made
	target    Placement
	rotations int // Rotation commands issued so far
}

// Service is an input source that steers each piece to its strategy's placement,
// one command per poll, then soft-drops it
type Service struct {
	board    Board
	strategy Strategy
	plan     *plan
	logger   *slog.Logger
}

// NewService creates a new bot Service
func NewService(board Board, strategy Strategy, logger *slog.Logger) *Service {
	return &Service{
		board:    board,
		strategy: strategy,
		logger:   logger.With(slog.String("component", "bot")),
	}
}

// NewStrategy builds a strategy by name
func NewStrategy(name string, rnd random.Random) (Strategy, error) {
	switch name {
	case StrategyRandom:
		return NewRandomStrategy(rnd), nil
	case StrategyGreedy:
		return NewGreedyStrategy(DefaultWeights()), nil
	default:
		return nil, fmt.Errorf("%w: unknown bot strategy: %s", model.ErrInvalidConfig, name)
	}
}

// Poll returns the next command towards the current plan
func (s *Service) Poll() []model.Command {
	if s.board.IsGameOver() {
		return nil
	}

	piece := s.board.Current()
	if s.plan == nil || s.plan.sequence != s.board.PiecesSpawned() {
		s.plan = &plan{
			sequence: s.board.PiecesSpawned(),
			target:   s.strategy.ChoosePlacement(s.board.Grid(), piece),
		}
		s.logger.Debug("planned placement",
			slog.String("kind", piece.Kind.String()),
			slog.Int("rotation", s.plan.target.Rotation),
			slog.Int("col", s.plan.target.Col))
	}

	if cmd, ok := s.nextCommand(piece); ok {
		return []model.Command{cmd}
	}
	return []model.Command{model.CommandSoftDrop}
}

// nextCommand returns the rotation or shift still needed, abandoning any that is blocked
func (s *Service) nextCommand(piece model.Piece) (model.Command, bool) {
	p := s.plan
	if piece.Rotation != p.target.Rotation && p.rotations < piece.RotationCount() {
		if s.board.IsValidPosition(piece.Rotated()) {
			p.rotations++
			return model.CommandRotateForward, true
		}
		p.rotations = piece.RotationCount()
	}

	switch {
	case piece.Position.Col < p.target.Col:
		if s.board.IsValidPosition(piece.Moved(1, 0)) {
			return model.CommandMoveRight, true
		}
		p.target.Col = piece.Position.Col
	case piece.Position.Col > p.target.Col:
		if s.board.IsValidPosition(piece.Moved(-1, 0)) {
			return model.CommandMoveLeft, true
		}
		p.target.Col = piece.Position.Col
	}
	return "", false
}
