package bag

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/blockfall/internal/dependencies/random"
	"github.com/mcoot/blockfall/internal/model"
)

// DrawMode selects how a kind is taken out of the bag
type DrawMode string

const (
	// DrawModeShuffleAndPick shuffles on refill and then removes a uniformly
	// random index on every draw
	DrawModeShuffleAndPick DrawMode = "shuffle-pick"
	// DrawModePopFront shuffles on refill and removes from the front
	DrawModePopFront DrawMode = "pop-front"
)

// DefaultSpawn is where new pieces appear
var DefaultSpawn = model.Cell{Col: 3, Row: 0}

// Config holds bag randomizer settings
type Config struct {
	// Base is the multiset the bag is refilled from
	Base []model.ShapeKind
	// Mode selects the draw behavior
	Mode DrawMode
	// Spawn is the origin for created pieces
	Spawn model.Cell
}

// DefaultConfig returns every kind once, with J and L duplicated
func DefaultConfig() Config {
	return Config{
		Base: []model.ShapeKind{
			model.ShapeI, model.ShapeO, model.ShapeT, model.ShapeS,
			model.ShapeZ, model.ShapeJ, model.ShapeL,
			model.ShapeJ, model.ShapeL,
		},
		Mode:  DrawModeShuffleAndPick,
		Spawn: DefaultSpawn,
	}
}

// Validate checks the config is usable
func (c Config) Validate() error {
	if len(c.Base) == 0 {
		return fmt.Errorf("%w: bag base must not be empty", model.ErrInvalidConfig)
	}
	for _, k := range c.Base {
		if !k.IsValid() {
			return fmt.Errorf("%w: bag base contains %d", model.ErrUnknownShape, int(k))
		}
	}
	switch c.Mode {
	case DrawModeShuffleAndPick, DrawModePopFront:
	default:
		return fmt.Errorf("%w: unknown draw mode %q", model.ErrInvalidConfig, c.Mode)
	}
	return nil
}

// Service deals shape kinds from a shuffled, exhaustible bag
type Service struct {
	cfg       Config
	random    random.Random
	remaining []model.ShapeKind
	refills   int
	logger    *slog.Logger
}

// New creates a new bag Service
func New(cfg Config, rnd random.Random, logger *slog.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{
		cfg:    cfg,
		random: rnd,
		logger: logger.With(slog.String("component", "bag")),
	}, nil
}

// Next deals the next shape kind, refilling and shuffling the bag first if it is empty
func (s *Service) Next() model.ShapeKind {
	if len(s.remaining) == 0 {
		s.refill()
	}

	idx := 0
	if s.cfg.Mode == DrawModeShuffleAndPick {
		idx = s.random.Intn(len(s.remaining))
	}
	kind := s.remaining[idx]
	s.remaining = append(s.remaining[:idx], s.remaining[idx+1:]...)
	return kind
}

// CreateRandomPiece deals a kind and spawns a piece of it at rotation 0
func (s *Service) CreateRandomPiece() model.Piece {
	kind := s.Next()
	// Kinds were validated against the catalog in New
	piece, _ := model.NewPiece(kind, s.cfg.Spawn)
	return piece
}

// Remaining returns the kinds left in the current bag
func (s *Service) Remaining() []model.ShapeKind {
	out := make([]model.ShapeKind, len(s.remaining))
	copy(out, s.remaining)
	return out
}

// Refills returns how many times the bag has been refilled
func (s *Service) Refills() int {
	return s.refills
}

func (s *Service) refill() {
	s.remaining = make([]model.ShapeKind, len(s.cfg.Base))
	copy(s.remaining, s.cfg.Base)
	s.random.Shuffle(len(s.remaining), func(i, j int) {
		s.remaining[i], s.remaining[j] = s.remaining[j], s.remaining[i]
	})
	s.refills++
	s.logger.Debug("bag refilled",
		slog.Int("size", len(s.remaining)),
		slog.Int("refills", s.refills))
}

// Interface for dependency injection
type ServiceInterface interface {
	Next() model.ShapeKind
	CreateRandomPiece() model.Piece
}

var _ ServiceInterface = (*Service)(nil)
