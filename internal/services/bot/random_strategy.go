package bot

import (
	"github.com/mcoot/blockfall/internal/dependencies/random"
	"github.com/mcoot/blockfall/internal/model"
)

// RandomStrategy picks a random rotation and a random column
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChoosePlacement returns a random rotation and an origin column in [-2, width).
// Origins left of the wall are reachable for shapes with empty leading columns.
func (s *RandomStrategy) ChoosePlacement(grid *model.Grid, piece model.Piece) Placement {
	return Placement{
		Rotation: s.random.Intn(piece.RotationCount()),
		Col:      s.random.Intn(grid.Width+2) - 2,
	}
}
