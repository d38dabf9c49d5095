package bot

import (
	"math"

	"github.com/mcoot/blockfall/internal/model"
)

// Weights scores a board after a candidate placement; higher is better
type Weights struct {
	Lines           float64
	AggregateHeight float64
	Holes           float64
	Bumpiness       float64
	RowTransitions  float64
}

// DefaultWeights returns weights that play a steady, low game
func DefaultWeights() Weights {
	return Weights{
		Lines:           0.76,
		AggregateHeight: -0.51,
		Holes:           -0.36,
		Bumpiness:       -0.18,
		RowTransitions:  -0.05,
	}
}

// GreedyStrategy drops the piece in every rotation and column and keeps the best board
type GreedyStrategy struct {
	weights Weights
}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy(weights Weights) *GreedyStrategy {
	return &GreedyStrategy{weights: weights}
}

// ChoosePlacement evaluates every fitting placement from the piece's current row
func (s *GreedyStrategy) ChoosePlacement(grid *model.Grid, piece model.Piece) Placement {
	best := Placement{Rotation: piece.Rotation, Col: piece.Position.Col}
	bestScore := math.Inf(-1)

	for rotation := 0; rotation < piece.RotationCount(); rotation++ {
		// Origins up to 3 left of the wall can still fit for offset shapes
		for col := -3; col < grid.Width; col++ {
			candidate := piece
			candidate.Rotation = rotation
			candidate.Position.Col = col
			if !grid.Fits(candidate) {
				continue
			}
			score := s.score(grid, grid.Drop(candidate))
			if score > bestScore {
				bestScore = score
				best = Placement{Rotation: rotation, Col: col}
			}
		}
	}
	return best
}

// score locks the piece on a copy of the grid and evaluates the result
func (s *GreedyStrategy) score(grid *model.Grid, landed model.Piece) float64 {
	after := grid.Clone()
	after.Lock(landed.Cells(), landed.Color)
	lines := after.ClearFullRows()

	w := s.weights
	return w.Lines*float64(lines) +
		w.AggregateHeight*float64(aggregateHeight(after)) +
		w.Holes*float64(holes(after)) +
		w.Bumpiness*float64(bumpiness(after)) +
		w.RowTransitions*float64(rowTransitions(after))
}
