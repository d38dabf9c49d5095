package bot

import "github.com/mcoot/blockfall/internal/model"

// Strategy names
const (
	StrategyRandom = "random"
	StrategyGreedy = "greedy"
)

// ValidStrategies returns all valid strategy names
func ValidStrategies() []string {
	return []string{StrategyRandom, StrategyGreedy}
}

// Placement is where a strategy wants the active piece to land
type Placement struct {
	Rotation int // Target rotation index
	Col      int // Target origin column
}

// Strategy defines how a bot chooses a landing spot for each piece
type Strategy interface {
	ChoosePlacement(grid *model.Grid, piece model.Piece) Placement
}
