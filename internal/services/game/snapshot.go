package game

import "github.com/mcoot/blockfall/internal/model"

// Snapshot is everything a renderer needs for one frame
type Snapshot struct {
	Width        int
	Height       int
	Cells        [][]model.Color // Locked cells, Cells[row][col]
	Active       []model.Cell
	ActiveColor  model.Color
	Ghost        []model.Cell
	GhostColor   model.Color
	State        model.GameState
	LinesCleared int
	Pieces       int
}

// Ghost returns the landing projection of the active piece
func (e *Engine) Ghost() model.Piece {
	return e.ComputeGhost(e.current)
}

// Snapshot copies the render-visible state of the engine
func (e *Engine) Snapshot() Snapshot {
	ghost := e.Ghost()
	return Snapshot{
		Width:        e.grid.Width,
		Height:       e.grid.Height,
		Cells:        e.grid.Clone().Cells,
		Active:       e.current.Cells(),
		ActiveColor:  e.current.Color,
		Ghost:        ghost.Cells(),
		GhostColor:   ghost.Color,
		State:        e.state,
		LinesCleared: e.linesCleared,
		Pieces:       e.pieces,
	}
}

// At returns the color to draw at a field cell, and whether it is a ghost cell.
// The active piece is drawn over the ghost, which is drawn over locked cells.
func (s Snapshot) At(c model.Cell) (model.Color, bool) {
	for _, a := range s.Active {
		if a == c {
			return s.ActiveColor, false
		}
	}
	for _, g := range s.Ghost {
		if g == c {
			return s.GhostColor, true
		}
	}
	if c.Row < 0 || c.Row >= s.Height || c.Col < 0 || c.Col >= s.Width {
		return model.Color{}, false
	}
	return s.Cells[c.Row][c.Col], false
}
