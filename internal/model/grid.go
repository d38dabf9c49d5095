package model

// Default playfield dimensions
const (
	DefaultGridWidth  = 10
	DefaultGridHeight = 25
)

// Cell identifies a square on the grid
type Cell struct {
	Col int // 0-indexed from left
	Row int // 0-indexed from top, negative above the visible field
}

// Add returns the cell translated by the given deltas
func (c Cell) Add(dx, dy int) Cell {
	return Cell{Col: c.Col + dx, Row: c.Row + dy}
}

// Grid is the fixed-size matrix of locked cells
type Grid struct {
	Width  int
	Height int
	Cells  [][]Color // Row-major: Cells[row][col], zero Color means empty
}

// NewGrid creates an empty grid of the given dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]Color, height)
	for i := range cells {
		cells[i] = make([]Color, width)
	}
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// InBounds reports whether the cell lies within the side walls and above the floor.
// Rows above the field (negative) are in bounds.
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Width && c.Row < g.Height
}

// IsOccupied returns true if the cell holds a locked color.
// Cells above the field are never occupied.
func (g *Grid) IsOccupied(c Cell) bool {
	if c.Row < 0 || !g.InBounds(c) {
		return false
	}
	return !g.Cells[c.Row][c.Col].IsEmpty()
}

// Get returns the color at the given cell, or the empty color if it is not on the field
func (g *Grid) Get(c Cell) Color {
	if c.Row < 0 || !g.InBounds(c) {
		return Color{}
	}
	return g.Cells[c.Row][c.Col]
}

// Lock writes the color into every cell that is on the field.
// Cells above the field are dropped.
func (g *Grid) Lock(cells []Cell, color Color) {
	for _, c := range cells {
		if c.Row < 0 || !g.InBounds(c) {
			continue
		}
		g.Cells[c.Row][c.Col] = color
	}
}

// IsRowFull returns true if every column of the row holds a locked color
func (g *Grid) IsRowFull(row int) bool {
	if row < 0 || row >= g.Height {
		return false
	}
	for col := 0; col < g.Width; col++ {
		if g.Cells[row][col].IsEmpty() {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above it down and
// inserting empty rows at the top. Returns the number of rows removed.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for row := g.Height - 1; row >= 0; row-- {
		if !g.IsRowFull(row) {
			continue
		}
		cleared++
		for r := row; r > 0; r-- {
			g.Cells[r] = g.Cells[r-1]
		}
		g.Cells[0] = make([]Color, g.Width)
		// A new row has shifted into this index; look at it again
		row++
	}
	return cleared
}

// OccupiedCount returns the number of locked cells
func (g *Grid) OccupiedCount() int {
	count := 0
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if !g.Cells[row][col].IsEmpty() {
				count++
			}
		}
	}
	return count
}

// GetRow returns a copy of the given row
func (g *Grid) GetRow(row int) []Color {
	if row < 0 || row >= g.Height {
		return nil
	}
	result := make([]Color, g.Width)
	copy(result, g.Cells[row])
	return result
}

// ColumnHeight returns the height of the highest locked cell in the column, 0 if empty
func (g *Grid) ColumnHeight(col int) int {
	if col < 0 || col >= g.Width {
		return 0
	}
	for row := 0; row < g.Height; row++ {
		if !g.Cells[row][col].IsEmpty() {
			return g.Height - row
		}
	}
	return 0
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.Width, g.Height)
	for row := range g.Cells {
		copy(clone.Cells[row], g.Cells[row])
	}
	return clone
}

// Fits reports whether every cell of the piece is inside the walls, above the
// floor, and not on a locked cell. Cells above the field always fit.
func (g *Grid) Fits(p Piece) bool {
	for _, c := range p.Cells() {
		if !g.InBounds(c) {
			return false
		}
		if c.Row >= 0 && g.IsOccupied(c) {
			return false
		}
	}
	return true
}

// Drop returns the deepest copy of the piece, moving straight down, that still fits
func (g *Grid) Drop(p Piece) Piece {
	for {
		trial := p.Moved(0, 1)
		if !g.Fits(trial) {
			return p
		}
		p = trial
	}
}
