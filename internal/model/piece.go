package model

// Piece is a live, positioned instance of a shape kind.
// Pieces are values: copy one to try a move, and keep the copy if it is valid.
type Piece struct {
	Kind     ShapeKind
	Rotation int  // Index into the shape's rotation states
	Position Cell // Origin the rotation offsets are relative to
	Color    Color
}

// NewPiece creates a piece of the given kind at rotation 0
func NewPiece(kind ShapeKind, position Cell) (Piece, error) {
	shape, err := LookupShape(kind)
	if err != nil {
		return Piece{}, err
	}
	return Piece{
		Kind:     kind,
		Rotation: 0,
		Position: position,
		Color:    shape.Color,
	}, nil
}

// RotationCount returns the number of rotation states for the piece's kind
func (p Piece) RotationCount() int {
	return len(shapeCatalog[p.Kind].Rotations)
}

// Cells returns the four absolute cells the piece occupies
func (p Piece) Cells() []Cell {
	offsets := shapeCatalog[p.Kind].Rotations[p.Rotation]
	cells := make([]Cell, len(offsets))
	for i, off := range offsets {
		cells[i] = p.Position.Add(off.Col, off.Row)
	}
	return cells
}

// RotateForward advances to the next rotation state, wrapping to 0
func (p *Piece) RotateForward() {
	p.Rotation = (p.Rotation + 1) % p.RotationCount()
}

// RotateBackward steps back to the previous rotation state
func (p *Piece) RotateBackward() {
	n := p.RotationCount()
	p.Rotation = (p.Rotation - 1 + n) % n
}

// Translate shifts the piece position
func (p *Piece) Translate(dx, dy int) {
	p.Position = p.Position.Add(dx, dy)
}

// Moved returns a copy of the piece translated by the given deltas
func (p Piece) Moved(dx, dy int) Piece {
	p.Translate(dx, dy)
	return p
}

// Rotated returns a copy of the piece rotated forward
func (p Piece) Rotated() Piece {
	p.RotateForward()
	return p
}
