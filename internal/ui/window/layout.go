package window

import "github.com/mcoot/blockfall/internal/model"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	BlockSize    = 20
	// PlayfieldLeft and PlayfieldTop are the pixel position of grid cell (0, 0)
	PlayfieldLeft = 200
	PlayfieldTop  = 100
	// GhostAlpha is the opacity of the landing projection
	GhostAlpha = 64
)

// Rect is a block on screen in pixels
type Rect struct {
	X, Y, W, H float32
}

// BlockRect returns the screen rectangle of a grid cell; walls and floor use
// cells just outside the field
func BlockRect(c model.Cell) Rect {
	return Rect{
		X: float32(PlayfieldLeft + c.Col*BlockSize),
		Y: float32(PlayfieldTop + c.Row*BlockSize),
		W: BlockSize,
		H: BlockSize,
	}
}

// BorderCells lists the floor row under the field and the two side walls
func BorderCells(width, height int) []model.Cell {
	cells := make([]model.Cell, 0, width+2*height)
	for col := 0; col < width; col++ {
		cells = append(cells, model.Cell{Col: col, Row: height})
	}
	for row := 0; row < height; row++ {
		cells = append(cells, model.Cell{Col: -1, Row: row}, model.Cell{Col: width, Row: row})
	}
	return cells
}
