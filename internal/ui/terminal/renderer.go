package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/services/game"
	"github.com/mcoot/blockfall/internal/services/session"
)

const (
	// cellWidth is the number of terminal columns per grid cell, so blocks look square
	cellWidth = 2
	// originX and originY are the top-left of the left wall
	originX = 1
	originY = 1
	// statusGap is the space between the right wall and the status text
	statusGap = 3
)

const (
	runeBlock = '█'
	runeGhost = '░'
)

var (
	wallStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	emptyStyle = tcell.StyleDefault
)

// Renderer draws snapshots onto a tcell screen
type Renderer struct {
	screen tcell.Screen
}

// Ensure Renderer implements session.Renderer
var _ session.Renderer = (*Renderer)(nil)

// NewRenderer creates a Renderer for an initialised screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the field, walls, floor and status, then shows the frame
func (r *Renderer) Render(snap game.Snapshot) error {
	r.screen.Clear()

	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			r.drawCell(snap, model.Cell{Col: col, Row: row})
		}
	}
	r.drawBorder(snap.Width, snap.Height)
	r.drawStatus(snap)

	r.screen.Show()
	return nil
}

// ScreenPos returns the terminal position of the first column of a grid cell
func ScreenPos(c model.Cell) (x, y int) {
	return originX + cellWidth + c.Col*cellWidth, originY + c.Row
}

func (r *Renderer) drawCell(snap game.Snapshot, c model.Cell) {
	color, ghost := snap.At(c)
	ch, style := ' ', emptyStyle
	switch {
	case ghost:
		ch, style = runeGhost, tcell.StyleDefault.Foreground(toTcell(color)).Dim(true)
	case !color.IsEmpty():
		ch, style = runeBlock, tcell.StyleDefault.Foreground(toTcell(color))
	}
	r.fillCell(c, ch, style)
}

// drawBorder draws the side walls and the floor one cell outside the field
func (r *Renderer) drawBorder(width, height int) {
	for row := 0; row <= height; row++ {
		r.fillCell(model.Cell{Col: -1, Row: row}, runeBlock, wallStyle)
		r.fillCell(model.Cell{Col: width, Row: row}, runeBlock, wallStyle)
	}
	for col := 0; col < width; col++ {
		r.fillCell(model.Cell{Col: col, Row: height}, runeBlock, wallStyle)
	}
}

func (r *Renderer) drawStatus(snap game.Snapshot) {
	x, y := ScreenPos(model.Cell{Col: snap.Width + 1, Row: 0})
	x += statusGap
	r.drawText(x, y, fmt.Sprintf("Lines: %d", snap.LinesCleared))
	r.drawText(x, y+1, fmt.Sprintf("Pieces: %d", snap.Pieces))
	if snap.State.IsTerminal() {
		r.drawText(x, y+3, "GAME OVER")
	}
	r.drawText(x, y+5, "arrows/wasd: move, rotate")
	r.drawText(x, y+6, "q/esc: quit")
}

func (r *Renderer) fillCell(c model.Cell, ch rune, style tcell.Style) {
	x, y := ScreenPos(c)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawText(x, y int, s string) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, textStyle)
	}
}

func toTcell(c model.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
