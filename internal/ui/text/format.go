package text

import (
	"fmt"
	"strings"

	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/services/game"
)

// Glyphs used for plain text frames
const (
	GlyphEmpty  = '.'
	GlyphLocked = '#'
	GlyphActive = '@'
	GlyphGhost  = '+'
	GlyphWall   = '|'
	GlyphFloor  = '-'
)

// FormatFrame draws a snapshot with walls and floor, followed by a status line
func FormatFrame(snap game.Snapshot) string {
	var b strings.Builder
	for row := 0; row < snap.Height; row++ {
		b.WriteRune(GlyphWall)
		for col := 0; col < snap.Width; col++ {
			b.WriteRune(frameGlyph(snap, model.Cell{Col: col, Row: row}))
		}
		b.WriteRune(GlyphWall)
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(string(GlyphFloor), snap.Width+2))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "lines: %d  pieces: %d  state: %s\n", snap.LinesCleared, snap.Pieces, snap.State)
	return b.String()
}

func frameGlyph(snap game.Snapshot, c model.Cell) rune {
	for _, a := range snap.Active {
		if a == c {
			return GlyphActive
		}
	}
	color, ghost := snap.At(c)
	switch {
	case ghost:
		return GlyphGhost
	case !color.IsEmpty():
		return GlyphLocked
	default:
		return GlyphEmpty
	}
}

// FormatGrid draws the locked cells of a grid without walls
func FormatGrid(g *model.Grid) string {
	var b strings.Builder
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.IsOccupied(model.Cell{Col: col, Row: row}) {
				b.WriteRune(GlyphLocked)
			} else {
				b.WriteRune(GlyphEmpty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ShapeArt draws one rotation state of a shape in its 4x4 box, one string per row
func ShapeArt(state model.RotationState) []string {
	var box [4][4]bool
	for _, c := range state {
		if c.Row >= 0 && c.Row < 4 && c.Col >= 0 && c.Col < 4 {
			box[c.Row][c.Col] = true
		}
	}
	lines := make([]string, 4)
	for row := range box {
		var b strings.Builder
		for col := range box[row] {
			if box[row][col] {
				b.WriteRune(GlyphLocked)
			} else {
				b.WriteRune(GlyphEmpty)
			}
		}
		lines[row] = b.String()
	}
	return lines
}

// FormatShape lays every rotation state of a shape side by side under a title
func FormatShape(shape model.Shape) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s, %d rotations)\n", shape.Kind, shape.Color.Hex(), len(shape.Rotations))
	arts := make([][]string, len(shape.Rotations))
	for i, state := range shape.Rotations {
		arts[i] = ShapeArt(state)
	}
	for row := 0; row < 4; row++ {
		parts := make([]string, len(arts))
		for i := range arts {
			parts[i] = arts[i][row]
		}
		b.WriteString(strings.Join(parts, "  "))
		b.WriteByte('\n')
	}
	return b.String()
}
