package bot

import "github.com/mcoot/blockfall/internal/model"

// aggregateHeight sums the height of every column
func aggregateHeight(g *model.Grid) int {
	sum := 0
	for col := 0; col < g.Width; col++ {
		sum += g.ColumnHeight(col)
	}
	return sum
}

// holes counts empty cells that have a locked cell somewhere above them
func holes(g *model.Grid) int {
	count := 0
	for col := 0; col < g.Width; col++ {
		covered := false
		for row := 0; row < g.Height; row++ {
			occupied := g.IsOccupied(model.Cell{Col: col, Row: row})
			if occupied {
				covered = true
			} else if covered {
				count++
			}
		}
	}
	return count
}

// bumpiness sums the height differences between neighbouring columns
func bumpiness(g *model.Grid) int {
	sum := 0
	for col := 0; col+1 < g.Width; col++ {
		d := g.ColumnHeight(col) - g.ColumnHeight(col+1)
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// rowTransitions counts filled/empty changes along each row, with the walls filled
func rowTransitions(g *model.Grid) int {
	sum := 0
	for row := 0; row < g.Height; row++ {
		prev := true
		for col := 0; col < g.Width; col++ {
			cur := g.IsOccupied(model.Cell{Col: col, Row: row})
			if cur != prev {
				sum++
			}
			prev = cur
		}
		if !prev {
			sum++
		}
	}
	return sum
}
