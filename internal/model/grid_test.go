package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

var testColor = Color{R: 10, G: 20, B: 30, A: 255}

type GridSuite struct {
	suite.Suite
	grid *Grid
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridSuite))
}

func (s *GridSuite) SetupTest() {
	s.grid = NewGrid(DefaultGridWidth, DefaultGridHeight)
}

func (s *GridSuite) fillRow(row int, except ...int) {
	skip := make(map[int]bool)
	for _, col := range except {
		skip[col] = true
	}
	for col := 0; col < s.grid.Width; col++ {
		if !skip[col] {
			s.grid.Lock([]Cell{{Col: col, Row: row}}, Color{R: uint8(row), A: 255})
		}
	}
}

// Bounds tests

func (s *GridSuite) TestInBounds() {
	s.True(s.grid.InBounds(Cell{Col: 0, Row: 0}))
	s.True(s.grid.InBounds(Cell{Col: 9, Row: 24}))
	s.True(s.grid.InBounds(Cell{Col: 5, Row: -4}))
	s.False(s.grid.InBounds(Cell{Col: -1, Row: 0}))
	s.False(s.grid.InBounds(Cell{Col: 10, Row: 0}))
	s.False(s.grid.InBounds(Cell{Col: 0, Row: 25}))
}

func (s *GridSuite) TestIsOccupiedIgnoresRowsAboveField() {
	s.False(s.grid.IsOccupied(Cell{Col: 3, Row: -1}))
	s.False(s.grid.IsOccupied(Cell{Col: 30, Row: 3}))

	s.grid.Lock([]Cell{{Col: 3, Row: 0}}, testColor)
	s.True(s.grid.IsOccupied(Cell{Col: 3, Row: 0}))
}

// Lock tests

func (s *GridSuite) TestLockDropsCellsAboveField() {
	s.grid.Lock([]Cell{{Col: 4, Row: -1}, {Col: 4, Row: 0}, {Col: 5, Row: -2}}, testColor)

	s.Equal(1, s.grid.OccupiedCount())
	s.Equal(testColor, s.grid.Get(Cell{Col: 4, Row: 0}))
	s.True(s.grid.Get(Cell{Col: 4, Row: -1}).IsEmpty())
}

// ClearFullRows tests

func (s *GridSuite) TestClearFullRowsIgnoresPartialRows() {
	s.fillRow(24, 5)
	s.fillRow(23, 0, 9)

	s.Equal(0, s.grid.ClearFullRows())
	s.Equal(9+8, s.grid.OccupiedCount())
}

func (s *GridSuite) TestClearSingleRowShiftsAboveDown() {
	s.fillRow(24)
	s.grid.Lock([]Cell{{Col: 2, Row: 23}, {Col: 7, Row: 22}}, testColor)

	s.Equal(1, s.grid.ClearFullRows())

	s.True(s.grid.IsOccupied(Cell{Col: 2, Row: 24}))
	s.True(s.grid.IsOccupied(Cell{Col: 7, Row: 23}))
	s.Equal(2, s.grid.OccupiedCount())
	s.Equal(DefaultGridHeight, len(s.grid.Cells))
}

func (s *GridSuite) TestClearAdjacentRowsReexaminesIndex() {
	s.fillRow(24)
	s.fillRow(23)
	s.fillRow(22, 4)

	s.Equal(2, s.grid.ClearFullRows())

	// The partial row fell two places
	s.Equal(Color{R: 22, A: 255}, s.grid.Get(Cell{Col: 0, Row: 24}))
	s.True(s.grid.Get(Cell{Col: 4, Row: 24}).IsEmpty())
	s.Equal(9, s.grid.OccupiedCount())
}

func (s *GridSuite) TestClearPreservesOrderOfSurvivingRows() {
	s.fillRow(24)
	s.fillRow(23, 1)
	s.fillRow(22)
	s.fillRow(21, 2)
	s.fillRow(20)

	s.Equal(3, s.grid.ClearFullRows())

	s.Equal(Color{R: 23, A: 255}, s.grid.Get(Cell{Col: 0, Row: 24}))
	s.Equal(Color{R: 21, A: 255}, s.grid.Get(Cell{Col: 0, Row: 23}))
	s.Equal(18, s.grid.OccupiedCount())
	for row := 0; row < 23; row++ {
		s.Empty(nonEmpty(s.grid.GetRow(row)), "row %d", row)
	}
	s.Len(s.grid.Cells, DefaultGridHeight)
	for _, row := range s.grid.Cells {
		s.Len(row, DefaultGridWidth)
	}
}

func (s *GridSuite) TestClearTopRow() {
	s.fillRow(0)

	s.Equal(1, s.grid.ClearFullRows())
	s.Equal(0, s.grid.OccupiedCount())
}

// Helpers tests

func (s *GridSuite) TestColumnHeight() {
	s.Equal(0, s.grid.ColumnHeight(3))
	s.grid.Lock([]Cell{{Col: 3, Row: 20}, {Col: 3, Row: 24}}, testColor)
	s.Equal(5, s.grid.ColumnHeight(3))
	s.Equal(0, s.grid.ColumnHeight(-1))
}

func (s *GridSuite) TestCloneIsDeep() {
	s.grid.Lock([]Cell{{Col: 1, Row: 1}}, testColor)
	clone := s.grid.Clone()
	clone.Lock([]Cell{{Col: 2, Row: 2}}, testColor)

	s.Equal(1, s.grid.OccupiedCount())
	s.Equal(2, clone.OccupiedCount())
}

func (s *GridSuite) TestGetRowOutOfRange() {
	s.Nil(s.grid.GetRow(-1))
	s.Nil(s.grid.GetRow(25))
	s.Len(s.grid.GetRow(0), DefaultGridWidth)
}

func nonEmpty(row []Color) []Color {
	var out []Color
	for _, c := range row {
		if !c.IsEmpty() {
			out = append(out, c)
		}
	}
	return out
}
