package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/services/game"
)

func TestBlockRect(t *testing.T) {
	assert.Equal(t, Rect{X: 200, Y: 100, W: 20, H: 20}, BlockRect(model.Cell{Col: 0, Row: 0}))
	assert.Equal(t, Rect{X: 380, Y: 580, W: 20, H: 20}, BlockRect(model.Cell{Col: 9, Row: 24}))
	assert.Equal(t, Rect{X: 180, Y: 100, W: 20, H: 20}, BlockRect(model.Cell{Col: -1, Row: 0}))
}

func TestBorderCells(t *testing.T) {
	cells := BorderCells(10, 25)

	assert.Len(t, cells, 10+2*25)
	assert.Contains(t, cells, model.Cell{Col: 0, Row: 25})
	assert.Contains(t, cells, model.Cell{Col: -1, Row: 24})
	assert.Contains(t, cells, model.Cell{Col: 10, Row: 0})
	assert.NotContains(t, cells, model.Cell{Col: -1, Row: 25})
}

func TestInputFiresOnPressAndRepeat(t *testing.T) {
	held := map[ebiten.Key]int{}
	in := &Input{pressDuration: func(k ebiten.Key) int { return held[k] }}

	assert.Empty(t, in.Poll())

	held[ebiten.KeyLeft] = 1
	assert.Equal(t, []model.Command{model.CommandMoveLeft}, in.Poll())

	held[ebiten.KeyLeft] = 2
	assert.Empty(t, in.Poll())

	held[ebiten.KeyLeft] = repeatDelay
	assert.Equal(t, []model.Command{model.CommandMoveLeft}, in.Poll())

	held[ebiten.KeyLeft] = repeatDelay + 1
	assert.Empty(t, in.Poll())

	held[ebiten.KeyLeft] = repeatDelay + repeatInterval
	assert.Equal(t, []model.Command{model.CommandMoveLeft}, in.Poll())
}

func TestInputQuitDoesNotRepeat(t *testing.T) {
	held := map[ebiten.Key]int{ebiten.KeyQ: repeatDelay}
	in := &Input{pressDuration: func(k ebiten.Key) int { return held[k] }}
	assert.Empty(t, in.Poll())

	held[ebiten.KeyQ] = 1
	assert.Equal(t, []model.Command{model.CommandQuit}, in.Poll())
}

func TestInputWASD(t *testing.T) {
	held := map[ebiten.Key]int{ebiten.KeyW: 1, ebiten.KeyD: 1}
	in := &Input{pressDuration: func(k ebiten.Key) int { return held[k] }}

	assert.Equal(t, []model.Command{model.CommandMoveRight, model.CommandRotateForward}, in.Poll())
}

func TestRendererKeepsLatestSnapshot(t *testing.T) {
	r := &Renderer{}
	_, ok := r.Latest()
	assert.False(t, ok)

	require.NoError(t, r.Render(game.Snapshot{Pieces: 1}))
	require.NoError(t, r.Render(game.Snapshot{Pieces: 2}))

	snap, ok := r.Latest()
	require.True(t, ok)
	assert.Equal(t, 2, snap.Pieces)
}
