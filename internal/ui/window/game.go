package window

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/services/game"
	"github.com/mcoot/blockfall/internal/services/session"
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	borderColor     = color.RGBA{255, 255, 255, 255}
)

// Title is the window title
const Title = "blockfall"

// Renderer keeps the latest snapshot for Draw
type Renderer struct {
	mu   sync.Mutex
	snap *game.Snapshot
}

// Ensure Renderer implements session.Renderer
var _ session.Renderer = (*Renderer)(nil)

// Render stores the snapshot; it is drawn on the next Draw call
func (r *Renderer) Render(snap game.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap = &snap
	return nil
}

// Latest returns the most recent snapshot, if any
func (r *Renderer) Latest() (game.Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snap == nil {
		return game.Snapshot{}, false
	}
	return *r.snap, true
}

// Game hosts a session inside ebiten's loop: each Update is one session step
type Game struct {
	ctx      context.Context
	session  *session.Session
	renderer *Renderer
	logger   *slog.Logger
}

// Ensure Game implements ebiten.Game
var _ ebiten.Game = (*Game)(nil)

// NewGame creates a Game. The session must have been built with renderer and an Input.
func NewGame(ctx context.Context, sess *session.Session, renderer *Renderer, logger *slog.Logger) *Game {
	return &Game{
		ctx:      ctx,
		session:  sess,
		renderer: renderer,
		logger:   logger.With(slog.String("component", "window")),
	}
}

// Run opens the window and blocks until the session ends or the window is closed
func Run(g *Game) error {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(Title)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// Update advances the session by one step
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	done, err := g.session.Step()
	if err != nil {
		return err
	}
	if done {
		g.logger.Info("closing window", slog.String("reason", string(g.session.Summary().Reason)))
		return ebiten.Termination
	}
	return nil
}

// Draw paints locked cells, then the ghost, then the active piece, then the border
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	snap, ok := g.renderer.Latest()
	if !ok {
		return
	}

	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			if c := snap.Cells[row][col]; !c.IsEmpty() {
				drawBlock(screen, model.Cell{Col: col, Row: row}, c)
			}
		}
	}
	for _, c := range snap.Ghost {
		drawBlock(screen, c, snap.GhostColor.WithAlpha(GhostAlpha))
	}
	for _, c := range snap.Active {
		drawBlock(screen, c, snap.ActiveColor)
	}
	for _, c := range BorderCells(snap.Width, snap.Height) {
		r := BlockRect(c)
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, borderColor, false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d\nPieces: %d", snap.LinesCleared, snap.Pieces), 20, 20)
	if snap.State.IsTerminal() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", 20, 60)
	}
}

// Layout fixes the logical screen size
func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func drawBlock(screen *ebiten.Image, c model.Cell, clr model.Color) {
	r := BlockRect(c)
	vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, clr, false)
}
