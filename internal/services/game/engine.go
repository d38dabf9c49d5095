package game

import (
	"log/slog"

	"github.com/mcoot/blockfall/internal/dependencies/clock"
	"github.com/mcoot/blockfall/internal/events"
	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/services/bag"
)

// TickResult describes what a single gravity step did
type TickResult struct {
	Moved        bool // The active piece descended one row
	Locked       bool // The active piece was written into the grid
	LinesCleared int  // Rows removed by this lock
	GameOver     bool // The freshly spawned piece did not fit
}

// Engine owns the grid, the active piece and the line count for one game
type Engine struct {
	cfg          Config
	grid         *model.Grid
	current      model.Piece
	bag          bag.ServiceInterface
	state        model.GameState
	linesCleared int
	pieces       int
	clock        clock.Clock
	publisher    events.Publisher
	logger       *slog.Logger
}

// NewEngine creates an engine with an empty grid and spawns the first piece
func NewEngine(
	cfg Config,
	pieces bag.ServiceInterface,
	clock clock.Clock,
	publisher events.Publisher,
	logger *slog.Logger,
) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:       cfg,
		grid:      model.NewGrid(cfg.Width, cfg.Height),
		bag:       pieces,
		clock:     clock,
		publisher: publisher,
		logger:    logger.With(slog.String("component", "engine")),
	}
	e.spawn()
	return e, nil
}

// Config returns the engine settings
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns the current phase
func (e *Engine) State() model.GameState {
	return e.state
}

// IsGameOver returns true once a spawned piece has failed to fit
func (e *Engine) IsGameOver() bool {
	return e.state.IsTerminal()
}

// LinesCleared returns the running line count
func (e *Engine) LinesCleared() int {
	return e.linesCleared
}

// PiecesSpawned returns how many pieces have been created, including the active one
func (e *Engine) PiecesSpawned() int {
	return e.pieces
}

// Current returns a copy of the active piece
func (e *Engine) Current() model.Piece {
	return e.current
}

// Grid returns a copy of the locked cells
func (e *Engine) Grid() *model.Grid {
	return e.grid.Clone()
}

// IsValidPosition reports whether every cell of the piece is inside the walls,
// above the floor, and not on a locked cell. Cells above the field are allowed.
func (e *Engine) IsValidPosition(p model.Piece) bool {
	return e.grid.Fits(p)
}

// TryMove translates the active piece if the result is valid
func (e *Engine) TryMove(dx, dy int) bool {
	if e.IsGameOver() {
		return false
	}
	trial := e.current.Moved(dx, dy)
	return e.commit(trial, "move")
}

// TryRotate rotates the active piece forward if the result is valid.
// There is no wall kick: a blocked rotation leaves the piece unchanged.
func (e *Engine) TryRotate() bool {
	if e.IsGameOver() {
		return false
	}
	trial := e.current
	trial.RotateForward()
	return e.commit(trial, "rotate")
}

// TryRotateBackward rotates the active piece backward if the result is valid
func (e *Engine) TryRotateBackward() bool {
	if e.IsGameOver() {
		return false
	}
	trial := e.current
	trial.RotateBackward()
	return e.commit(trial, "rotate_backward")
}

func (e *Engine) commit(trial model.Piece, op string) bool {
	if !e.IsValidPosition(trial) {
		e.logger.Debug("rejected",
			slog.String("op", op),
			slog.String("kind", trial.Kind.String()),
			slog.Int("col", trial.Position.Col),
			slog.Int("row", trial.Position.Row),
			slog.Int("rotation", trial.Rotation))
		return false
	}
	e.current = trial
	return true
}

// Apply performs a player command against the active piece.
// Quit is not an engine command and is rejected with ErrUnknownCommand.
func (e *Engine) Apply(cmd model.Command) (bool, error) {
	if e.IsGameOver() {
		return false, model.ErrGameOver
	}
	switch cmd {
	case model.CommandMoveLeft:
		return e.TryMove(-1, 0), nil
	case model.CommandMoveRight:
		return e.TryMove(1, 0), nil
	case model.CommandSoftDrop:
		return e.TryMove(0, 1), nil
	case model.CommandRotateForward:
		return e.TryRotate(), nil
	case model.CommandRotateBackward:
		return e.TryRotateBackward(), nil
	default:
		return false, model.ErrUnknownCommand
	}
}

// Tick applies gravity. If the piece cannot descend it is locked, full rows are
// cleared, and the next piece is spawned; a spawn that does not fit ends the game.
func (e *Engine) Tick() TickResult {
	if e.IsGameOver() {
		return TickResult{GameOver: true}
	}
	if e.TryMove(0, 1) {
		return TickResult{Moved: true}
	}

	result := TickResult{Locked: true}

	e.state = model.GameStateLocking
	locked := e.current
	cells := locked.Cells()
	e.grid.Lock(cells, locked.Color)
	e.publish(model.EventPieceLocked, model.PieceLockedPayload{
		Kind:  locked.Kind,
		Cells: cells,
	})

	e.state = model.GameStateClearing
	result.LinesCleared = e.grid.ClearFullRows()
	if result.LinesCleared > 0 {
		e.linesCleared += result.LinesCleared
		e.publish(model.EventLinesCleared, model.LinesClearedPayload{
			Count: result.LinesCleared,
			Total: e.linesCleared,
		})
	}

	e.spawn()
	result.GameOver = e.IsGameOver()
	return result
}

// ComputeGhost returns the deepest valid resting copy of the piece
func (e *Engine) ComputeGhost(p model.Piece) model.Piece {
	return e.grid.Drop(p)
}

func (e *Engine) spawn() {
	e.state = model.GameStateSpawning
	e.current = e.bag.CreateRandomPiece()
	e.pieces++
	e.publish(model.EventPieceSpawned, model.PieceSpawnedPayload{
		Kind:     e.current.Kind,
		Position: e.current.Position,
		Sequence: e.pieces,
	})

	if !e.IsValidPosition(e.current) {
		e.state = model.GameStateGameOver
		e.logger.Info("game over",
			slog.Int("total_lines", e.linesCleared),
			slog.Int("pieces", e.pieces))
		e.publish(model.EventGameOver, model.GameOverPayload{
			LinesCleared: e.linesCleared,
			Pieces:       e.pieces,
		})
		return
	}
	e.state = model.GameStateFalling
}

func (e *Engine) publish(t model.EventType, payload any) {
	e.publisher.Publish(model.Event{
		Type:      t,
		Timestamp: e.clock.Now(),
		Payload:   payload,
	})
}
