package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/blockfall/internal/dependencies/clock"
	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/services/game"
)

// DefaultFrameDelay is the pause between loop iterations in realtime mode
const DefaultFrameDelay = 16 * time.Millisecond

// InputSource yields the commands that arrived since the last poll. It must not block.
type InputSource interface {
	Poll() []model.Command
}

// Renderer draws one frame
type Renderer interface {
	Render(snap game.Snapshot) error
}

// Config holds loop settings
type Config struct {
	// TickInterval is how much time must pass, strictly, between gravity ticks
	TickInterval time.Duration
	// FrameDelay is the time between loop iterations
	FrameDelay time.Duration
	// Realtime waits FrameDelay of wall time between iterations. When false the
	// clock must be a clock.Advancer and is advanced by FrameDelay instead.
	Realtime bool
	// MaxPieces stops the session once this many pieces have locked (0 = unlimited)
	MaxPieces int
}

// DefaultConfig returns the realtime settings of the interactive game
func DefaultConfig() Config {
	return Config{
		TickInterval: game.DefaultTickInterval,
		FrameDelay:   DefaultFrameDelay,
		Realtime:     true,
	}
}

// Session drives one engine from a single loop: poll input, tick when due, render
type Session struct {
	id       string
	cfg      Config
	engine   *game.Engine
	input    InputSource
	renderer Renderer
	clock    clock.Clock
	lastTick time.Time
	reason   model.StopReason
	logger   *slog.Logger
}

// New creates a Session. The tick timer starts now.
func New(
	id string,
	cfg Config,
	engine *game.Engine,
	input InputSource,
	renderer Renderer,
	clk clock.Clock,
	logger *slog.Logger,
) *Session {
	return &Session{
		id:       id,
		cfg:      cfg,
		engine:   engine,
		input:    input,
		renderer: renderer,
		clock:    clk,
		lastTick: clk.Now(),
		logger:   logger.With(slog.String("component", "session"), slog.String("session_id", id)),
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Engine returns the engine being driven
func (s *Session) Engine() *game.Engine {
	return s.engine
}

// Step runs one loop iteration. It returns true once the session has ended.
func (s *Session) Step() (bool, error) {
	if s.reason != "" {
		return true, nil
	}

	for _, cmd := range s.input.Poll() {
		if cmd == model.CommandQuit {
			s.stop(model.StopReasonQuit)
			return true, nil
		}
		if _, err := s.engine.Apply(cmd); err != nil {
			if errors.Is(err, model.ErrGameOver) {
				break
			}
			s.logger.Warn("ignoring command", slog.String("command", string(cmd)), slog.String("error", err.Error()))
		}
	}

	now := s.clock.Now()
	if now.Sub(s.lastTick) > s.cfg.TickInterval {
		s.lastTick = now
		s.engine.Tick()
	}

	if err := s.renderer.Render(s.engine.Snapshot()); err != nil {
		return true, fmt.Errorf("render: %w", err)
	}

	switch {
	case s.engine.IsGameOver():
		s.stop(model.StopReasonGameOver)
	case s.cfg.MaxPieces > 0 && s.engine.PiecesSpawned() > s.cfg.MaxPieces:
		s.stop(model.StopReasonPieceLimit)
	}
	return s.reason != "", nil
}

// Run steps until the game ends, the input quits, or ctx is cancelled
func (s *Session) Run(ctx context.Context) (model.GameSummary, error) {
	s.logger.Info("session started",
		slog.Duration("tick_interval", s.cfg.TickInterval),
		slog.Bool("realtime", s.cfg.Realtime))

	advancer, canAdvance := s.clock.(clock.Advancer)
	if !s.cfg.Realtime && !canAdvance {
		return s.Summary(), fmt.Errorf("%w: simulated session needs an advanceable clock", model.ErrInvalidConfig)
	}

	var frames <-chan time.Time
	if s.cfg.Realtime {
		ticker := time.NewTicker(s.cfg.FrameDelay)
		defer ticker.Stop()
		frames = ticker.C
	}

	for {
		done, err := s.Step()
		if err != nil {
			s.logger.Error("session failed", slog.String("error", err.Error()))
			return s.Summary(), err
		}
		if done {
			return s.Summary(), nil
		}

		if s.cfg.Realtime {
			select {
			case <-ctx.Done():
				s.stop(model.StopReasonCancelled)
				return s.Summary(), nil
			case <-frames:
			}
		} else {
			if ctx.Err() != nil {
				s.stop(model.StopReasonCancelled)
				return s.Summary(), nil
			}
			advancer.Advance(s.cfg.FrameDelay)
		}
	}
}

// Summary reports the session outcome so far
func (s *Session) Summary() model.GameSummary {
	return model.GameSummary{
		SessionID:    s.id,
		LinesCleared: s.engine.LinesCleared(),
		Pieces:       s.engine.PiecesSpawned(),
		Reason:       s.reason,
	}
}

func (s *Session) stop(reason model.StopReason) {
	if s.reason != "" {
		return
	}
	s.reason = reason
	s.logger.Info("session stopped",
		slog.String("reason", string(reason)),
		slog.Int("total_lines", s.engine.LinesCleared()),
		slog.Int("pieces", s.engine.PiecesSpawned()))
}
