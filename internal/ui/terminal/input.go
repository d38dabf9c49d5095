package terminal

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/services/session"
)

// inputBuffer is how many commands may queue between polls before keys are dropped
const inputBuffer = 64

// CommandForKey maps a key press to a command. Arrows and WASD steer; up and w rotate;
// q, Esc and Ctrl-C quit. Other keys are not mapped.
func CommandForKey(ev *tcell.EventKey) (model.Command, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return model.CommandMoveLeft, true
	case tcell.KeyRight:
		return model.CommandMoveRight, true
	case tcell.KeyDown:
		return model.CommandSoftDrop, true
	case tcell.KeyUp:
		return model.CommandRotateForward, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return model.CommandQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return model.CommandMoveLeft, true
		case 'd', 'D':
			return model.CommandMoveRight, true
		case 's', 'S':
			return model.CommandSoftDrop, true
		case 'w', 'W':
			return model.CommandRotateForward, true
		case 'q', 'Q':
			return model.CommandQuit, true
		}
	}
	return "", false
}

// Input reads key events from a tcell screen on a background goroutine and hands
// them to the session loop without blocking it
type Input struct {
	screen   tcell.Screen
	commands chan model.Command
	logger   *slog.Logger
}

// Ensure Input implements session.InputSource
var _ session.InputSource = (*Input)(nil)

// NewInput creates an Input for an initialised screen
func NewInput(screen tcell.Screen, logger *slog.Logger) *Input {
	return &Input{
		screen:   screen,
		commands: make(chan model.Command, inputBuffer),
		logger:   logger.With(slog.String("component", "terminal_input")),
	}
}

// Start begins reading events. The reader stops when ctx is done or the screen is finalised.
func (in *Input) Start(ctx context.Context) {
	go func() {
		for {
			ev := in.screen.PollEvent()
			if ev == nil {
				return
			}
			in.HandleEvent(ev)
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

// HandleEvent queues the command for a key event; resize events trigger a resync
func (in *Input) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd, ok := CommandForKey(ev)
		if !ok {
			return
		}
		select {
		case in.commands <- cmd:
		default:
			in.logger.Warn("input buffer full, dropping key", slog.String("command", string(cmd)))
		}
	case *tcell.EventResize:
		in.screen.Sync()
	}
}

// Poll drains every command queued since the last call
func (in *Input) Poll() []model.Command {
	var cmds []model.Command
	for {
		select {
		case cmd := <-in.commands:
			cmds = append(cmds, cmd)
		default:
			return cmds
		}
	}
}
