package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/services/session"
)

const (
	// repeatDelay is how many ticks a key must be held before it repeats
	repeatDelay = 15
	// repeatInterval is the number of ticks between repeats
	repeatInterval = 3
)

type binding struct {
	key     ebiten.Key
	command model.Command
	repeats bool
}

var bindings = []binding{
	{ebiten.KeyLeft, model.CommandMoveLeft, true},
	{ebiten.KeyA, model.CommandMoveLeft, true},
	{ebiten.KeyRight, model.CommandMoveRight, true},
	{ebiten.KeyD, model.CommandMoveRight, true},
	{ebiten.KeyDown, model.CommandSoftDrop, true},
	{ebiten.KeyS, model.CommandSoftDrop, true},
	{ebiten.KeyUp, model.CommandRotateForward, true},
	{ebiten.KeyW, model.CommandRotateForward, true},
	{ebiten.KeyQ, model.CommandQuit, false},
	{ebiten.KeyEscape, model.CommandQuit, false},
}

// Input reads the keyboard state ebiten collected for the current tick.
// Poll must be called from Game.Update.
type Input struct {
	// pressDuration reports how many ticks a key has been held, 0 if released
	pressDuration func(ebiten.Key) int
}

// Ensure Input implements session.InputSource
var _ session.InputSource = (*Input)(nil)

// NewInput creates an Input backed by inpututil
func NewInput() *Input {
	return &Input{pressDuration: inpututil.KeyPressDuration}
}

// Poll returns a command for every bound key pressed this tick, and for held keys on repeat
func (in *Input) Poll() []model.Command {
	var cmds []model.Command
	for _, b := range bindings {
		d := in.pressDuration(b.key)
		if d == 1 || (b.repeats && isRepeat(d)) {
			cmds = append(cmds, b.command)
		}
	}
	return cmds
}

func isRepeat(duration int) bool {
	return duration >= repeatDelay && (duration-repeatDelay)%repeatInterval == 0
}
