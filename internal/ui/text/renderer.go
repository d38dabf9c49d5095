package text

import (
	"io"

	"github.com/mcoot/blockfall/internal/services/game"
	"github.com/mcoot/blockfall/internal/services/session"
)

// Renderer writes a plain text frame each time a new piece appears and once
// more when the game ends. Frames in between are skipped.
type Renderer struct {
	w      io.Writer
	pieces int
	ended  bool
}

// Ensure Renderer implements session.Renderer
var _ session.Renderer = (*Renderer)(nil)

// NewRenderer creates a Renderer writing to w
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render writes the frame if the piece count changed or the game just ended
func (r *Renderer) Render(snap game.Snapshot) error {
	over := snap.State.IsTerminal()
	if snap.Pieces == r.pieces && (!over || r.ended) {
		return nil
	}
	r.pieces = snap.Pieces
	r.ended = over
	_, err := io.WriteString(r.w, FormatFrame(snap))
	return err
}

// Discard is a renderer that draws nothing
type Discard struct{}

// Render does nothing
func (Discard) Render(game.Snapshot) error {
	return nil
}
