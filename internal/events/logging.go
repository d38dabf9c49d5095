package events

import (
	"log/slog"

	"github.com/mcoot/blockfall/internal/model"
)

// LogHandler returns a Handler that writes each event to the logger
func LogHandler(logger *slog.Logger) Handler {
	logger = logger.With(slog.String("component", "game-events"))
	return func(event model.Event) {
		switch p := event.Payload.(type) {
		case model.PieceSpawnedPayload:
			logger.Debug("piece spawned",
				slog.String("kind", p.Kind.String()),
				slog.Int("sequence", p.Sequence))
		case model.PieceLockedPayload:
			logger.Info("piece locked",
				slog.String("kind", p.Kind.String()),
				slog.Any("cells", p.Cells))
		case model.LinesClearedPayload:
			logger.Info("lines cleared",
				slog.Int("lines_this_turn", p.Count),
				slog.Int("total_lines", p.Total))
		case model.GameOverPayload:
			logger.Info("game over",
				slog.Int("total_lines", p.LinesCleared),
				slog.Int("pieces", p.Pieces))
		default:
			logger.Warn("unrecognised event payload", slog.String("type", string(event.Type)))
		}
	}
}

// Recorder collects events in memory
type Recorder struct {
	Events []model.Event
}

// Handle appends the event
func (r *Recorder) Handle(event model.Event) {
	r.Events = append(r.Events, event)
}

// OfType returns the recorded events with the given type
func (r *Recorder) OfType(t model.EventType) []model.Event {
	var out []model.Event
	for _, e := range r.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
