package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventPieceSpawned EventType = "piece_spawned"
	EventPieceLocked  EventType = "piece_locked"
	EventLinesCleared EventType = "lines_cleared"
	EventGameOver     EventType = "game_over"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Timestamp time.Time
	Payload   any // Type-specific data
}

// PieceSpawnedPayload contains data for piece spawned events
type PieceSpawnedPayload struct {
	Kind     ShapeKind
	Position Cell
	Sequence int // 1 for the first piece of the game
}

// PieceLockedPayload contains data for piece locked events
type PieceLockedPayload struct {
	Kind  ShapeKind
	Cells []Cell
}

// LinesClearedPayload contains data for lines cleared events
type LinesClearedPayload struct {
	Count int // Rows removed by this lock
	Total int // Running total for the game
}

// GameOverPayload contains data for game over events
type GameOverPayload struct {
	LinesCleared int
	Pieces       int
}
