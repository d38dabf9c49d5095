package model

// GameState represents the current phase of the engine
type GameState string

const (
	GameStateFalling  GameState = "falling"   // Active piece under player control
	GameStateLocking  GameState = "locking"   // Active piece cannot descend further
	GameStateClearing GameState = "clearing"  // Full rows being removed
	GameStateSpawning GameState = "spawning"  // Next piece being created
	GameStateGameOver GameState = "game_over" // Terminal
)

// IsTerminal returns true once the game has ended
func (s GameState) IsTerminal() bool {
	return s == GameStateGameOver
}

// Command is a discrete player input
type Command string

const (
	CommandMoveLeft       Command = "move_left"
	CommandMoveRight      Command = "move_right"
	CommandSoftDrop       Command = "soft_drop"
	CommandRotateForward  Command = "rotate_forward"
	CommandRotateBackward Command = "rotate_backward"
	CommandQuit           Command = "quit"
)

// StopReason explains why a session ended
type StopReason string

const (
	StopReasonQuit       StopReason = "quit"
	StopReasonGameOver   StopReason = "game_over"
	StopReasonCancelled  StopReason = "cancelled"
	StopReasonPieceLimit StopReason = "piece_limit"
)

// GameSummary is the record of a finished session
type GameSummary struct {
	SessionID    string
	LinesCleared int
	Pieces       int
	Reason       StopReason
}
