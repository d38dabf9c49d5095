package model

import "errors"

// Common errors used across the application
var (
	// Catalog errors
	ErrUnknownShape = errors.New("unknown shape kind")

	// Engine errors
	ErrGameOver       = errors.New("game is over")
	ErrUnknownCommand = errors.New("unknown command")

	// Storage errors
	ErrResultNotFound = errors.New("result not found")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
)
