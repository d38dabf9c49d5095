package game

import (
	"fmt"
	"time"

	"github.com/mcoot/blockfall/internal/model"
)

// DefaultTickInterval is the gravity cadence
const DefaultTickInterval = 500 * time.Millisecond

// Config holds engine settings
type Config struct {
	Width        int
	Height       int
	TickInterval time.Duration
}

// DefaultConfig returns the standard 10x25 field with a 500ms tick
func DefaultConfig() Config {
	return Config{
		Width:        model.DefaultGridWidth,
		Height:       model.DefaultGridHeight,
		TickInterval: DefaultTickInterval,
	}
}

// Validate checks the config is usable
func (c Config) Validate() error {
	if c.Width < 4 || c.Height < 4 {
		return fmt.Errorf("%w: grid must be at least 4x4, got %dx%d", model.ErrInvalidConfig, c.Width, c.Height)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive", model.ErrInvalidConfig)
	}
	return nil
}
