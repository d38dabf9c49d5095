package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mcoot/blockfall/internal/factory"
	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/services/bag"
	"github.com/mcoot/blockfall/internal/services/game"
)

// UI names
const (
	UITerminal = "terminal"
	UIWindow   = "window"
)

// Config holds CLI configuration
type Config struct {
	Seed     string // Empty means seed from the system
	Tick     time.Duration
	DrawMode string
	UI       string
	LogFile  string
	LogLevel string
	Output   string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Seed:     os.Getenv("BLOCKFALL_SEED"),
		Tick:     getEnvDurationOrDefault("BLOCKFALL_TICK", game.DefaultTickInterval),
		DrawMode: string(bag.DrawModeShuffleAndPick),
		UI:       getEnvOrDefault("BLOCKFALL_UI", UITerminal),
		LogFile:  os.Getenv("BLOCKFALL_LOG_FILE"),
		LogLevel: getEnvOrDefault("BLOCKFALL_LOG_LEVEL", "info"),
		Output:   "text",
	}
}

// FactoryConfig translates the CLI settings into application settings
func (c *Config) FactoryConfig(logger *slog.Logger, headless bool) (factory.Config, error) {
	gameCfg := game.DefaultConfig()
	gameCfg.TickInterval = c.Tick

	bagCfg := bag.DefaultConfig()
	bagCfg.Mode = bag.DrawMode(c.DrawMode)

	fc := factory.Config{
		Game:     gameCfg,
		Bag:      bagCfg,
		Headless: headless,
		Logger:   logger,
	}
	if c.Seed != "" {
		seed, err := strconv.ParseUint(c.Seed, 10, 64)
		if err != nil {
			return factory.Config{}, fmt.Errorf("%w: seed must be a non-negative integer: %q", model.ErrInvalidConfig, c.Seed)
		}
		fc.Seed = seed
		fc.Seeded = true
	}
	return fc, nil
}

// NewLogger builds the JSON logger. Logs go to LogFile if set, otherwise to fallback.
// The returned close function releases the log file.
func (c *Config) NewLogger(fallback io.Writer) (*slog.Logger, func() error, error) {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	w := fallback
	closeFn := func() error { return nil }
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closeFn, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("%w: unknown log level %q", model.ErrInvalidConfig, s)
	}
	return level, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
