package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/services/bag"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "blockfall",
		Short: "A falling-block puzzle game",
		Long: `blockfall is a falling-block puzzle game for the terminal or a desktop window.

Pieces fall one row every tick. Fill a row to clear it. The game ends when a new
piece has nowhere to spawn. The bot command plays headless games for testing
strategies, and shapes prints the piece catalog.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.validate()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Seed, "seed", cfg.Seed, "Random seed for a reproducible piece sequence (env: BLOCKFALL_SEED)")
	rootCmd.PersistentFlags().DurationVar(&cfg.Tick, "tick", cfg.Tick, "Gravity tick interval (env: BLOCKFALL_TICK)")
	rootCmd.PersistentFlags().StringVar(&cfg.DrawMode, "draw-mode", cfg.DrawMode, "Bag draw mode: shuffle-pick, pop-front")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write JSON logs to this file (env: BLOCKFALL_LOG_FILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: BLOCKFALL_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newBotCmd())
	rootCmd.AddCommand(newShapesCmd())

	return rootCmd
}

func (c *Config) validate() error {
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive", model.ErrInvalidConfig)
	}
	switch bag.DrawMode(c.DrawMode) {
	case bag.DrawModeShuffleAndPick, bag.DrawModePopFront:
	default:
		return fmt.Errorf("%w: unknown draw mode %q", model.ErrInvalidConfig, c.DrawMode)
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown output format %q", model.ErrInvalidConfig, c.Output)
	}
	_, err := parseLevel(c.LogLevel)
	return err
}

// Execute runs the root command and returns the process exit code
func Execute(ctx context.Context) int {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
