package cli

import (
	"context"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/blockfall/internal/factory"
	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/services/batch"
	"github.com/mcoot/blockfall/internal/services/bot"
	"github.com/mcoot/blockfall/internal/services/session"
	"github.com/mcoot/blockfall/internal/storage/memory"
	"github.com/mcoot/blockfall/internal/ui/text"
)

// DefaultMaxPieces bounds a bot run that never tops out
const DefaultMaxPieces = 1000

type botOptions struct {
	strategy   string
	maxPieces  int
	games      int
	parallel   int
	showGrid   bool
	showFrames bool
}

func newBotCmd() *cobra.Command {
	opts := botOptions{}

	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Let a bot play headless games",
		Long: `Let a bot play at simulation speed and print the result.

Games run on a virtual clock, so a full game takes milliseconds. Use --seed
to replay the same piece sequence; with --games N, game i uses seed+i.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			fc, err := cfg.FactoryConfig(logger, true)
			if err != nil {
				return err
			}
			if _, err := bot.NewStrategy(opts.strategy, nil); err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)

			if opts.games <= 1 {
				var renderer session.Renderer = text.Discard{}
				if opts.showFrames && cfg.Output == "text" {
					renderer = text.NewRenderer(cmd.OutOrStdout())
				}
				summary, app, err := playBotGame(cmd.Context(), fc, opts, renderer)
				if err != nil {
					return err
				}
				result := BotResult{
					GameResult: newGameResult(summary),
					Strategy:   opts.strategy,
					Seed:       cfg.Seed,
				}
				if opts.showGrid {
					result.Grid = strings.Split(strings.TrimSuffix(text.FormatGrid(app.Engine.Grid()), "\n"), "\n")
				}
				out.Print(result)
				return nil
			}

			runner := batch.NewRunner(memory.New(), opts.parallel, logger)
			results, err := runner.Run(cmd.Context(), opts.games, func(ctx context.Context, index int) (model.GameSummary, error) {
				gameCfg := fc
				gameCfg.Seed += uint64(index)
				summary, _, err := playBotGame(ctx, gameCfg, opts, text.Discard{})
				return summary, err
			})
			if err != nil {
				return err
			}

			batchResult := BatchResult{
				Strategy: opts.strategy,
				Seed:     cfg.Seed,
				Stats:    batch.Summarize(results),
			}
			for _, r := range results {
				batchResult.Results = append(batchResult.Results, newGameResult(r))
			}
			out.Print(batchResult)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.strategy, "strategy", bot.StrategyGreedy, "Bot strategy: "+strings.Join(bot.ValidStrategies(), ", "))
	cmd.Flags().IntVar(&opts.maxPieces, "max-pieces", DefaultMaxPieces, "Stop after this many pieces have locked (0 = until game over)")
	cmd.Flags().IntVar(&opts.games, "games", 1, "Number of games to play")
	cmd.Flags().IntVar(&opts.parallel, "parallel", runtime.NumCPU(), "Games to play at once when --games > 1")
	cmd.Flags().BoolVar(&opts.showGrid, "show-grid", false, "Include the final grid in the output (single game)")
	cmd.Flags().BoolVar(&opts.showFrames, "show-frames", false, "Print a frame for every piece (single game, text output)")

	return cmd
}

// playBotGame builds a fresh app and lets the bot play it headless
func playBotGame(ctx context.Context, fc factory.Config, opts botOptions, renderer session.Renderer) (model.GameSummary, *factory.App, error) {
	app, err := factory.New(fc)
	if err != nil {
		return model.GameSummary{}, nil, err
	}
	strategy, err := bot.NewStrategy(opts.strategy, app.Random)
	if err != nil {
		return model.GameSummary{}, nil, err
	}

	sessCfg := session.DefaultConfig()
	sessCfg.Realtime = false
	sessCfg.MaxPieces = opts.maxPieces
	sess := app.NewSession(sessCfg, bot.NewService(app.Engine, strategy, app.Logger), renderer)

	summary, err := sess.Run(ctx)
	return summary, app, err
}

