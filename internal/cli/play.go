package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/blockfall/internal/factory"
	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/services/session"
	"github.com/mcoot/blockfall/internal/ui/terminal"
	"github.com/mcoot/blockfall/internal/ui/window"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		Long: `Play an interactive game in the terminal or in a desktop window.

Controls: left/a and right/d move, down/s drops one row, up/w rotates.
Press q or Esc to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Logs would corrupt the terminal UI, so they are discarded unless a file is given
			logger, closeLog, err := cfg.NewLogger(io.Discard)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			fc, err := cfg.FactoryConfig(logger, false)
			if err != nil {
				return err
			}
			app, err := factory.New(fc)
			if err != nil {
				return err
			}

			var summary model.GameSummary
			switch cfg.UI {
			case UITerminal:
				summary, err = playTerminal(cmd.Context(), app)
			case UIWindow:
				summary, err = playWindow(cmd.Context(), app)
			default:
				return fmt.Errorf("%w: unknown ui %q", model.ErrInvalidConfig, cfg.UI)
			}
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(newGameResult(summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.UI, "ui", cfg.UI, "Frontend: terminal, window (env: BLOCKFALL_UI)")

	return cmd
}

// playTerminal runs the game on a tcell screen. The screen is torn down before returning.
func playTerminal(ctx context.Context, app *factory.App) (model.GameSummary, error) {
	screen, err := terminal.OpenScreen()
	if err != nil {
		return model.GameSummary{}, err
	}
	defer screen.Fini()
	defer terminal.RestoreOnPanic(screen, app.Logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	input := terminal.NewInput(screen, app.Logger)
	input.Start(ctx)

	sess := app.NewSession(session.DefaultConfig(), input, terminal.NewRenderer(screen))
	return sess.Run(ctx)
}

// playWindow runs the game in an ebiten window on the calling goroutine
func playWindow(ctx context.Context, app *factory.App) (model.GameSummary, error) {
	renderer := &window.Renderer{}
	sess := app.NewSession(session.DefaultConfig(), window.NewInput(), renderer)

	if err := window.Run(window.NewGame(ctx, sess, renderer, app.Logger)); err != nil {
		app.Logger.Error("window failed", slog.String("error", err.Error()))
		return sess.Summary(), err
	}
	summary := sess.Summary()
	if summary.Reason == "" {
		// Window closed by the user
		summary.Reason = model.StopReasonQuit
	}
	return summary, nil
}
