package terminal

import (
	"log/slog"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// RestoreOnPanic must be deferred right after the screen is opened. On a panic it
// restores the terminal before the panic continues, so the trace is readable.
func RestoreOnPanic(screen tcell.Screen, logger *slog.Logger) {
	if err := recover(); err != nil {
		screen.Fini()
		logger.Error("panic recovered",
			slog.Any("error", err),
			slog.String("stack", string(debug.Stack())),
		)
		panic(err)
	}
}
