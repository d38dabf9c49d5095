package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/blockfall/internal/model"
	"github.com/mcoot/blockfall/internal/services/batch"
	"github.com/mcoot/blockfall/internal/ui/text"
)

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameResult:
		o.printGameResult(v)
	case BotResult:
		o.printBotResult(v)
	case BatchResult:
		o.printBatchResult(v)
	case []ShapeInfo:
		o.printShapes(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GameResult is the outcome of an interactive game
type GameResult struct {
	SessionID    string `json:"session_id"`
	Reason       string `json:"reason"`
	LinesCleared int    `json:"lines_cleared"`
	Pieces       int    `json:"pieces"`
}

// BotResult is the outcome of an autoplay run
type BotResult struct {
	GameResult
	Strategy string   `json:"strategy"`
	Seed     string   `json:"seed,omitempty"`
	Grid     []string `json:"grid,omitempty"`
}

// BatchResult is the outcome of several autoplay games
type BatchResult struct {
	Strategy string       `json:"strategy"`
	Seed     string       `json:"seed,omitempty"`
	Stats    batch.Stats  `json:"stats"`
	Results  []GameResult `json:"results"`
}

// ShapeInfo describes one catalog entry
type ShapeInfo struct {
	Kind      string     `json:"kind"`
	Color     string     `json:"color"`
	Rotations [][]string `json:"rotations"`

	shape model.Shape
}

func newGameResult(summary model.GameSummary) GameResult {
	return GameResult{
		SessionID:    summary.SessionID,
		Reason:       string(summary.Reason),
		LinesCleared: summary.LinesCleared,
		Pieces:       summary.Pieces,
	}
}

func newShapeInfo(shape model.Shape) ShapeInfo {
	info := ShapeInfo{
		Kind:  shape.Kind.String(),
		Color: shape.Color.Hex(),
		shape: shape,
	}
	for _, state := range shape.Rotations {
		info.Rotations = append(info.Rotations, text.ShapeArt(state))
	}
	return info
}

// summaryLine is the closing line of a game
func summaryLine(r GameResult) string {
	if r.Reason == string(model.StopReasonGameOver) {
		return fmt.Sprintf("Game Over! Total lines cleared: %d", r.LinesCleared)
	}
	return fmt.Sprintf("Game stopped (%s). Total lines cleared: %d", r.Reason, r.LinesCleared)
}

func (o *Output) printGameResult(r GameResult) {
	fmt.Fprintln(o.w, summaryLine(r))
}

func (o *Output) printBotResult(r BotResult) {
	fmt.Fprintln(o.w, summaryLine(r.GameResult))
	fmt.Fprintf(o.w, "Strategy: %s\n", r.Strategy)
	fmt.Fprintf(o.w, "Pieces: %d\n", r.Pieces)
	if r.Seed != "" {
		fmt.Fprintf(o.w, "Seed: %s\n", r.Seed)
	}
	if len(r.Grid) > 0 {
		fmt.Fprintln(o.w)
		fmt.Fprintln(o.w, strings.Join(r.Grid, "\n"))
	}
}

func (o *Output) printBatchResult(r BatchResult) {
	fmt.Fprintf(o.w, "Strategy: %s\n", r.Strategy)
	fmt.Fprintf(o.w, "Games: %d\n", r.Stats.Games)
	fmt.Fprintf(o.w, "Lines: total %d, best %d, worst %d, mean %.2f\n",
		r.Stats.TotalLines, r.Stats.BestLines, r.Stats.WorstLines, r.Stats.MeanLines)
	fmt.Fprintf(o.w, "Pieces: %d\n", r.Stats.TotalPieces)
	for _, g := range r.Results {
		fmt.Fprintf(o.w, "  %s  %-11s lines %d, pieces %d\n", g.SessionID, g.Reason, g.LinesCleared, g.Pieces)
	}
}

func (o *Output) printShapes(shapes []ShapeInfo) {
	for i, s := range shapes {
		if i > 0 {
			fmt.Fprintln(o.w)
		}
		fmt.Fprint(o.w, text.FormatShape(s.shape))
	}
}
