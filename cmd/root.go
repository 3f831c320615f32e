package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/arcanaland/elevens/internal/board"
	"github.com/arcanaland/elevens/internal/config"
	"github.com/arcanaland/elevens/internal/render"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "elevens",
	Short: "Play and check games of Elevens solitaire",
	Long: `Elevens is a solitaire card game played on a board of nine cards.
Remove any two cards whose values add to 11, or a jack, a queen and a king
together. Removed cards are replaced from the deck. The game is won when the
whole deck has been cleared and lost when no legal group remains.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// newLogger builds the stderr logger at the configured level
func newLogger(cfg *config.Config) *slog.Logger {
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newRenderer draws to the command output, using terminal settings when the
// output is a file
func newRenderer(cmd *cobra.Command, wantColor bool) *render.Renderer {
	out := cmd.OutOrStdout()
	if f, ok := out.(*os.File); ok {
		return render.New(out, render.ForFile(f, wantColor))
	}
	return render.New(out, render.Options{Color: false, Width: 80})
}

// loadBoard resolves a board name or path and loads it
func loadBoard(name string) (*board.Board, error) {
	path, err := config.ResolveBoardPath(name)
	if err != nil {
		return nil, err
	}
	return board.Load(path)
}

// parseIndices converts slot arguments to indices
func parseIndices(args []string) ([]int, error) {
	indices := make([]int, 0, len(args))
	for _, arg := range args {
		i, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid slot %q", arg)
		}
		if i < 0 || i >= board.Size {
			return nil, fmt.Errorf("slot %d out of range (0-%d)", i, board.Size-1)
		}
		indices = append(indices, i)
	}
	return indices, nil
}
