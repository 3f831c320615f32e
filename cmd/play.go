package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arcanaland/elevens/internal/board"
	"github.com/arcanaland/elevens/internal/config"
	"github.com/arcanaland/elevens/internal/game"
	"github.com/arcanaland/elevens/internal/render"
	"github.com/spf13/cobra"
)

const playHelp = `Enter slot numbers separated by spaces to remove a group, e.g. "0 4".
  h       show a legal group
  s NAME  save the board to your board library
  q       quit`

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a game of Elevens in the terminal",
	Long: `Play deals a fresh board, or continues a saved one, and reads moves from
standard input.

` + playHelp,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		seed, _ := cmd.Flags().GetInt64("seed")
		if seed == 0 {
			seed = cfg.Seed
		}
		noColor, _ := cmd.Flags().GetBool("no-color")

		var b *board.Board
		if len(args) == 1 {
			b, err = loadBoard(args[0])
			if err != nil {
				return fmt.Errorf("error loading board: %w", err)
			}
		} else {
			b = board.NewGame(newRand(seed))
		}

		session := game.NewSession(b, newLogger(cfg))
		r := newRenderer(cmd, cfg.Color && !noColor)
		return runGame(cmd, session, r, cfg.Hints)
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Int64("seed", 0, "Shuffle seed (0 uses the config seed or a random one)")
	playCmd.Flags().Bool("no-color", false, "Disable coloured output")
}

// runGame reads moves until the game ends, input runs out or the player quits
func runGame(cmd *cobra.Command, session *game.Session, r *render.Renderer, hints bool) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintln(out, playHelp)
	for {
		r.Board(session.Board())
		r.Status("Moves", "%d", session.Moves())

		if session.State() != game.InProgress {
			break
		}

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit":
			return nil
		case "h", "hint":
			if !hints {
				r.Status("Hint", "hints are disabled in your config")
				continue
			}
			if group, ok := session.Hint(); ok {
				r.Status("Hint", "%s", r.Cards(session.Board(), group))
			}
			continue
		case "s", "save":
			if len(fields) != 2 {
				r.Status("Save", "usage: s NAME")
				continue
			}
			path := filepath.Join(config.GetBoardLibraryPath(), strings.TrimSuffix(fields[1], ".toml")+".toml")
			if err := session.Board().Save(path); err != nil {
				return err
			}
			r.Status("Save", "board saved to %s", path)
			continue
		}

		selection, err := parseIndices(fields)
		if err != nil {
			r.Status("Error", "%v", err)
			continue
		}

		group, err := session.Select(selection)
		switch {
		case errors.Is(err, game.ErrIllegalGroup):
			r.Status("Illegal", "%s is not a pair adding to 11 or a jack, queen and king", r.Cards(session.Board(), selection))
		case err != nil:
			r.Status("Error", "%v", err)
		default:
			r.Status("Removed", "%s", group)
		}
	}

	switch session.State() {
	case game.Won:
		r.Status("Result", "you cleared the deck, you win!")
	case game.Lost:
		r.Status("Result", "no legal moves remain, game over")
	}
	return nil
}
