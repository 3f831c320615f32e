package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arcanaland/elevens/internal/board"
	"github.com/arcanaland/elevens/internal/config"
	"github.com/arcanaland/elevens/internal/rules"
	"github.com/spf13/cobra"
)

// boardCmd represents the board command group
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Manage saved boards in your board library",
	Long:  `Commands for dealing, listing and showing boards saved in your board library.`,
}

// boardNewCmd represents the board new command
var boardNewCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Deal a new board and save it to the board library",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		seed, _ := cmd.Flags().GetInt64("seed")
		if seed == 0 {
			seed = cfg.Seed
		}

		name := time.Now().Format("20060102-150405")
		if len(args) == 1 {
			name = args[0]
		}
		name = strings.TrimSuffix(name, ".toml")

		b := board.NewGame(newRand(seed))
		path := filepath.Join(config.GetBoardLibraryPath(), name+".toml")
		if err := b.Save(path); err != nil {
			return err
		}

		newRenderer(cmd, cfg.Color).Board(b)
		fmt.Fprintln(cmd.OutOrStdout(), "Board saved to:", path)
		return nil
	},
}

// boardListCmd represents the board ls command
var boardListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List boards in your board library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetBoardLibraryPath()

		// Check if board library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Board library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'elevens board init' to create it.")
			return nil
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading board library: %w", err)
		}

		found := 0
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
				continue
			}

			b, err := board.Load(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid board, skip
				continue
			}
			found++

			name := strings.TrimSuffix(entry.Name(), ".toml")
			switch {
			case b.GameIsWon():
				fmt.Fprintf(out, "  %s [WON]\n", name)
			case !rules.HasAnyLegalMove(b):
				fmt.Fprintf(out, "  %s (%d in deck) [NO MOVES]\n", name, b.DeckSize())
			default:
				fmt.Fprintf(out, "  %s (%d in deck)\n", name, b.DeckSize())
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No boards found in your board library.")
			fmt.Fprintln(out, "Deal one with 'elevens board new'.")
		}
		return nil
	},
}

// boardShowCmd represents the board show command
var boardShowCmd = &cobra.Command{
	Use:   "show [board]",
	Short: "Display a saved board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		b, err := loadBoard(args[0])
		if err != nil {
			return fmt.Errorf("error loading board: %w", err)
		}

		newRenderer(cmd, cfg.Color).Board(b)
		return nil
	},
}

// boardInitCmd represents the board init command
var boardInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the board library and config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetBoardLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating board library: %w", err)
		}
		fmt.Fprintln(out, "Board library initialized at:", libraryPath)

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// newRand seeds a generator, picking a random seed for 0
func newRand(seed int64) *rand.Rand {
	s := uint64(seed)
	if seed == 0 {
		s = rand.Uint64()
	}
	return rand.New(rand.NewPCG(s, s))
}

func init() {
	RootCmd.AddCommand(boardCmd)
	boardCmd.AddCommand(boardNewCmd)
	boardCmd.AddCommand(boardListCmd)
	boardCmd.AddCommand(boardShowCmd)
	boardCmd.AddCommand(boardInitCmd)

	boardNewCmd.Flags().Int64("seed", 0, "Shuffle seed (0 uses the config seed or a random one)")
}
