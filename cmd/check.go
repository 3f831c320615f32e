package cmd

import (
	"errors"
	"fmt"

	"github.com/arcanaland/elevens/internal/rules"
	"github.com/spf13/cobra"
)

var (
	errIllegalGroup = errors.New("not a legal group")
	errNoMove       = errors.New("no legal move")
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [board] [slot...]",
	Short: "Check a selection or look for a legal move on a saved board",
	Long: `Check loads a saved board. Given slot indices, it reports whether those
cards form a legal group. Without indices, it reports whether any legal move
remains and shows one.

Examples:
  elevens check morning
  elevens check morning 0 4
  elevens check ./boards/stuck.toml 2 5 7`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBoard(args[0])
		if err != nil {
			return fmt.Errorf("error loading board: %w", err)
		}

		noColor, _ := cmd.Flags().GetBool("no-color")
		r := newRenderer(cmd, !noColor)
		r.Board(b)

		if len(args) > 1 {
			selection, err := parseIndices(args[1:])
			if err != nil {
				return err
			}

			group := rules.Classify(b, selection)
			if group == rules.GroupNone {
				r.Status("Selection", "%s is not a legal group", r.Cards(b, selection))
				return errIllegalGroup
			}
			r.Status("Selection", "%s is a legal %s", r.Cards(b, selection), group)
			return nil
		}

		group, ok := rules.FindLegalGroup(b)
		if !ok {
			r.Status("Moves", "none left")
			return errNoMove
		}
		r.Status("Moves", "available, e.g. %s", r.Cards(b, group))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Bool("no-color", false, "Disable coloured output")
}
