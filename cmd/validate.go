package cmd

import (
	"fmt"

	"github.com/arcanaland/elevens/internal/config"
	"github.com/arcanaland/elevens/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [board]",
	Short: "Validate a saved board",
	Long: `Validate checks that a board snapshot is well formed: slots in range,
known ranks and suits, point values matching their ranks and no card appearing
twice. It also warns when the board has no legal move left.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		boardPath, err := config.ResolveBoardPath(args[0])
		if err != nil {
			return err
		}

		v := validator.NewValidator(boardPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Board '%s' is valid.\n", boardPath)
		} else {
			fmt.Fprintf(out, "❌ Board '%s' has %d validation errors:\n", boardPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
