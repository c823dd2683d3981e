package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plureonic/cashflow/internal/cli"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all saved transactions",
		Long: `Reset clears the ledger back to an empty collection.

This is a destructive operation that deletes every recorded transaction.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore()
			if err != nil {
				return err
			}

			txns, err := store.Load(ctx)
			if err != nil {
				return fmt.Errorf("failed to load ledger: %w", err)
			}

			if len(txns) == 0 {
				fmt.Println(cli.FormatInfo("No transactions found. Nothing to reset.")) //nolint:forbidigo // User-facing output
				return nil
			}

			// Confirm with user unless --force is used
			if !force {
				fmt.Printf("This will delete %d transaction(s).\nAre you sure you want to continue? [y/N]: ", len(txns)) //nolint:forbidigo // User-facing output

				var response string
				if _, scanErr := fmt.Scanln(&response); scanErr != nil && scanErr.Error() != "unexpected newline" {
					return fmt.Errorf("failed to read input: %w", scanErr)
				}
				if response != "y" && response != "Y" {
					fmt.Println("Reset canceled.") //nolint:forbidigo // User-facing output
					return nil
				}
			}

			if err := store.Save(ctx, nil); err != nil {
				return fmt.Errorf("failed to clear ledger: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Cleared %d transaction(s).", len(txns)))) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
