package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plureonic/cashflow/internal/cli"
	"github.com/plureonic/cashflow/internal/common"
	"github.com/plureonic/cashflow/internal/model"
)

func addCmd() *cobra.Command {
	var (
		recurring   bool
		endMonthStr string
	)

	cmd := &cobra.Command{
		Use:   "add <description> <amount> <direction> <category> <start-month>",
		Short: "Record a new inflow or outflow",
		Long: `Record a cash flow item.

A one-time item counts toward exactly its start month. With --recurring it
counts toward every month from the start month on, optionally stopping at
--end-month (inclusive).

Examples:
  cashflow add Salary 3000 inflow income 2024-01 --recurring
  cashflow add Rent 1200 outflow housing 2024-01 --recurring --end-month 2024-12
  cashflow add Vacation 500 outflow fun 2024-02`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Strict parse at the boundary; the resolver never sees
			// unvalidated data.
			amount, err := parseAmount(args[1])
			if err != nil {
				return common.NewUserError("invalid amount", err)
			}

			direction, err := model.ParseDirection(args[2])
			if err != nil {
				return err
			}

			start, err := model.ParseMonth(args[4])
			if err != nil {
				return fmt.Errorf("invalid start month: %w", err)
			}

			var end *model.Month
			if endMonthStr != "" {
				if !recurring {
					return fmt.Errorf("--end-month requires --recurring")
				}
				m, parseErr := model.ParseMonth(endMonthStr)
				if parseErr != nil {
					return fmt.Errorf("invalid end month: %w", parseErr)
				}
				end = &m
			}

			txn, err := model.NewTransaction(args[0], amount, direction, args[3], start, recurring, end)
			if err != nil {
				return fmt.Errorf("invalid transaction: %w", err)
			}

			store, err := openStore()
			if err != nil {
				return err
			}

			txns, err := store.Load(ctx)
			if err != nil {
				return fmt.Errorf("failed to load ledger: %w", err)
			}

			txns = append(txns, txn)
			if err := store.Save(ctx, txns); err != nil {
				return fmt.Errorf("failed to save ledger: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s %q %s (%s) with id %s",
				txn.Direction, txn.Description, cli.FormatAmount(txn.Amount, txn.Direction),
				formatSchedule(txn), txn.ID))) //nolint:forbidigo // User-facing output

			return nil
		},
	}

	cmd.Flags().BoolVar(&recurring, "recurring", false, "mark this as a recurring item")
	cmd.Flags().StringVar(&endMonthStr, "end-month", "", "optional end month for recurring items (YYYY-MM)")

	return cmd
}
