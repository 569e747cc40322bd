package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/journal"
)

func newPLCmd(a *app) *cobra.Command {
	var (
		direction string
		in        journal.TradeInput
	)

	cmd := &cobra.Command{
		Use:   "pl",
		Short: "Compute the profit/loss of one trade",
		Long: `Compute the realized profit/loss of a single trade.

Example:
  tradelog pl --direction short --entry 100 --exit 90 --stake 1000 --fees 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := journal.ParseDirection(direction)
			if err != nil {
				return err
			}
			in.Direction = d

			pl, err := journal.ProfitLoss(in)
			if err != nil {
				return fmt.Errorf("profit/loss: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", pl)
			return nil
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", "long", "trade direction: long|short")
	cmd.Flags().Float64Var(&in.EntryPrice, "entry", 0, "entry price (required)")
	cmd.Flags().Float64Var(&in.ExitPrice, "exit", 0, "exit price (required)")
	cmd.Flags().Float64Var(&in.Stake, "stake", 0, "stake / position size (required)")
	cmd.Flags().Float64Var(&in.Fees, "fees", 0, "fees")
	cmd.MarkFlagRequired("entry")
	cmd.MarkFlagRequired("exit")
	cmd.MarkFlagRequired("stake")
	return cmd
}
