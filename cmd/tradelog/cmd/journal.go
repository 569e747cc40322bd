package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/journal"
)

func newStatsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats <trades-file>",
		Short: "Summarize the performance of a trade file",
		Long: `Import a CSV or YAML trade file and print its performance statistics.

Examples:
  tradelog stats trades.csv
  tradelog stats trades.yaml --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, trades, err := a.loadTrades(args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			return writeStatistics(cmd.OutOrStdout(), format, journal.ComputeStatistics(trades))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text|json|org")
	return cmd
}

func newReportCmd(a *app) *cobra.Command {
	var (
		format string
		day    string
	)

	cmd := &cobra.Command{
		Use:   "report <trades-file>",
		Short: "List trades, newest first, followed by their statistics",
		Long: `Import a CSV or YAML trade file and print every trade followed by the
performance summary. With --day only trades closed on that day are shown.

Examples:
  tradelog report trades.csv
  tradelog report trades.yaml --format org --day 2024-03-01
  tradelog report trades.yaml --format csv > export.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, trades, err := a.loadTrades(args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			if day != "" {
				start, end, err := dayBounds(time.UTC, day)
				if err != nil {
					return fmt.Errorf("date: %w", err)
				}
				trades = journal.ClosedBetween(trades, start, end)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "csv":
				return journal.WriteCSV(out, trades)
			case "org":
				fmt.Fprintln(out, journal.FormatTradesOrg(trades))
				return writeStatistics(out, "org", journal.ComputeStatistics(trades))
			case "text":
				if err := writeTradeTable(out, trades); err != nil {
					return err
				}
				fmt.Fprintln(out)
				return writeStatistics(out, "text", journal.ComputeStatistics(trades))
			}
			return fmt.Errorf("unknown format %q", format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text|csv|org")
	cmd.Flags().StringVar(&day, "day", "", "only trades closed on this UTC day (YYYY-MM-DD)")
	return cmd
}

func writeStatistics(w io.Writer, format string, st journal.Statistics) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	case "org":
		s, err := journal.FormatStatisticsOrg(st)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err
	case "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Trades:\t%d (%d wins, %d losses)\n", st.Trades, st.Wins, st.Losses)
		fmt.Fprintf(tw, "Win Rate:\t%.2f%%\n", st.WinRate)
		fmt.Fprintf(tw, "Avg. Profit:\t$%.2f\n", st.AvgProfit)
		fmt.Fprintf(tw, "Avg. Loss:\t$%.2f\n", st.AvgLoss)
		fmt.Fprintf(tw, "Expectancy:\t$%.2f\n", st.Expectancy)
		fmt.Fprintf(tw, "Accumulative P/L:\t$%.2f\n", st.AccumulativePL)
		fmt.Fprintf(tw, "Risk/Reward:\t%.2f\n", st.RiskRewardRatio)
		return tw.Flush()
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeTradeTable(w io.Writer, trades []journal.Trade) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tINSTRUMENT\tDIR\tENTRY TIME\tEXIT TIME\tENTRY\tEXIT\tSTAKE\tFEES\tP/L")
	for _, t := range trades {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			t.ID, t.Instrument, t.Direction,
			t.EntryTime.UTC().Format("2006-01-02 15:04"),
			t.ExitTime.UTC().Format("2006-01-02 15:04"),
			t.EntryPrice, t.ExitPrice, t.Stake, t.Fees, t.ProfitLoss())
	}
	return tw.Flush()
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)
	return start, end, nil
}
