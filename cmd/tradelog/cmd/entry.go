package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/form"
	"github.com/rustyeddy/tradelog/journal"
)

func newEntryCmd(a *app) *cobra.Command {
	var (
		f      form.Fields
		tz     string
		format string
	)

	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Check and record a trade typed in as form fields",
		Long: `Check a trade given as raw form fields and record it in a fresh journal.

Times use the configured form.time_layout (default 2006-01-02T15:04) in
the --tz location, and the instrument must be one of form.instruments.
When the form does not check out, every bad field is reported and the
profit/loss preview is printed if prices and stake already parse.

Examples:
  tradelog entry --instrument DE40 --direction long \
    --entry-time 2024-03-15T09:30 --exit-time 2024-03-15T14:00 \
    --entry 100 --exit 110 --stake 1000
  tradelog entry ... --format form`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "org" && format != "form" {
				return fmt.Errorf("unknown format %q (want org|form)", format)
			}
			loc, err := time.LoadLocation(tz)
			if err != nil {
				return fmt.Errorf("tz: %w", err)
			}

			w := cmd.OutOrStdout()
			p := form.NewParser(a.cfg.Form, loc)
			in, err := p.Parse(f)
			if err != nil {
				if pl, ok := form.Preview(f); ok {
					fmt.Fprintf(w, "Calculated Profit/Loss: %.2f\n", pl)
				}
				return fmt.Errorf("entry form: %w", err)
			}

			s, err := a.cfg.OpenStore(journal.WithLogger(log.Logger))
			if err != nil {
				return err
			}
			defer s.Close()

			t, err := s.AddTrade(in)
			if err != nil {
				return err
			}

			if format == "form" {
				return writeFields(w, p.FromTrade(t), t.ProfitLoss())
			}
			fmt.Fprint(w, journal.FormatTradeOrg(t))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.Instrument, "instrument", "", "instrument, one of form.instruments")
	fl.StringVarP(&f.Direction, "direction", "d", "", "trade direction: long|short")
	fl.StringVar(&f.EntryDateTime, "entry-time", "", "entry date and time in form.time_layout")
	fl.StringVar(&f.ExitDateTime, "exit-time", "", "exit date and time in form.time_layout")
	fl.StringVar(&f.EntryPrice, "entry", "", "entry price")
	fl.StringVar(&f.ExitPrice, "exit", "", "exit price")
	fl.StringVar(&f.Stake, "stake", "", "stake / position size")
	fl.StringVar(&f.Fees, "fees", "", "fees (blank means none)")
	fl.StringVar(&tz, "tz", "Local", "location the form times are in, e.g. UTC or Europe/Berlin")
	fl.StringVarP(&format, "format", "f", "org", "output format: org|form")
	return cmd
}

// writeFields prints a recorded trade as the normalized form values an
// edit form would be filled with.
func writeFields(w io.Writer, f form.Fields, pl float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "instrument\t%s\n", f.Instrument)
	fmt.Fprintf(tw, "direction\t%s\n", f.Direction)
	fmt.Fprintf(tw, "entry_time\t%s\n", f.EntryDateTime)
	fmt.Fprintf(tw, "exit_time\t%s\n", f.ExitDateTime)
	fmt.Fprintf(tw, "entry_price\t%s\n", f.EntryPrice)
	fmt.Fprintf(tw, "exit_price\t%s\n", f.ExitPrice)
	fmt.Fprintf(tw, "stake\t%s\n", f.Stake)
	fmt.Fprintf(tw, "fees\t%s\n", f.Fees)
	fmt.Fprintf(tw, "profit_loss\t%.2f\n", pl)
	return tw.Flush()
}
