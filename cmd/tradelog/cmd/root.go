package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/config"
	"github.com/rustyeddy/tradelog/form"
	"github.com/rustyeddy/tradelog/journal"
)

// app carries the global flags and the loaded config to subcommands.
type app struct {
	cfgFile  string
	logLevel string
	cfg      *config.Config
}

// NewRootCmd builds the tradelog command tree.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:   "tradelog",
		Short: "A journal for discretionary trades and their performance statistics",
		Long: `Tradelog records discretionary trades and summarizes how they performed.

It provides tools for:
  - Computing the profit/loss of a single trade
  - Checking a trade typed in as form fields against the configured
    instruments and time layout
  - Importing a trade list (CSV or YAML) and summarizing win rate,
    average profit/loss, expectancy, accumulative P/L and risk/reward
  - Exporting the journal as CSV or Org-mode

Trades live in memory for the duration of one command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "path to config file (optional)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup(cmd)
	}

	cmd.AddCommand(
		newPLCmd(a),
		newEntryCmd(a),
		newStatsCmd(a),
		newReportCmd(a),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		cfg, err := config.LoadFromFile(a.cfgFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
		if err := a.cfg.Validate(); err != nil {
			return err
		}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		Level(a.cfg.LogLevel()).
		With().Timestamp().Logger()
	return nil
}

// loadTrades reads a CSV or YAML trade file into a fresh store. The caller
// closes the returned store.
func (a *app) loadTrades(path string) (journal.Store, []journal.Trade, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open trades: %w", err)
	}
	defer f.Close()

	var ins []journal.TradeInput
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		ins, err = journal.ReadCSV(f)
	case ".yaml", ".yml":
		ins, err = journal.ReadYAML(f)
	default:
		return nil, nil, fmt.Errorf("unsupported trade file type %q (want .csv, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	// Imports obey the same instrument list as the entry form.
	p := form.NewParser(a.cfg.Form, time.UTC)
	for i, in := range ins {
		if err := p.CheckInstrument(in.Instrument); err != nil {
			return nil, nil, fmt.Errorf("import %s: trade %d: %w", path, i+1, err)
		}
	}

	s, err := a.cfg.OpenStore(journal.WithLogger(log.Logger))
	if err != nil {
		return nil, nil, err
	}
	if _, err := journal.Replay(s, ins); err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("import %s: %w", path, err)
	}

	trades, err := s.ListTrades()
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	log.Info().Str("file", path).Int("trades", len(trades)).Str("backend", a.cfg.Journal.Backend).Msg("journal loaded")
	return s, trades, nil
}
