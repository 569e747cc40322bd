package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore is a Store backed by a private in-memory SQLite database.
// Nothing outlives Close. Times are stored in UTC so that range queries
// on the text columns order by instant.
type SQLiteStore struct {
	db   *sql.DB
	opts options
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(opts ...Option) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Every connection to :memory: is its own database, so pin the pool
	// to a single connection that never expires.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db, opts: buildOptions(opts)}, nil
}

func (s *SQLiteStore) AddTrade(in TradeInput) (Trade, error) {
	t, err := newTrade(s.opts.ids.New(), in, s.opts.rules)
	if err != nil {
		return Trade{}, fmt.Errorf("add trade: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO trades
		(trade_id, instrument, direction, entry_time, exit_time, entry_price, exit_price, stake, fees, profit_loss)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Instrument, string(t.Direction), t.EntryTime.UTC(), t.ExitTime.UTC(),
		t.EntryPrice, t.ExitPrice, t.Stake, t.Fees, t.ProfitLoss(),
	)
	if err != nil {
		return Trade{}, fmt.Errorf("insert trade: %w", err)
	}

	s.opts.log.Debug().
		Str("trade_id", t.ID).
		Str("instrument", t.Instrument).
		Float64("profit_loss", t.ProfitLoss()).
		Msg("trade added")
	return t, nil
}

func (s *SQLiteStore) UpdateTrade(t Trade) error {
	next, err := newTrade(t.ID, t.TradeInput, s.opts.rules)
	if err != nil {
		return fmt.Errorf("update trade %s: %w", t.ID, err)
	}

	res, err := s.db.Exec(`
		UPDATE trades SET
			instrument = ?, direction = ?, entry_time = ?, exit_time = ?,
			entry_price = ?, exit_price = ?, stake = ?, fees = ?, profit_loss = ?
		WHERE trade_id = ?`,
		next.Instrument, string(next.Direction), next.EntryTime.UTC(), next.ExitTime.UTC(),
		next.EntryPrice, next.ExitPrice, next.Stake, next.Fees, next.ProfitLoss(),
		next.ID,
	)
	if err != nil {
		return fmt.Errorf("update trade %s: %w", t.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update trade %s: rows affected: %w", t.ID, err)
	}

	s.opts.log.Debug().
		Str("trade_id", t.ID).
		Bool("found", n > 0).
		Float64("profit_loss", next.ProfitLoss()).
		Msg("trade updated")
	return nil
}

func (s *SQLiteStore) RemoveTrade(id string) error {
	res, err := s.db.Exec(`DELETE FROM trades WHERE trade_id = ?`, id)
	if err != nil {
		return fmt.Errorf("remove trade %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove trade %s: rows affected: %w", id, err)
	}

	s.opts.log.Debug().Str("trade_id", id).Bool("found", n > 0).Msg("trade removed")
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
