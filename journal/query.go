package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const selectTrades = `
	SELECT trade_id, instrument, direction, entry_time, exit_time,
		entry_price, exit_price, stake, fees, profit_loss
	FROM trades`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (Trade, error) {
	var (
		t   Trade
		dir string
		pl  float64 // derived again from the fields by Trade.ProfitLoss
	)
	err := row.Scan(
		&t.ID,
		&t.Instrument,
		&dir,
		&t.EntryTime,
		&t.ExitTime,
		&t.EntryPrice,
		&t.ExitPrice,
		&t.Stake,
		&t.Fees,
		&pl,
	)
	t.Direction = Direction(dir)
	return t, err
}

// GetTrade returns a single trade by id.
func (s *SQLiteStore) GetTrade(id string) (Trade, error) {
	row := s.db.QueryRow(selectTrades+` WHERE trade_id = ?`, id)

	t, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Trade{}, fmt.Errorf("trade %q: %w", id, ErrTradeNotFound)
		}
		return Trade{}, err
	}
	return t, nil
}

// ListTrades returns all trades, newest created first.
func (s *SQLiteStore) ListTrades() ([]Trade, error) {
	return s.query(selectTrades + ` ORDER BY seq DESC`)
}

// ListTradesClosedBetween returns trades whose exit time is within
// [start, end), newest created first.
func (s *SQLiteStore) ListTradesClosedBetween(start, end time.Time) ([]Trade, error) {
	return s.query(selectTrades+`
		WHERE exit_time >= ? AND exit_time < ?
		ORDER BY seq DESC`, start.UTC(), end.UTC())
}

func (s *SQLiteStore) query(q string, args ...any) ([]Trade, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Trade{}
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ClosedBetween filters trades to those whose exit time is within
// [start, end), keeping their order.
func ClosedBetween(trades []Trade, start, end time.Time) []Trade {
	out := []Trade{}
	for _, t := range trades {
		if !t.ExitTime.Before(start) && t.ExitTime.Before(end) {
			out = append(out, t)
		}
	}
	return out
}
