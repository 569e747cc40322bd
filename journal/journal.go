// journal/journal.go
package journal

import (
	"fmt"
	"strings"
	"time"
)

// Direction is the side of a trade.
type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

// ParseDirection accepts "long" or "short" in any case.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Long, Short:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

func (d Direction) Valid() bool {
	return d == Long || d == Short
}

// TradeInput is everything the caller supplies for a trade. The id and
// profit/loss are owned by the store.
type TradeInput struct {
	Instrument string    `json:"instrument" yaml:"instrument"`
	EntryTime  time.Time `json:"entry_time" yaml:"entry_time"`
	ExitTime   time.Time `json:"exit_time" yaml:"exit_time"`
	EntryPrice float64   `json:"entry_price" yaml:"entry_price"`
	ExitPrice  float64   `json:"exit_price" yaml:"exit_price"`
	Direction  Direction `json:"direction" yaml:"direction"`
	Stake      float64   `json:"stake" yaml:"stake"`
	Fees       float64   `json:"fees,omitempty" yaml:"fees,omitempty"`
}

// Trade is a journaled trade. Its profit/loss is not stored on the
// record; it is always derived from the input fields.
type Trade struct {
	ID string
	TradeInput
}

// ProfitLoss is the P/L of the trade's fields, rounded to cents. It is
// zero when the fields have no defined P/L, e.g. a zero entry price.
func (t Trade) ProfitLoss() float64 {
	pl, err := ProfitLoss(t.TradeInput)
	if err != nil {
		return 0
	}
	return pl
}

// Store owns the ordered trade collection, newest created first.
type Store interface {
	AddTrade(TradeInput) (Trade, error)
	// UpdateTrade replaces every field but the id. A missing id is a no-op.
	UpdateTrade(Trade) error
	// RemoveTrade deletes by id. A missing id is a no-op.
	RemoveTrade(id string) error
	ListTrades() ([]Trade, error)
	GetTrade(id string) (Trade, error)
	Close() error
}

// newTrade validates in and builds a record whose P/L is defined.
func newTrade(id string, in TradeInput, rules Rules) (Trade, error) {
	if err := Validate(in, rules); err != nil {
		return Trade{}, err
	}
	if _, err := ProfitLoss(in); err != nil {
		return Trade{}, err
	}
	return Trade{ID: id, TradeInput: in}, nil
}
