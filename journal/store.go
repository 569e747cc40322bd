package journal

import (
	"fmt"
	"sync"
)

// MemStore is the in-memory Store. Writes are serialized; readers get a
// copy of the collection.
type MemStore struct {
	mu     sync.RWMutex
	trades []Trade
	opts   options
}

var _ Store = (*MemStore)(nil)

func NewMemStore(opts ...Option) *MemStore {
	return &MemStore{opts: buildOptions(opts)}
}

// AddTrade validates in, computes its P/L, assigns a fresh id and puts
// the trade at the front of the collection.
func (s *MemStore) AddTrade(in TradeInput) (Trade, error) {
	t, err := newTrade(s.opts.ids.New(), in, s.opts.rules)
	if err != nil {
		return Trade{}, fmt.Errorf("add trade: %w", err)
	}

	s.mu.Lock()
	s.trades = append([]Trade{t}, s.trades...)
	s.mu.Unlock()

	s.opts.log.Debug().
		Str("trade_id", t.ID).
		Str("instrument", t.Instrument).
		Float64("profit_loss", t.ProfitLoss()).
		Msg("trade added")
	return t, nil
}

// UpdateTrade replaces the trade with t.ID in place.
func (s *MemStore) UpdateTrade(t Trade) error {
	next, err := newTrade(t.ID, t.TradeInput, s.opts.rules)
	if err != nil {
		return fmt.Errorf("update trade %s: %w", t.ID, err)
	}

	s.mu.Lock()
	i := s.indexOf(t.ID)
	if i >= 0 {
		s.trades[i] = next
	}
	s.mu.Unlock()

	s.opts.log.Debug().
		Str("trade_id", t.ID).
		Bool("found", i >= 0).
		Float64("profit_loss", next.ProfitLoss()).
		Msg("trade updated")
	return nil
}

func (s *MemStore) RemoveTrade(id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i >= 0 {
		s.trades = append(s.trades[:i:i], s.trades[i+1:]...)
	}
	s.mu.Unlock()

	s.opts.log.Debug().Str("trade_id", id).Bool("found", i >= 0).Msg("trade removed")
	return nil
}

// ListTrades returns a copy of the collection, newest created first.
func (s *MemStore) ListTrades() ([]Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Trade, len(s.trades))
	copy(out, s.trades)
	return out, nil
}

func (s *MemStore) GetTrade(id string) (Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.trades[i], nil
	}
	return Trade{}, fmt.Errorf("trade %q: %w", id, ErrTradeNotFound)
}

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trades)
}

func (s *MemStore) Close() error {
	return nil
}

// indexOf expects s.mu to be held.
func (s *MemStore) indexOf(id string) int {
	for i := range s.trades {
		if s.trades[i].ID == id {
			return i
		}
	}
	return -1
}
