package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradelog/id"
)

var (
	testEntry = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	testExit  = time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)
)

func testIDs() *id.Generator {
	return id.NewSeeded(1, func() time.Time { return testEntry })
}

func longInput(entry, exit, stake, fees float64) TradeInput {
	return TradeInput{
		Instrument: "DE40",
		EntryTime:  testEntry,
		ExitTime:   testExit,
		EntryPrice: entry,
		ExitPrice:  exit,
		Direction:  Long,
		Stake:      stake,
		Fees:       fees,
	}
}

func shortInput(entry, exit, stake, fees float64) TradeInput {
	in := longInput(entry, exit, stake, fees)
	in.Instrument = "STOXX50"
	in.Direction = Short
	return in
}

// storeFactories runs a test body against every Store implementation.
func storeFactories() map[string]func(*testing.T, ...Option) Store {
	return map[string]func(*testing.T, ...Option) Store{
		"memory": func(t *testing.T, opts ...Option) Store {
			return NewMemStore(append([]Option{WithIDGenerator(testIDs())}, opts...)...)
		},
		"sqlite": func(t *testing.T, opts ...Option) Store {
			t.Helper()
			s, err := NewSQLiteStore(append([]Option{WithIDGenerator(testIDs())}, opts...)...)
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
	}
}

func ids(trades []Trade) []string {
	out := make([]string, len(trades))
	for i, t := range trades {
		out[i] = t.ID
	}
	return out
}
