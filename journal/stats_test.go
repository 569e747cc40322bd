package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withPL builds trades whose P/L is exactly pls: long from 100 with a
// stake of 100 makes the P/L the price move.
func withPL(pls ...float64) []Trade {
	out := make([]Trade, len(pls))
	for i, pl := range pls {
		out[i] = Trade{ID: string(rune('a' + i)), TradeInput: longInput(100, 100+pl, 100, 0)}
	}
	return out
}

func TestComputeStatisticsEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Statistics{}, ComputeStatistics(nil))
	assert.Equal(t, Statistics{}, ComputeStatistics([]Trade{}))
}

func TestComputeStatistics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pls      []float64
		expected Statistics
	}{
		{
			name: "one_win_one_loss",
			pls:  []float64{100, -50},
			expected: Statistics{
				Trades: 2, Wins: 1, Losses: 1,
				WinRate: 50, AvgProfit: 100, AvgLoss: 50,
				Expectancy: 25, AccumulativePL: 50, RiskRewardRatio: 2,
			},
		},
		{
			name: "only_winners_has_no_risk_reward",
			pls:  []float64{10, 20},
			expected: Statistics{
				Trades: 2, Wins: 2,
				WinRate: 100, AvgProfit: 15,
				Expectancy: 15, AccumulativePL: 30,
			},
		},
		{
			name: "only_losers",
			pls:  []float64{-10, -30},
			expected: Statistics{
				Trades: 2, Losses: 2,
				AvgLoss: 20, Expectancy: -20, AccumulativePL: -40,
			},
		},
		{
			name: "break_even_counts_as_win",
			pls:  []float64{0, -10},
			expected: Statistics{
				Trades: 2, Wins: 1, Losses: 1,
				WinRate: 50, AvgLoss: 10,
				Expectancy: -5, AccumulativePL: -10,
			},
		},
		{
			// avgProfit rounds to 33.33 before it feeds expectancy:
			// 3/4*33.33 - 1/4*10 = 22.4975 -> 22.50
			name: "expectancy_uses_rounded_averages",
			pls:  []float64{33.33, 33.33, 33.34, -10},
			expected: Statistics{
				Trades: 4, Wins: 3, Losses: 1,
				WinRate: 75, AvgProfit: 33.33, AvgLoss: 10,
				Expectancy: 22.5, AccumulativePL: 90, RiskRewardRatio: 3.33,
			},
		},
		{
			name: "win_rate_rounds",
			pls:  []float64{1, -1, -1},
			expected: Statistics{
				Trades: 3, Wins: 1, Losses: 2,
				WinRate: 33.33, AvgProfit: 1, AvgLoss: 1,
				Expectancy: -0.33, AccumulativePL: -1, RiskRewardRatio: 1,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ComputeStatistics(withPL(tt.pls...)))
		})
	}
}

func TestComputeStatisticsFromStore(t *testing.T) {
	t.Parallel()

	s := NewMemStore(WithIDGenerator(testIDs()))
	_, err := s.AddTrade(longInput(100, 110, 1000, 0))
	require.NoError(t, err)
	_, err = s.AddTrade(longInput(100, 95, 1000, 0))
	require.NoError(t, err)

	trades, err := s.ListTrades()
	require.NoError(t, err)

	st := ComputeStatistics(trades)
	assert.Equal(t, 50.00, st.WinRate)
	assert.Equal(t, 100.00, st.AvgProfit)
	assert.Equal(t, 50.00, st.AvgLoss)
	assert.Equal(t, 25.00, st.Expectancy)
	assert.Equal(t, 50.00, st.AccumulativePL)
	assert.Equal(t, 2.00, st.RiskRewardRatio)
}

func TestComputeStatisticsDerivesProfitLossFromFields(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{ID: "built-by-hand", TradeInput: longInput(100, 110, 1000, 0)},
	}
	assert.Equal(t, 100.00, trades[0].ProfitLoss())

	st := ComputeStatistics(trades)
	assert.Equal(t, 1, st.Trades)
	assert.Equal(t, 100.00, st.AccumulativePL)
	assert.Equal(t, 100.00, st.AvgProfit)
}

func TestComputeStatisticsSkipsUndefinedProfitLoss(t *testing.T) {
	t.Parallel()

	zeroEntry := Trade{ID: "zero-entry", TradeInput: longInput(0, 110, 1000, 0)}
	assert.Equal(t, 0.0, zeroEntry.ProfitLoss())

	assert.Equal(t, Statistics{}, ComputeStatistics([]Trade{{}, zeroEntry}))

	st := ComputeStatistics(append(withPL(-50), Trade{}, zeroEntry))
	assert.Equal(t, Statistics{
		Trades: 1, Losses: 1,
		AvgLoss: 50, Expectancy: -50, AccumulativePL: -50,
	}, st)
}

func TestComputeStatisticsDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	trades := withPL(5, -3, 7)
	before := ids(trades)
	_ = ComputeStatistics(trades)
	assert.Equal(t, before, ids(trades))
}
