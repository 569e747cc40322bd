package journal

import "math"

// Statistics summarizes a set of trades. All ratios are rounded to two
// decimals; WinRate is a percentage.
type Statistics struct {
	Trades int `json:"trades" yaml:"trades"`
	Wins   int `json:"wins" yaml:"wins"`
	Losses int `json:"losses" yaml:"losses"`

	WinRate         float64 `json:"win_rate" yaml:"win_rate"`
	AvgProfit       float64 `json:"avg_profit" yaml:"avg_profit"`
	AvgLoss         float64 `json:"avg_loss" yaml:"avg_loss"`
	Expectancy      float64 `json:"expectancy" yaml:"expectancy"`
	AccumulativePL  float64 `json:"accumulative_pl" yaml:"accumulative_pl"`
	RiskRewardRatio float64 `json:"risk_reward_ratio" yaml:"risk_reward_ratio"`
}

// ComputeStatistics summarizes trades. A trade with P/L >= 0 counts as a
// win. AvgLoss is reported as a positive magnitude. Expectancy and the
// risk/reward ratio are built from the already rounded averages. Trades
// whose fields have no defined P/L are left out; with nothing left the
// result is the zero Statistics.
func ComputeStatistics(trades []Trade) Statistics {
	var (
		st                          Statistics
		totalProfit, totalLoss, sum float64
	)
	for _, t := range trades {
		pl, err := ProfitLoss(t.TradeInput)
		if err != nil {
			continue
		}
		st.Trades++
		sum += pl
		if pl >= 0 {
			st.Wins++
			totalProfit += pl
		} else {
			st.Losses++
			totalLoss += math.Abs(pl)
		}
	}
	if st.Trades == 0 {
		return Statistics{}
	}

	n := float64(st.Trades)
	st.WinRate = Round2(float64(st.Wins) / n * 100)
	if st.Wins > 0 {
		st.AvgProfit = Round2(totalProfit / float64(st.Wins))
	}
	if st.Losses > 0 {
		st.AvgLoss = Round2(totalLoss / float64(st.Losses))
	}
	st.Expectancy = Round2(float64(st.Wins)/n*st.AvgProfit - float64(st.Losses)/n*st.AvgLoss)
	st.AccumulativePL = Round2(sum)
	if st.AvgLoss > 0 {
		st.RiskRewardRatio = Round2(st.AvgProfit / st.AvgLoss)
	}
	return st
}
