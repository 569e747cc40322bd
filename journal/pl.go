package journal

import (
	"math"

	"github.com/shopspring/decimal"
)

// ProfitLoss computes the realized P/L of a trade:
//
//	long:  (exit-entry)/entry*stake - fees
//	short: (entry-exit)/entry*stake - fees
//
// rounded half away from zero to two decimals. A zero entry price or any
// other input producing a non-finite result is an error.
func ProfitLoss(in TradeInput) (float64, error) {
	if in.EntryPrice == 0 {
		return 0, &ValidationError{Field: "entry_price", Err: ErrInvalidEntryPrice}
	}

	var raw float64
	switch in.Direction {
	case Long:
		raw = (in.ExitPrice - in.EntryPrice) / in.EntryPrice
	case Short:
		raw = (in.EntryPrice - in.ExitPrice) / in.EntryPrice
	default:
		return 0, &ValidationError{Field: "direction", Err: ErrInvalidDirection}
	}

	pl := raw*in.Stake - in.Fees
	if math.IsNaN(pl) || math.IsInf(pl, 0) {
		return 0, &ValidationError{Field: "profit_loss", Err: ErrNonFiniteValue}
	}
	return Round2(pl), nil
}

// Round2 rounds x half away from zero to two decimal places. Non-finite
// values are returned unchanged.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}
