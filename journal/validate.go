package journal

import "math"

// Rules are optional validation rules a caller may turn on. The zero
// value keeps the permissive behavior.
type Rules struct {
	// RequireExitAfterEntry rejects trades whose exit time is before
	// their entry time.
	RequireExitAfterEntry bool
}

// Validate checks in against the rules the store always enforces
// (instrument present, known direction, finite numbers, non-zero entry
// price) plus the optional ones in rules.
func Validate(in TradeInput, rules Rules) error {
	if in.Instrument == "" {
		return &ValidationError{Field: "instrument", Err: ErrMissingInstrument}
	}
	if !in.Direction.Valid() {
		return &ValidationError{Field: "direction", Err: ErrInvalidDirection}
	}

	nums := []struct {
		field string
		v     float64
	}{
		{"entry_price", in.EntryPrice},
		{"exit_price", in.ExitPrice},
		{"stake", in.Stake},
		{"fees", in.Fees},
	}
	for _, n := range nums {
		if math.IsNaN(n.v) || math.IsInf(n.v, 0) {
			return &ValidationError{Field: n.field, Err: ErrNonFiniteValue}
		}
	}

	if in.EntryPrice == 0 {
		return &ValidationError{Field: "entry_price", Err: ErrInvalidEntryPrice}
	}
	if rules.RequireExitAfterEntry && in.ExitTime.Before(in.EntryTime) {
		return &ValidationError{Field: "exit_time", Err: ErrExitBeforeEntry}
	}
	return nil
}
