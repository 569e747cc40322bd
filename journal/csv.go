// journal/csv.go
package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// CSVHeader is the column layout written by WriteCSV.
var CSVHeader = []string{
	"trade_id", "instrument", "direction", "entry_time", "exit_time",
	"entry_price", "exit_price", "stake", "fees", "profit_loss",
}

// WriteCSV writes trades, in the given order, with a header row.
func WriteCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, t := range trades {
		err := cw.Write([]string{
			t.ID,
			t.Instrument,
			string(t.Direction),
			t.EntryTime.Format(time.RFC3339Nano),
			t.ExitTime.Format(time.RFC3339Nano),
			f(t.EntryPrice),
			f(t.ExitPrice),
			f(t.Stake),
			f(t.Fees),
			strconv.FormatFloat(t.ProfitLoss(), 'f', 2, 64),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses trades written by WriteCSV, or any CSV whose header
// names the same columns. trade_id and profit_loss are ignored; fees may
// be missing or blank.
func ReadCSV(r io.Reader) ([]TradeInput, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []TradeInput{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, req := range []string{"instrument", "direction", "entry_time", "exit_time", "entry_price", "exit_price", "stake"} {
		if _, ok := col[req]; !ok {
			return nil, fmt.Errorf("missing column %q", req)
		}
	}

	out := []TradeInput{}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		in, err := parseCSVRecord(rec, col)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, in)
	}
	return out, nil
}

func parseCSVRecord(rec []string, col map[string]int) (TradeInput, error) {
	get := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var (
		in  TradeInput
		err error
	)
	in.Instrument = get("instrument")
	if in.Direction, err = ParseDirection(get("direction")); err != nil {
		return in, err
	}
	if in.EntryTime, err = time.Parse(time.RFC3339, get("entry_time")); err != nil {
		return in, fmt.Errorf("entry_time: %w", err)
	}
	if in.ExitTime, err = time.Parse(time.RFC3339, get("exit_time")); err != nil {
		return in, fmt.Errorf("exit_time: %w", err)
	}
	if in.EntryPrice, err = strconv.ParseFloat(get("entry_price"), 64); err != nil {
		return in, fmt.Errorf("entry_price: %w", err)
	}
	if in.ExitPrice, err = strconv.ParseFloat(get("exit_price"), 64); err != nil {
		return in, fmt.Errorf("exit_price: %w", err)
	}
	if in.Stake, err = strconv.ParseFloat(get("stake"), 64); err != nil {
		return in, fmt.Errorf("stake: %w", err)
	}
	if s := get("fees"); s != "" {
		if in.Fees, err = strconv.ParseFloat(s, 64); err != nil {
			return in, fmt.Errorf("fees: %w", err)
		}
	}
	return in, nil
}

// f writes the shortest decimal that parses back to x.
func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
