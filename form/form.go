// Package form turns the raw string fields of a trade entry form into a
// journal.TradeInput, and back again for editing.
package form

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/tradelog/config"
	"github.com/rustyeddy/tradelog/journal"
)

var (
	ErrRequired          = errors.New("is required")
	ErrInvalidNumber     = errors.New("is not a number")
	ErrInvalidTime       = errors.New("is not a valid date and time")
	ErrUnknownInstrument = errors.New("is not a supported instrument")
)

// FieldError reports a problem with one form field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Fields holds the form values exactly as typed.
type Fields struct {
	Instrument    string
	EntryDateTime string
	ExitDateTime  string
	EntryPrice    string
	ExitPrice     string
	Direction     string
	Stake         string
	Fees          string
}

// Parser validates Fields against the configured instruments and time
// layout.
type Parser struct {
	instruments []string
	layout      string
	loc         *time.Location
}

func NewParser(cfg config.FormConfig, loc *time.Location) *Parser {
	if loc == nil {
		loc = time.Local
	}
	layout := cfg.TimeLayout
	if layout == "" {
		layout = config.DefaultTimeLayout
	}
	return &Parser{
		instruments: cfg.Instruments,
		layout:      layout,
		loc:         loc,
	}
}

// Parse checks every field and returns all problems found, joined. Fees
// may be left blank and then count as zero.
func (p *Parser) Parse(f Fields) (journal.TradeInput, error) {
	var (
		in   journal.TradeInput
		errs []error
	)
	fail := func(field string, err error) {
		errs = append(errs, &FieldError{Field: field, Err: err})
	}

	in.Instrument = strings.TrimSpace(f.Instrument)
	if err := p.CheckInstrument(in.Instrument); err != nil {
		errs = append(errs, err)
	}

	var err error
	if in.EntryTime, err = p.parseTime(f.EntryDateTime); err != nil {
		fail("entry_time", err)
	}
	if in.ExitTime, err = p.parseTime(f.ExitDateTime); err != nil {
		fail("exit_time", err)
	}
	if in.EntryPrice, err = parseNumber(f.EntryPrice); err != nil {
		fail("entry_price", err)
	}
	if in.ExitPrice, err = parseNumber(f.ExitPrice); err != nil {
		fail("exit_price", err)
	}
	if strings.TrimSpace(f.Direction) == "" {
		fail("direction", ErrRequired)
	} else if in.Direction, err = journal.ParseDirection(f.Direction); err != nil {
		fail("direction", journal.ErrInvalidDirection)
	}
	if in.Stake, err = parseNumber(f.Stake); err != nil {
		fail("stake", err)
	}
	if strings.TrimSpace(f.Fees) != "" {
		if in.Fees, err = parseNumber(f.Fees); err != nil {
			fail("fees", err)
		}
	}

	if len(errs) > 0 {
		return journal.TradeInput{}, errors.Join(errs...)
	}
	return in, nil
}

// CheckInstrument reports whether name may be journaled: it must be set
// and, when instruments are configured, be one of them.
func (p *Parser) CheckInstrument(name string) error {
	switch {
	case name == "":
		return &FieldError{Field: "instrument", Err: ErrRequired}
	case len(p.instruments) > 0 && !slices.Contains(p.instruments, name):
		return &FieldError{Field: "instrument", Err: fmt.Errorf("%w: %q", ErrUnknownInstrument, name)}
	}
	return nil
}

// Preview computes the P/L the form would record, while the user is still
// typing. ok is false until entry price, exit price and stake all parse
// and give a finite result. Unparseable fees count as zero and anything
// other than "long" is treated as short.
func Preview(f Fields) (pl float64, ok bool) {
	entry, err1 := parseNumber(f.EntryPrice)
	exit, err2 := parseNumber(f.ExitPrice)
	stake, err3 := parseNumber(f.Stake)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, false
	}
	fees, err := parseNumber(f.Fees)
	if err != nil {
		fees = 0
	}

	dir := journal.Short
	if d, err := journal.ParseDirection(f.Direction); err == nil && d == journal.Long {
		dir = journal.Long
	}

	pl, err = journal.ProfitLoss(journal.TradeInput{
		EntryPrice: entry,
		ExitPrice:  exit,
		Direction:  dir,
		Stake:      stake,
		Fees:       fees,
	})
	if err != nil {
		return 0, false
	}
	return pl, true
}

// FromTrade fills a form from a stored trade so it can be edited.
func (p *Parser) FromTrade(t journal.Trade) Fields {
	return Fields{
		Instrument:    t.Instrument,
		EntryDateTime: t.EntryTime.In(p.loc).Format(p.layout),
		ExitDateTime:  t.ExitTime.In(p.loc).Format(p.layout),
		EntryPrice:    formatNumber(t.EntryPrice),
		ExitPrice:     formatNumber(t.ExitPrice),
		Direction:     string(t.Direction),
		Stake:         formatNumber(t.Stake),
		Fees:          formatNumber(t.Fees),
	}
}

func (p *Parser) parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrRequired
	}
	t, err := time.ParseInLocation(p.layout, s, p.loc)
	if err != nil {
		return time.Time{}, ErrInvalidTime
	}
	return t, nil
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrRequired
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return v, nil
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
