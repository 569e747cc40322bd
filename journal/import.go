package journal

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// tradeFile is the YAML import layout:
//
//	trades:
//	  - instrument: DE40
//	    direction: long
//	    entry_time: 2024-03-01T09:00:00Z
//	    ...
type tradeFile struct {
	Trades []TradeInput `yaml:"trades"`
}

// ReadYAML parses a YAML trade list.
func ReadYAML(r io.Reader) ([]TradeInput, error) {
	var tf tradeFile
	if err := yaml.NewDecoder(r).Decode(&tf); err != nil {
		if errors.Is(err, io.EOF) {
			return []TradeInput{}, nil
		}
		return nil, fmt.Errorf("parse trades: %w", err)
	}
	if tf.Trades == nil {
		return []TradeInput{}, nil
	}
	return tf.Trades, nil
}

// Replay adds ins to s so that ins[0] ends up first in the store, the
// same order a file written from ListTrades lists them in. It stops at
// the first rejected trade.
func Replay(s Store, ins []TradeInput) ([]Trade, error) {
	out := make([]Trade, len(ins))
	for i := len(ins) - 1; i >= 0; i-- {
		t, err := s.AddTrade(ins[i])
		if err != nil {
			return nil, fmt.Errorf("trade %d: %w", i+1, err)
		}
		out[i] = t
	}
	return out, nil
}
