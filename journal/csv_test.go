package journal

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	s := NewMemStore(WithIDGenerator(testIDs()))
	tr, err := s.AddTrade(shortInput(100, 90, 1000, 5))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []Trade{tr}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, CSVHeader, rows[0])

	want := []string{
		tr.ID,
		"STOXX50",
		"short",
		testEntry.Format(time.RFC3339),
		testExit.Format(time.RFC3339),
		"100",
		"90",
		"1000",
		"5",
		"95.00",
	}
	assert.Equal(t, want, rows[1])
}

func TestWriteReadCSVPreservesOrder(t *testing.T) {
	t.Parallel()

	src := NewMemStore(WithIDGenerator(testIDs()))
	_, err := Replay(src, []TradeInput{
		longInput(100, 110, 1000, 0),
		shortInput(100, 90, 1000, 5),
		longInput(250, 240, 300, 1.5),
	})
	require.NoError(t, err)
	trades, err := src.ListTrades()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, trades))

	ins, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, ins, 3)

	dst := NewMemStore()
	_, err = Replay(dst, ins)
	require.NoError(t, err)
	again, err := dst.ListTrades()
	require.NoError(t, err)

	for i := range trades {
		assert.Equal(t, trades[i].Instrument, again[i].Instrument)
		assert.Equal(t, trades[i].Direction, again[i].Direction)
		assert.Equal(t, trades[i].ProfitLoss(), again[i].ProfitLoss())
		assert.True(t, trades[i].EntryTime.Equal(again[i].EntryTime))
	}
}

func TestWriteReadCSVIsLossless(t *testing.T) {
	t.Parallel()

	tiny := longInput(0.00000123, 0.0000015, 1000, 0)
	precise := shortInput(18250.123456789, 18190.987654321, 2500.0000001, 1.23456789)
	precise.ExitTime = testExit.Add(123456789 * time.Nanosecond)

	src := NewMemStore(WithIDGenerator(testIDs()))
	stored, err := Replay(src, []TradeInput{tiny, precise})
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, 219.51, stored[0].ProfitLoss())

	trades, err := src.ListTrades()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, trades))

	ins, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, ins, 2)

	dst := NewMemStore()
	_, err = Replay(dst, ins)
	require.NoError(t, err)
	again, err := dst.ListTrades()
	require.NoError(t, err)
	require.Len(t, again, 2)

	for i := range trades {
		assert.Equal(t, trades[i].EntryPrice, again[i].EntryPrice)
		assert.Equal(t, trades[i].ExitPrice, again[i].ExitPrice)
		assert.Equal(t, trades[i].Stake, again[i].Stake)
		assert.Equal(t, trades[i].Fees, again[i].Fees)
		assert.True(t, trades[i].ExitTime.Equal(again[i].ExitTime))
		assert.Equal(t, trades[i].ProfitLoss(), again[i].ProfitLoss())
	}
	assert.Equal(t, 219.51, again[0].ProfitLoss())
}

func TestReadCSVIgnoresSuppliedProfitLoss(t *testing.T) {
	t.Parallel()

	data := `instrument,direction,entry_time,exit_time,entry_price,exit_price,stake,profit_loss
F40,Long,2024-03-01T09:00:00Z,2024-03-01T10:00:00Z,7500,7575,2000,999999
`
	ins, err := ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, ins, 1)
	assert.Equal(t, Long, ins[0].Direction)
	assert.Equal(t, 0.0, ins[0].Fees)

	pl, err := ProfitLoss(ins[0])
	require.NoError(t, err)
	assert.Equal(t, 20.00, pl)
}

func TestReadCSVErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		errMsg string
	}{
		{
			name:   "missing column",
			data:   "instrument,direction\nDE40,long\n",
			errMsg: `missing column "entry_time"`,
		},
		{
			name: "bad direction",
			data: "instrument,direction,entry_time,exit_time,entry_price,exit_price,stake\n" +
				"DE40,up,2024-03-01T09:00:00Z,2024-03-01T10:00:00Z,1,2,3\n",
			errMsg: "line 2",
		},
		{
			name: "bad number",
			data: "instrument,direction,entry_time,exit_time,entry_price,exit_price,stake\n" +
				"DE40,long,2024-03-01T09:00:00Z,2024-03-01T10:00:00Z,abc,2,3\n",
			errMsg: "entry_price",
		},
		{
			name: "bad time",
			data: "instrument,direction,entry_time,exit_time,entry_price,exit_price,stake\n" +
				"DE40,long,yesterday,2024-03-01T10:00:00Z,1,2,3\n",
			errMsg: "entry_time",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadCSV(strings.NewReader(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestReadCSVEmpty(t *testing.T) {
	t.Parallel()

	ins, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ins)
}
