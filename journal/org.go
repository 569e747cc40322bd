package journal

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// FormatTradeOrg renders a trade as an Org-mode block suitable for pasting
// into a journal. Structured facts go in a PROPERTIES drawer; the
// Thesis/Execution/Review headings are left for the trader to fill in.
func FormatTradeOrg(t Trade) string {
	heading := fmt.Sprintf("** Trade: %s %s (%s)", t.Instrument, t.Direction, shortID(t.ID))
	entry := t.EntryTime.UTC().Format(time.RFC3339)
	exit := t.ExitTime.UTC().Format(time.RFC3339)

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.ID))
	b.WriteString(fmt.Sprintf(":ID: %s\n", t.ID))
	b.WriteString(fmt.Sprintf(":INSTRUMENT: %s\n", t.Instrument))
	b.WriteString(fmt.Sprintf(":DIRECTION: %s\n", t.Direction))
	b.WriteString(fmt.Sprintf(":STAKE: %.2f\n", t.Stake))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %.5f\n", t.EntryPrice))
	b.WriteString(fmt.Sprintf(":EXIT_PRICE: %.5f\n", t.ExitPrice))
	b.WriteString(fmt.Sprintf(":ENTRY_TIME: %s\n", entry))
	b.WriteString(fmt.Sprintf(":EXIT_TIME: %s\n", exit))
	b.WriteString(fmt.Sprintf(":FEES: %.2f\n", t.Fees))
	b.WriteString(fmt.Sprintf(":PROFIT_LOSS: %.2f\n", t.ProfitLoss()))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Thesis\n- \n\n")
	b.WriteString("*** Execution\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}

// StatisticsOrgTemplate renders a Statistics value as an Org-mode block.
const StatisticsOrgTemplate = `* PERFORMANCE SUMMARY
:PROPERTIES:
:TRADES:      {{.Trades}}
:WINS:        {{.Wins}}
:LOSSES:      {{.Losses}}
:WIN_RATE:    {{money .WinRate}}
:AVG_PROFIT:  {{money .AvgProfit}}
:AVG_LOSS:    {{money .AvgLoss}}
:EXPECTANCY:  {{money .Expectancy}}
:ACCUM_PL:    {{money .AccumulativePL}}
:RISK_REWARD: {{money .RiskRewardRatio}}
:END:

** Performance
- Win Rate:         *{{money .WinRate}}%*
- Avg. Profit:      *${{money .AvgProfit}}*
- Avg. Loss:        *${{money .AvgLoss}}*
- Expectancy:       *${{money .Expectancy}}*
- Accumulative P/L: *${{money .AccumulativePL}}*
- Risk/Reward:      *{{money .RiskRewardRatio}}*

** Trade Distribution
| Outcome | Count |
|---------+-------|
| Wins    | {{.Wins}} |
| Losses  | {{.Losses}} |
| Total   | {{.Trades}} |
`

var statisticsOrg = template.Must(template.New("statistics").Funcs(template.FuncMap{
	"money": func(x float64) string { return fmt.Sprintf("%.2f", x) },
}).Parse(StatisticsOrgTemplate))

// FormatStatisticsOrg renders st with StatisticsOrgTemplate.
func FormatStatisticsOrg(st Statistics) (string, error) {
	var buf bytes.Buffer
	if err := statisticsOrg.Execute(&buf, st); err != nil {
		return "", fmt.Errorf("render statistics: %w", err)
	}
	return buf.String(), nil
}
