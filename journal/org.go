package journal

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/tradebook/trade"
)

// FormatTradeOrg renders a ledger row as an Org-mode block suitable for
// pasting into a daily review file. Structured facts live in a PROPERTIES
// drawer for easy search; the narrative headings stay blank for the trader.
func FormatTradeOrg(t trade.Trade) string {
	heading := fmt.Sprintf("** Trade: %s (%s)", orDash(t.Instrument), shortID(t.ID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.ID))
	b.WriteString(fmt.Sprintf(":DATE: %s\n", t.Date))
	b.WriteString(fmt.Sprintf(":ENTRY: %s\n", orDash(t.EntryTime)))
	b.WriteString(fmt.Sprintf(":EXIT: %s\n", orDash(t.ExitTime)))
	b.WriteString(fmt.Sprintf(":DIRECTION: %s\n", t.Direction))
	b.WriteString(fmt.Sprintf(":OUTCOME: %s\n", t.Outcome))
	if t.PnL != nil {
		b.WriteString(fmt.Sprintf(":PNL: %.2f\n", *t.PnL))
	} else {
		b.WriteString(":PNL: -\n")
	}
	if t.DurationMins != nil {
		b.WriteString(fmt.Sprintf(":DURATION_MINS: %.0f\n", *t.DurationMins))
	}
	if t.SetupName != "" {
		b.WriteString(fmt.Sprintf(":SETUP: %s\n", t.SetupName))
	}
	if t.StrikePrice != "" {
		b.WriteString(fmt.Sprintf(":STRIKE: %s %s\n", t.StrikePrice, t.OptionType))
	}
	if len(t.Mistakes) > 0 {
		b.WriteString(fmt.Sprintf(":MISTAKES: %s\n", strings.Join(t.Mistakes, ", ")))
	}
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Thesis\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []trade.Trade) string {
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

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
