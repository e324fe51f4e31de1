package stats

import (
	"github.com/rustyeddy/tradebook/trade"
)

// EquityPoint is one step of the cumulative-PnL curve. TradeID and Date link
// the point back to the ledger row that produced it, so a chart click can
// drill into the trade.
type EquityPoint struct {
	TradeID string
	Date    string
	Equity  float64
}

// EquityCurve walks the closed trades oldest-first and emits the running
// cumulative PnL after each one. Same-date trades keep their ledger order, so
// the curve is identical on every recomputation.
func EquityCurve(trades []trade.Trade) []EquityPoint {
	closed := trade.SortAscending(trade.Closed(trades))

	points := make([]EquityPoint, 0, len(closed))
	var equity float64
	for _, t := range closed {
		equity += t.PnLValue()
		points = append(points, EquityPoint{
			TradeID: t.ID,
			Date:    t.Date,
			Equity:  equity,
		})
	}
	return points
}
