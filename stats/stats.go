// Package stats computes aggregate performance statistics and the equity
// curve from a ledger snapshot. Everything here is a pure function: same
// ledger in, same numbers out, no state carried between calls.
package stats

import (
	"github.com/rustyeddy/tradebook/trade"
)

// Stats summarizes closed-trade performance. Rates are percentages.
type Stats struct {
	TotalTrades int
	Wins        int
	Losses      int
	WinRate     float64

	GrossProfit  float64
	GrossLoss    float64
	ProfitFactor float64

	BestTrade  float64
	WorstTrade float64
	AvgWin     float64
	AvgLoss    float64

	LongWinRate  float64
	ShortWinRate float64
}

// Compute derives Stats over the closed trades in the ledger. Open trades
// never contribute to a count or a sum.
//
// Every ratio has an explicit zero fallback, and profit factor saturates to
// gross profit when there are no losing trades. A flawless ledger reports a
// finite profit factor, never +Inf.
func Compute(trades []trade.Trade) Stats {
	closed := trade.Closed(trades)

	var s Stats
	s.TotalTrades = len(closed)

	for _, t := range closed {
		switch t.Outcome {
		case trade.Win:
			s.Wins++
		case trade.Loss:
			s.Losses++
		}
		if pnl := t.PnLValue(); pnl > 0 {
			s.GrossProfit += pnl
		} else if pnl < 0 {
			s.GrossLoss += -pnl
		}
	}

	if s.TotalTrades > 0 {
		s.WinRate = float64(s.Wins) / float64(s.TotalTrades) * 100
	}
	if s.GrossLoss > 0 {
		s.ProfitFactor = s.GrossProfit / s.GrossLoss
	} else {
		s.ProfitFactor = s.GrossProfit
	}
	if s.Wins > 0 {
		s.AvgWin = s.GrossProfit / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AvgLoss = s.GrossLoss / float64(s.Losses)
	}

	if len(closed) > 0 {
		byPnL := trade.SortByPnLDescending(closed)
		s.BestTrade = byPnL[0].PnLValue()
		s.WorstTrade = byPnL[len(byPnL)-1].PnLValue()
	}

	s.LongWinRate = directionalWinRate(closed, trade.Long)
	s.ShortWinRate = directionalWinRate(closed, trade.Short)

	return s
}

func directionalWinRate(closed []trade.Trade, dir trade.Direction) float64 {
	var total, wins int
	for _, t := range closed {
		if t.Direction != dir {
			continue
		}
		total++
		if t.Outcome == trade.Win {
			wins++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}
