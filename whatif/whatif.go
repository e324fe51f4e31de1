// Package whatif replays the trade history with selected categories of trades
// erased, answering "what would my equity look like if I had skipped those".
// The simulator keeps no state between runs; every toggle change replays the
// full ledger.
package whatif

import (
	"time"

	"github.com/rustyeddy/tradebook/trade"
)

// Duration and entry-hour cutoffs for the behavioral exclusion rules.
const (
	shortDurationMins = 5
	lateEntryHour     = 14
)

// ExclusionFilters are independent toggles. A trade is erased from the
// simulated path when it matches ANY enabled rule.
type ExclusionFilters struct {
	ExcludeMistakes      bool
	ExcludeFridays       bool
	ExcludeShortDuration bool // trades under 5 minutes
	ExcludeAfter2PM      bool // entries at 14:00 or later
}

// Excludes reports whether the trade is erased under the enabled rules.
//
// A trade with no recorded duration counts as a zero-minute trade, so the
// short-duration rule catches it. A trade with no parseable entry time is
// never caught by the late-entry rule.
func (f ExclusionFilters) Excludes(t trade.Trade) bool {
	if f.ExcludeMistakes && t.HasMistakes() {
		return true
	}
	if f.ExcludeFridays {
		if wd, ok := t.Weekday(); ok && wd == time.Friday {
			return true
		}
	}
	if f.ExcludeShortDuration && t.DurationValue() < shortDurationMins {
		return true
	}
	if f.ExcludeAfter2PM {
		if h, ok := t.EntryHour(); ok && h >= lateEntryHour {
			return true
		}
	}
	return false
}

// SimPoint carries both running totals after one trade: the equity that
// actually happened and the equity of the counterfactual path.
type SimPoint struct {
	Date      string
	Actual    float64
	Simulated float64
}

// Simulate walks the closed trades oldest-first, accumulating every trade
// into Actual and only the non-excluded ones into Simulated.
func Simulate(trades []trade.Trade, f ExclusionFilters) []SimPoint {
	closed := trade.SortAscending(trade.Closed(trades))

	points := make([]SimPoint, 0, len(closed))
	var actual, simulated float64
	for _, t := range closed {
		actual += t.PnLValue()
		if !f.Excludes(t) {
			simulated += t.PnLValue()
		}
		points = append(points, SimPoint{
			Date:      t.Date,
			Actual:    actual,
			Simulated: simulated,
		})
	}
	return points
}

// OptimizationStats is the headline number of a simulation: how much equity
// the excluded trades cost (or earned).
type OptimizationStats struct {
	Actual    float64
	Simulated float64
	Delta     float64
	Pct       float64
}

// Summarize reads the final simulation point. Delta is simulated minus
// actual; Pct is the delta relative to the magnitude of actual equity, 0 when
// actual equity is 0 or the simulation is empty.
func Summarize(points []SimPoint) OptimizationStats {
	if len(points) == 0 {
		return OptimizationStats{}
	}
	last := points[len(points)-1]

	s := OptimizationStats{
		Actual:    last.Actual,
		Simulated: last.Simulated,
		Delta:     last.Simulated - last.Actual,
	}
	if last.Actual != 0 {
		abs := last.Actual
		if abs < 0 {
			abs = -abs
		}
		s.Pct = s.Delta / abs * 100
	}
	return s
}
