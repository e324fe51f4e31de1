// Package patterns groups the ledger along the axes the trader reviews:
// entry hour, setup, duration, day of week. These feed charts only; nothing
// downstream branches on them.
package patterns

import (
	"sort"
	"strings"
	"time"

	"github.com/rustyeddy/tradebook/trade"
)

// Regular-session entry hours. Buckets outside this range are not reported.
const (
	firstHour = 9
	lastHour  = 15
)

// HourPnL is total PnL for one entry hour.
type HourPnL struct {
	Hour int
	PnL  float64
}

// PnLByHour sums closed-trade PnL per entry hour over the fixed 9..15
// session window. Hours inside the window always appear, zero-filled; trades
// with a missing or malformed entry time, or one outside the window, are
// skipped.
func PnLByHour(trades []trade.Trade) []HourPnL {
	sums := make(map[int]float64)
	for _, t := range trade.Closed(trades) {
		h, ok := t.EntryHour()
		if !ok || h < firstHour || h > lastHour {
			continue
		}
		sums[h] += t.PnLValue()
	}

	out := make([]HourPnL, 0, lastHour-firstHour+1)
	for h := firstHour; h <= lastHour; h++ {
		out = append(out, HourPnL{Hour: h, PnL: sums[h]})
	}
	return out
}

// SetupPnL is total PnL for one named setup.
type SetupPnL struct {
	Setup string
	PnL   float64
}

// topSetups caps the setup leaderboard.
const topSetups = 5

// PnLBySetup sums closed-trade PnL per setup name and returns the top five
// by total, best first. Trades without a setup name are dropped rather than
// lumped into a placeholder bucket, so the leaderboard only ranks setups the
// trader actually journaled.
func PnLBySetup(trades []trade.Trade) []SetupPnL {
	sums := make(map[string]float64)
	order := []string{}
	for _, t := range trade.Closed(trades) {
		name := strings.TrimSpace(t.SetupName)
		if name == "" {
			continue
		}
		if _, seen := sums[name]; !seen {
			order = append(order, name)
		}
		sums[name] += t.PnLValue()
	}

	out := make([]SetupPnL, 0, len(order))
	for _, name := range order {
		out = append(out, SetupPnL{Setup: name, PnL: sums[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PnL > out[j].PnL
	})
	if len(out) > topSetups {
		out = out[:topSetups]
	}
	return out
}

// DurationPoint is one trade on the duration-vs-outcome scatter.
type DurationPoint struct {
	TradeID      string
	DurationMins float64
	PnL          float64
}

// DurationScatter projects closed trades that have both a recorded duration
// and a recorded PnL. No aggregation; ledger order is preserved.
func DurationScatter(trades []trade.Trade) []DurationPoint {
	out := []DurationPoint{}
	for _, t := range trade.Closed(trades) {
		if t.DurationMins == nil || t.PnL == nil {
			continue
		}
		out = append(out, DurationPoint{
			TradeID:      t.ID,
			DurationMins: *t.DurationMins,
			PnL:          *t.PnL,
		})
	}
	return out
}

// WeekdayPnL is total PnL for one day of the week.
type WeekdayPnL struct {
	Day time.Weekday
	PnL float64
}

// PnLByWeekday sums PnL per weekday over the whole ledger, open trades
// included (an open trade contributes its nil-as-zero PnL). Weekend buckets
// are accumulated but not emitted; output is fixed Monday through Friday.
func PnLByWeekday(trades []trade.Trade) []WeekdayPnL {
	var sums [7]float64
	for _, t := range trades {
		wd, ok := t.Weekday()
		if !ok {
			continue
		}
		sums[wd] += t.PnLValue()
	}

	out := make([]WeekdayPnL, 0, 5)
	for wd := time.Monday; wd <= time.Friday; wd++ {
		out = append(out, WeekdayPnL{Day: wd, PnL: sums[wd]})
	}
	return out
}
