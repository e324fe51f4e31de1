// Package filter resolves drill-down selectors against the ledger. A selector
// is what a dashboard click turns into: "show me the wins", "show me Fridays",
// "show me the worst trade". Resolution is pure and fail-soft; a selector the
// engine does not recognize resolves to an empty view, not an error.
package filter

import (
	"time"

	"github.com/rustyeddy/tradebook/trade"
)

// Kind discriminates the selector variants.
type Kind string

const (
	KindAllClosed Kind = "all_closed"
	KindWins      Kind = "wins"
	KindLosses    Kind = "losses"
	KindBest      Kind = "best"
	KindWorst     Kind = "worst"
	KindDay       Kind = "day"
	KindDirection Kind = "direction"
	KindDate      Kind = "date"
)

// Selector names a subset of the ledger. Only the field matching Kind is
// consulted; the rest are ignored.
type Selector struct {
	Kind      Kind
	Weekday   time.Weekday    // day
	Direction trade.Direction // direction
	Date      string          // date, YYYY-MM-DD
}

// Resolve returns the trades matched by the selector, always sorted
// newest-first for display.
//
// The closed-only variants (all_closed, wins, losses, best, worst) consider
// closed trades only. The calendar and direction variants run over the full
// ledger, open trades included, because a day cell on the calendar shows
// everything that happened that day.
func Resolve(trades []trade.Trade, sel Selector) []trade.Trade {
	var matched []trade.Trade

	switch sel.Kind {
	case KindAllClosed:
		matched = trade.Closed(trades)
	case KindWins:
		matched = matchOutcome(trades, trade.Win)
	case KindLosses:
		matched = matchOutcome(trades, trade.Loss)
	case KindBest:
		matched = extreme(trades, true)
	case KindWorst:
		matched = extreme(trades, false)
	case KindDay:
		matched = matchWeekday(trades, sel.Weekday)
	case KindDirection:
		matched = matchDirection(trades, sel.Direction)
	case KindDate:
		matched = matchDate(trades, sel.Date)
	default:
		matched = []trade.Trade{}
	}

	return trade.SortDescending(matched)
}

func matchOutcome(trades []trade.Trade, o trade.Outcome) []trade.Trade {
	out := []trade.Trade{}
	for _, t := range trades {
		if t.Outcome == o {
			out = append(out, t)
		}
	}
	return out
}

// extreme picks the single best or worst closed trade by PnL. The stable
// descending sort pins the tie-break: best is the first ledger occurrence of
// the maximum, worst the last occurrence of the minimum.
func extreme(trades []trade.Trade, best bool) []trade.Trade {
	closed := trade.Closed(trades)
	if len(closed) == 0 {
		return []trade.Trade{}
	}
	byPnL := trade.SortByPnLDescending(closed)
	if best {
		return byPnL[:1]
	}
	return byPnL[len(byPnL)-1:]
}

func matchWeekday(trades []trade.Trade, day time.Weekday) []trade.Trade {
	out := []trade.Trade{}
	for _, t := range trades {
		wd, ok := t.Weekday()
		if ok && wd == day {
			out = append(out, t)
		}
	}
	return out
}

func matchDirection(trades []trade.Trade, dir trade.Direction) []trade.Trade {
	out := []trade.Trade{}
	for _, t := range trades {
		if t.Direction == dir {
			out = append(out, t)
		}
	}
	return out
}

func matchDate(trades []trade.Trade, date string) []trade.Trade {
	out := []trade.Trade{}
	for _, t := range trades {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return out
}
