// Package trade defines the journal's ledger record and the small set of
// helpers the analytics engines share. The ledger itself is owned by whoever
// loaded it (SQLite store, CSV import, a test fixture); everything in this
// module treats a []Trade as an immutable snapshot.
package trade

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Direction of the underlying position.
type Direction string

const (
	Long  Direction = "LONG"
	Short Direction = "SHORT"
)

// Outcome of a journaled trade. Open trades sit in the ledger until the
// trader closes them out; they are excluded from every closed-trade statistic.
type Outcome string

const (
	Open      Outcome = "OPEN"
	Win       Outcome = "WIN"
	Loss      Outcome = "LOSS"
	BreakEven Outcome = "BREAK_EVEN"
	Skipped   Outcome = "SKIPPED"
)

// DateLayout is the ledger's calendar-date format. Lexicographic order on
// these strings matches chronological order, which the sort helpers rely on.
const DateLayout = "2006-01-02"

// Trade is one journaled options trade.
//
// PnL and DurationMins are pointers on purpose: a trade the trader never
// priced out is different from a trade that closed flat at 0. Sums treat nil
// as zero; display layers can still tell the two apart.
type Trade struct {
	ID        string
	Date      string // YYYY-MM-DD
	EntryTime string // HH:MM, may be empty
	ExitTime  string // HH:MM, may be empty

	Direction Direction
	Outcome   Outcome

	PnL          *float64
	Mistakes     []string
	DurationMins *float64

	// Classification only, never arithmetic.
	SetupName   string
	Instrument  string
	StrikePrice string
	OptionType  string
}

// Closed reports whether the trade has a final outcome.
func (t Trade) Closed() bool {
	return t.Outcome != Open
}

// HasMistakes reports whether any mistake tag was journaled on the trade.
func (t Trade) HasMistakes() bool {
	for _, m := range t.Mistakes {
		if strings.TrimSpace(m) != "" {
			return true
		}
	}
	return false
}

// PnLValue returns the recorded profit/loss, or 0 when none was recorded.
func (t Trade) PnLValue() float64 {
	if t.PnL == nil {
		return 0
	}
	return *t.PnL
}

// DurationValue returns the recorded duration in minutes, or 0 when none was
// recorded.
func (t Trade) DurationValue() float64 {
	if t.DurationMins == nil {
		return 0
	}
	return *t.DurationMins
}

// Weekday parses the trade date and returns its day of week. A date that
// fails to parse reports ok=false; callers skip the record rather than fail
// the whole computation.
func (t Trade) Weekday() (time.Weekday, bool) {
	d, err := time.Parse(DateLayout, t.Date)
	if err != nil {
		return time.Sunday, false
	}
	return d.Weekday(), true
}

// EntryHour parses the hour component of EntryTime (HH:MM). Missing or
// malformed entry times report ok=false.
func (t Trade) EntryHour() (int, bool) {
	hh, _, found := strings.Cut(t.EntryTime, ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}

// Closed filters the ledger down to closed trades, preserving ledger order.
func Closed(trades []Trade) []Trade {
	out := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if t.Closed() {
			out = append(out, t)
		}
	}
	return out
}

// SortAscending returns a copy sorted oldest-first by date. Same-date trades
// keep their relative ledger order, so equity walks are reproducible.
func SortAscending(trades []Trade) []Trade {
	out := make([]Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// SortDescending returns a copy sorted newest-first by date, the order every
// display view uses.
func SortDescending(trades []Trade) []Trade {
	out := make([]Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// SortByPnLDescending returns a copy sorted by recorded PnL, largest first.
// Ties keep ledger order, which pins down best/worst selection when several
// trades share the extreme value.
func SortByPnLDescending(trades []Trade) []Trade {
	out := make([]Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PnLValue() > out[j].PnLValue()
	})
	return out
}

// Float returns a pointer to v. Handy for building ledgers in tests and
// import code.
func Float(v float64) *float64 {
	return &v
}
