package whatif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/trade"
)

func closedTrade(id, date string, pnl float64) trade.Trade {
	return trade.Trade{
		ID:      id,
		Date:    date,
		Outcome: trade.Win,
		PnL:     trade.Float(pnl),
	}
}

func TestSimulateNoFiltersTracksActual(t *testing.T) {
	t.Parallel()

	ledger := []trade.Trade{
		closedTrade("t1", "2026-08-03", 100),
		closedTrade("t2", "2026-08-04", -50),
		closedTrade("t3", "2026-08-05", 25),
	}

	points := Simulate(ledger, ExclusionFilters{})
	require.Len(t, points, 3)
	for _, p := range points {
		assert.InDelta(t, p.Actual, p.Simulated, 1e-9)
	}

	summary := Summarize(points)
	assert.InDelta(t, 0, summary.Delta, 1e-9)
	assert.InDelta(t, 0, summary.Pct, 1e-9)
	assert.InDelta(t, 75, summary.Actual, 1e-9)
}

func TestSimulateWalksChronologically(t *testing.T) {
	t.Parallel()

	// Ledger out of order; the walk must not be.
	ledger := []trade.Trade{
		closedTrade("t2", "2026-08-04", -50),
		closedTrade("t1", "2026-08-03", 100),
	}

	points := Simulate(ledger, ExclusionFilters{})
	require.Len(t, points, 2)
	assert.Equal(t, "2026-08-03", points[0].Date)
	assert.InDelta(t, 100, points[0].Actual, 1e-9)
	assert.InDelta(t, 50, points[1].Actual, 1e-9)
}

func TestSimulateSkipsOpenTrades(t *testing.T) {
	t.Parallel()

	ledger := []trade.Trade{
		closedTrade("t1", "2026-08-03", 100),
		{ID: "o1", Date: "2026-08-04", Outcome: trade.Open, PnL: trade.Float(500)},
	}

	points := Simulate(ledger, ExclusionFilters{})
	require.Len(t, points, 1)
	assert.InDelta(t, 100, points[0].Actual, 1e-9)
}

func TestExclusionRulesAreORed(t *testing.T) {
	t.Parallel()

	// A Friday trade that also carries a mistake tag: enabling only the
	// Friday rule must still erase it.
	friday := closedTrade("f1", "2026-08-21", -80)
	friday.Mistakes = []string{"revenge trade"}

	ledger := []trade.Trade{
		closedTrade("t1", "2026-08-20", 100),
		friday,
	}

	points := Simulate(ledger, ExclusionFilters{ExcludeFridays: true})
	require.Len(t, points, 2)

	last := points[len(points)-1]
	assert.InDelta(t, 20, last.Actual, 1e-9)
	assert.InDelta(t, 100, last.Simulated, 1e-9)
}

func TestExcludeMistakes(t *testing.T) {
	t.Parallel()

	mistake := closedTrade("m1", "2026-08-04", -60)
	mistake.Mistakes = []string{"chased"}

	ledger := []trade.Trade{
		closedTrade("t1", "2026-08-03", 100),
		mistake,
	}

	summary := Summarize(Simulate(ledger, ExclusionFilters{ExcludeMistakes: true}))
	assert.InDelta(t, 40, summary.Actual, 1e-9)
	assert.InDelta(t, 100, summary.Simulated, 1e-9)
	assert.InDelta(t, 60, summary.Delta, 1e-9)
	assert.InDelta(t, 150, summary.Pct, 1e-9)
}

func TestExcludeShortDurationCatchesAbsentDuration(t *testing.T) {
	t.Parallel()

	quick := closedTrade("q1", "2026-08-03", -30)
	quick.DurationMins = trade.Float(3)
	unrecorded := closedTrade("u1", "2026-08-04", -10) // no duration journaled
	held := closedTrade("h1", "2026-08-05", 50)
	held.DurationMins = trade.Float(25)

	ledger := []trade.Trade{quick, unrecorded, held}

	summary := Summarize(Simulate(ledger, ExclusionFilters{ExcludeShortDuration: true}))

	// An unrecorded duration compares as 0 minutes, so it is erased too.
	assert.InDelta(t, 10, summary.Actual, 1e-9)
	assert.InDelta(t, 50, summary.Simulated, 1e-9)
}

func TestExcludeAfter2PM(t *testing.T) {
	t.Parallel()

	early := closedTrade("e1", "2026-08-03", 40)
	early.EntryTime = "13:59"
	late := closedTrade("l1", "2026-08-04", -70)
	late.EntryTime = "14:00"
	unknown := closedTrade("u1", "2026-08-05", 10) // no entry time journaled

	ledger := []trade.Trade{early, late, unknown}

	summary := Summarize(Simulate(ledger, ExclusionFilters{ExcludeAfter2PM: true}))

	// Only the 14:00 entry is erased; a missing entry time never matches.
	assert.InDelta(t, -20, summary.Actual, 1e-9)
	assert.InDelta(t, 50, summary.Simulated, 1e-9)
}

func TestSummarizePctUsesMagnitudeOfActual(t *testing.T) {
	t.Parallel()

	losing := closedTrade("l1", "2026-08-03", -100)
	losing.Mistakes = []string{"oversized"}

	ledger := []trade.Trade{
		losing,
		closedTrade("t2", "2026-08-04", 50),
	}

	summary := Summarize(Simulate(ledger, ExclusionFilters{ExcludeMistakes: true}))
	assert.InDelta(t, -50, summary.Actual, 1e-9)
	assert.InDelta(t, 50, summary.Simulated, 1e-9)
	assert.InDelta(t, 100, summary.Delta, 1e-9)
	assert.InDelta(t, 200, summary.Pct, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	summary := Summarize(nil)
	assert.Equal(t, OptimizationStats{}, summary)
}

func TestSimulateRerunsAreIdentical(t *testing.T) {
	t.Parallel()

	ledger := []trade.Trade{
		closedTrade("t1", "2026-08-03", 100),
		closedTrade("t2", "2026-08-04", -50),
	}
	f := ExclusionFilters{ExcludeFridays: true, ExcludeShortDuration: true}

	assert.Equal(t, Simulate(ledger, f), Simulate(ledger, f))
}
