package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/trade"
)

// testLedger covers one week: two closed Friday trades (the 21st), a closed
// Monday trade (the 24th) and an open Tuesday trade (the 25th).
func testLedger() []trade.Trade {
	return []trade.Trade{
		{ID: "w1", Date: "2026-08-21", Outcome: trade.Win, Direction: trade.Long, PnL: trade.Float(100)},
		{ID: "l1", Date: "2026-08-21", Outcome: trade.Loss, Direction: trade.Short, PnL: trade.Float(-50)},
		{ID: "w2", Date: "2026-08-24", Outcome: trade.Win, Direction: trade.Long, PnL: trade.Float(25)},
		{ID: "o1", Date: "2026-08-25", Outcome: trade.Open, Direction: trade.Short},
	}
}

func ids(trades []trade.Trade) []string {
	out := make([]string, len(trades))
	for i, t := range trades {
		out[i] = t.ID
	}
	return out
}

func TestResolveAllClosed(t *testing.T) {
	t.Parallel()

	got := Resolve(testLedger(), Selector{Kind: KindAllClosed})
	assert.Equal(t, []string{"w2", "w1", "l1"}, ids(got)) // newest first
}

func TestResolveWins(t *testing.T) {
	t.Parallel()

	got := Resolve(testLedger(), Selector{Kind: KindWins})
	assert.Equal(t, []string{"w2", "w1"}, ids(got))
	for _, tr := range got {
		assert.Equal(t, trade.Win, tr.Outcome)
	}
}

func TestResolveLosses(t *testing.T) {
	t.Parallel()

	got := Resolve(testLedger(), Selector{Kind: KindLosses})
	assert.Equal(t, []string{"l1"}, ids(got))
}

func TestResolveBestIsSingleton(t *testing.T) {
	t.Parallel()

	got := Resolve(testLedger(), Selector{Kind: KindBest})
	require.Len(t, got, 1)
	assert.Equal(t, "w1", got[0].ID)
}

func TestResolveWorstIsSingleton(t *testing.T) {
	t.Parallel()

	got := Resolve(testLedger(), Selector{Kind: KindWorst})
	require.Len(t, got, 1)
	assert.Equal(t, "l1", got[0].ID)
}

func TestResolveBestTieBreaksToFirstLedgerOccurrence(t *testing.T) {
	t.Parallel()

	ledger := []trade.Trade{
		{ID: "a", Date: "2026-08-03", Outcome: trade.Win, PnL: trade.Float(100)},
		{ID: "b", Date: "2026-08-04", Outcome: trade.Win, PnL: trade.Float(100)},
	}

	got := Resolve(ledger, Selector{Kind: KindBest})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestResolveWorstTieBreaksToLastLedgerOccurrence(t *testing.T) {
	t.Parallel()

	ledger := []trade.Trade{
		{ID: "a", Date: "2026-08-03", Outcome: trade.Loss, PnL: trade.Float(-40)},
		{ID: "b", Date: "2026-08-04", Outcome: trade.Loss, PnL: trade.Float(-40)},
	}

	// The stable descending sort leaves tied minimums in ledger order and
	// worst takes the final element.
	got := Resolve(ledger, Selector{Kind: KindWorst})
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestResolveBestEmptyWhenNoClosedTrades(t *testing.T) {
	t.Parallel()

	ledger := []trade.Trade{{ID: "o1", Date: "2026-08-03", Outcome: trade.Open}}

	assert.Empty(t, Resolve(ledger, Selector{Kind: KindBest}))
	assert.Empty(t, Resolve(ledger, Selector{Kind: KindWorst}))
}

func TestResolveDayMatchesFullLedger(t *testing.T) {
	t.Parallel()

	// Friday matches both Friday trades regardless of outcome.
	got := Resolve(testLedger(), Selector{Kind: KindDay, Weekday: time.Friday})
	assert.Equal(t, []string{"w1", "l1"}, ids(got))

	// The open Tuesday trade is matched too; day filters see the whole ledger.
	got = Resolve(testLedger(), Selector{Kind: KindDay, Weekday: time.Tuesday})
	assert.Equal(t, []string{"o1"}, ids(got))
}

func TestResolveDaySkipsMalformedDates(t *testing.T) {
	t.Parallel()

	ledger := append(testLedger(), trade.Trade{ID: "bad", Date: "21/08/2026", Outcome: trade.Win})

	got := Resolve(ledger, Selector{Kind: KindDay, Weekday: time.Friday})
	assert.Equal(t, []string{"w1", "l1"}, ids(got))
}

func TestResolveDirection(t *testing.T) {
	t.Parallel()

	got := Resolve(testLedger(), Selector{Kind: KindDirection, Direction: trade.Short})
	assert.Equal(t, []string{"o1", "l1"}, ids(got)) // open trade included, newest first
}

func TestResolveDate(t *testing.T) {
	t.Parallel()

	got := Resolve(testLedger(), Selector{Kind: KindDate, Date: "2026-08-21"})
	assert.Equal(t, []string{"w1", "l1"}, ids(got))

	assert.Empty(t, Resolve(testLedger(), Selector{Kind: KindDate, Date: "2026-01-01"}))
}

func TestResolveUnknownKindIsEmpty(t *testing.T) {
	t.Parallel()

	got := Resolve(testLedger(), Selector{Kind: Kind("mystery")})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
