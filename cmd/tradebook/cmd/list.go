package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/filter"
	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/trade"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades matching a drill-down selector",
	Long: `List ledger trades as Org-mode blocks, newest first.

With no flags every closed trade is listed. Exactly one selector flag narrows
the view:

  tradebook list --wins
  tradebook list --worst
  tradebook list --day Friday
  tradebook list --direction SHORT
  tradebook list --date 2026-08-21`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listWins      bool
	listLosses    bool
	listBest      bool
	listWorst     bool
	listDay       string
	listDirection string
	listDate      string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listWins, "wins", false, "only winning trades")
	listCmd.Flags().BoolVar(&listLosses, "losses", false, "only losing trades")
	listCmd.Flags().BoolVar(&listBest, "best", false, "the single best trade by PnL")
	listCmd.Flags().BoolVar(&listWorst, "worst", false, "the single worst trade by PnL")
	listCmd.Flags().StringVar(&listDay, "day", "", "trades on a weekday (Monday..Friday), open trades included")
	listCmd.Flags().StringVar(&listDirection, "direction", "", "trades by direction (LONG or SHORT)")
	listCmd.Flags().StringVar(&listDate, "date", "", "trades on an exact date (YYYY-MM-DD)")
}

func runList(cmd *cobra.Command, args []string) error {
	sel, err := selectorFromFlags()
	if err != nil {
		return err
	}

	trades, err := loadLedger()
	if err != nil {
		return err
	}

	matched := filter.Resolve(trades, sel)
	if len(matched) == 0 {
		fmt.Println("no matching trades")
		return nil
	}

	fmt.Println(journal.FormatTradesOrg(matched))
	return nil
}

func selectorFromFlags() (filter.Selector, error) {
	sel := filter.Selector{Kind: filter.KindAllClosed}
	picked := 0

	if listWins {
		sel = filter.Selector{Kind: filter.KindWins}
		picked++
	}
	if listLosses {
		sel = filter.Selector{Kind: filter.KindLosses}
		picked++
	}
	if listBest {
		sel = filter.Selector{Kind: filter.KindBest}
		picked++
	}
	if listWorst {
		sel = filter.Selector{Kind: filter.KindWorst}
		picked++
	}
	if listDay != "" {
		wd, err := parseWeekday(listDay)
		if err != nil {
			return sel, err
		}
		sel = filter.Selector{Kind: filter.KindDay, Weekday: wd}
		picked++
	}
	if listDirection != "" {
		dir := trade.Direction(listDirection)
		if dir != trade.Long && dir != trade.Short {
			return sel, fmt.Errorf("direction must be LONG or SHORT, got %q", listDirection)
		}
		sel = filter.Selector{Kind: filter.KindDirection, Direction: dir}
		picked++
	}
	if listDate != "" {
		sel = filter.Selector{Kind: filter.KindDate, Date: listDate}
		picked++
	}

	if picked > 1 {
		return sel, fmt.Errorf("pick at most one selector flag")
	}
	return sel, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if name == wd.String() {
			return wd, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}
