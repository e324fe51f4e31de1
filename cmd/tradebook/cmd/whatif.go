package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/whatif"
)

var whatifCmd = &cobra.Command{
	Use:   "whatif",
	Short: "Replay the ledger with selected trade categories erased",
	Long: `Replay the closed-trade history twice in parallel: once as it
happened, once with every trade matching an enabled exclusion toggle erased.
A trade matching ANY enabled toggle is erased.

  tradebook whatif --no-mistakes
  tradebook whatif --no-fridays --no-late-entries --points`,
	Args: cobra.NoArgs,
	RunE: runWhatIf,
}

var (
	wifMistakes bool
	wifFridays  bool
	wifShort    bool
	wifLate     bool
	wifPoints   bool
)

func init() {
	rootCmd.AddCommand(whatifCmd)

	whatifCmd.Flags().BoolVar(&wifMistakes, "no-mistakes", cfg.WhatIf.ExcludeMistakes, "erase trades tagged with a mistake")
	whatifCmd.Flags().BoolVar(&wifFridays, "no-fridays", cfg.WhatIf.ExcludeFridays, "erase Friday trades")
	whatifCmd.Flags().BoolVar(&wifShort, "no-short-trades", cfg.WhatIf.ExcludeShortDuration, "erase trades under 5 minutes")
	whatifCmd.Flags().BoolVar(&wifLate, "no-late-entries", cfg.WhatIf.ExcludeAfter2PM, "erase entries at 14:00 or later")
	whatifCmd.Flags().BoolVar(&wifPoints, "points", false, "print every simulation point, not just the summary")
}

func runWhatIf(cmd *cobra.Command, args []string) error {
	trades, err := loadLedger()
	if err != nil {
		return err
	}

	filters := whatif.ExclusionFilters{
		ExcludeMistakes:      wifMistakes,
		ExcludeFridays:       wifFridays,
		ExcludeShortDuration: wifShort,
		ExcludeAfter2PM:      wifLate,
	}

	points := whatif.Simulate(trades, filters)
	summary := whatif.Summarize(points)

	if wifPoints {
		fmt.Printf("%-12s %12s %12s\n", "DATE", "ACTUAL", "SIMULATED")
		for _, p := range points {
			fmt.Printf("%-12s %12.2f %12.2f\n", p.Date, p.Actual, p.Simulated)
		}
		fmt.Println()
	}

	fmt.Printf("Actual Equity:    %.2f\n", summary.Actual)
	fmt.Printf("Simulated Equity: %.2f\n", summary.Simulated)
	fmt.Printf("Delta:            %+.2f (%+.2f%%)\n", summary.Delta, summary.Pct)
	return nil
}
