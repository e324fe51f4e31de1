package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/patterns"
	"github.com/rustyeddy/tradebook/stats"
	"github.com/rustyeddy/tradebook/whatif"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a full Org-mode review report",
	Long: `Build the full periodic review: performance statistics, the what-if
summary for the configured exclusion toggles, and the pattern breakdowns by
entry hour, setup and weekday. The report is written as an Org-mode file.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

var reportOut string

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportOut, "out", "o", cfg.Report.OrgPath, "output path for the Org report")
}

func runReport(cmd *cobra.Command, args []string) error {
	trades, err := loadLedger()
	if err != nil {
		return err
	}

	filters := whatif.ExclusionFilters{
		ExcludeMistakes:      cfg.WhatIf.ExcludeMistakes,
		ExcludeFridays:       cfg.WhatIf.ExcludeFridays,
		ExcludeShortDuration: cfg.WhatIf.ExcludeShortDuration,
		ExcludeAfter2PM:      cfg.WhatIf.ExcludeAfter2PM,
	}

	r := journal.Report{
		Created:  time.Now(),
		Ledger:   dbPath,
		Stats:    stats.Compute(trades),
		Filters:  filters,
		WhatIf:   whatif.Summarize(whatif.Simulate(trades, filters)),
		Hours:    patterns.PnLByHour(trades),
		Setups:   patterns.PnLBySetup(trades),
		Weekdays: patterns.PnLByWeekday(trades),
	}

	if err := r.WriteOrg(reportOut); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	fmt.Printf("wrote %s\n", reportOut)
	return nil
}
