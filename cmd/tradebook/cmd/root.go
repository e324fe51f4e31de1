package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/trade"
)

var cfg = config.Load()

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "tradebook",
	Short: "A journal and analytics toolkit for discretionary intraday options trades",
	Long: `Tradebook keeps a ledger of discretionary intraday option trades and
derives the numbers a trader reviews:

  - Win rate, profit factor and directional breakdowns
  - The cumulative equity curve
  - Drill-down views over the ledger (wins, losses, weekdays, single days)
  - A what-if eraser that replays history without selected trade categories
  - Pattern breakdowns by entry hour, setup and day of week

The ledger lives in a local SQLite database and round-trips through CSV.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", cfg.Journal.DBPath, "path to SQLite journal DB")
}

// loadLedger opens the store, pulls the full ledger snapshot and closes the
// store again. Every command works off that snapshot; nothing holds the DB
// open while computing.
func loadLedger() ([]trade.Trade, error) {
	j, err := journal.NewSQLite(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	trades, err := j.List()
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return trades, nil
}
