package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/stats"
)

var equityCmd = &cobra.Command{
	Use:   "equity",
	Short: "Print the cumulative equity curve",
	Long: `Walk the closed trades oldest-first and print the running cumulative
PnL after each one. Same-date trades keep their ledger order, so the curve is
identical on every run.`,
	Args: cobra.NoArgs,
	RunE: runEquity,
}

func init() {
	rootCmd.AddCommand(equityCmd)
}

func runEquity(cmd *cobra.Command, args []string) error {
	trades, err := loadLedger()
	if err != nil {
		return err
	}

	curve := stats.EquityCurve(trades)
	if len(curve) == 0 {
		fmt.Println("no closed trades")
		return nil
	}

	fmt.Printf("%-12s %-28s %12s\n", "DATE", "TRADE", "EQUITY")
	for _, p := range curve {
		fmt.Printf("%-12s %-28s %12.2f\n", p.Date, p.TradeID, p.Equity)
	}
	return nil
}
