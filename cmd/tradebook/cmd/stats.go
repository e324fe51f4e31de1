package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print performance statistics for the ledger",
	Long: `Compute closed-trade performance statistics over the whole ledger:
win rate, profit factor, gross profit/loss, best and worst trades, average
win/loss and long/short win rates. Open trades are ignored.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	trades, err := loadLedger()
	if err != nil {
		return err
	}

	printStats(os.Stdout, stats.Compute(trades))
	return nil
}

func printStats(w io.Writer, s stats.Stats) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Performance Statistics")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Closed Trades: %d\n", s.TotalTrades)
	fmt.Fprintf(w, "Wins:          %d\n", s.Wins)
	fmt.Fprintf(w, "Losses:        %d\n", s.Losses)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", s.WinRate)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Gross Profit:  %.2f\n", s.GrossProfit)
	fmt.Fprintf(w, "Gross Loss:    %.2f\n", s.GrossLoss)
	fmt.Fprintf(w, "Profit Factor: %.2f\n", s.ProfitFactor)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best Trade:    %.2f\n", s.BestTrade)
	fmt.Fprintf(w, "Worst Trade:   %.2f\n", s.WorstTrade)
	fmt.Fprintf(w, "Avg Win:       %.2f\n", s.AvgWin)
	fmt.Fprintf(w, "Avg Loss:      %.2f\n", s.AvgLoss)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Long Win Rate:  %.2f%%\n", s.LongWinRate)
	fmt.Fprintf(w, "Short Win Rate: %.2f%%\n", s.ShortWinRate)
}
