package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/pkg/id"
	"github.com/rustyeddy/tradebook/trade"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Journal a trade",
	Long: `Append a single trade to the ledger.

  tradebook add --date 2026-08-21 --direction LONG --outcome WIN \
      --pnl 125.50 --entry 09:45 --duration 12 --setup "ORB retest" \
      --instrument SPY --strike 645 --type CALL`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var (
	addDate       string
	addEntry      string
	addExit       string
	addDirection  string
	addOutcome    string
	addPnL        float64
	addDuration   float64
	addSetup      string
	addInstrument string
	addStrike     string
	addOptType    string
	addMistakes   string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addDate, "date", time.Now().Format(trade.DateLayout), "trade date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addEntry, "entry", "", "entry time (HH:MM)")
	addCmd.Flags().StringVar(&addExit, "exit", "", "exit time (HH:MM)")
	addCmd.Flags().StringVar(&addDirection, "direction", "LONG", "LONG or SHORT")
	addCmd.Flags().StringVar(&addOutcome, "outcome", "OPEN", "OPEN, WIN, LOSS, BREAK_EVEN or SKIPPED")
	addCmd.Flags().Float64Var(&addPnL, "pnl", 0, "realized profit/loss")
	addCmd.Flags().Float64Var(&addDuration, "duration", 0, "trade duration in minutes")
	addCmd.Flags().StringVar(&addSetup, "setup", "", "setup name")
	addCmd.Flags().StringVar(&addInstrument, "instrument", "", "underlying symbol")
	addCmd.Flags().StringVar(&addStrike, "strike", "", "strike price")
	addCmd.Flags().StringVar(&addOptType, "type", "", "option type (CALL or PUT)")
	addCmd.Flags().StringVar(&addMistakes, "mistakes", "", "comma-separated mistake tags")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if _, err := time.Parse(trade.DateLayout, addDate); err != nil {
		return fmt.Errorf("bad --date: %w", err)
	}

	t := trade.Trade{
		ID:          id.New(),
		Date:        addDate,
		EntryTime:   addEntry,
		ExitTime:    addExit,
		Direction:   trade.Direction(addDirection),
		Outcome:     trade.Outcome(addOutcome),
		SetupName:   addSetup,
		Instrument:  addInstrument,
		StrikePrice: addStrike,
		OptionType:  addOptType,
	}

	// Only record what the trader actually supplied; an untouched flag stays
	// "never recorded" instead of a silent 0.
	if cmd.Flags().Changed("pnl") {
		t.PnL = trade.Float(addPnL)
	}
	if cmd.Flags().Changed("duration") {
		t.DurationMins = trade.Float(addDuration)
	}
	if addMistakes != "" {
		for _, m := range strings.Split(addMistakes, ",") {
			if m = strings.TrimSpace(m); m != "" {
				t.Mistakes = append(t.Mistakes, m)
			}
		}
	}

	j, err := journal.NewSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	if err := j.Append(t); err != nil {
		return fmt.Errorf("append trade: %w", err)
	}

	fmt.Println(journal.FormatTradeOrg(t))
	return nil
}
