package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var importCmd = &cobra.Command{
	Use:   "import <ledger.csv|ledger.zip>",
	Short: "Import trades from a CSV ledger or a zipped export",
	Long: `Append every trade from a CSV ledger (or a .zip archive containing
one) to the journal database. Rows without an id get a fresh one; rows with a
malformed numeric cell are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <ledger.csv>",
	Short: "Export the ledger to CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	trades, err := journal.ReadLedger(args[0])
	if err != nil {
		return fmt.Errorf("read ledger: %w", err)
	}

	j, err := journal.NewSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	for _, t := range trades {
		if err := j.Append(t); err != nil {
			return fmt.Errorf("append trade %q: %w", t.ID, err)
		}
	}

	fmt.Printf("imported %d trades into %s\n", len(trades), dbPath)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	trades, err := loadLedger()
	if err != nil {
		return err
	}

	if err := journal.WriteCSV(args[0], trades); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}

	fmt.Printf("exported %d trades to %s\n", len(trades), args[0])
	return nil
}
