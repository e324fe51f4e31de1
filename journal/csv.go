// journal/csv.go
package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xyproto/unzip"

	"github.com/rustyeddy/tradebook/pkg/id"
	"github.com/rustyeddy/tradebook/trade"
)

var csvHeader = []string{
	"id", "date", "entry_time", "exit_time", "direction", "outcome",
	"pnl", "mistakes", "duration_mins", "setup_name", "instrument",
	"strike_price", "option_type",
}

// WriteCSV exports the ledger to path, one row per trade, in ledger order.
// Absent pnl/duration values export as empty cells so a round-trip keeps
// "never recorded" distinct from an explicit 0.
func WriteCSV(path string, trades []trade.Trade) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range trades {
		row := []string{
			t.ID,
			t.Date,
			t.EntryTime,
			t.ExitTime,
			string(t.Direction),
			string(t.Outcome),
			optional(t.PnL),
			strings.Join(t.Mistakes, ";"),
			optional(t.DurationMins),
			t.SetupName,
			t.Instrument,
			t.StrikePrice,
			t.OptionType,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// ReadCSV imports a ledger exported by WriteCSV. Rows with a malformed
// numeric cell are skipped rather than failing the import; rows without an id
// get a fresh one.
func ReadCSV(path string) ([]trade.Trade, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(csvHeader)

	var out []trade.Trade
	for i := 0; ; i++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// One bad row never sinks the import.
			continue
		}
		if i == 0 && row[0] == "id" {
			continue // header
		}
		t, ok := rowToTrade(row)
		if !ok {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// ReadLedger imports from a plain CSV or a .zip archive containing one. The
// archive case covers broker/journal exports that arrive zipped.
func ReadLedger(path string) ([]trade.Trade, error) {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return readZip(path)
	}
	return ReadCSV(path)
}

func readZip(path string) ([]trade.Trade, error) {
	dir, err := os.MkdirTemp("", "tradebook-import-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	if err := unzip.Extract(path, dir); err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}

	var csvPath string
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if csvPath == "" && !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".csv") {
			csvPath = p
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if csvPath == "" {
		return nil, fmt.Errorf("no csv ledger inside %s", path)
	}
	return ReadCSV(csvPath)
}

func rowToTrade(row []string) (trade.Trade, bool) {
	t := trade.Trade{
		ID:          row[0],
		Date:        row[1],
		EntryTime:   row[2],
		ExitTime:    row[3],
		Direction:   trade.Direction(row[4]),
		Outcome:     trade.Outcome(row[5]),
		SetupName:   row[9],
		Instrument:  row[10],
		StrikePrice: row[11],
		OptionType:  row[12],
	}
	if t.ID == "" {
		t.ID = id.New()
	}
	if row[7] != "" {
		t.Mistakes = strings.Split(row[7], ";")
	}

	if row[6] != "" {
		v, err := strconv.ParseFloat(row[6], 64)
		if err != nil {
			return trade.Trade{}, false
		}
		t.PnL = trade.Float(v)
	}
	if row[8] != "" {
		v, err := strconv.ParseFloat(row[8], 64)
		if err != nil {
			return trade.Trade{}, false
		}
		t.DurationMins = trade.Float(v)
	}
	return t, true
}

func optional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
