package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradebook/trade"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) Append(t trade.Trade) error {
	mistakes, err := json.Marshal(t.Mistakes)
	if err != nil {
		return fmt.Errorf("encode mistakes: %w", err)
	}

	_, err = j.db.Exec(`
		INSERT INTO trades
		(id, date, entry_time, exit_time, direction, outcome, pnl, mistakes, duration_mins, setup_name, instrument, strike_price, option_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Date, t.EntryTime, t.ExitTime,
		string(t.Direction), string(t.Outcome),
		nullable(t.PnL), string(mistakes), nullable(t.DurationMins),
		t.SetupName, t.Instrument, t.StrikePrice, t.OptionType,
	)
	return err
}

// List returns the full ledger in insertion order. Engines rely on that order
// for their stable-sort tie breaks, so rowid is the only sort key here.
func (j *SQLite) List() ([]trade.Trade, error) {
	rows, err := j.db.Query(`
		SELECT id, date, entry_time, exit_time, direction, outcome, pnl, mistakes, duration_mins, setup_name, instrument, strike_price, option_type
		FROM trades
		ORDER BY rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []trade.Trade
	for rows.Next() {
		var (
			t        trade.Trade
			pnl      sql.NullFloat64
			duration sql.NullFloat64
			mistakes string
		)
		if err := rows.Scan(
			&t.ID, &t.Date, &t.EntryTime, &t.ExitTime,
			&t.Direction, &t.Outcome,
			&pnl, &mistakes, &duration,
			&t.SetupName, &t.Instrument, &t.StrikePrice, &t.OptionType,
		); err != nil {
			return nil, err
		}
		if pnl.Valid {
			t.PnL = trade.Float(pnl.Float64)
		}
		if duration.Valid {
			t.DurationMins = trade.Float(duration.Float64)
		}
		if err := json.Unmarshal([]byte(mistakes), &t.Mistakes); err != nil {
			return nil, fmt.Errorf("decode mistakes for trade %q: %w", t.ID, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTrade returns a single ledger row by ID.
func (j *SQLite) GetTrade(tradeID string) (trade.Trade, error) {
	row := j.db.QueryRow(`
		SELECT id, date, entry_time, exit_time, direction, outcome, pnl, mistakes, duration_mins, setup_name, instrument, strike_price, option_type
		FROM trades
		WHERE id = ?`, tradeID)

	var (
		t        trade.Trade
		pnl      sql.NullFloat64
		duration sql.NullFloat64
		mistakes string
	)
	err := row.Scan(
		&t.ID, &t.Date, &t.EntryTime, &t.ExitTime,
		&t.Direction, &t.Outcome,
		&pnl, &mistakes, &duration,
		&t.SetupName, &t.Instrument, &t.StrikePrice, &t.OptionType,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return trade.Trade{}, fmt.Errorf("trade %q not found", tradeID)
		}
		return trade.Trade{}, err
	}
	if pnl.Valid {
		t.PnL = trade.Float(pnl.Float64)
	}
	if duration.Valid {
		t.DurationMins = trade.Float(duration.Float64)
	}
	if err := json.Unmarshal([]byte(mistakes), &t.Mistakes); err != nil {
		return trade.Trade{}, fmt.Errorf("decode mistakes for trade %q: %w", tradeID, err)
	}
	return t, nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

func nullable(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
