// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	entry_time TEXT NOT NULL DEFAULT '',
	exit_time TEXT NOT NULL DEFAULT '',
	direction TEXT NOT NULL,
	outcome TEXT NOT NULL,
	pnl REAL,
	mistakes TEXT NOT NULL DEFAULT '[]',
	duration_mins REAL,
	setup_name TEXT NOT NULL DEFAULT '',
	instrument TEXT NOT NULL DEFAULT '',
	strike_price TEXT NOT NULL DEFAULT '',
	option_type TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);
`
