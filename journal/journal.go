// journal/journal.go
package journal

import (
	"github.com/rustyeddy/tradebook/trade"
)

// Store persists the trade ledger. List returns trades in insertion order,
// which is the ledger order every engine's tie-breaking depends on; the
// analytics packages never see the store, only the snapshot it returns.
type Store interface {
	Append(trade.Trade) error
	List() ([]trade.Trade, error)
	Close() error
}
