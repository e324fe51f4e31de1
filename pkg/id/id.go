package id

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a ULID string for a journal row. ULIDs sort lexicographically
// by creation time, so freshly minted ids line up with insertion order in
// SQLite and CSV exports; the monotonic reader keeps same-millisecond ids
// ordered too.
func New() string {
	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String()
}
