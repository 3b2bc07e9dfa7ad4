package service

import (
	"fmt"
	"sync"
	"time"
)

// idGenerator issues millisecond-epoch identifiers. The persisted id formats
// are "CPL-<millis>" for complaints and "user_<millis>" for accounts, so two
// submissions landing in the same millisecond would collide; the generator
// bumps the clock value forward instead, keeping ids unique and monotonic
// within the process.
type idGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func newIDGenerator() *idGenerator {
	return &idGenerator{now: time.Now}
}

func (g *idGenerator) next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return ms
}

// ComplaintID returns the next complaint identifier, e.g. "CPL-1714501223000".
func (g *idGenerator) ComplaintID() string {
	return fmt.Sprintf("CPL-%d", g.next())
}

// UserID returns the next account identifier, e.g. "user_1714501223000".
func (g *idGenerator) UserID() string {
	return fmt.Sprintf("user_%d", g.next())
}
