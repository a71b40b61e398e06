package repository

import (
	"sync"
	"time"
)

// creationClock hands out strictly increasing UTC timestamps at microsecond precision,
// the finest Postgres keeps. Rows created by one process therefore sort by created_at in
// the order they were inserted, even when the wall clock does not advance between them.
type creationClock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

var createdClock = &creationClock{now: time.Now}

// Next returns a timestamp later than every one returned before it.
func (c *creationClock) Next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(time.Microsecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}
