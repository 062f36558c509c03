// Package dedup drops uplinks redelivered by the broker.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

const (
	DefaultTTL        = 10 * time.Minute
	DefaultMaxEntries = 10000
)

// Deduper remembers keys for a fixed time.
type Deduper struct {
	mu   sync.Mutex
	ttl  time.Duration
	max  int
	seen map[string]time.Time
	now  func() time.Time
}

func New(ttl time.Duration, max int) *Deduper {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Deduper{ttl: ttl, max: max, seen: make(map[string]time.Time, max), now: time.Now}
}

// Key hashes a topic and payload into a dedup key.
func Key(topic string, payload []byte) string {
	h := sha256.New()
	h.Write([]byte(topic))
	h.Write([]byte{0})
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// ShouldProcess reports whether id was not seen within the TTL, and marks it
// seen. An empty id is always processed.
func (d *Deduper) ShouldProcess(id string) bool {
	if id == "" {
		return true
	}
	now := d.now()
	d.mu.Lock()
	defer d.mu.Unlock()
	if exp, ok := d.seen[id]; ok && now.Before(exp) {
		return false
	}
	d.seen[id] = now.Add(d.ttl)
	if len(d.seen) > d.max {
		d.evict(now)
	}
	return true
}

// Len returns the number of remembered keys, expired ones included.
func (d *Deduper) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}

func (d *Deduper) evict(now time.Time) {
	for k, exp := range d.seen {
		if now.After(exp) {
			delete(d.seen, k)
		}
	}
	if len(d.seen) <= d.max {
		return
	}
	// Still full of live keys: drop the ones closest to expiry.
	for len(d.seen) > d.max {
		var oldest string
		var oldestExp time.Time
		for k, exp := range d.seen {
			if oldest == "" || exp.Before(oldestExp) {
				oldest, oldestExp = k, exp
			}
		}
		delete(d.seen, oldest)
	}
}
