package usecase

import (
	"context"
	"sync"
)

// ActivityFeed keeps the last few order.placed events for the admin
// dashboard. Duplicate deliveries (same EventID) are recorded once.
type ActivityFeed struct {
	mu   sync.Mutex
	buf  []OrderPlacedMsg
	next int
	full bool
	seen map[string]struct{}
}

func NewActivityFeed(size int) *ActivityFeed {
	if size < 1 {
		size = 1
	}
	return &ActivityFeed{buf: make([]OrderPlacedMsg, size), seen: map[string]struct{}{}}
}

// Record matches the queue handler signature.
func (f *ActivityFeed) Record(_ context.Context, msg OrderPlacedMsg) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if msg.EventID != "" {
		if _, dup := f.seen[msg.EventID]; dup {
			return nil
		}
	}
	if f.full {
		delete(f.seen, f.buf[f.next].EventID)
	}
	f.buf[f.next] = msg
	if msg.EventID != "" {
		f.seen[msg.EventID] = struct{}{}
	}
	f.next = (f.next + 1) % len(f.buf)
	if f.next == 0 {
		f.full = true
	}
	return nil
}

// Recent returns up to n events, newest first.
func (f *ActivityFeed) Recent(n int) []OrderPlacedMsg {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := f.next
	if f.full {
		count = len(f.buf)
	}
	if n <= 0 || n > count {
		n = count
	}
	out := make([]OrderPlacedMsg, 0, n)
	for i := 1; i <= n; i++ {
		idx := (f.next - i + len(f.buf)) % len(f.buf)
		out = append(out, f.buf[idx])
	}
	return out
}
