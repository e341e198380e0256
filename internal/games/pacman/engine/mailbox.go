package engine

import "sync"

// Mailbox is a single-slot, last-writer-wins handoff between an input source
// and the tick controller. Both methods are non-blocking and safe for
// concurrent use.
type Mailbox struct {
	mu      sync.Mutex
	pending Direction
	full    bool
}

// Put stores d, replacing any undelivered direction.
func (m *Mailbox) Put(d Direction) {
	m.mu.Lock()
	m.pending = d
	m.full = true
	m.mu.Unlock()
}

// Take drains the slot. ok is false when nothing was pending.
func (m *Mailbox) Take() (d Direction, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.full {
		return DirNone, false
	}
	d = m.pending
	m.pending = DirNone
	m.full = false
	return d, true
}

// Clear discards any pending direction.
func (m *Mailbox) Clear() {
	m.mu.Lock()
	m.pending = DirNone
	m.full = false
	m.mu.Unlock()
}
