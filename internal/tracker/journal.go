package tracker

import (
	"sync"
	"time"

	"github.com/nbarak/multisigwatch/internal/celo"
	"github.com/nbarak/multisigwatch/internal/ringbuffer"
)

// Entry is a single observed contract event with its arrival time.
type Entry struct {
	Kind       string
	ObservedAt time.Time
	Event      celo.Event
}

// Journal keeps the most recently observed events for inspection.
type Journal struct {
	mu   sync.Mutex
	ring *ringbuffer.Ring[Entry]
	now  func() time.Time
}

func NewJournal(capacity uint) *Journal {
	return &Journal{
		ring: ringbuffer.New[Entry](capacity),
		now:  time.Now,
	}
}

func (j *Journal) Record(ev celo.Event) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.ring.Push(Entry{
		Kind:       ev.Kind(),
		ObservedAt: j.now(),
		Event:      ev,
	})
}

// Recent returns the recorded events newest-first.
func (j *Journal) Recent() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.ring.Snapshot()
}
