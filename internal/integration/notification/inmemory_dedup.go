package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryDeduper is the fallback adapter.ReminderDeduper when Redis is not
// available. State is lost on restart, so a restart may re-fire the day's
// reminders once.
type InMemoryDeduper struct {
	mu   sync.Mutex
	sent map[string]time.Time
}

// NewInMemoryDeduper creates a new in-memory reminder deduper.
func NewInMemoryDeduper() *InMemoryDeduper {
	return &InMemoryDeduper{
		sent: make(map[string]time.Time),
	}
}

// MarkSent records the reminder for the day in process memory.
func (d *InMemoryDeduper) MarkSent(_ context.Context, subscriptionID uuid.UUID, day time.Time) (bool, error) {
	key := subscriptionID.String() + ":" + day.Format("2006-01-02")

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.sent[key]; exists {
		return false, nil
	}
	d.sent[key] = day
	d.prune(day)
	return true, nil
}

// prune drops entries from days before the given one.
func (d *InMemoryDeduper) prune(day time.Time) {
	for key, sentDay := range d.sent {
		if sentDay.Before(day) {
			delete(d.sent, key)
		}
	}
}
