package mock

import (
	"context"
	"sync"

	"github.com/subtracker/backend/internal/domain/entity"
)

// Notifier records every delivered reminder for assertions.
type Notifier struct {
	mu        sync.Mutex
	Delivered []*entity.ReminderDecision
}

// Notify records the decision.
func (n *Notifier) Notify(_ context.Context, decision *entity.ReminderDecision) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Delivered = append(n.Delivered, decision)
	return nil
}

// Names returns the subscription names of all delivered reminders.
func (n *Notifier) Names() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	names := make([]string, 0, len(n.Delivered))
	for _, d := range n.Delivered {
		names = append(names, d.Name)
	}
	return names
}
