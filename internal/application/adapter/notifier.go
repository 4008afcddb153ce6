package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/subtracker/backend/internal/domain/entity"
)

// ReminderNotifier delivers a fired reminder to the user. Delivery failure for
// one reminder must not block the rest of the batch.
type ReminderNotifier interface {
	// Notify delivers a single reminder decision.
	Notify(ctx context.Context, decision *entity.ReminderDecision) error
}

// ReminderDeduper enforces at-most-once reminder delivery per subscription per
// calendar day.
type ReminderDeduper interface {
	// MarkSent records that a reminder for the subscription fired on the given
	// day. Returns false when it had already fired that day.
	MarkSent(ctx context.Context, subscriptionID uuid.UUID, day time.Time) (bool, error)
}
