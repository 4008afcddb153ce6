// Package reminder decides whether a renewal reminder is due.
package reminder

import (
	"time"

	"github.com/subtracker/backend/internal/domain/entity"
)

// Evaluate decides whether a reminder for the subscription fires on the given
// day. It returns nil when no reminder is due.
//
// A reminder fires when today equals the renewal date minus the subscription's
// reminder lead time, compared on calendar days. Archived records and records
// whose end date has already passed never fire, even when the date arithmetic
// would match. An unparsable renewal date never fires.
func Evaluate(sub *entity.Subscription, today time.Time) *entity.ReminderDecision {
	if sub.IsArchived {
		return nil
	}

	day := entity.DayOf(today)

	if endsAt, ok := sub.EndsAt(); ok && entity.DayOf(endsAt).Before(day) {
		return nil
	}

	renewsAt, ok := sub.RenewsAt()
	if !ok {
		return nil
	}

	fireDay := entity.DayOf(renewsAt).AddDate(0, 0, -sub.ReminderDays)
	if !fireDay.Equal(day) {
		return nil
	}

	decision := &entity.ReminderDecision{
		SubscriptionID: sub.ID,
		Name:           sub.Name,
		ReminderDays:   sub.ReminderDays,
		IconURL:        sub.LogoURL,
	}
	if decision.IconURL == "" {
		decision.IconURL = entity.DefaultReminderIcon
	}
	if sub.HasSound() {
		decision.SoundTone = sub.SoundTone
	}
	return decision
}
