package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/subtracker/backend/internal/application/adapter"
	"github.com/subtracker/backend/internal/application/usecase/reminder"
	"github.com/subtracker/backend/internal/domain/entity"
)

// CheckRemindersOutput reports what a reminder sweep did.
type CheckRemindersOutput struct {
	// Due is how many reminders fired for today before de-duplication.
	Due int
	// Sent is how many were actually delivered this sweep.
	Sent int
	// Skipped counts reminders suppressed by the per-day de-duplication.
	Skipped int
}

// CheckRemindersUseCase sweeps all subscriptions, evaluates which reminders
// are due today, and delivers each at most once per calendar day.
type CheckRemindersUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	settingsRepo     adapter.SettingsRepository
	deduper          adapter.ReminderDeduper
	notifier         adapter.ReminderNotifier
	logger           *slog.Logger
	now              func() time.Time
}

// NewCheckRemindersUseCase creates a new CheckRemindersUseCase instance.
func NewCheckRemindersUseCase(
	subscriptionRepo adapter.SubscriptionRepository,
	settingsRepo adapter.SettingsRepository,
	deduper adapter.ReminderDeduper,
	notifier adapter.ReminderNotifier,
	logger *slog.Logger,
	now func() time.Time,
) *CheckRemindersUseCase {
	return &CheckRemindersUseCase{
		subscriptionRepo: subscriptionRepo,
		settingsRepo:     settingsRepo,
		deduper:          deduper,
		notifier:         notifier,
		logger:           logger,
		now:              now,
	}
}

// Execute runs one reminder sweep. Nothing is delivered unless permission is
// granted. A delivery failure for one reminder is logged and does not stop
// the rest of the batch.
func (uc *CheckRemindersUseCase) Execute(ctx context.Context) (*CheckRemindersOutput, error) {
	permission, err := uc.settingsRepo.GetNotificationPermission(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read notification permission: %w", err)
	}
	if permission != entity.PermissionGranted {
		uc.logger.Debug("reminder sweep skipped", "permission", string(permission))
		return &CheckRemindersOutput{}, nil
	}

	subs, err := uc.subscriptionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	today := uc.now()
	day := entity.DayOf(today)
	out := &CheckRemindersOutput{}

	for _, sub := range subs {
		decision := reminder.Evaluate(sub, today)
		if decision == nil {
			continue
		}
		out.Due++

		fresh, err := uc.deduper.MarkSent(ctx, decision.SubscriptionID, day)
		if err != nil {
			uc.logger.Error("reminder dedup check failed",
				"subscription_id", decision.SubscriptionID,
				"error", err,
			)
			continue
		}
		if !fresh {
			out.Skipped++
			continue
		}

		if err := uc.notifier.Notify(ctx, decision); err != nil {
			uc.logger.Error("reminder delivery failed",
				"subscription_id", decision.SubscriptionID,
				"name", decision.Name,
				"error", err,
			)
			continue
		}
		out.Sent++
		uc.logger.Info("reminder sent",
			"subscription_id", decision.SubscriptionID,
			"name", decision.Name,
			"reminder_days", decision.ReminderDays,
		)
	}

	return out, nil
}
