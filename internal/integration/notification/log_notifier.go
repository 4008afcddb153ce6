package notification

import (
	"context"
	"log/slog"

	"github.com/subtracker/backend/internal/domain/entity"
)

// LogNotifier implements adapter.ReminderNotifier by logging the reminder.
// It is the delivery channel when no email credentials are configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a new log-backed reminder notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the reminder decision.
func (n *LogNotifier) Notify(_ context.Context, decision *entity.ReminderDecision) error {
	n.logger.Info("renewal reminder",
		"subscription_id", decision.SubscriptionID,
		"name", decision.Name,
		"reminder_days", decision.ReminderDays,
		"icon_url", decision.IconURL,
		"sound_clip", ClipURL(decision.SoundTone),
	)
	return nil
}
