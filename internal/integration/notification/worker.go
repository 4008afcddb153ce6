package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/subtracker/backend/internal/application/usecase/notification"
)

// Worker periodically runs the reminder sweep.
type Worker struct {
	checkReminders *notification.CheckRemindersUseCase
	pollInterval   time.Duration
	logger         *slog.Logger
}

// NewWorker creates a new reminder worker.
func NewWorker(checkReminders *notification.CheckRemindersUseCase, pollInterval time.Duration, logger *slog.Logger) *Worker {
	return &Worker{
		checkReminders: checkReminders,
		pollInterval:   pollInterval,
		logger:         logger,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("reminder worker started", "poll_interval", w.pollInterval)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Sweep immediately on start, then on ticker
	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("reminder worker shutting down")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

// sweep runs one reminder check.
func (w *Worker) sweep(ctx context.Context) {
	out, err := w.checkReminders.Execute(ctx)
	if err != nil {
		w.logger.Error("reminder sweep failed", "error", err)
		return
	}
	if out.Due > 0 {
		w.logger.Info("reminder sweep finished",
			"due", out.Due,
			"sent", out.Sent,
			"skipped", out.Skipped,
		)
	}
}
