package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/subtracker/backend/internal/domain/entity"
	domainerror "github.com/subtracker/backend/internal/domain/error"
)

type fixedRepo struct {
	subs []*entity.Subscription
}

func (r *fixedRepo) Create(context.Context, *entity.Subscription) error { return nil }
func (r *fixedRepo) FindByID(context.Context, uuid.UUID) (*entity.Subscription, error) {
	return nil, domainerror.ErrSubscriptionNotFound
}
func (r *fixedRepo) FindAll(context.Context) ([]*entity.Subscription, error) { return r.subs, nil }
func (r *fixedRepo) Update(context.Context, *entity.Subscription) error      { return nil }
func (r *fixedRepo) Delete(context.Context, uuid.UUID) error                 { return nil }

type fixedSettings struct {
	permission entity.NotificationPermission
}

func (s *fixedSettings) GetNotificationPermission(context.Context) (entity.NotificationPermission, error) {
	return s.permission, nil
}

func (s *fixedSettings) SetNotificationPermission(_ context.Context, p entity.NotificationPermission) error {
	s.permission = p
	return nil
}

type memDeduper struct {
	sent map[string]bool
}

func newMemDeduper() *memDeduper { return &memDeduper{sent: make(map[string]bool)} }

func (d *memDeduper) MarkSent(_ context.Context, id uuid.UUID, day time.Time) (bool, error) {
	key := id.String() + ":" + day.Format("2006-01-02")
	if d.sent[key] {
		return false, nil
	}
	d.sent[key] = true
	return true, nil
}

type recordingNotifier struct {
	delivered []*entity.ReminderDecision
	fail      bool
}

func (n *recordingNotifier) Notify(_ context.Context, decision *entity.ReminderDecision) error {
	if n.fail {
		return errors.New("smtp down")
	}
	n.delivered = append(n.delivered, decision)
	return nil
}

func fixedNow() time.Time { return time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC) }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dueSub(name string) *entity.Subscription {
	// Renewal in 3 days with a 3-day lead: due today.
	return entity.NewSubscription(
		name, decimal.NewFromInt(199), entity.BillingCycleMonthly,
		"2025-01-01", "2025-06-18", 3,
		"Entertainment", "", "", entity.SoundToneNone,
	)
}

func notDueSub(name string) *entity.Subscription {
	return entity.NewSubscription(
		name, decimal.NewFromInt(199), entity.BillingCycleMonthly,
		"2025-01-01", "2025-12-31", 3,
		"Entertainment", "", "", entity.SoundToneNone,
	)
}

func newSweep(repo *fixedRepo, settings *fixedSettings, deduper *memDeduper, notifier *recordingNotifier) *CheckRemindersUseCase {
	return NewCheckRemindersUseCase(repo, settings, deduper, notifier, quietLogger(), fixedNow)
}

func TestCheckReminders(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers due reminders when permission granted", func(t *testing.T) {
		notifier := &recordingNotifier{}
		uc := newSweep(
			&fixedRepo{subs: []*entity.Subscription{dueSub("netflix"), notDueSub("spotify")}},
			&fixedSettings{permission: entity.PermissionGranted},
			newMemDeduper(),
			notifier,
		)

		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Due != 1 || out.Sent != 1 || out.Skipped != 0 {
			t.Errorf("expected 1/1/0, got %d/%d/%d", out.Due, out.Sent, out.Skipped)
		}
		if len(notifier.delivered) != 1 || notifier.delivered[0].Name != "netflix" {
			t.Errorf("expected netflix reminder, got %+v", notifier.delivered)
		}
	})

	t.Run("delivers nothing without granted permission", func(t *testing.T) {
		for _, permission := range []entity.NotificationPermission{entity.PermissionDenied, entity.PermissionDefault} {
			notifier := &recordingNotifier{}
			uc := newSweep(
				&fixedRepo{subs: []*entity.Subscription{dueSub("netflix")}},
				&fixedSettings{permission: permission},
				newMemDeduper(),
				notifier,
			)

			out, err := uc.Execute(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Due != 0 || len(notifier.delivered) != 0 {
				t.Errorf("permission %s: expected no deliveries, got %+v", permission, out)
			}
		}
	})

	t.Run("second sweep the same day is deduplicated", func(t *testing.T) {
		notifier := &recordingNotifier{}
		deduper := newMemDeduper()
		uc := newSweep(
			&fixedRepo{subs: []*entity.Subscription{dueSub("netflix")}},
			&fixedSettings{permission: entity.PermissionGranted},
			deduper,
			notifier,
		)

		if _, err := uc.Execute(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Due != 1 || out.Sent != 0 || out.Skipped != 1 {
			t.Errorf("expected 1/0/1 on repeat sweep, got %d/%d/%d", out.Due, out.Sent, out.Skipped)
		}
		if len(notifier.delivered) != 1 {
			t.Errorf("expected a single delivery total, got %d", len(notifier.delivered))
		}
	})

	t.Run("delivery failure does not stop the batch", func(t *testing.T) {
		failing := &recordingNotifier{fail: true}
		uc := newSweep(
			&fixedRepo{subs: []*entity.Subscription{dueSub("netflix"), dueSub("spotify")}},
			&fixedSettings{permission: entity.PermissionGranted},
			newMemDeduper(),
			failing,
		)

		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("expected sweep to survive delivery failures, got %v", err)
		}
		if out.Due != 2 || out.Sent != 0 {
			t.Errorf("expected 2 due and 0 sent, got %d/%d", out.Due, out.Sent)
		}
	})
}

func TestSetPermission(t *testing.T) {
	ctx := context.Background()
	settings := &fixedSettings{permission: entity.PermissionDefault}

	if err := NewSetPermissionUseCase(settings).Execute(ctx, entity.PermissionGranted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.permission != entity.PermissionGranted {
		t.Errorf("expected granted, got %s", settings.permission)
	}

	err := NewSetPermissionUseCase(settings).Execute(ctx, "sometimes")
	var ntfErr *domainerror.NotificationError
	if !errors.As(err, &ntfErr) || ntfErr.Code != domainerror.ErrCodeInvalidPermission {
		t.Errorf("expected invalid permission error, got %v", err)
	}
}

func TestGetPermission(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored state", func(t *testing.T) {
		got, err := NewGetPermissionUseCase(&fixedSettings{permission: entity.PermissionDenied}).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != entity.PermissionDenied {
			t.Errorf("expected denied, got %s", got)
		}
	})

	t.Run("unset state reads as default", func(t *testing.T) {
		got, err := NewGetPermissionUseCase(&fixedSettings{}).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != entity.PermissionDefault {
			t.Errorf("expected default, got %s", got)
		}
	})
}
