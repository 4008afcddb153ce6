package reminder

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/subtracker/backend/internal/domain/entity"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func sub(renewalDate string, reminderDays int) *entity.Subscription {
	s := entity.NewSubscription(
		"netflix",
		decimal.NewFromInt(649),
		entity.BillingCycleMonthly,
		"2025-01-01",
		renewalDate,
		reminderDays,
		"Entertainment", "#ef4444", "", entity.SoundToneNone,
	)
	return s
}

func TestEvaluate_FiresOnExactDay(t *testing.T) {
	s := sub("2025-06-18", 3)

	decision := Evaluate(s, day("2025-06-15"))
	if decision == nil {
		t.Fatal("expected reminder to fire 3 days before renewal")
	}
	if decision.SubscriptionID != s.ID {
		t.Errorf("expected subscription id %s, got %s", s.ID, decision.SubscriptionID)
	}
	if decision.Name != "netflix" {
		t.Errorf("expected name netflix, got %s", decision.Name)
	}
	if decision.ReminderDays != 3 {
		t.Errorf("expected reminder days 3, got %d", decision.ReminderDays)
	}
}

func TestEvaluate_DoesNotFireOffDay(t *testing.T) {
	s := sub("2025-06-18", 3)

	for _, today := range []string{"2025-06-14", "2025-06-16", "2025-06-18"} {
		if Evaluate(s, day(today)) != nil {
			t.Errorf("expected no reminder on %s", today)
		}
	}
}

func TestEvaluate_ZeroLeadFiresOnRenewalDay(t *testing.T) {
	s := sub("2025-06-18", 0)

	if Evaluate(s, day("2025-06-18")) == nil {
		t.Error("expected reminder to fire on renewal day with zero lead")
	}
	if Evaluate(s, day("2025-06-17")) != nil {
		t.Error("expected no reminder the day before with zero lead")
	}
}

func TestEvaluate_SkipsArchived(t *testing.T) {
	s := sub("2025-06-18", 3)
	s.IsArchived = true

	if Evaluate(s, day("2025-06-15")) != nil {
		t.Error("expected no reminder for archived subscription")
	}
}

func TestEvaluate_SkipsExpired(t *testing.T) {
	// End date already passed even though the arithmetic matches.
	s := sub("2025-06-10", 3)
	s.EndDate = "2025-06-10"

	if Evaluate(s, day("2025-06-07")) == nil {
		t.Fatal("expected reminder before expiry")
	}
	if Evaluate(s, day("2025-06-11")) != nil {
		t.Error("expected no reminder once end date has passed")
	}
}

func TestEvaluate_UnparsableRenewalNeverFires(t *testing.T) {
	s := sub("not-a-date", 0)
	s.EndDate = "2099-01-01"

	if Evaluate(s, day("2025-06-15")) != nil {
		t.Error("expected no reminder for unparsable renewal date")
	}
}

func TestEvaluate_IconFallback(t *testing.T) {
	t.Run("uses logo url when set", func(t *testing.T) {
		s := sub("2025-06-18", 3)
		s.LogoURL = "https://example.com/logo.png"

		decision := Evaluate(s, day("2025-06-15"))
		if decision == nil {
			t.Fatal("expected reminder to fire")
		}
		if decision.IconURL != "https://example.com/logo.png" {
			t.Errorf("expected logo url, got %s", decision.IconURL)
		}
	})

	t.Run("falls back to default icon", func(t *testing.T) {
		decision := Evaluate(sub("2025-06-18", 3), day("2025-06-15"))
		if decision == nil {
			t.Fatal("expected reminder to fire")
		}
		if decision.IconURL != entity.DefaultReminderIcon {
			t.Errorf("expected default icon, got %s", decision.IconURL)
		}
	})
}

func TestEvaluate_SoundTone(t *testing.T) {
	t.Run("carries the configured tone", func(t *testing.T) {
		s := sub("2025-06-18", 3)
		s.SoundTone = entity.SoundToneBell

		decision := Evaluate(s, day("2025-06-15"))
		if decision == nil {
			t.Fatal("expected reminder to fire")
		}
		if decision.SoundTone != entity.SoundToneBell {
			t.Errorf("expected Bell tone, got %q", decision.SoundTone)
		}
	})

	t.Run("None tone is silent", func(t *testing.T) {
		decision := Evaluate(sub("2025-06-18", 3), day("2025-06-15"))
		if decision == nil {
			t.Fatal("expected reminder to fire")
		}
		if decision.SoundTone != "" {
			t.Errorf("expected silent reminder, got tone %q", decision.SoundTone)
		}
	})
}
