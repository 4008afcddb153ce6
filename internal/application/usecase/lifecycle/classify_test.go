package lifecycle

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

func sub(name, endDate string, archived bool) *entity.Subscription {
	s := entity.NewSubscription(
		name,
		decimal.NewFromInt(199),
		entity.BillingCycleMonthly,
		"2025-01-01",
		endDate,
		3,
		"Entertainment", "#ef4444", "", entity.SoundToneNone,
	)
	s.IsArchived = archived
	return s
}

func names(subs []*entity.Subscription) []string {
	out := make([]string, 0, len(subs))
	for _, s := range subs {
		out = append(out, s.Name)
	}
	return out
}

func assertNames(t *testing.T, got []*entity.Subscription, want ...string) {
	t.Helper()
	gotNames := names(got)
	if len(gotNames) != len(want) {
		t.Fatalf("expected %v, got %v", want, gotNames)
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gotNames)
		}
	}
}

func TestClassify_Buckets(t *testing.T) {
	today := day("2025-06-15")

	t.Run("archived records are history regardless of dates", func(t *testing.T) {
		result := Classify([]*entity.Subscription{sub("netflix", "2099-01-01", true)}, today)

		assertNames(t, result.History, "netflix")
		assertNames(t, result.Active)
		assertNames(t, result.EndingSoon)
	})

	t.Run("past end date is history", func(t *testing.T) {
		result := Classify([]*entity.Subscription{sub("spotify", "2025-06-14", false)}, today)

		assertNames(t, result.History, "spotify")
		assertNames(t, result.Active)
	})

	t.Run("end date today is active and ending soon", func(t *testing.T) {
		result := Classify([]*entity.Subscription{sub("prime", "2025-06-15", false)}, today)

		assertNames(t, result.Active, "prime")
		assertNames(t, result.EndingSoon, "prime")
	})

	t.Run("end date at window boundary is ending soon", func(t *testing.T) {
		result := Classify([]*entity.Subscription{sub("hotstar", "2025-06-22", false)}, today)

		assertNames(t, result.Active, "hotstar")
		assertNames(t, result.EndingSoon, "hotstar")
	})

	t.Run("end date past window boundary is active only", func(t *testing.T) {
		result := Classify([]*entity.Subscription{sub("hotstar", "2025-06-23", false)}, today)

		assertNames(t, result.Active, "hotstar")
		assertNames(t, result.EndingSoon)
	})

	t.Run("unparsable end date is active but never ending soon", func(t *testing.T) {
		result := Classify([]*entity.Subscription{sub("broken", "not-a-date", false)}, today)

		assertNames(t, result.Active, "broken")
		assertNames(t, result.EndingSoon)
		assertNames(t, result.History)
	})

	t.Run("active and history partition the input", func(t *testing.T) {
		input := []*entity.Subscription{
			sub("a", "2025-06-14", false),
			sub("b", "2025-06-20", false),
			sub("c", "2099-01-01", true),
			sub("d", "garbage", false),
		}

		result := Classify(input, today)

		if len(result.Active)+len(result.History) != len(input) {
			t.Fatalf("expected active+history to cover %d records, got %d",
				len(input), len(result.Active)+len(result.History))
		}
	})
}

func TestClassify_EndingSoonSubsetOfActive(t *testing.T) {
	today := day("2025-06-15")
	input := []*entity.Subscription{
		sub("a", "2025-06-16", false),
		sub("b", "2025-06-30", false),
		sub("c", "2025-06-18", true),
	}

	result := Classify(input, today)

	active := make(map[string]bool, len(result.Active))
	for _, s := range result.Active {
		active[s.Name] = true
	}
	for _, s := range result.EndingSoon {
		if !active[s.Name] {
			t.Errorf("ending-soon record %q is not in active", s.Name)
		}
	}
}

func TestClassify_PreservesInputOrder(t *testing.T) {
	today := day("2025-06-15")
	input := []*entity.Subscription{
		sub("first", "2025-07-01", false),
		sub("second", "2025-06-16", false),
		sub("third", "2025-08-01", false),
	}

	result := Classify(input, today)

	assertNames(t, result.Active, "first", "second", "third")
}

func TestClassify_TimeOfDayIgnored(t *testing.T) {
	morning := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)
	night := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	input := []*entity.Subscription{sub("a", "2025-06-15", false)}

	for _, now := range []time.Time{morning, night} {
		result := Classify(input, now)
		assertNames(t, result.Active, "a")
		assertNames(t, result.EndingSoon, "a")
	}
}
