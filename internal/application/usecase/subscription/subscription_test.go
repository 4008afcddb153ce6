package subscription

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/subtracker/backend/internal/domain/entity"
	domainerror "github.com/subtracker/backend/internal/domain/error"
)

// fakeSubscriptionRepo is an in-memory SubscriptionRepository for unit tests.
type fakeSubscriptionRepo struct {
	mu   sync.Mutex
	subs map[uuid.UUID]*entity.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: make(map[uuid.UUID]*entity.Subscription)}
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, sub *entity.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *sub
	r.subs[sub.ID] = &copied
	return nil
}

func (r *fakeSubscriptionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub, ok := r.subs[id]
	if !ok {
		return nil, domainerror.ErrSubscriptionNotFound
	}
	copied := *sub
	return &copied, nil
}

func (r *fakeSubscriptionRepo) FindAll(_ context.Context) ([]*entity.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Subscription, 0, len(r.subs))
	for _, sub := range r.subs {
		copied := *sub
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeSubscriptionRepo) Update(_ context.Context, sub *entity.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subs[sub.ID]; !ok {
		return domainerror.ErrSubscriptionNotFound
	}
	copied := *sub
	r.subs[sub.ID] = &copied
	return nil
}

func (r *fakeSubscriptionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subs, id)
	return nil
}

func validInput(name string) CreateSubscriptionInput {
	return CreateSubscriptionInput{
		Name:         name,
		Price:        decimal.NewFromInt(499),
		BillingCycle: entity.BillingCycleMonthly,
		StartDate:    "2025-01-01",
		EndDate:      "2025-12-31",
		ReminderDays: 3,
		Category:     "Entertainment",
	}
}

func TestCreateSubscription(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a valid subscription", func(t *testing.T) {
		repo := newFakeSubscriptionRepo()
		uc := NewCreateSubscriptionUseCase(repo)

		out, err := uc.Execute(ctx, validInput("netflix"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Subscription.ID == uuid.Nil {
			t.Error("expected a fresh id")
		}
		if out.Subscription.Currency != entity.DefaultCurrency {
			t.Errorf("expected currency %s, got %s", entity.DefaultCurrency, out.Subscription.Currency)
		}
		if out.Subscription.RenewalDate != "2025-12-31" {
			t.Errorf("expected renewal date to mirror end date, got %s", out.Subscription.RenewalDate)
		}
		if out.Subscription.SoundTone != entity.SoundToneNone {
			t.Errorf("expected default sound tone None, got %s", out.Subscription.SoundTone)
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		uc := NewCreateCase(t)
		input := validInput("   ")

		_, err := uc.Execute(ctx, input)
		assertSubscriptionError(t, err, domainerror.ErrCodeSubscriptionNameRequired)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		uc := NewCreateCase(t)
		input := validInput("netflix")
		input.Price = decimal.NewFromInt(-1)

		_, err := uc.Execute(ctx, input)
		assertSubscriptionError(t, err, domainerror.ErrCodeInvalidPrice)
	})

	t.Run("rejects unparsable dates", func(t *testing.T) {
		uc := NewCreateCase(t)
		input := validInput("netflix")
		input.EndDate = "not-a-date"

		_, err := uc.Execute(ctx, input)
		assertSubscriptionError(t, err, domainerror.ErrCodeInvalidDate)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		uc := NewCreateCase(t)
		input := validInput("netflix")
		input.StartDate = "2025-06-01"
		input.EndDate = "2025-05-01"

		_, err := uc.Execute(ctx, input)
		assertSubscriptionError(t, err, domainerror.ErrCodeInvalidDateRange)
	})

	t.Run("rejects negative reminder days", func(t *testing.T) {
		uc := NewCreateCase(t)
		input := validInput("netflix")
		input.ReminderDays = -1

		_, err := uc.Execute(ctx, input)
		assertSubscriptionError(t, err, domainerror.ErrCodeInvalidReminderDays)
	})

	t.Run("rejects unknown billing cycle", func(t *testing.T) {
		uc := NewCreateCase(t)
		input := validInput("netflix")
		input.BillingCycle = "fortnightly"

		_, err := uc.Execute(ctx, input)
		assertSubscriptionError(t, err, domainerror.ErrCodeInvalidBillingCycle)
	})
}

func NewCreateCase(t *testing.T) *CreateSubscriptionUseCase {
	t.Helper()
	return NewCreateSubscriptionUseCase(newFakeSubscriptionRepo())
}

func assertSubscriptionError(t *testing.T, err error, code domainerror.SubscriptionErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var subErr *domainerror.SubscriptionError
	if !errors.As(err, &subErr) {
		t.Fatalf("expected SubscriptionError, got %T: %v", err, err)
	}
	if subErr.Code != code {
		t.Errorf("expected code %s, got %s", code, subErr.Code)
	}
}

func TestUpdateSubscription(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSubscriptionRepo()
	created, err := NewCreateSubscriptionUseCase(repo).Execute(ctx, validInput("netflix"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("replaces every field but id", func(t *testing.T) {
		input := UpdateSubscriptionInput{ID: created.Subscription.ID, CreateSubscriptionInput: validInput("netflix premium")}
		input.Price = decimal.NewFromInt(649)
		input.EndDate = "2026-06-30"

		out, err := NewUpdateSubscriptionUseCase(repo).Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Subscription.ID != created.Subscription.ID {
			t.Error("expected id to be preserved")
		}
		if out.Subscription.Name != "netflix premium" {
			t.Errorf("expected updated name, got %s", out.Subscription.Name)
		}
		if out.Subscription.RenewalDate != "2026-06-30" {
			t.Errorf("expected renewal date to track end date, got %s", out.Subscription.RenewalDate)
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		input := UpdateSubscriptionInput{ID: uuid.New(), CreateSubscriptionInput: validInput("ghost")}

		_, err := NewUpdateSubscriptionUseCase(repo).Execute(ctx, input)
		assertSubscriptionError(t, err, domainerror.ErrCodeSubscriptionNotFound)
	})
}

func TestDeleteSubscription(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSubscriptionRepo()
	created, _ := NewCreateSubscriptionUseCase(repo).Execute(ctx, validInput("netflix"))

	if err := NewDeleteSubscriptionUseCase(repo).Execute(ctx, created.Subscription.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(ctx, created.Subscription.ID); err == nil {
		t.Error("expected record to be gone")
	}

	err := NewDeleteSubscriptionUseCase(repo).Execute(ctx, created.Subscription.ID)
	assertSubscriptionError(t, err, domainerror.ErrCodeSubscriptionNotFound)
}

func TestArchiveSubscription(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSubscriptionRepo()
	created, _ := NewCreateSubscriptionUseCase(repo).Execute(ctx, validInput("netflix"))

	out, err := NewArchiveSubscriptionUseCase(repo).Execute(ctx, created.Subscription.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Subscription.IsArchived {
		t.Error("expected subscription to be archived")
	}

	// Archiving again is a no-op success.
	if _, err := NewArchiveSubscriptionUseCase(repo).Execute(ctx, created.Subscription.ID); err != nil {
		t.Fatalf("unexpected error on repeat archive: %v", err)
	}
}

func TestListSubscriptions(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSubscriptionRepo()
	create := NewCreateSubscriptionUseCase(repo)

	fixed := func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }

	add := func(name, endDate, category string, archived bool) {
		input := validInput(name)
		input.EndDate = endDate
		input.Category = category
		out, err := create.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error creating %s: %v", name, err)
		}
		if archived {
			if _, err := NewArchiveSubscriptionUseCase(repo).Execute(ctx, out.Subscription.ID); err != nil {
				t.Fatalf("unexpected error archiving %s: %v", name, err)
			}
		}
	}

	add("Netflix", "2025-12-31", "Entertainment", false)
	add("Spotify", "2025-06-18", "Entertainment", false)
	add("Old Gym", "2025-01-31", "Fitness", false)
	add("Xbox Pass", "2025-09-30", "Gaming", true)

	uc := NewListSubscriptionsUseCase(repo, fixed)

	list := func(input ListSubscriptionsInput) []string {
		out, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		names := make([]string, 0, len(out.Subscriptions))
		for _, s := range out.Subscriptions {
			names = append(names, s.Name)
		}
		return names
	}

	t.Run("active bucket", func(t *testing.T) {
		got := list(ListSubscriptionsInput{Bucket: "active"})
		want := map[string]bool{"Netflix": true, "Spotify": true}
		if len(got) != 2 || !want[got[0]] || !want[got[1]] {
			t.Errorf("expected Netflix and Spotify, got %v", got)
		}
	})

	t.Run("ending soon bucket", func(t *testing.T) {
		got := list(ListSubscriptionsInput{Bucket: "ending-soon"})
		if len(got) != 1 || got[0] != "Spotify" {
			t.Errorf("expected [Spotify], got %v", got)
		}
	})

	t.Run("history bucket", func(t *testing.T) {
		got := list(ListSubscriptionsInput{Bucket: "history"})
		want := map[string]bool{"Old Gym": true, "Xbox Pass": true}
		if len(got) != 2 || !want[got[0]] || !want[got[1]] {
			t.Errorf("expected Old Gym and Xbox Pass, got %v", got)
		}
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		got := list(ListSubscriptionsInput{Search: "NET"})
		if len(got) != 1 || got[0] != "Netflix" {
			t.Errorf("expected [Netflix], got %v", got)
		}
	})

	t.Run("category All disables the filter", func(t *testing.T) {
		if got := list(ListSubscriptionsInput{Category: "All"}); len(got) != 4 {
			t.Errorf("expected all 4 records, got %v", got)
		}
	})

	t.Run("category filter is exact", func(t *testing.T) {
		got := list(ListSubscriptionsInput{Category: "Fitness"})
		if len(got) != 1 || got[0] != "Old Gym" {
			t.Errorf("expected [Old Gym], got %v", got)
		}
	})

	t.Run("identity filter returns everything", func(t *testing.T) {
		if got := list(ListSubscriptionsInput{Search: "", Category: "All"}); len(got) != 4 {
			t.Errorf("expected all 4 records, got %v", got)
		}
	})

	t.Run("unknown bucket is an error", func(t *testing.T) {
		if _, err := uc.Execute(ctx, ListSubscriptionsInput{Bucket: "stale"}); err == nil {
			t.Error("expected error for unknown bucket")
		}
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		if got := list(ListSubscriptionsInput{Search: "zzz"}); len(got) != 0 {
			t.Errorf("expected no matches, got %v", got)
		}
	})
}
