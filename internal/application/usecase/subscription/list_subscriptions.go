package subscription

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/subtracker/backend/internal/application/adapter"
	"github.com/subtracker/backend/internal/application/usecase/lifecycle"
	"github.com/subtracker/backend/internal/domain/entity"
	"github.com/subtracker/backend/internal/domain/valueobject"
)

// ListSubscriptionsInput represents the filter options for listing.
// Zero values mean "no filtering": every record in newest-first order.
type ListSubscriptionsInput struct {
	Bucket   string // "", "active", "ending-soon" or "history"
	Search   string // case-insensitive substring match on name
	Category string // "" or "All" disables the category filter
}

// ListSubscriptionsOutput represents the output of listing subscriptions.
type ListSubscriptionsOutput struct {
	Subscriptions []*entity.Subscription
}

// ListSubscriptionsUseCase retrieves subscriptions through the lifecycle and
// filter pipeline. Bucket selection runs before text/category filtering, so a
// search never moves a record between buckets.
type ListSubscriptionsUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	now              func() time.Time
}

// NewListSubscriptionsUseCase creates a new ListSubscriptionsUseCase instance.
func NewListSubscriptionsUseCase(subscriptionRepo adapter.SubscriptionRepository, now func() time.Time) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		now:              now,
	}
}

// Execute lists subscriptions for the requested bucket and filters.
func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, input ListSubscriptionsInput) (*ListSubscriptionsOutput, error) {
	subs, err := uc.subscriptionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	today := uc.now()
	switch input.Bucket {
	case "", "all":
		// keep everything
	case lifecycle.BucketActive:
		subs = lifecycle.Classify(subs, today).Active
	case lifecycle.BucketEndingSoon:
		subs = lifecycle.Classify(subs, today).EndingSoon
	case lifecycle.BucketHistory:
		subs = lifecycle.Classify(subs, today).History
	default:
		return nil, fmt.Errorf("unknown bucket %q", input.Bucket)
	}

	return &ListSubscriptionsOutput{
		Subscriptions: Filter(subs, input.Search, input.Category),
	}, nil
}

// Filter applies the search and category predicates, preserving input order.
// Both predicates must hold for a record to pass.
func Filter(subs []*entity.Subscription, search, category string) []*entity.Subscription {
	search = strings.ToLower(strings.TrimSpace(search))
	filterCategory := category != "" && category != valueobject.AllCategories

	if search == "" && !filterCategory {
		return subs
	}

	filtered := make([]*entity.Subscription, 0, len(subs))
	for _, sub := range subs {
		if search != "" && !strings.Contains(strings.ToLower(sub.Name), search) {
			continue
		}
		if filterCategory && sub.Category != category {
			continue
		}
		filtered = append(filtered, sub)
	}
	return filtered
}
