// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/subtracker/backend/internal/application/adapter"
	"github.com/subtracker/backend/internal/application/usecase/lifecycle"
	"github.com/subtracker/backend/internal/domain/entity"
	"github.com/subtracker/backend/internal/domain/valueobject"
)

// monthsPerYear converts the monthly total to a yearly projection.
var monthsPerYear = decimal.NewFromInt(12)

// CategoryShare is one slice of the category breakdown.
type CategoryShare struct {
	Category string
	Total    decimal.Decimal
	// Percent is the share of the overall monthly total, rounded to two
	// decimals. Zero when the overall total is zero.
	Percent decimal.Decimal
	Color   string
}

// GetOverviewOutput represents the aggregated dashboard numbers.
// All totals are computed over the active bucket only.
type GetOverviewOutput struct {
	MonthlyTotal decimal.Decimal
	YearlyTotal  decimal.Decimal
	// NextDue is the active subscription with the earliest renewal date,
	// nil when no active subscription has a parsable renewal date.
	NextDue         *entity.Subscription
	Breakdown       []CategoryShare
	ActiveCount     int
	EndingSoonCount int
	HistoryCount    int
}

// GetOverviewUseCase aggregates the active subscriptions for the dashboard.
type GetOverviewUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	now              func() time.Time
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(subscriptionRepo adapter.SubscriptionRepository, now func() time.Time) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		subscriptionRepo: subscriptionRepo,
		now:              now,
	}
}

// Execute computes the dashboard overview.
//
// Every active price counts toward the monthly total as-is, regardless of
// billing cycle. The yearly total is the monthly total times twelve.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*GetOverviewOutput, error) {
	subs, err := uc.subscriptionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	classified := lifecycle.Classify(subs, uc.now())
	active := classified.Active

	monthly := decimal.Zero
	for _, sub := range active {
		monthly = monthly.Add(sub.Price)
	}

	out := &GetOverviewOutput{
		MonthlyTotal:    monthly,
		YearlyTotal:     monthly.Mul(monthsPerYear),
		NextDue:         nextDue(active),
		Breakdown:       breakdown(active, monthly),
		ActiveCount:     len(active),
		EndingSoonCount: len(classified.EndingSoon),
		HistoryCount:    len(classified.History),
	}
	return out, nil
}

// nextDue picks the active subscription with the earliest renewal date.
// Ties keep input order; unparsable renewal dates sort last.
func nextDue(active []*entity.Subscription) *entity.Subscription {
	var (
		best    *entity.Subscription
		bestDay time.Time
		found   bool
	)
	for _, sub := range active {
		renewsAt, ok := sub.RenewsAt()
		if !ok {
			continue
		}
		day := entity.DayOf(renewsAt)
		if !found || day.Before(bestDay) {
			best, bestDay, found = sub, day, true
		}
	}
	return best
}

// breakdown groups active spend by category, sorted by descending total.
// The sort is stable so equal totals keep first-seen category order.
func breakdown(active []*entity.Subscription, total decimal.Decimal) []CategoryShare {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, sub := range active {
		if _, seen := totals[sub.Category]; !seen {
			order = append(order, sub.Category)
		}
		totals[sub.Category] = totals[sub.Category].Add(sub.Price)
	}

	shares := make([]CategoryShare, 0, len(order))
	for _, category := range order {
		shares = append(shares, CategoryShare{Category: category, Total: totals[category]})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Total.GreaterThan(shares[j].Total)
	})

	hundred := decimal.NewFromInt(100)
	for i := range shares {
		if total.IsPositive() {
			shares[i].Percent = shares[i].Total.Div(total).Mul(hundred).Round(2)
		} else {
			shares[i].Percent = decimal.Zero
		}
		shares[i].Color = valueobject.ColorFor(shares[i].Category, i)
	}
	return shares
}
