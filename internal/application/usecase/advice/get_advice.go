// Package advice contains the AI savings-advice use case.
package advice

import (
	"context"
	"fmt"
	"time"

	"github.com/subtracker/backend/internal/application/adapter"
	"github.com/subtracker/backend/internal/application/usecase/lifecycle"
	domainerror "github.com/subtracker/backend/internal/domain/error"
)

// GetAdviceOutput represents the output of an advice request.
type GetAdviceOutput struct {
	Advice string
}

// GetAdviceUseCase asks the lookup service for a savings tip over the
// currently active subscriptions.
type GetAdviceUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	lookupService    adapter.LookupService
	now              func() time.Time
}

// NewGetAdviceUseCase creates a new GetAdviceUseCase instance.
func NewGetAdviceUseCase(
	subscriptionRepo adapter.SubscriptionRepository,
	lookupService adapter.LookupService,
	now func() time.Time,
) *GetAdviceUseCase {
	return &GetAdviceUseCase{
		subscriptionRepo: subscriptionRepo,
		lookupService:    lookupService,
		now:              now,
	}
}

// Execute fetches a savings tip for the active subscriptions.
func (uc *GetAdviceUseCase) Execute(ctx context.Context) (*GetAdviceOutput, error) {
	if uc.lookupService == nil {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeLookupUnavailable,
			"advice lookup is not configured",
			domainerror.ErrLookupUnavailable,
		)
	}

	subs, err := uc.subscriptionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	active := lifecycle.Classify(subs, uc.now()).Active
	if len(active) == 0 {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeNoActiveSubscriptions,
			"no active subscriptions to advise on",
			domainerror.ErrNoActiveSubscriptions,
		)
	}

	advice, err := uc.lookupService.SavingsAdvice(ctx, active)
	if err != nil {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeLookupUnavailable,
			"advice lookup failed",
			err,
		)
	}

	return &GetAdviceOutput{Advice: advice}, nil
}
