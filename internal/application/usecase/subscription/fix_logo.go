package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/subtracker/backend/internal/application/adapter"
	"github.com/subtracker/backend/internal/domain/entity"
	domainerror "github.com/subtracker/backend/internal/domain/error"
)

// FixLogoOutput represents the output of a logo resolution attempt.
type FixLogoOutput struct {
	Subscription *entity.Subscription
	// Updated reports whether a new logo URL was stored.
	Updated bool
}

// FixLogoUseCase resolves a logo URL for a subscription via the lookup
// service. Lookup failure leaves the record unchanged; it is never an
// error the caller has to handle beyond the Updated flag.
type FixLogoUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	lookupService    adapter.LookupService
	logger           *slog.Logger
}

// NewFixLogoUseCase creates a new FixLogoUseCase instance.
func NewFixLogoUseCase(
	subscriptionRepo adapter.SubscriptionRepository,
	lookupService adapter.LookupService,
	logger *slog.Logger,
) *FixLogoUseCase {
	return &FixLogoUseCase{
		subscriptionRepo: subscriptionRepo,
		lookupService:    lookupService,
		logger:           logger,
	}
}

// Execute attempts to resolve and store a logo URL for the subscription.
func (uc *FixLogoUseCase) Execute(ctx context.Context, id uuid.UUID) (*FixLogoOutput, error) {
	sub, err := uc.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrSubscriptionNotFound) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	if uc.lookupService == nil {
		return &FixLogoOutput{Subscription: sub}, nil
	}

	logoURL, err := uc.lookupService.FindLogoURL(ctx, sub.Name)
	if err != nil {
		uc.logger.Warn("logo lookup failed",
			"subscription_id", sub.ID,
			"name", sub.Name,
			"error", err,
		)
		return &FixLogoOutput{Subscription: sub}, nil
	}
	if logoURL == "" || logoURL == sub.LogoURL {
		return &FixLogoOutput{Subscription: sub}, nil
	}

	sub.LogoURL = logoURL
	sub.UpdatedAt = time.Now().UTC()
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to store logo url: %w", err)
	}

	return &FixLogoOutput{Subscription: sub, Updated: true}, nil
}
