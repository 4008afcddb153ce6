package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/subtracker/backend/internal/application/adapter"
	"github.com/subtracker/backend/internal/domain/entity"
	domainerror "github.com/subtracker/backend/internal/domain/error"
)

// ArchiveSubscriptionOutput represents the output of archiving.
type ArchiveSubscriptionOutput struct {
	Subscription *entity.Subscription
}

// ArchiveSubscriptionUseCase marks a subscription as archived. Archived
// records land in the history bucket regardless of their dates.
type ArchiveSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

// NewArchiveSubscriptionUseCase creates a new ArchiveSubscriptionUseCase instance.
func NewArchiveSubscriptionUseCase(subscriptionRepo adapter.SubscriptionRepository) *ArchiveSubscriptionUseCase {
	return &ArchiveSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute sets the archived flag. Archiving an already archived record is a
// no-op success.
func (uc *ArchiveSubscriptionUseCase) Execute(ctx context.Context, id uuid.UUID) (*ArchiveSubscriptionOutput, error) {
	sub, err := uc.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrSubscriptionNotFound) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	if !sub.IsArchived {
		sub.IsArchived = true
		sub.UpdatedAt = time.Now().UTC()
		if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
			return nil, fmt.Errorf("failed to archive subscription: %w", err)
		}
	}

	return &ArchiveSubscriptionOutput{Subscription: sub}, nil
}
