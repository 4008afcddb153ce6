package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/subtracker/backend/internal/application/adapter"
	domainerror "github.com/subtracker/backend/internal/domain/error"
)

// DeleteSubscriptionUseCase handles permanent subscription removal.
type DeleteSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

// NewDeleteSubscriptionUseCase creates a new DeleteSubscriptionUseCase instance.
func NewDeleteSubscriptionUseCase(subscriptionRepo adapter.SubscriptionRepository) *DeleteSubscriptionUseCase {
	return &DeleteSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute removes the subscription. Deletion is a hard delete; history is a
// lifecycle bucket, not a trash can.
func (uc *DeleteSubscriptionUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.subscriptionRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrSubscriptionNotFound) {
			return notFound(id)
		}
		return fmt.Errorf("failed to find subscription: %w", err)
	}

	if err := uc.subscriptionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}
