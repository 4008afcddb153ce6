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

// UpdateSubscriptionInput represents the input for a full-field update.
type UpdateSubscriptionInput struct {
	ID uuid.UUID
	CreateSubscriptionInput
}

// UpdateSubscriptionOutput represents the output of a subscription update.
type UpdateSubscriptionOutput struct {
	Subscription *entity.Subscription
}

// UpdateSubscriptionUseCase handles subscription update logic.
type UpdateSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

// NewUpdateSubscriptionUseCase creates a new UpdateSubscriptionUseCase instance.
func NewUpdateSubscriptionUseCase(subscriptionRepo adapter.SubscriptionRepository) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute replaces every field of the subscription except its ID.
func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, input UpdateSubscriptionInput) (*UpdateSubscriptionOutput, error) {
	if err := validateInput(input.CreateSubscriptionInput); err != nil {
		return nil, err
	}

	sub, err := uc.subscriptionRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSubscriptionNotFound) {
			return nil, notFound(input.ID)
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	sub.Name = input.Name
	sub.Price = input.Price
	sub.BillingCycle = input.BillingCycle
	sub.StartDate = input.StartDate
	sub.EndDate = input.EndDate
	sub.RenewalDate = input.EndDate
	sub.ReminderDays = input.ReminderDays
	sub.Category = input.Category
	sub.Color = input.Color
	sub.LogoURL = input.LogoURL
	sub.SoundTone = input.SoundTone
	sub.UpdatedAt = time.Now().UTC()

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	return &UpdateSubscriptionOutput{Subscription: sub}, nil
}

// notFound wraps a missing-record lookup into the domain error.
func notFound(id uuid.UUID) error {
	return domainerror.NewSubscriptionError(
		domainerror.ErrCodeSubscriptionNotFound,
		fmt.Sprintf("subscription %s not found", id),
		domainerror.ErrSubscriptionNotFound,
	)
}
