// Package subscription contains subscription-related use cases.
package subscription

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/subtracker/backend/internal/application/adapter"
	"github.com/subtracker/backend/internal/domain/entity"
	domainerror "github.com/subtracker/backend/internal/domain/error"
)

// CreateSubscriptionInput represents the input for subscription creation.
type CreateSubscriptionInput struct {
	Name         string
	Price        decimal.Decimal
	BillingCycle entity.BillingCycle
	StartDate    string
	EndDate      string
	ReminderDays int
	Category     string
	Color        string // Optional
	LogoURL      string // Optional, resolved by lookup when empty
	SoundTone    string // Optional
}

// CreateSubscriptionOutput represents the output of subscription creation.
type CreateSubscriptionOutput struct {
	Subscription *entity.Subscription
}

// CreateSubscriptionUseCase handles subscription creation logic.
type CreateSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

// NewCreateSubscriptionUseCase creates a new CreateSubscriptionUseCase instance.
func NewCreateSubscriptionUseCase(subscriptionRepo adapter.SubscriptionRepository) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute performs the subscription creation.
func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, input CreateSubscriptionInput) (*CreateSubscriptionOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	category := input.Category
	if category == "" {
		category = "Other"
	}
	soundTone := input.SoundTone
	if soundTone == "" {
		soundTone = entity.SoundToneNone
	}

	sub := entity.NewSubscription(
		input.Name,
		input.Price,
		input.BillingCycle,
		input.StartDate,
		input.EndDate,
		input.ReminderDays,
		category,
		input.Color,
		input.LogoURL,
		soundTone,
	)

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return &CreateSubscriptionOutput{Subscription: sub}, nil
}

// validateInput checks the fields shared by create and update.
func validateInput(input CreateSubscriptionInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodeSubscriptionNameRequired,
			"subscription name is required",
			domainerror.ErrSubscriptionNameRequired,
		)
	}

	if input.Price.IsNegative() {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodeInvalidPrice,
			"price must be a non-negative number",
			domainerror.ErrInvalidPrice,
		)
	}

	if !isValidBillingCycle(input.BillingCycle) {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodeInvalidBillingCycle,
			"billing cycle must be weekly, monthly, quarterly, yearly or one-time",
			domainerror.ErrInvalidBillingCycle,
		)
	}

	startsAt, ok := entity.ParseDate(input.StartDate)
	if !ok {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodeInvalidDate,
			"start date must be a valid ISO date",
			domainerror.ErrInvalidDate,
		)
	}

	endsAt, ok := entity.ParseDate(input.EndDate)
	if !ok {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodeInvalidDate,
			"end date must be a valid ISO date",
			domainerror.ErrInvalidDate,
		)
	}

	if entity.DayOf(endsAt).Before(entity.DayOf(startsAt)) {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not precede start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	if input.ReminderDays < 0 {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodeInvalidReminderDays,
			"reminder days must be non-negative",
			domainerror.ErrInvalidReminderDays,
		)
	}

	return nil
}

// isValidBillingCycle validates the billing cycle.
func isValidBillingCycle(cycle entity.BillingCycle) bool {
	switch cycle {
	case entity.BillingCycleWeekly,
		entity.BillingCycleMonthly,
		entity.BillingCycleQuarterly,
		entity.BillingCycleYearly,
		entity.BillingCycleOneTime:
		return true
	}
	return false
}
