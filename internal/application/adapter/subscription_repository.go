// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/subtracker/backend/internal/domain/entity"
)

// SubscriptionRepository defines the interface for subscription persistence operations.
type SubscriptionRepository interface {
	// Create persists a new subscription.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// FindByID retrieves a subscription by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// FindAll retrieves every subscription, newest first.
	FindAll(ctx context.Context) ([]*entity.Subscription, error)

	// Update updates an existing subscription.
	Update(ctx context.Context, subscription *entity.Subscription) error

	// Delete permanently removes a subscription.
	Delete(ctx context.Context, id uuid.UUID) error
}
