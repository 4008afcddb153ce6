package adapter

import (
	"context"

	"github.com/subtracker/backend/internal/domain/entity"
)

// LookupService defines AI-backed enrichment lookups. Both operations are
// best-effort; callers must treat failures as non-fatal.
type LookupService interface {
	// FindLogoURL resolves a direct logo image URL for a service name.
	// Returns "" when no usable logo could be found.
	FindLogoURL(ctx context.Context, serviceName string) (string, error)

	// SavingsAdvice produces a one-sentence savings tip for the given
	// active subscriptions.
	SavingsAdvice(ctx context.Context, active []*entity.Subscription) (string, error)
}
