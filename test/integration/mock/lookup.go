package mock

import (
	"context"
	"fmt"

	"github.com/subtracker/backend/internal/domain/entity"
)

// LookupService is a canned stand-in for the Gemini lookup collaborator.
type LookupService struct {
	LogoURL string
	Advice  string
	Err     error
}

// FindLogoURL returns the canned logo URL.
func (s *LookupService) FindLogoURL(context.Context, string) (string, error) {
	return s.LogoURL, s.Err
}

// SavingsAdvice returns the canned advice string.
func (s *LookupService) SavingsAdvice(_ context.Context, active []*entity.Subscription) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if s.Advice != "" {
		return s.Advice, nil
	}
	return fmt.Sprintf("You could trim one of your %d subscriptions.", len(active)), nil
}
