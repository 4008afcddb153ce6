// Package notification contains notification permission and dispatch use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/subtracker/backend/internal/application/adapter"
	"github.com/subtracker/backend/internal/domain/entity"
	domainerror "github.com/subtracker/backend/internal/domain/error"
)

// GetPermissionUseCase reads the stored notification permission.
type GetPermissionUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetPermissionUseCase creates a new GetPermissionUseCase instance.
func NewGetPermissionUseCase(settingsRepo adapter.SettingsRepository) *GetPermissionUseCase {
	return &GetPermissionUseCase{settingsRepo: settingsRepo}
}

// Execute returns the stored permission, "default" when never set.
func (uc *GetPermissionUseCase) Execute(ctx context.Context) (entity.NotificationPermission, error) {
	permission, err := uc.settingsRepo.GetNotificationPermission(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read notification permission: %w", err)
	}
	if !permission.IsValid() {
		return entity.PermissionDefault, nil
	}
	return permission, nil
}

// SetPermissionUseCase stores the notification permission.
type SetPermissionUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewSetPermissionUseCase creates a new SetPermissionUseCase instance.
func NewSetPermissionUseCase(settingsRepo adapter.SettingsRepository) *SetPermissionUseCase {
	return &SetPermissionUseCase{settingsRepo: settingsRepo}
}

// Execute validates and stores the permission state.
func (uc *SetPermissionUseCase) Execute(ctx context.Context, permission entity.NotificationPermission) error {
	if !permission.IsValid() {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeInvalidPermission,
			"permission must be granted, denied or default",
			domainerror.ErrInvalidPermission,
		)
	}
	if err := uc.settingsRepo.SetNotificationPermission(ctx, permission); err != nil {
		return fmt.Errorf("failed to store notification permission: %w", err)
	}
	return nil
}
