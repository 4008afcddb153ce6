package adapter

import (
	"context"

	"github.com/subtracker/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for app-level settings persistence.
type SettingsRepository interface {
	// GetNotificationPermission returns the stored permission state.
	// Returns PermissionDefault when nothing has been stored yet.
	GetNotificationPermission(ctx context.Context) (entity.NotificationPermission, error)

	// SetNotificationPermission stores the permission state.
	SetNotificationPermission(ctx context.Context, permission entity.NotificationPermission) error
}
