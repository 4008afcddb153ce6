package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/subtracker/backend/internal/application/adapter"
	"github.com/subtracker/backend/internal/domain/entity"
	"github.com/subtracker/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// GetNotificationPermission returns the stored permission, "default" when unset.
func (r *settingsRepository) GetNotificationPermission(ctx context.Context) (entity.NotificationPermission, error) {
	var settingModel model.SettingModel
	result := r.db.WithContext(ctx).
		Where("key = ?", model.SettingKeyNotificationPermission).
		First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.PermissionDefault, nil
		}
		return "", result.Error
	}

	permission := entity.NotificationPermission(settingModel.Value)
	if !permission.IsValid() {
		return entity.PermissionDefault, nil
	}
	return permission, nil
}

// SetNotificationPermission upserts the permission state.
func (r *settingsRepository) SetNotificationPermission(ctx context.Context, permission entity.NotificationPermission) error {
	settingModel := model.SettingModel{
		Key:       model.SettingKeyNotificationPermission,
		Value:     string(permission),
		UpdatedAt: time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&settingModel)
	return result.Error
}
