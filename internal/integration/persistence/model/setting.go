package model

import "time"

// SettingModel represents the settings key/value table in the database.
type SettingModel struct {
	Key       string    `gorm:"type:varchar(50);primaryKey"`
	Value     string    `gorm:"type:varchar(200);not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SettingModel.
func (SettingModel) TableName() string {
	return "settings"
}

// SettingKeyNotificationPermission stores the tri-state notification permission.
const SettingKeyNotificationPermission = "notification_permission"
