package model

import "time"

// CategoryModel represents the custom_categories table in the database.
// Only user-created names live here; the default set is compiled in.
type CategoryModel struct {
	Name      string    `gorm:"type:varchar(50);primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "custom_categories"
}
