// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/subtracker/backend/internal/domain/entity"
)

// SubscriptionModel represents the subscriptions table in the database.
// Date columns are raw ISO strings on purpose; an unparsable stored value must
// survive the round trip instead of being coerced.
type SubscriptionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(100);not null"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency     string          `gorm:"type:varchar(3);not null;default:'INR'"`
	BillingCycle string          `gorm:"type:varchar(10);not null"`
	StartDate    string          `gorm:"type:varchar(35);not null"`
	EndDate      string          `gorm:"type:varchar(35);not null"`
	RenewalDate  string          `gorm:"type:varchar(35);not null"`
	ReminderDays int             `gorm:"not null;default:3"`
	Category     string          `gorm:"type:varchar(50);not null;index"`
	Color        string          `gorm:"type:varchar(7)"`
	LogoURL      string          `gorm:"type:varchar(500)"`
	IsArchived   bool            `gorm:"not null;default:false;index"`
	SoundTone    string          `gorm:"type:varchar(20)"`
	CreatedAt    time.Time       `gorm:"not null;index"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SubscriptionModel.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToEntity converts a SubscriptionModel to a domain Subscription entity.
func (m *SubscriptionModel) ToEntity() *entity.Subscription {
	return &entity.Subscription{
		ID:           m.ID,
		Name:         m.Name,
		Price:        m.Price,
		Currency:     m.Currency,
		BillingCycle: entity.BillingCycle(m.BillingCycle),
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		RenewalDate:  m.RenewalDate,
		ReminderDays: m.ReminderDays,
		Category:     m.Category,
		Color:        m.Color,
		LogoURL:      m.LogoURL,
		IsArchived:   m.IsArchived,
		SoundTone:    m.SoundTone,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// SubscriptionFromEntity creates a SubscriptionModel from a domain Subscription entity.
func SubscriptionFromEntity(sub *entity.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		ID:           sub.ID,
		Name:         sub.Name,
		Price:        sub.Price,
		Currency:     sub.Currency,
		BillingCycle: string(sub.BillingCycle),
		StartDate:    sub.StartDate,
		EndDate:      sub.EndDate,
		RenewalDate:  sub.RenewalDate,
		ReminderDays: sub.ReminderDays,
		Category:     sub.Category,
		Color:        sub.Color,
		LogoURL:      sub.LogoURL,
		IsArchived:   sub.IsArchived,
		SoundTone:    sub.SoundTone,
		CreatedAt:    sub.CreatedAt,
		UpdatedAt:    sub.UpdatedAt,
	}
}
