package dto

import (
	"time"

	"github.com/subtracker/backend/internal/domain/entity"
)

// SubscriptionRequest represents the request body for creating or fully
// updating a subscription. Dates travel as raw ISO strings.
type SubscriptionRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	Price        float64 `json:"price"`
	BillingCycle string  `json:"billing_cycle" binding:"required,oneof=weekly monthly quarterly yearly one-time"`
	StartDate    string  `json:"start_date" binding:"required"`
	EndDate      string  `json:"end_date" binding:"required"`
	ReminderDays int     `json:"reminder_days"`
	Category     string  `json:"category,omitempty"`
	Color        string  `json:"color,omitempty"`
	LogoURL      string  `json:"logo_url,omitempty"`
	SoundTone    string  `json:"sound_tone,omitempty"`
}

// SubscriptionResponse represents a single subscription in API responses.
type SubscriptionResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        string    `json:"price"`
	Currency     string    `json:"currency"`
	BillingCycle string    `json:"billing_cycle"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	RenewalDate  string    `json:"renewal_date"`
	ReminderDays int       `json:"reminder_days"`
	Category     string    `json:"category"`
	Color        string    `json:"color,omitempty"`
	LogoURL      string    `json:"logo_url,omitempty"`
	IsArchived   bool      `json:"is_archived"`
	SoundTone    string    `json:"sound_tone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SubscriptionListResponse represents the response for listing subscriptions.
type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	Total         int                    `json:"total"`
}

// FixLogoResponse represents the response of a logo resolution attempt.
type FixLogoResponse struct {
	Subscription SubscriptionResponse `json:"subscription"`
	Updated      bool                 `json:"updated"`
}

// ToSubscriptionResponse converts a domain Subscription entity to a DTO.
func ToSubscriptionResponse(sub *entity.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:           sub.ID.String(),
		Name:         sub.Name,
		Price:        sub.Price.StringFixed(2),
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

// ToSubscriptionListResponse converts a slice of subscriptions to the list DTO.
func ToSubscriptionListResponse(subs []*entity.Subscription) SubscriptionListResponse {
	responses := make([]SubscriptionResponse, len(subs))
	for i, sub := range subs {
		responses[i] = ToSubscriptionResponse(sub)
	}
	return SubscriptionListResponse{
		Subscriptions: responses,
		Total:         len(responses),
	}
}
