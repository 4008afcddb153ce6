// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingCycle is a display/date-auto-fill hint for a subscription.
// Lifecycle classification is driven by start/end dates only, never by the cycle.
type BillingCycle string

const (
	BillingCycleWeekly    BillingCycle = "weekly"
	BillingCycleMonthly   BillingCycle = "monthly"
	BillingCycleQuarterly BillingCycle = "quarterly"
	BillingCycleYearly    BillingCycle = "yearly"
	BillingCycleOneTime   BillingCycle = "one-time"
)

// DefaultCurrency is the single fixed currency for all prices.
const DefaultCurrency = "INR"

// dateLayouts are the accepted wire formats for subscription dates.
// Dates carry date-only semantics; time-of-day is never meaningful.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// Subscription represents a tracked recurring or fixed-term service.
//
// StartDate, EndDate and RenewalDate are kept as raw ISO-8601 strings so that
// an unparsable stored value stays representable and detectable. It must never
// be silently replaced with "now".
type Subscription struct {
	ID           uuid.UUID
	Name         string
	Price        decimal.Decimal
	Currency     string
	BillingCycle BillingCycle
	StartDate    string
	EndDate      string
	RenewalDate  string
	ReminderDays int
	Category     string
	Color        string
	LogoURL      string
	IsArchived   bool
	SoundTone    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewSubscription creates a new Subscription entity with a fresh id.
// In practice the renewal date mirrors the end date.
func NewSubscription(
	name string,
	price decimal.Decimal,
	billingCycle BillingCycle,
	startDate, endDate string,
	reminderDays int,
	category, color, logoURL, soundTone string,
) *Subscription {
	now := time.Now().UTC()

	return &Subscription{
		ID:           uuid.New(),
		Name:         name,
		Price:        price,
		Currency:     DefaultCurrency,
		BillingCycle: billingCycle,
		StartDate:    startDate,
		EndDate:      endDate,
		RenewalDate:  endDate,
		ReminderDays: reminderDays,
		Category:     category,
		Color:        color,
		LogoURL:      logoURL,
		SoundTone:    soundTone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// StartsAt parses the start date. The second return value reports whether the
// stored value is a parsable calendar date.
func (s *Subscription) StartsAt() (time.Time, bool) {
	return ParseDate(s.StartDate)
}

// EndsAt parses the end date.
func (s *Subscription) EndsAt() (time.Time, bool) {
	return ParseDate(s.EndDate)
}

// RenewsAt parses the renewal date.
func (s *Subscription) RenewsAt() (time.Time, bool) {
	return ParseDate(s.RenewalDate)
}

// HasSound reports whether a reminder for this subscription should carry an
// alert sound. An empty tone or the "None" sentinel means silent.
func (s *Subscription) HasSound() bool {
	return s.SoundTone != "" && s.SoundTone != SoundToneNone
}

// ParseDate parses an ISO-8601 date or date-time string into a calendar instant.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DayOf truncates an instant to its calendar day. All lifecycle and reminder
// comparisons are done on calendar days, independent of time-of-day.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
