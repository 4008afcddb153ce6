package entity

import "github.com/google/uuid"

// SoundToneNone is the sentinel tone meaning no alert sound.
const SoundToneNone = "None"

// Known alert sound tones. Unknown tones resolve to silence at dispatch time.
const (
	SoundToneDigital = "Digital"
	SoundToneBell    = "Bell"
	SoundTonePlayful = "Playful"
	SoundToneGentle  = "Gentle"
)

// DefaultReminderIcon is shown when a subscription has no resolved logo.
const DefaultReminderIcon = "https://img.icons8.com/fluency/128/null/recurring-appointment.png"

// ReminderDecision is the payload produced when a renewal reminder fires.
// It is a pure function result of (subscription, today); delivery side effects
// and same-day de-duplication belong to the notification collaborator.
type ReminderDecision struct {
	SubscriptionID uuid.UUID
	Name           string
	ReminderDays   int
	IconURL        string
	SoundTone      string // empty when the reminder is silent
}

// NotificationPermission is the tri-state system notification permission.
type NotificationPermission string

const (
	PermissionGranted NotificationPermission = "granted"
	PermissionDenied  NotificationPermission = "denied"
	PermissionDefault NotificationPermission = "default"
)

// IsValid reports whether the permission holds one of the three known states.
func (p NotificationPermission) IsValid() bool {
	switch p {
	case PermissionGranted, PermissionDenied, PermissionDefault:
		return true
	}
	return false
}
