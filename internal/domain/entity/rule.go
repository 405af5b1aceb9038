package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultRuleTitle is used when a rule is saved without a title.
	DefaultRuleTitle = "Reminder"
	// DefaultDeepLink is opened when a notification carries no URL.
	DefaultDeepLink = "/"
)

// NotificationRule is a coach-authored reminder fired once a day at TimeOfDay.
type NotificationRule struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"owner_id"`    // The coach who authored the rule.
	TargetID  *uuid.UUID `json:"target_id"`   // Nil for a global rule, otherwise the single client it addresses.
	TimeOfDay string     `json:"time_of_day"` // "HH:MM" in the dispatch timezone.
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	URL       string     `json:"url"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsGlobal reports whether the rule addresses every client of its owner.
func (r *NotificationRule) IsGlobal() bool {
	return r.TargetID == nil
}

// Payload builds the message sent for this rule.
func (r *NotificationRule) Payload() PushPayload {
	return NewPushPayload(r.Title, r.Message, r.URL)
}

var timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// IsValidTimeOfDay reports whether s is a zero-padded 24-hour "HH:MM".
func IsValidTimeOfDay(s string) bool {
	return timeOfDayPattern.MatchString(s)
}
