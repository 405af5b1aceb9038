package entity

import (
	"time"

	"github.com/google/uuid"
)

// DispatchType classifies a dispatch invocation.
type DispatchType string

const (
	DispatchTypeDirect       DispatchType = "direct"
	DispatchTypeBroadcast    DispatchType = "broadcast"
	DispatchTypeAnnouncement DispatchType = "announcement"
	DispatchTypeSweep        DispatchType = "sweep"
	// DispatchTypeCron is the name the external scheduler uses for a sweep.
	DispatchTypeCron DispatchType = "cron"
	// DispatchTypeTest is a self-addressed send from the subscription settings.
	DispatchTypeTest DispatchType = "test"
)

// IsSweep reports whether the type runs rule matching.
func (t DispatchType) IsSweep() bool {
	return t == DispatchTypeSweep || t == DispatchTypeCron
}

// PushPayload is the message delivered to every endpoint of a dispatch.
type PushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// NewPushPayload applies the default title and deep link.
func NewPushPayload(title, body, url string) PushPayload {
	if title == "" {
		title = DefaultRuleTitle
	}
	if url == "" {
		url = DefaultDeepLink
	}

	return PushPayload{Title: title, Body: body, URL: url}
}

// DeliveryResult counts endpoint outcomes of one fan-out.
// Pruned is the subset of Failed whose subscription row was removed.
type DeliveryResult struct {
	Sent   int
	Failed int
	Pruned int
}

// Add accumulates another result into r.
func (r *DeliveryResult) Add(other DeliveryResult) {
	r.Sent += other.Sent
	r.Failed += other.Failed
	r.Pruned += other.Pruned
}

// DispatchSummary is what a caller learns about an invocation: counts, never recipients.
type DispatchSummary struct {
	Message string `json:"message"`
	Sent    int    `json:"sent"`
	Failed  int    `json:"failed"`
}

// DispatchRecord keeps the aggregate outcome of one invocation for operators.
type DispatchRecord struct {
	ID        uuid.UUID    `json:"id"`
	Type      DispatchType `json:"type"`
	RuleCount int          `json:"rule_count"`
	Sent      int          `json:"sent"`
	Failed    int          `json:"failed"`
	Pruned    int          `json:"pruned"`
	CreatedAt time.Time    `json:"created_at"`
}
