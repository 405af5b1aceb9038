// Package constants holds identifiers shared between configuration and wiring.
package constants

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderInline = "inline"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attribute keys.
const (
	AttributeEventID   = "event_id"
	AttributeEventType = "event_type"
	AttributeRequestID = "request_id"
)

// TimeOfDayLayout formats a clock reading into the rule time-of-day form.
const TimeOfDayLayout = "15:04"

// EnvDevelop is the env.env value of a local deployment.
const EnvDevelop = "develop"
