package constants

// Environments
const (
	EnvLocal      = "local"
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types published on the availability topic
const (
	EventTypeAvailabilityChanged = "availability.changed"
)

// Request and response headers
const (
	HeaderAdminPassword = "X-Admin-Password"

	// Set on points responses that hit the store cap; GeoJSON bodies have no
	// other place to carry it.
	HeaderResultTruncated = "X-Result-Truncated"
)

// RestockTopicPrefix prefixes the FCM topic a flavor's subscribers listen on.
const RestockTopicPrefix = "flavor-"
