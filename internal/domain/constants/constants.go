// Package constants holds shared domain-level constant values.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Geolocation fix error classes reported by clients. These mirror the
// browser geolocation error taxonomy.
const (
	FixErrorPermissionDenied    = "permission-denied"
	FixErrorPositionUnavailable = "position-unavailable"
	FixErrorTimeout             = "timeout"
	FixErrorUnsupported         = "unsupported"
)
