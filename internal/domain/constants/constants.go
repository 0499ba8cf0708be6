// Package constants holds shared provider identifiers used across config and infra.
package constants

// Pub/Sub provider types
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Ranking oracle provider types
const (
	OracleProviderEcho = "echo"
	OracleProviderHTTP = "http"
)
