// Package constants holds values shared across layers.
package constants

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"

	GeolocationProviderClient = "client"
	GeolocationProviderStatic = "static"
)
