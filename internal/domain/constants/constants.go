package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNone   = "none"
)

// Merchant proximity lookup providers
const (
	GeoIndexProviderQuadtree = "quadtree"
	GeoIndexProviderDatabase = "database"
)

// Firebase messaging limits
const (
	MaxMulticastTokens = 500
)
