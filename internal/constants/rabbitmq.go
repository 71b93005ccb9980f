package constants

// RabbitMQ topology for the optional processed-listing feed.
const (
	ExchangeName                = "aanbod_exchange"
	ExchangeType                = "direct"
	RoutingKeyProcessedListings = "processed_listings"
)
