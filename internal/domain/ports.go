package domain

import "context"

// PriceProvider is the hotel-price aggregator behind the gateway.
type PriceProvider interface {
	// ResolveCity maps a free-text city name to the provider's payload,
	// which embeds the provider-internal city id. Pass-through.
	ResolveCity(ctx context.Context, name string) (RawPayload, error)
	// SearchStays fetches multi-vendor nightly quote rows for a city.
	SearchStays(ctx context.Context, q StaySearch) ([]HotelListing, error)
}

// PlannerModel is the chat-completion gateway used by the copilot.
// Complete returns the model's raw message content; callers own parsing.
type PlannerModel interface {
	Complete(ctx context.Context, system string, turns []ChatTurn) (string, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
