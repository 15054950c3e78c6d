package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripgo_gateway/internal/domain"
)

// ResolveService maps free-text city names to the provider's mapping
// payload. Mappings are effectively immutable, so results are cached
// under the normalized name.
type ResolveService struct {
	provider domain.PriceProvider
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewResolveService(p domain.PriceProvider, c domain.Cache, ttl time.Duration) *ResolveService {
	return &ResolveService{provider: p, cache: c, cacheTTL: ttl}
}

func (s *ResolveService) Resolve(ctx context.Context, cityName string) (domain.RawPayload, error) {
	name := strings.TrimSpace(cityName)
	if name == "" {
		return nil, fmt.Errorf("%w: cityName is required", domain.ErrInvalidInput)
	}

	key := "citymap:" + strings.ToLower(name)
	var cached domain.RawPayload
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	payload, err := s.provider.ResolveCity(ctx, name)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, payload, int(s.cacheTTL.Seconds()))
	}
	return payload, nil
}
