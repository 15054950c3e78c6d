package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"tripgo_gateway/internal/adapters/makcorps"
	"tripgo_gateway/internal/adapters/observability"
	redisad "tripgo_gateway/internal/adapters/redis"
	"tripgo_gateway/internal/app"
	"tripgo_gateway/internal/shared"
)

// Pre-resolves the cities the booking UI surfaces on its landing pages so
// first-user lookups hit a warm cache instead of the provider.
var popularCities = []string{
	"Goa", "Manali", "Jaipur", "Kochi", "Mumbai", "Delhi",
	"Bengaluru", "Udaipur", "Rishikesh", "Darjeeling",
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.MakcorpsBase).
		Int("workers", cfg.WarmupWorkers).
		Int("cities", len(popularCities)).
		Msg("cache warmup starting")

	provider := makcorps.New(cfg.MakcorpsBase, cfg.MakcorpsKey, cfg.ProviderRPS)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	svc := app.NewResolveService(provider, cache, cfg.CacheTTL)

	sem := semaphore.NewWeighted(int64(cfg.WarmupWorkers))
	var wg sync.WaitGroup

	for _, city := range popularCities {
		city := city

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			defer sem.Release(1)

			if _, err := svc.Resolve(ctx, name); err != nil {
				log.Warn().Str("city", name).Err(err).Msg("warmup failed")
				return
			}
			log.Info().Str("city", name).Msg("warmup ok")
		}(city)
	}

	wg.Wait()
	log.Info().Msg("cache warmup completed")
}
