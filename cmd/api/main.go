package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"tripgo_gateway/internal/adapters/aigateway"
	server "tripgo_gateway/internal/adapters/http_server"
	"tripgo_gateway/internal/adapters/makcorps"
	"tripgo_gateway/internal/adapters/observability"
	redisad "tripgo_gateway/internal/adapters/redis"
	"tripgo_gateway/internal/app"
	"tripgo_gateway/internal/planner"
	"tripgo_gateway/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	provider := makcorps.New(cfg.MakcorpsBase, cfg.MakcorpsKey, cfg.ProviderRPS)
	model := aigateway.New(cfg.AIGatewayURL, cfg.AIGatewayKey, cfg.AIModel)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	catalog := planner.DefaultCatalog()

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Resolve: app.NewResolveService(provider, cache, cfg.CacheTTL),
		Search:  app.NewSearchService(provider),
		Plan:    app.NewPlanService(model, catalog),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Str("catalog", catalog.Version).Msg("gateway listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
