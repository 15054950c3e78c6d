package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	RedisAddr   string
	RedisDB     int
	RedisPass   string

	MakcorpsBase string
	MakcorpsKey  string
	ProviderRPS  int

	AIGatewayURL string
	AIGatewayKey string
	AIModel      string

	CacheTTL      time.Duration
	WarmupWorkers int
}

func Load() Config {
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		MakcorpsBase:  env("MAKCORPS_BASE_URL", "https://api.makcorps.com"),
		MakcorpsKey:   env("MAKCORPS_API_KEY", ""),
		ProviderRPS:   atoi("MAKCORPS_RPS", 5),
		AIGatewayURL:  env("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1/chat/completions"),
		AIGatewayKey:  env("AI_GATEWAY_KEY", ""),
		AIModel:       env("AI_MODEL", "google/gemini-2.5-flash"),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 86400)) * time.Second,
		WarmupWorkers: atoi("WARMUP_WORKERS", 4),
	}
	if c.MakcorpsKey == "" {
		log.Warn().Msg("MAKCORPS_API_KEY is empty; city resolution and stay search will fail")
	}
	if c.AIGatewayKey == "" {
		log.Warn().Msg("AI_GATEWAY_KEY is empty; copilot planning will fail")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
