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

	DataDir string

	NominatimBase string
	GeocodeRPS    int
	OSRMBase      string
	WeatherBase   string
	WeatherKey    string

	CacheBackend string // redis|memory
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	CacheTTL     time.Duration
	WeatherTTL   time.Duration

	Workers int // seeder concurrency
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
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
		MetricsAddr:   env("METRICS_ADDR", ""),
		DataDir:       env("DATA_DIR", "data"),
		NominatimBase: env("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocodeRPS:    atoi("GEOCODE_RPS", 1),
		OSRMBase:      env("OSRM_BASE_URL", "http://router.project-osrm.org"),
		WeatherBase:   env("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		WeatherKey:    env("OPENWEATHER_API_KEY", ""),
		CacheBackend:  env("CACHE_BACKEND", "memory"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		WeatherTTL:    time.Duration(atoi("WEATHER_TTL_SECONDS", 1800)) * time.Second,
		Workers:       atoi("SEED_WORKERS", 8),
	}
	if c.WeatherKey == "" {
		log.Warn().Msg("OPENWEATHER_API_KEY is empty; weather lookups will report unavailable")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
