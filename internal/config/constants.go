package config

import "time"

const (
	envPort             = "PORT"
	envProvider         = "PROVIDER"
	envWarmInterval     = "WARM_INTERVAL"
	envCORSOrigins      = "CORS_ALLOWED_ORIGINS"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"
	envLogFile          = "LOG_FILE"
	envCacheTTL         = "STANDINGS_CACHE_TTL"
	envBatchSize        = "STANDINGS_BATCH_SIZE"
	envBatchDelay       = "STANDINGS_BATCH_DELAY"
	envFetchTimeout     = "STANDINGS_FETCH_TIMEOUT"
	envMaxRetries       = "STANDINGS_MAX_RETRIES"
	envRetryBaseDelay   = "STANDINGS_RETRY_BASE_DELAY"
	envComputeTimeout   = "STANDINGS_COMPUTE_TIMEOUT"
	envSkdBaseURL       = "SPORTSKEEDA_BASE_URL"
	envSkdRatePerSecond = "SPORTSKEEDA_RATE_PER_SEC"

	defaultPort     = "4000"
	defaultProvider = "fixture"
	// Warm slightly faster than the cache TTL so readers rarely pay for a miss.
	defaultWarmInterval = 4 * Duration(time.Minute)
	defaultCORSOrigins  = "*"
	defaultMetricsPort  = "9090"
	defaultServiceName  = "nfl-hq-service"

	// The upstream page revalidates standings every 300s.
	defaultCacheTTL       = 5 * Duration(time.Minute)
	defaultBatchSize      = 8
	defaultBatchDelay     = 100 * Duration(time.Millisecond)
	defaultFetchTimeout   = 10 * Duration(time.Second)
	defaultMaxRetries     = 2
	defaultRetryBaseDelay = 1 * Duration(time.Second)
	defaultComputeTimeout = 2 * Duration(time.Minute)

	defaultSkdBaseURL       = "https://cf-gotham.sportskeeda.com"
	defaultSkdRatePerSecond = 16
)
