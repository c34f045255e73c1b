package config

import "time"

// StandingsConfig controls the standings pipeline and its cache.
type StandingsConfig struct {
	CacheTTL       time.Duration
	BatchSize      int
	BatchDelay     time.Duration // pause between team batches
	FetchTimeout   time.Duration // per schedule fetch attempt
	MaxRetries     int           // extra attempts after the first
	RetryBaseDelay time.Duration // doubled on every retry
	ComputeTimeout time.Duration // bound on one full recomputation
}

func loadStandings() StandingsConfig {
	return StandingsConfig{
		CacheTTL:       durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		BatchSize:      intEnvOrDefault(envBatchSize, defaultBatchSize),
		BatchDelay:     durationEnvOrDefault(envBatchDelay, defaultBatchDelay),
		FetchTimeout:   durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		MaxRetries:     nonNegativeIntEnvOrDefault(envMaxRetries, defaultMaxRetries),
		RetryBaseDelay: durationEnvOrDefault(envRetryBaseDelay, defaultRetryBaseDelay),
		ComputeTimeout: durationEnvOrDefault(envComputeTimeout, defaultComputeTimeout),
	}
}
