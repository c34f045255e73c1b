package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	Provider     string
	WarmInterval Duration
	CORSOrigins  []string
	Sportskeeda  SportskeedaConfig
	Standings    StandingsConfig
	Metrics      MetricsConfig
	Logging      LoggingConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		Provider:     envOrDefault(envProvider, defaultProvider),
		WarmInterval: durationEnvOrDefault(envWarmInterval, defaultWarmInterval),
		CORSOrigins:  listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		Sportskeeda:  loadSportskeeda(),
		Standings:    loadStandings(),
		Metrics:      loadMetrics(),
		Logging:      loadLogging(),
	}
}

// LoadDotEnv populates the environment from the given files (default ".env").
// Existing variables win; a missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	present := make([]string, 0, len(files))
	for _, f := range files {
		if fileExists(f) {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}
