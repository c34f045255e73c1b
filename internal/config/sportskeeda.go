package config

// SportskeedaConfig controls how we talk to the Sportskeeda schedule API.
type SportskeedaConfig struct {
	BaseURL       string
	RatePerSecond float64
}

func loadSportskeeda() SportskeedaConfig {
	return SportskeedaConfig{
		BaseURL:       envOrDefault(envSkdBaseURL, defaultSkdBaseURL),
		RatePerSecond: floatEnvOrDefault(envSkdRatePerSecond, defaultSkdRatePerSecond),
	}
}
