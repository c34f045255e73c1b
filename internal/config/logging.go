package config

// LoggingConfig controls log level, format and optional file output.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  envOrDefault(envLogLevel, "info"),
		Format: envOrDefault(envLogFormat, "json"),
		File:   envOrDefault(envLogFile, ""),
	}
}
