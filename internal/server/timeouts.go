package server

import "time"

const (
	readTimeout = 10 * time.Second
	// writeTimeout leaves room for a cold cache miss that runs the full team fan-out.
	writeTimeout = 2 * time.Minute
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
