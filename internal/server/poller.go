package server

import (
	"context"

	"github.com/preston-bernstein/nfl-hq-service/internal/poller"
)

// Poller defines the minimal warmer behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}
