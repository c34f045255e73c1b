package standings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	domain "github.com/preston-bernstein/nfl-hq-service/internal/domain/standings"
	"github.com/preston-bernstein/nfl-hq-service/internal/domain/teams"
	"github.com/preston-bernstein/nfl-hq-service/internal/logging"
)

const (
	DefaultBatchSize  = 8
	DefaultBatchDelay = 100 * time.Millisecond
)

// Orchestrator fans schedule fetches out in fixed-size batches. Every team in
// a batch runs concurrently and a batch settles before the next one starts.
type Orchestrator struct {
	fetcher    scheduleFetcher
	batchSize  int
	batchDelay time.Duration
	logger     *slog.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewOrchestrator builds an Orchestrator; non-positive sizes fall back to 8 teams per batch.
// A negative delay is treated as zero.
func NewOrchestrator(fetcher scheduleFetcher, batchSize int, batchDelay time.Duration, logger *slog.Logger) *Orchestrator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if batchDelay < 0 {
		batchDelay = 0
	}
	return &Orchestrator{
		fetcher:    fetcher,
		batchSize:  batchSize,
		batchDelay: batchDelay,
		logger:     logger,
		sleep:      sleepContext,
	}
}

// Run computes an unranked standing for every team, in input order. A team
// whose schedule cannot be fetched degrades to 0-0-0 with StatusUnavailable.
// An empty team list or a cancelled context fails the whole run.
func (o *Orchestrator) Run(ctx context.Context, list []teams.Team) ([]domain.TeamStanding, error) {
	if len(list) == 0 {
		return nil, ErrNoTeams
	}
	logger := logging.FromContext(ctx, o.logger)

	results := make([]domain.TeamStanding, len(list))
	batches := 0
	for start := 0; start < len(list); start += o.batchSize {
		if start > 0 && o.batchDelay > 0 {
			if err := o.sleep(ctx, o.batchDelay); err != nil {
				return nil, fmt.Errorf("standings run: %w", err)
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("standings run: %w", err)
		}

		end := start + o.batchSize
		if end > len(list) {
			end = len(list)
		}
		o.runBatch(ctx, list[start:end], results[start:end])
		batches++
		logging.Debug(logger, "standings batch settled",
			slog.Int(logging.FieldBatch, batches),
			slog.Int(logging.FieldCount, end-start),
		)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("standings run: %w", err)
	}
	return results, nil
}

func (o *Orchestrator) runBatch(ctx context.Context, batch []teams.Team, out []domain.TeamStanding) {
	var g errgroup.Group
	g.SetLimit(len(batch))
	for i := range batch {
		i := i
		g.Go(func() error {
			team := batch[i]
			record, status := RecordFor(o.fetcher.Fetch(ctx, team))
			out[i] = domain.NewTeamStanding(team, record, status)
			return nil
		})
	}
	_ = g.Wait()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
