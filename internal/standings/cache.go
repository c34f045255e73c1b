package standings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	domain "github.com/preston-bernstein/nfl-hq-service/internal/domain/standings"
	"github.com/preston-bernstein/nfl-hq-service/internal/logging"
	"github.com/preston-bernstein/nfl-hq-service/internal/metrics"
)

const (
	DefaultCacheTTL       = 5 * time.Minute
	DefaultComputeTimeout = 2 * time.Minute

	flightKey = "standings"
)

// Outcome describes how a cache read was served.
type Outcome string

const (
	OutcomeHit   Outcome = "HIT"
	OutcomeMiss  Outcome = "MISS"
	OutcomeStale Outcome = "STALE"
)

// ComputeFunc produces a fresh snapshot.
type ComputeFunc func(ctx context.Context) (domain.Snapshot, error)

// Cache is a read-through holder for the last good snapshot. Concurrent
// misses share a single computation. The computation runs detached from the
// caller's cancellation, bounded by the compute timeout.
type Cache struct {
	mu         sync.RWMutex
	snapshot   *domain.Snapshot
	computedAt time.Time

	ttl            time.Duration
	computeTimeout time.Duration
	compute        ComputeFunc
	group          singleflight.Group
	now            func() time.Time
	logger         *slog.Logger
	metrics        *metrics.Recorder
}

// NewCache builds a Cache. Non-positive durations fall back to the defaults.
func NewCache(compute ComputeFunc, ttl, computeTimeout time.Duration, logger *slog.Logger, recorder *metrics.Recorder) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if computeTimeout <= 0 {
		computeTimeout = DefaultComputeTimeout
	}
	return &Cache{
		ttl:            ttl,
		computeTimeout: computeTimeout,
		compute:        compute,
		now:            time.Now,
		logger:         logger,
		metrics:        recorder,
	}
}

// Get returns the cached snapshot while fresh, otherwise recomputes. When the
// recompute fails the previous snapshot is served with Stale set.
func (c *Cache) Get(ctx context.Context) (domain.Snapshot, Outcome, error) {
	if snap, ok := c.fresh(); ok {
		c.metrics.RecordCacheOutcome(metrics.CacheHit)
		return snap, OutcomeHit, nil
	}

	snap, err := c.await(ctx, false)
	if err == nil {
		c.metrics.RecordCacheOutcome(metrics.CacheMiss)
		return snap, OutcomeMiss, nil
	}

	logger := logging.FromContext(ctx, c.logger)
	if stale, ok := c.last(); ok {
		stale.Stale = true
		logging.Warn(logger, "serving stale standings",
			slog.String(logging.FieldCache, string(OutcomeStale)),
			slog.Any(logging.FieldError, err),
		)
		c.metrics.RecordCacheOutcome(metrics.CacheStale)
		return stale, OutcomeStale, nil
	}
	logging.Error(logger, "standings unavailable", err, slog.String(logging.FieldCache, string(OutcomeMiss)))
	c.metrics.RecordCacheOutcome(metrics.CacheFailed)
	return domain.Snapshot{}, OutcomeMiss, fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// Refresh recomputes regardless of freshness and stores the result on success.
func (c *Cache) Refresh(ctx context.Context) error {
	_, err := c.await(ctx, true)
	return err
}

// Peek returns the stored snapshot and when it was computed, without computing.
func (c *Cache) Peek() (domain.Snapshot, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snapshot == nil {
		return domain.Snapshot{}, time.Time{}, false
	}
	return c.snapshot.Clone(), c.computedAt, true
}

func (c *Cache) fresh() (domain.Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snapshot == nil || c.now().Sub(c.computedAt) >= c.ttl {
		return domain.Snapshot{}, false
	}
	return c.snapshot.Clone(), true
}

func (c *Cache) last() (domain.Snapshot, bool) {
	snap, _, ok := c.Peek()
	return snap, ok
}

func (c *Cache) store(snap domain.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stored := snap.Clone()
	stored.Stale = false
	c.snapshot = &stored
	c.computedAt = c.now()
}

// await joins the in-flight computation or starts one. The caller may give up
// early through ctx; the shared computation keeps running for other waiters.
func (c *Cache) await(ctx context.Context, force bool) (domain.Snapshot, error) {
	ch := c.group.DoChan(flightKey, func() (any, error) {
		if !force {
			if snap, ok := c.fresh(); ok {
				return snap, nil
			}
		}
		computeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.computeTimeout)
		defer cancel()

		snap, err := c.compute(computeCtx)
		if err != nil {
			return nil, err
		}
		c.store(snap)
		return snap, nil
	})

	select {
	case <-ctx.Done():
		return domain.Snapshot{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.Snapshot{}, res.Err
		}
		snap, ok := res.Val.(domain.Snapshot)
		if !ok {
			return domain.Snapshot{}, errors.New("standings cache: unexpected flight result")
		}
		// Shared callers receive the same value; hand each its own copy.
		return snap.Clone(), nil
	}
}
