package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type computeStats struct {
	runs          int
	failures      int
	lastDuration  time.Duration
	lastDegraded  int
	cacheOutcomes map[string]int
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// the standings pipeline, mirroring them to OpenTelemetry when configured.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*providerStats
	compute computeStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:   make(map[string]*providerStats),
		compute: computeStats{cacheOutcomes: make(map[string]int)},
		otel:    otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordCacheOutcome counts standings cache reads by outcome (hit, miss, stale, failed).
func (r *Recorder) RecordCacheOutcome(outcome string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.compute.cacheOutcomes[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheOutcome(outcome)
	}
}

// RecordStandingsCompute tracks one full standings recomputation.
func (r *Recorder) RecordStandingsCompute(duration time.Duration, degraded int, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.compute.runs++
	r.compute.lastDuration = duration
	if err != nil {
		r.compute.failures++
	} else {
		r.compute.lastDegraded = degraded
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCompute(duration, degraded, err)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// CacheOutcomes returns how often the given cache outcome was recorded.
func (r *Recorder) CacheOutcomes(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.compute.cacheOutcomes[outcome]
}

// ComputeStats summarises standings recomputations.
type ComputeStats struct {
	Runs         int
	Failures     int
	LastDuration time.Duration
	LastDegraded int
}

// Compute returns a copy of the standings recomputation stats.
func (r *Recorder) Compute() ComputeStats {
	if r == nil {
		return ComputeStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return ComputeStats{
		Runs:         r.compute.runs,
		Failures:     r.compute.failures,
		LastDuration: r.compute.lastDuration,
		LastDegraded: r.compute.lastDegraded,
	}
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordWarmCycle tracks cache warmer cycles and errors.
func (r *Recorder) RecordWarmCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordWarm(duration, err)
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
