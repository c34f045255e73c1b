// Package retry runs an operation under a bounded exponential backoff policy.
package retry

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultMaxRetries = 2
	DefaultBaseDelay  = time.Second
	DefaultMultiplier = 2.0
)

// Policy bounds how often and how slowly an operation is retried.
// The wait before retry n (1-based) is BaseDelay * Multiplier^(n-1), capped at MaxDelay when set.
type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration
	Multiplier float64
	MaxDelay   time.Duration
}

// DefaultPolicy allows three attempts total, waiting 1s then 2s.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
		Multiplier: DefaultMultiplier,
	}
}

func (p Policy) normalized() Policy {
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultBaseDelay
	}
	if p.Multiplier < 1 {
		p.Multiplier = DefaultMultiplier
	}
	return p
}

// Delay returns the wait before the given retry (1-based).
func (p Policy) Delay(retry int) time.Duration {
	p = p.normalized()
	if retry < 1 {
		return 0
	}
	d := float64(p.BaseDelay) * math.Pow(p.Multiplier, float64(retry-1))
	if p.MaxDelay > 0 && d > float64(p.MaxDelay) {
		return p.MaxDelay
	}
	if d > math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(d)
}

// Attempts is the total number of calls the policy permits.
func (p Policy) Attempts() int {
	return p.normalized().MaxRetries + 1
}

func (p Policy) backOff() backoff.BackOff {
	p = p.normalized()
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.BaseDelay
	exp.Multiplier = p.Multiplier
	exp.RandomizationFactor = 0
	exp.MaxElapsedTime = 0
	exp.MaxInterval = time.Duration(math.MaxInt64)
	if p.MaxDelay > 0 {
		exp.MaxInterval = p.MaxDelay
	}
	exp.Reset()
	return backoff.WithMaxRetries(exp, uint64(p.MaxRetries))
}

// Operation is one attempt. attempt starts at 1.
type Operation func(ctx context.Context, attempt int) error

// NotifyFunc observes a failed attempt before the wait that follows it.
type NotifyFunc func(err error, attempt int, wait time.Duration)

// DelayHinter is implemented by errors that carry a server-provided wait, such as Retry-After.
type DelayHinter interface {
	RetryDelay() time.Duration
}

type options struct {
	notify NotifyFunc
	timer  backoff.Timer
}

// Option customises a Do call.
type Option func(*options)

// WithNotify registers a callback for every retried failure.
func WithNotify(fn NotifyFunc) Option {
	return func(o *options) { o.notify = fn }
}

func withTimer(t backoff.Timer) Option {
	return func(o *options) { o.timer = t }
}

// hintedBackOff lets a failed attempt override the next computed wait.
type hintedBackOff struct {
	backoff.BackOff
	next time.Duration
}

func (h *hintedBackOff) NextBackOff() time.Duration {
	d := h.BackOff.NextBackOff()
	if d == backoff.Stop {
		return d
	}
	if h.next > 0 {
		d = h.next
		h.next = 0
	}
	return d
}

// Do calls op until it succeeds, returns a Permanent error, the policy is
// exhausted, or ctx is done. The last operation error is returned on exhaustion.
func Do(ctx context.Context, p Policy, op Operation, opts ...Option) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	hinted := &hintedBackOff{BackOff: p.backOff()}
	b := backoff.WithContext(hinted, ctx)

	attempt := 0
	wrapped := func() error {
		attempt++
		err := op(ctx, attempt)
		if err == nil {
			return nil
		}
		var hint DelayHinter
		if errors.As(err, &hint) && hint.RetryDelay() > 0 {
			hinted.next = hint.RetryDelay()
		}
		return err
	}

	var notify backoff.Notify
	if o.notify != nil {
		notify = func(err error, wait time.Duration) {
			o.notify(err, attempt, wait)
		}
	}

	return backoff.RetryNotifyWithTimer(wrapped, b, notify, o.timer)
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return backoff.Permanent(err)
}
