package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

// instantTimer fires immediately and records every requested wait.
type instantTimer struct {
	waits []time.Duration
	ch    chan time.Time
}

func newInstantTimer() *instantTimer {
	return &instantTimer{ch: make(chan time.Time, 1)}
}

func (t *instantTimer) Start(d time.Duration) {
	t.waits = append(t.waits, d)
	t.ch <- time.Now()
}

func (t *instantTimer) Stop() {}

func (t *instantTimer) C() <-chan time.Time { return t.ch }

type hintErr struct{ wait time.Duration }

func (e hintErr) Error() string               { return "slow down" }
func (e hintErr) RetryDelay() time.Duration { return e.wait }

func TestPolicyDelay(t *testing.T) {
	p := DefaultPolicy()
	cases := map[int]time.Duration{
		0: 0,
		1: time.Second,
		2: 2 * time.Second,
		3: 4 * time.Second,
	}
	for retry, want := range cases {
		if got := p.Delay(retry); got != want {
			t.Fatalf("retry %d: expected %s, got %s", retry, want, got)
		}
	}

	capped := Policy{BaseDelay: time.Second, Multiplier: 2, MaxDelay: 3 * time.Second}
	if got := capped.Delay(5); got != 3*time.Second {
		t.Fatalf("expected cap, got %s", got)
	}
}

func TestPolicyNormalizesInvalidValues(t *testing.T) {
	p := Policy{MaxRetries: -3}
	if p.Attempts() != 1 {
		t.Fatalf("expected single attempt, got %d", p.Attempts())
	}
	if p.Delay(1) != DefaultBaseDelay {
		t.Fatalf("expected default base delay, got %s", p.Delay(1))
	}
}

func TestDoSucceedsAfterRetries(t *testing.T) {
	timer := newInstantTimer()
	calls := 0
	err := Do(context.Background(), DefaultPolicy(), func(ctx context.Context, attempt int) error {
		calls++
		if attempt != calls {
			t.Fatalf("attempt %d reported as %d", calls, attempt)
		}
		if attempt < 3 {
			return errors.New("flaky")
		}
		return nil
	}, withTimer(timer))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
	want := []time.Duration{time.Second, 2 * time.Second}
	if len(timer.waits) != len(want) {
		t.Fatalf("expected waits %v, got %v", want, timer.waits)
	}
	for i := range want {
		if timer.waits[i] != want[i] {
			t.Fatalf("wait %d: expected %s, got %s", i, want[i], timer.waits[i])
		}
	}
}

func TestDoReturnsLastErrorWhenExhausted(t *testing.T) {
	timer := newInstantTimer()
	calls := 0
	err := Do(context.Background(), DefaultPolicy(), func(ctx context.Context, attempt int) error {
		calls++
		return errors.New("boom")
	}, withTimer(timer))
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected last error, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestDoStopsOnPermanent(t *testing.T) {
	sentinel := errors.New("not found")
	calls := 0
	err := Do(context.Background(), DefaultPolicy(), func(ctx context.Context, attempt int) error {
		calls++
		return Permanent(sentinel)
	}, withTimer(newInstantTimer()))
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected single call, got %d", calls)
	}
}

func TestDoHonoursDelayHint(t *testing.T) {
	timer := newInstantTimer()
	calls := 0
	_ = Do(context.Background(), DefaultPolicy(), func(ctx context.Context, attempt int) error {
		calls++
		if attempt == 1 {
			return hintErr{wait: 7 * time.Second}
		}
		return nil
	}, withTimer(timer))
	if len(timer.waits) != 1 || timer.waits[0] != 7*time.Second {
		t.Fatalf("expected hinted wait, got %v", timer.waits)
	}
}

func TestDoNotifiesRetries(t *testing.T) {
	var seen []int
	_ = Do(context.Background(), Policy{MaxRetries: 2, BaseDelay: time.Millisecond}, func(ctx context.Context, attempt int) error {
		return errors.New("boom")
	}, withTimer(newInstantTimer()), WithNotify(func(err error, attempt int, wait time.Duration) {
		seen = append(seen, attempt)
	}))
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Fatalf("expected notifications for attempts 1 and 2, got %v", seen)
	}
}

func TestDoRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	err := Do(ctx, DefaultPolicy(), func(ctx context.Context, attempt int) error {
		calls++
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no calls, got %d", calls)
	}
}

func TestDoStopsWaitingWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, Policy{MaxRetries: 5, BaseDelay: time.Hour}, func(ctx context.Context, attempt int) error {
		calls++
		cancel()
		return errors.New("boom")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected single call, got %d", calls)
	}
}
