package resilience

import (
	"context"
	"testing"
	"time"

	"github.com/GriffinCanCode/winlens/internal/errors"
)

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), DefaultRetryConfig(), func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryRecoversAfterTransientError(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 10 * time.Millisecond}
	calls := 0
	err := Retry(context.Background(), cfg, func() error {
		calls++
		if calls < 3 {
			return errors.New(errors.CodeCaptureFailed, "blit failed")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryStopsOnPermanentError(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond}
	calls := 0
	err := Retry(context.Background(), cfg, func() error {
		calls++
		return errors.New(errors.CodeInvalidArgument, "bad region")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
	calls := 0
	err := Retry(context.Background(), cfg, func() error {
		calls++
		return errors.New(errors.CodeUnavailable, "not now")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 3 { // initial + 2 retries
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := RetryConfig{MaxRetries: 10, BaseDelay: 50 * time.Millisecond}
	calls := 0
	err := Retry(ctx, cfg, func() error {
		calls++
		cancel()
		return errors.New(errors.CodeUnavailable, "not now")
	})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestBackoffDelayCapped(t *testing.T) {
	cfg := DefaultRetryConfig()
	for attempt := 0; attempt < 20; attempt++ {
		d := backoffDelay(cfg, attempt)
		// Jitter can push up to 10% above the cap.
		limit := cfg.MaxDelay + time.Duration(float64(cfg.MaxDelay)*cfg.JitterFactor)
		if d > limit {
			t.Errorf("attempt %d: delay %v exceeds limit %v", attempt, d, limit)
		}
		if d <= 0 {
			t.Errorf("attempt %d: non-positive delay %v", attempt, d)
		}
	}
}
