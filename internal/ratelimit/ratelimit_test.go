package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name             string
		fetchesPerSecond float64
		wantLimit        float64
	}{
		{name: "unlimited_zero", fetchesPerSecond: 0, wantLimit: 0},
		{name: "unlimited_negative", fetchesPerSecond: -1, wantLimit: 0},
		{name: "limited", fetchesPerSecond: 2.5, wantLimit: 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.fetchesPerSecond).Limit(); got != tt.wantLimit {
				t.Errorf("New(%v).Limit() = %v, want %v", tt.fetchesPerSecond, got, tt.wantLimit)
			}
		})
	}
}

func TestWaitUnlimited(t *testing.T) {
	limiter := New(0)
	ctx := context.Background()

	start := time.Now()
	for range 100 {
		if err := limiter.Wait(ctx); err != nil {
			t.Fatalf("Wait() unexpected error: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("unlimited waits took %v", elapsed)
	}
}

func TestWaitLimited(t *testing.T) {
	limiter := New(1)

	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("first Wait() unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := limiter.Wait(ctx); err == nil {
		t.Error("second Wait() should not fit inside a 50ms deadline at 1 fetch/s")
	}
}

func TestWaitCancelled(t *testing.T) {
	limiter := New(0.1)
	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := limiter.Wait(ctx); err == nil {
		t.Error("Wait() on a cancelled context should fail")
	}
}
