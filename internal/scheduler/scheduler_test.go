package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestComputeNextDelay(t *testing.T) {
	base := time.Date(2023, time.May, 1, 6, 0, 0, 0, time.UTC)

	// Strictly before today's target: lands exactly at today's 07:00.
	if got := ComputeNextDelay(base, 7, 0, 0); got != time.Hour {
		t.Fatalf("before target: delay = %v, want 1h", got)
	}

	// Exactly at the target: rolls over to tomorrow.
	at := time.Date(2023, time.May, 1, 7, 0, 0, 0, time.UTC)
	if got := ComputeNextDelay(at, 7, 0, 0); got != 24*time.Hour {
		t.Fatalf("at target: delay = %v, want 24h", got)
	}

	// After the target: tomorrow minus elapsed.
	after := time.Date(2023, time.May, 1, 7, 0, 1, 0, time.UTC)
	if got := ComputeNextDelay(after, 7, 0, 0); got != 24*time.Hour-time.Second {
		t.Fatalf("after target: delay = %v, want 23h59m59s", got)
	}

	// Seconds component participates in the target.
	if got := ComputeNextDelay(base, 6, 0, 30); got != 30*time.Second {
		t.Fatalf("seconds target: delay = %v, want 30s", got)
	}
}

func TestDailyStopIsIdempotent(t *testing.T) {
	d := NewDaily(zap.NewNop(), func(context.Context) {})
	d.StartExecutionAt(7, 0, 0)
	d.Stop()
	d.Stop() // second stop must not panic or block
}

func TestDailyRestartReplacesLoop(t *testing.T) {
	var fired atomic.Int32
	d := NewDaily(zap.NewNop(), func(context.Context) { fired.Add(1) })

	// Arm far in the future twice; the second arm must replace the first
	// loop rather than leak it.
	d.StartExecutionAt(7, 0, 0)
	d.StartExecutionAt(8, 0, 0)
	d.Stop()

	if fired.Load() != 0 {
		t.Fatalf("task fired %d times before target", fired.Load())
	}
}
