package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Task is one scheduled firing. The scheduler does not care whether the
// task succeeds; re-arming the next day's trigger is unconditional.
type Task func(ctx context.Context)

// Daily runs a task once per calendar day at a fixed wall-clock time in
// the process's local timezone. Implemented as an explicit loop (compute
// delay, cancelable wait, run, recompute) so long-running deployments
// keep bounded stack and timer usage.
type Daily struct {
	log  *zap.Logger
	task Task

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewDaily(log *zap.Logger, task Task) *Daily {
	return &Daily{log: log, task: task}
}

// ComputeNextDelay returns the wait until the next occurrence of
// hour:minute:second in now's location. A target at or before now rolls
// over to tomorrow. Each firing recomputes from a fresh now, so execution
// latency does not accumulate as drift.
func ComputeNextDelay(now time.Time, hour, minute, second int) time.Duration {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, second, 0, now.Location())
	if !now.Before(target) {
		target = target.AddDate(0, 0, 1)
	}
	return target.Sub(now)
}

// StartExecutionAt arms the recurring trigger. Calling it on an already
// started scheduler restarts the loop with the new time.
func (d *Daily) StartExecutionAt(hour, minute, second int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		d.cancel()
		<-d.done
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.done = make(chan struct{})

	go d.loop(ctx, hour, minute, second, d.done)
}

func (d *Daily) loop(ctx context.Context, hour, minute, second int, done chan struct{}) {
	defer close(done)

	for {
		delay := ComputeNextDelay(time.Now(), hour, minute, second)
		d.log.Info("daily trigger armed", zap.Duration("delay", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			d.log.Info("daily scheduler stopping")
			return
		case <-timer.C:
			d.fire(ctx)
		}
	}
}

// fire runs the task, isolating panics so a failing fire never prevents
// the next day's re-arm.
func (d *Daily) fire(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("daily task panicked", zap.Any("panic", r))
		}
	}()
	d.task(ctx)
}

// Stop cancels future firings and waits (bounded) for the loop to exit.
// Deliveries already dispatched by a previous fire are fire-and-forget
// and are not waited on.
func (d *Daily) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel == nil {
		return
	}
	d.cancel()
	select {
	case <-d.done:
	case <-time.After(5 * time.Second):
		d.log.Warn("timed out waiting for scheduler loop to stop")
	}
	d.cancel = nil
}
