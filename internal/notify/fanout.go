package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/domain"
	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/store"
)

// Deliverer produces and sends one user's morning weather message.
// telegram.Router implements this; failures are the deliverer's to report
// and the dispatcher's to swallow.
type Deliverer interface {
	SendTodayWeather(ctx context.Context, chatID int64) error
}

const defaultMaxConcurrent = 64

// Dispatcher expands one daily trigger into N independent per-subscriber
// deliveries. Each delivery waits out its own timezone-adjusted extra
// delay so the message lands in the subscriber's local morning, then
// fetches and sends. One subscriber's failure or slowness never affects
// another's.
type Dispatcher struct {
	repo          store.Repo
	log           *zap.Logger
	deliverer     Deliverer
	maxConcurrent int

	// sleep is swapped out in tests to avoid real multi-hour waits.
	sleep func(ctx context.Context, d time.Duration) bool
}

func NewDispatcher(repo store.Repo, log *zap.Logger, deliverer Deliverer) *Dispatcher {
	return &Dispatcher{
		repo:          repo,
		log:           log,
		deliverer:     deliverer,
		maxConcurrent: defaultMaxConcurrent,
		sleep:         sleepCtx,
	}
}

// Run executes one fanout cycle and blocks until every delivery in the
// cycle has finished or the context is canceled. It is installed as the
// daily scheduler's task.
func (d *Dispatcher) Run(ctx context.Context) {
	cycle := uuid.NewString()
	log := d.log.With(zap.String("cycle", cycle))

	subs, err := d.repo.ListSubscribers(ctx)
	if err != nil {
		log.Error("list subscribers failed", zap.Error(err))
		return
	}
	log.Info("morning fanout started", zap.Int("subscribers", len(subs)))

	g := &errgroup.Group{}
	g.SetLimit(d.maxConcurrent)

	dispatched := 0
	for _, chatID := range subs {
		loc, err := d.repo.GetLocation(ctx, chatID)
		if err != nil {
			// Subscribed but no resolved location on record: skip this
			// cycle silently rather than failing the fanout.
			log.Debug("skipping subscriber without location",
				zap.Int64("chat_id", chatID), zap.Error(err))
			continue
		}

		chatID := chatID
		delay := domain.ExtraDelay(loc.UTCOffsetMillis)
		dispatched++

		g.Go(func() error {
			if !d.sleep(ctx, delay) {
				return nil
			}
			if err := d.deliverer.SendTodayWeather(ctx, chatID); err != nil {
				// Logged and swallowed; other deliveries proceed.
				log.Error("morning delivery failed",
					zap.Int64("chat_id", chatID), zap.Error(err))
			}
			return nil
		})
	}

	_ = g.Wait()
	log.Info("morning fanout finished", zap.Int("dispatched", dispatched))
}

// sleepCtx waits for d, returning false if ctx was canceled first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
