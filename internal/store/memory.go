package store

import (
	"context"
	"sync"

	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/domain"
)

// MemoryRepo is a concurrency-safe in-memory implementation of Repo.
// It backs tests and single-process deployments that do not need
// durability across restarts.
type MemoryRepo struct {
	mu          sync.RWMutex
	locations   map[int64]domain.UserLocation
	subscribers map[int64]struct{}
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		locations:   make(map[int64]domain.UserLocation),
		subscribers: make(map[int64]struct{}),
	}
}

func (r *MemoryRepo) GetLocation(_ context.Context, chatID int64) (*domain.UserLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	loc, ok := r.locations[chatID]
	if !ok {
		return nil, ErrNotFound
	}
	return &loc, nil
}

func (r *MemoryRepo) PutLocation(_ context.Context, loc *domain.UserLocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations[loc.ChatID] = *loc
	return nil
}

func (r *MemoryRepo) AddSubscriber(_ context.Context, chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers[chatID] = struct{}{}
	return nil
}

func (r *MemoryRepo) RemoveSubscriber(_ context.Context, chatID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.subscribers[chatID]
	delete(r.subscribers, chatID)
	return ok, nil
}

func (r *MemoryRepo) ListSubscribers(_ context.Context) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.subscribers))
	for id := range r.subscribers {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *MemoryRepo) Close() error { return nil }
