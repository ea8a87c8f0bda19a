package store

import (
	"context"
	"errors"

	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/domain"
)

// ErrNotFound is returned when no location is stored for a chat.
var ErrNotFound = errors.New("no location for chat")

// Repo defines storage operations for per-chat locations and the daily
// update subscriber set. All operations are atomic per key; no multi-key
// transactional guarantees are offered or needed.
type Repo interface {
	GetLocation(ctx context.Context, chatID int64) (*domain.UserLocation, error)
	PutLocation(ctx context.Context, loc *domain.UserLocation) error

	// AddSubscriber is idempotent: subscribing twice keeps one membership.
	AddSubscriber(ctx context.Context, chatID int64) error
	// RemoveSubscriber reports whether the chat was subscribed.
	RemoveSubscriber(ctx context.Context, chatID int64) (bool, error)
	ListSubscribers(ctx context.Context) ([]int64, error)

	Close() error
}
