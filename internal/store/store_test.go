package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/domain"
)

// Both implementations must satisfy the same contract.
func repoImpls(t *testing.T) map[string]Repo {
	t.Helper()
	sqliteRepo, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqliteRepo.Close() })
	return map[string]Repo{
		"sqlite": sqliteRepo,
		"memory": NewMemoryRepo(),
	}
}

func TestLocationRoundTrip(t *testing.T) {
	for name, repo := range repoImpls(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if _, err := repo.GetLocation(ctx, 42); !errors.Is(err, ErrNotFound) {
				t.Fatalf("want ErrNotFound, got %v", err)
			}

			loc := &domain.UserLocation{
				ChatID:          42,
				Latitude:        48.8567,
				Longitude:       2.3508,
				Name:            "Paris, Île-de-France, France",
				UTCOffsetMillis: 3600000,
			}
			if err := repo.PutLocation(ctx, loc); err != nil {
				t.Fatalf("PutLocation: %v", err)
			}

			got, err := repo.GetLocation(ctx, 42)
			if err != nil {
				t.Fatalf("GetLocation: %v", err)
			}
			if *got != *loc {
				t.Fatalf("got %+v, want %+v", got, loc)
			}

			// Latest write wins; configuring twice yields a single row.
			loc2 := &domain.UserLocation{
				ChatID:          42,
				Latitude:        51.5,
				Longitude:       -0.12,
				Name:            "London, City of London, Greater London, United Kingdom",
				UTCOffsetMillis: 0,
			}
			if err := repo.PutLocation(ctx, loc2); err != nil {
				t.Fatalf("PutLocation (overwrite): %v", err)
			}
			got, err = repo.GetLocation(ctx, 42)
			if err != nil {
				t.Fatalf("GetLocation after overwrite: %v", err)
			}
			if *got != *loc2 {
				t.Fatalf("got %+v, want %+v", got, loc2)
			}
		})
	}
}

func TestSubscriberSetSemantics(t *testing.T) {
	for name, repo := range repoImpls(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			// Subscribing twice keeps exactly one membership.
			if err := repo.AddSubscriber(ctx, 7); err != nil {
				t.Fatalf("AddSubscriber: %v", err)
			}
			if err := repo.AddSubscriber(ctx, 7); err != nil {
				t.Fatalf("AddSubscriber (again): %v", err)
			}
			if err := repo.AddSubscriber(ctx, 9); err != nil {
				t.Fatalf("AddSubscriber: %v", err)
			}

			ids, err := repo.ListSubscribers(ctx)
			if err != nil {
				t.Fatalf("ListSubscribers: %v", err)
			}
			if len(ids) != 2 {
				t.Fatalf("subscribers = %v, want 2 entries", ids)
			}

			removed, err := repo.RemoveSubscriber(ctx, 7)
			if err != nil {
				t.Fatalf("RemoveSubscriber: %v", err)
			}
			if !removed {
				t.Fatal("want removed=true for subscribed chat")
			}

			// Removing an unsubscribed chat is not an error.
			removed, err = repo.RemoveSubscriber(ctx, 7)
			if err != nil {
				t.Fatalf("RemoveSubscriber (again): %v", err)
			}
			if removed {
				t.Fatal("want removed=false for unsubscribed chat")
			}
		})
	}
}

func TestMemoryRepoConcurrentAccess(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		chatID := int64(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.PutLocation(ctx, &domain.UserLocation{ChatID: chatID, Name: "x"})
			_ = repo.AddSubscriber(ctx, chatID)
			_, _ = repo.GetLocation(ctx, chatID)
			_, _ = repo.ListSubscribers(ctx)
		}()
	}
	wg.Wait()

	ids, err := repo.ListSubscribers(ctx)
	if err != nil {
		t.Fatalf("ListSubscribers: %v", err)
	}
	if len(ids) != 50 {
		t.Fatalf("subscribers = %d, want 50", len(ids))
	}
}
