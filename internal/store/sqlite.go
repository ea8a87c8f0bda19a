package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// Registers the "sqlite" driver (pure Go).
	_ "modernc.org/sqlite"

	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/domain"
)

// SQLiteRepo implements Repo using an embedded SQLite database.
type SQLiteRepo struct{ db *sql.DB }

// OpenSQLite opens (or creates) the SQLite database at the given path,
// applies recommended PRAGMAs, runs SQL migrations, and returns a repository.
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// SQLite is a single-writer engine.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &SQLiteRepo{db: db}, nil
}

func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database resources.
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

// GetLocation returns the stored location for a chat, or ErrNotFound.
func (r *SQLiteRepo) GetLocation(ctx context.Context, chatID int64) (*domain.UserLocation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT chat_id, latitude, longitude, location_name, utc_offset_ms
		FROM user_locations
		WHERE chat_id = ?`,
		chatID,
	)

	var loc domain.UserLocation
	if err := row.Scan(&loc.ChatID, &loc.Latitude, &loc.Longitude, &loc.Name, &loc.UTCOffsetMillis); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &loc, nil
}

// PutLocation inserts or overwrites a chat's location; latest write wins.
func (r *SQLiteRepo) PutLocation(ctx context.Context, loc *domain.UserLocation) error {
	if loc == nil {
		return errors.New("nil location")
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_locations (chat_id, latitude, longitude, location_name, utc_offset_ms)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(chat_id) DO UPDATE SET
			latitude      = excluded.latitude,
			longitude     = excluded.longitude,
			location_name = excluded.location_name,
			utc_offset_ms = excluded.utc_offset_ms`,
		loc.ChatID, loc.Latitude, loc.Longitude, loc.Name, loc.UTCOffsetMillis,
	)
	return err
}

// AddSubscriber adds a chat to the daily update set; re-subscribing is a no-op.
func (r *SQLiteRepo) AddSubscriber(ctx context.Context, chatID int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subscribers (chat_id) VALUES (?)
		ON CONFLICT(chat_id) DO NOTHING`,
		chatID,
	)
	return err
}

// RemoveSubscriber removes a chat from the set and reports whether it was present.
func (r *SQLiteRepo) RemoveSubscriber(ctx context.Context, chatID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subscribers WHERE chat_id = ?`, chatID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListSubscribers returns all subscribed chat ids.
func (r *SQLiteRepo) ListSubscribers(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT chat_id FROM subscribers ORDER BY chat_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
