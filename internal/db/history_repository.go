package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidChange is returned when a change is missing required fields.
var ErrInvalidChange = errors.New("invalid preference change")

// PreferenceChange is one persisted preference write.
type PreferenceChange struct {
	ID          string
	Timestamp   time.Time
	Key         string
	Mode        string
	AccentColor string
}

// HistoryRepository records preference writes in append order.
type HistoryRepository struct {
	db *DB
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(db *DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Append records a change, assigning ID and Timestamp when unset.
func (r *HistoryRepository) Append(ctx context.Context, change *PreferenceChange) error {
	if change.Key == "" || change.Mode == "" {
		return ErrInvalidChange
	}

	if change.ID == "" {
		change.ID = uuid.New().String()
	}
	if change.Timestamp.IsZero() {
		change.Timestamp = time.Now().UTC()
	} else {
		change.Timestamp = change.Timestamp.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preference_history (id, timestamp, key, mode, accent_color)
		VALUES (?, ?, ?, ?, ?)
	`,
		change.ID,
		change.Timestamp.Format(time.RFC3339Nano),
		change.Key,
		change.Mode,
		change.AccentColor,
	)
	if err != nil {
		return fmt.Errorf("failed to insert preference change: %w", err)
	}
	return nil
}

// ListByKey returns the most recent changes for key, newest first.
func (r *HistoryRepository) ListByKey(ctx context.Context, key string, limit int) ([]*PreferenceChange, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, timestamp, key, mode, accent_color
		FROM preference_history
		WHERE key = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, key, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query preference history: %w", err)
	}
	defer rows.Close()

	var changes []*PreferenceChange
	for rows.Next() {
		var change PreferenceChange
		var timestamp string
		if err := rows.Scan(&change.ID, &timestamp, &change.Key, &change.Mode, &change.AccentColor); err != nil {
			return nil, fmt.Errorf("failed to scan preference change: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, timestamp); err == nil {
			change.Timestamp = ts
		}
		changes = append(changes, &change)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating preference history: %w", err)
	}
	return changes, nil
}
