package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository provides access to user settings in the database.
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository with the provided database pool.
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetByUserID retrieves settings for a user.
// Returns ErrSettingsNotFound if the user has no settings row yet.
func (r *SettingsRepository) GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	query := `
		SELECT user_id, reminders_enabled, reminder_hour_utc, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var s entities.UserSettings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.UserID,
		&s.RemindersEnabled,
		&s.ReminderHourUTC,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}

		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &s, nil
}

// Upsert creates or updates a settings row.
func (r *SettingsRepository) Upsert(ctx context.Context, s *entities.UserSettings) error {
	query := `
		INSERT INTO user_settings (user_id, reminders_enabled, reminder_hour_utc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id) DO UPDATE SET
			reminders_enabled = EXCLUDED.reminders_enabled,
			reminder_hour_utc = EXCLUDED.reminder_hour_utc,
			updated_at = now()
	`

	_, err := r.db.Exec(ctx, query, s.UserID, s.RemindersEnabled, s.ReminderHourUTC, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}

	return nil
}
