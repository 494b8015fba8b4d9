package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
)

// ActivityRepository provides access to the sparse daily activity log.
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository with the provided database pool.
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// IncrementDay adds the given number of reviews to a user's counter for
// one calendar day, creating the record on first activity of the day.
func (r *ActivityRepository) IncrementDay(ctx context.Context, userID int64, day time.Time, reviewed int) error {
	query := `
		INSERT INTO user_activity (user_id, day, words_reviewed)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, day) DO UPDATE SET
			words_reviewed = user_activity.words_reviewed + EXCLUDED.words_reviewed
	`

	day = day.UTC().Truncate(24 * time.Hour)
	if _, err := r.db.Exec(ctx, query, userID, day, reviewed); err != nil {
		return fmt.Errorf("increment activity: %w", err)
	}

	return nil
}

// ListByUserID returns a user's full activity log, oldest first.
// Days without activity have no record.
func (r *ActivityRepository) ListByUserID(ctx context.Context, userID int64) ([]entities.ActivityRecord, error) {
	query := `
		SELECT user_id, day, words_reviewed
		FROM user_activity
		WHERE user_id = $1
		ORDER BY day
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var records []entities.ActivityRecord
	for rows.Next() {
		var rec entities.ActivityRecord
		if err := rows.Scan(&rec.UserID, &rec.Day, &rec.WordsReviewed); err != nil {
			return nil, fmt.Errorf("list activity: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	return records, nil
}

// TotalReviewed returns the lifetime number of reviews of a user.
func (r *ActivityRepository) TotalReviewed(ctx context.Context, userID int64) (int, error) {
	query := `
		SELECT COALESCE(SUM(words_reviewed), 0)
		FROM user_activity
		WHERE user_id = $1
	`

	var total int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("total reviewed: %w", err)
	}

	return total, nil
}
