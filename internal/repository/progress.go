package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
	"github.com/adilzhn/leksika-bot/internal/srs"
)

var ErrProgressNotFound = errors.New("progress not found")

// ProgressRepository provides access to per-item review schedules in the database.
type ProgressRepository struct {
	db *pgxpool.Pool
}

// NewProgressRepository creates a new ProgressRepository with the provided database pool.
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Upsert creates or updates a progress record.
func (r *ProgressRepository) Upsert(ctx context.Context, p *entities.Progress) error {
	query := `
		INSERT INTO user_progress (
			user_id, corpus, item_id, ease_factor, interval_days, repetitions,
			next_review_at, review_count, correct_count, last_reviewed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, corpus, item_id) DO UPDATE SET
			ease_factor = EXCLUDED.ease_factor,
			interval_days = EXCLUDED.interval_days,
			repetitions = EXCLUDED.repetitions,
			next_review_at = EXCLUDED.next_review_at,
			review_count = EXCLUDED.review_count,
			correct_count = EXCLUDED.correct_count,
			last_reviewed_at = EXCLUDED.last_reviewed_at
	`

	_, err := r.db.Exec(
		ctx, query,
		p.UserID,
		p.Corpus,
		p.ItemID,
		p.EaseFactor,
		p.IntervalDays,
		p.Repetitions,
		p.NextReviewAt,
		p.ReviewCount,
		p.CorrectCount,
		p.LastReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}

	return nil
}

// Get retrieves a single progress record.
// Returns ErrProgressNotFound if the item has never been reviewed.
func (r *ProgressRepository) Get(ctx context.Context, userID int64, corpus entities.Corpus, itemID string) (*entities.Progress, error) {
	query := `
		SELECT user_id, corpus, item_id, ease_factor, interval_days, repetitions,
		       next_review_at, review_count, correct_count, last_reviewed_at
		FROM user_progress
		WHERE user_id = $1 AND corpus = $2 AND item_id = $3
	`

	var p entities.Progress
	err := r.db.QueryRow(ctx, query, userID, corpus, itemID).Scan(
		&p.UserID,
		&p.Corpus,
		&p.ItemID,
		&p.EaseFactor,
		&p.IntervalDays,
		&p.Repetitions,
		&p.NextReviewAt,
		&p.ReviewCount,
		&p.CorrectCount,
		&p.LastReviewedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgressNotFound
		}

		return nil, fmt.Errorf("get progress: %w", err)
	}

	return &p, nil
}

// Snapshot loads all schedule states of a user for one corpus, keyed by
// item id. The session composer works off this point-in-time view.
func (r *ProgressRepository) Snapshot(ctx context.Context, userID int64, corpus entities.Corpus) (map[string]srs.State, error) {
	query := `
		SELECT item_id, ease_factor, interval_days, repetitions, next_review_at
		FROM user_progress
		WHERE user_id = $1 AND corpus = $2
	`

	rows, err := r.db.Query(ctx, query, userID, corpus)
	if err != nil {
		return nil, fmt.Errorf("load progress snapshot: %w", err)
	}
	defer rows.Close()

	snapshot := make(map[string]srs.State)
	for rows.Next() {
		var itemID string
		var st srs.State
		if err := rows.Scan(&itemID, &st.EaseFactor, &st.IntervalDays, &st.Repetitions, &st.NextReviewAt); err != nil {
			return nil, fmt.Errorf("load progress snapshot: %w", err)
		}
		snapshot[itemID] = st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load progress snapshot: %w", err)
	}

	return snapshot, nil
}

// CountDue returns how many items of one corpus are due at the given moment.
func (r *ProgressRepository) CountDue(ctx context.Context, userID int64, corpus entities.Corpus, due time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM user_progress
		WHERE user_id = $1 AND corpus = $2 AND next_review_at < $3
	`

	var count int
	if err := r.db.QueryRow(ctx, query, userID, corpus, due).Scan(&count); err != nil {
		return 0, fmt.Errorf("count due: %w", err)
	}

	return count, nil
}

// CountReviewed returns how many distinct items of one corpus the user
// has ever reviewed.
func (r *ProgressRepository) CountReviewed(ctx context.Context, userID int64, corpus entities.Corpus) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM user_progress
		WHERE user_id = $1 AND corpus = $2
	`

	var count int
	if err := r.db.QueryRow(ctx, query, userID, corpus).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reviewed: %w", err)
	}

	return count, nil
}
