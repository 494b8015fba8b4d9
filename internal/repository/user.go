package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
)

// UserRepository provides access to user data in the database.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository with the provided database pool.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// SaveUser inserts a new user into the database or updates an existing one.
// It sets IsActive and CreatedAt fields from the database.
func (r *UserRepository) SaveUser(ctx context.Context, user *entities.User) error {
	query := `
		INSERT INTO users (id, chat_id, first_name, username, language_code)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			chat_id = EXCLUDED.chat_id,
			first_name = EXCLUDED.first_name,
			username = EXCLUDED.username,
			language_code = EXCLUDED.language_code
		RETURNING is_active, created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		user.ID, user.ChatID, user.FirstName, user.Username, user.LanguageCode,
	).Scan(&user.IsActive, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	return nil
}

// UserExists checks if a user with the given ID exists in the database.
func (r *UserRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)"

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user existence: %w", err)
	}

	return exists, nil
}

// ListActive returns all active users, for reminder delivery.
func (r *UserRepository) ListActive(ctx context.Context) ([]*entities.User, error) {
	query := `
		SELECT id, chat_id, first_name, username, language_code, is_active, created_at
		FROM users
		WHERE is_active
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active users: %w", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		var u entities.User
		err = rows.Scan(&u.ID, &u.ChatID, &u.FirstName, &u.Username, &u.LanguageCode, &u.IsActive, &u.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("list active users: %w", err)
		}
		users = append(users, &u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list active users: %w", err)
	}

	return users, nil
}
