package service

import (
	"context"
	"fmt"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
)

type UserRepo interface {
	SaveUser(ctx context.Context, user *entities.User) error
}

type UserService struct {
	repo UserRepo
}

func NewUserService(repo UserRepo) *UserService {
	return &UserService{repo: repo}
}

// EnsureUser registers the user on first contact and refreshes profile
// fields on every later one.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64, firstName, username, languageCode string) error {
	user := entities.NewUser(userID, chatID)
	user.FirstName = firstName
	user.Username = username
	user.LanguageCode = languageCode

	if err := s.repo.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}

	return nil
}
