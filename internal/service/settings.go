package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
	"github.com/adilzhn/leksika-bot/internal/repository"
)

type SettingsRepo interface {
	GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error)
	Upsert(ctx context.Context, s *entities.UserSettings) error
}

type SettingsService struct {
	repo SettingsRepo
}

func NewSettingsService(repo SettingsRepo) *SettingsService {
	return &SettingsService{repo: repo}
}

// GetOrCreate returns the user's settings, creating defaults on first access.
func (s *SettingsService) GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	settings, err := s.repo.GetByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrSettingsNotFound) {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	settings = entities.NewUserSettings(userID)
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("create settings: %w", err)
	}

	return settings, nil
}

// SetRemindersEnabled toggles daily reminders.
func (s *SettingsService) SetRemindersEnabled(ctx context.Context, userID int64, enabled bool) error {
	settings, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	settings.RemindersEnabled = enabled
	return s.repo.Upsert(ctx, settings)
}

// SetReminderHour changes the UTC hour of the daily reminder.
func (s *SettingsService) SetReminderHour(ctx context.Context, userID int64, hour int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("invalid reminder hour: %d", hour)
	}

	settings, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	settings.ReminderHourUTC = hour
	return s.repo.Upsert(ctx, settings)
}
