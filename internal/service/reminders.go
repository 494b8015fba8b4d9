package service

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
	"github.com/adilzhn/leksika-bot/internal/repository"
)

// ReminderNotifier delivers a reminder to a user. Implemented by the
// telegram handler.
type ReminderNotifier interface {
	NotifyDueReviews(chatID int64, dueWords, duePhrases int) error
}

type ActiveUsersRepo interface {
	ListActive(ctx context.Context) ([]*entities.User, error)
}

// ReminderService nudges users who have cards due for review.
type ReminderService struct {
	userRepo     ActiveUsersRepo
	settingsRepo SettingsRepo
	progressRepo DueCounter
	notifier     ReminderNotifier
	logger       *zap.Logger
}

// NewReminderService creates a new reminder service.
func NewReminderService(
	userRepo ActiveUsersRepo,
	settingsRepo SettingsRepo,
	progressRepo DueCounter,
	logger *zap.Logger,
) *ReminderService {
	return &ReminderService{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		progressRepo: progressRepo,
		logger:       logger,
	}
}

// SetNotifier sets the notifier (called after the handler is created).
func (s *ReminderService) SetNotifier(notifier ReminderNotifier) {
	s.notifier = notifier
}

// Start begins the reminder scheduling loop and blocks until ctx is done.
func (s *ReminderService) Start(ctx context.Context) {
	s.logger.Info("reminder service started")

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc("0 * * * *", func() {
		if err := s.sendHourlyReminders(ctx); err != nil {
			s.logger.Error("failed to send hourly reminders", zap.Error(err))
		}
	})
	if err != nil {
		s.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()

	<-ctx.Done()

	c.Stop()
	s.logger.Info("reminder service stopped")
}

// sendHourlyReminders notifies every active user whose reminder hour has
// arrived and who has at least one card due.
func (s *ReminderService) sendHourlyReminders(ctx context.Context) error {
	if s.notifier == nil {
		return errors.New("notifier is not set")
	}

	now := time.Now().UTC()
	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return err
	}

	cutoff := endOfToday(now)

	for _, user := range users {
		settings, err := s.settingsRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			if !errors.Is(err, repository.ErrSettingsNotFound) {
				s.logger.Warn("failed to load settings",
					zap.Int64("user_id", user.ID),
					zap.Error(err),
				)
			}
			continue
		}

		if !settings.RemindersEnabled || settings.ReminderHourUTC != now.Hour() {
			continue
		}

		dueWords, err := s.progressRepo.CountDue(ctx, user.ID, entities.CorpusWords, cutoff)
		if err != nil {
			s.logger.Warn("failed to count due words",
				zap.Int64("user_id", user.ID),
				zap.Error(err),
			)
			continue
		}

		duePhrases, err := s.progressRepo.CountDue(ctx, user.ID, entities.CorpusPhrases, cutoff)
		if err != nil {
			s.logger.Warn("failed to count due phrases",
				zap.Int64("user_id", user.ID),
				zap.Error(err),
			)
			continue
		}

		if dueWords+duePhrases == 0 {
			continue
		}

		if err := s.notifier.NotifyDueReviews(user.ChatID, dueWords, duePhrases); err != nil {
			s.logger.Warn("failed to deliver reminder",
				zap.Int64("user_id", user.ID),
				zap.Error(err),
			)
			continue
		}

		s.logger.Info("reminder sent",
			zap.Int64("user_id", user.ID),
			zap.Int("due_words", dueWords),
			zap.Int("due_phrases", duePhrases),
		)
	}

	return nil
}
