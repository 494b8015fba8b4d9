package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
	"github.com/adilzhn/leksika-bot/internal/streak"
)

type DueCounter interface {
	CountDue(ctx context.Context, userID int64, corpus entities.Corpus, due time.Time) (int, error)
	CountReviewed(ctx context.Context, userID int64, corpus entities.Corpus) (int, error)
}

type ActivityLog interface {
	ListByUserID(ctx context.Context, userID int64) ([]entities.ActivityRecord, error)
	TotalReviewed(ctx context.Context, userID int64) (int, error)
}

// Summary aggregates a user's learning state for the /progress command.
type Summary struct {
	WordsTotal    int // corpus size
	WordsSeen     int // words reviewed at least once
	WordsDue      int // words due today or overdue
	PhrasesTotal  int
	PhrasesSeen   int
	PhrasesDue    int
	TotalReviews  int // lifetime review count
	CurrentStreak int // consecutive practice days
}

// StatsService computes streaks and progress summaries.
type StatsService struct {
	progressRepo DueCounter
	activityRepo ActivityLog
	wordsTotal   int
	phrasesTotal int
}

// NewStatsService creates a stats service. Corpus sizes are fixed at
// startup because the corpora are immutable.
func NewStatsService(progressRepo DueCounter, activityRepo ActivityLog, wordsTotal, phrasesTotal int) *StatsService {
	return &StatsService{
		progressRepo: progressRepo,
		activityRepo: activityRepo,
		wordsTotal:   wordsTotal,
		phrasesTotal: phrasesTotal,
	}
}

// Streak returns the user's current consecutive-day practice streak.
func (s *StatsService) Streak(ctx context.Context, userID int64) (int, error) {
	records, err := s.activityRepo.ListByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("streak: %w", err)
	}

	return streak.Current(records, time.Now()), nil
}

// Summary builds the full progress summary of a user.
func (s *StatsService) Summary(ctx context.Context, userID int64) (*Summary, error) {
	cutoff := endOfToday(time.Now())

	summary := &Summary{
		WordsTotal:   s.wordsTotal,
		PhrasesTotal: s.phrasesTotal,
	}

	var err error
	if summary.WordsSeen, err = s.progressRepo.CountReviewed(ctx, userID, entities.CorpusWords); err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	if summary.WordsDue, err = s.progressRepo.CountDue(ctx, userID, entities.CorpusWords, cutoff); err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	if summary.PhrasesSeen, err = s.progressRepo.CountReviewed(ctx, userID, entities.CorpusPhrases); err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	if summary.PhrasesDue, err = s.progressRepo.CountDue(ctx, userID, entities.CorpusPhrases, cutoff); err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	if summary.TotalReviews, err = s.activityRepo.TotalReviewed(ctx, userID); err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	if summary.CurrentStreak, err = s.Streak(ctx, userID); err != nil {
		return nil, err
	}

	return summary, nil
}

// endOfToday returns midnight UTC of the next day: an item due any time
// today counts as due, matching the session composer's cutoff.
func endOfToday(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}
