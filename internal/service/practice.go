package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
	"github.com/adilzhn/leksika-bot/internal/repository"
	"github.com/adilzhn/leksika-bot/internal/session"
	"github.com/adilzhn/leksika-bot/internal/srs"
	"github.com/adilzhn/leksika-bot/internal/storage"
)

var (
	ErrNoCardsAvailable = errors.New("no cards available")
	ErrNoActiveSession  = errors.New("no active session")
)

type ProgressRepo interface {
	Get(ctx context.Context, userID int64, corpus entities.Corpus, itemID string) (*entities.Progress, error)
	Upsert(ctx context.Context, p *entities.Progress) error
	Snapshot(ctx context.Context, userID int64, corpus entities.Corpus) (map[string]srs.State, error)
}

type ActivityRepo interface {
	IncrementDay(ctx context.Context, userID int64, day time.Time, reviewed int) error
}

// PracticeService composes practice sessions and applies review results.
// It is the single writer of progress records: after every graded card it
// runs the SM-2 scheduler and persists the returned schedule.
type PracticeService struct {
	composers    map[entities.Corpus]*session.Composer
	progressRepo ProgressRepo
	activityRepo ActivityRepo
	sessions     *storage.SessionStorage
	logger       *zap.Logger
}

// NewPracticeService creates a practice service over the two corpora.
func NewPracticeService(
	words session.Corpus,
	phrases session.Corpus,
	progressRepo ProgressRepo,
	activityRepo ActivityRepo,
	sessions *storage.SessionStorage,
	logger *zap.Logger,
) *PracticeService {
	return &PracticeService{
		composers: map[entities.Corpus]*session.Composer{
			entities.CorpusWords:   session.NewComposer(words, session.WordsConfig()),
			entities.CorpusPhrases: session.NewComposer(phrases, session.PhrasesConfig()),
		},
		progressRepo: progressRepo,
		activityRepo: activityRepo,
		sessions:     sessions,
		logger:       logger,
	}
}

// StartSession composes a fresh session for the user over one corpus and
// makes it the user's active session, replacing any unfinished one.
// Returns ErrNoCardsAvailable when both pools are empty.
func (s *PracticeService) StartSession(
	ctx context.Context, userID int64, corpus entities.Corpus, mode session.Mode,
) (*session.Session, error) {
	composer, ok := s.composers[corpus]
	if !ok {
		return nil, fmt.Errorf("unknown corpus: %s", corpus)
	}

	snapshot, err := s.progressRepo.Snapshot(ctx, userID, corpus)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	sess := composer.Compose(snapshot, mode, time.Now())
	if sess.Size() == 0 {
		return nil, ErrNoCardsAvailable
	}

	s.sessions.Store(userID, &storage.ActiveSession{Corpus: corpus, Sess: sess})

	s.logger.Info("session started",
		zap.Int64("user_id", userID),
		zap.String("corpus", string(corpus)),
		zap.String("mode", string(mode)),
		zap.Int("cards", sess.Size()),
	)

	return sess, nil
}

// ActiveSession returns the user's current session, if any.
func (s *PracticeService) ActiveSession(userID int64) (*storage.ActiveSession, bool) {
	return s.sessions.Get(userID)
}

// AbandonSession drops the user's active session without grading the
// remaining cards. Progress already persisted for graded cards stays.
func (s *PracticeService) AbandonSession(userID int64) {
	s.sessions.Delete(userID)
}

// SubmitReview grades the card under the cursor of the user's active
// session, persists the updated schedule and the daily activity counter,
// and advances the session. It returns the graded card and whether the
// session is complete after advancing.
func (s *PracticeService) SubmitReview(
	ctx context.Context, userID int64, quality srs.Quality,
) (session.Card, bool, error) {
	active, ok := s.sessions.Get(userID)
	if !ok {
		return session.Card{}, false, ErrNoActiveSession
	}

	card, ok := active.Sess.Current()
	if !ok {
		// The cursor already passed the last card.
		s.sessions.Delete(userID)
		return session.Card{}, true, ErrNoActiveSession
	}

	now := time.Now()

	p, err := s.progressRepo.Get(ctx, userID, active.Corpus, card.ItemID)
	if err != nil && !errors.Is(err, repository.ErrProgressNotFound) {
		return session.Card{}, false, fmt.Errorf("submit review: %w", err)
	}
	if p == nil {
		p = entities.NewProgress(userID, active.Corpus, card.ItemID)
	}

	st := srs.Schedule(quality, srs.State{
		EaseFactor:   p.EaseFactor,
		IntervalDays: p.IntervalDays,
		Repetitions:  p.Repetitions,
		NextReviewAt: p.NextReviewAt,
	}, now)

	p.EaseFactor = st.EaseFactor
	p.IntervalDays = st.IntervalDays
	p.Repetitions = st.Repetitions
	p.NextReviewAt = st.NextReviewAt
	p.ReviewCount++
	if quality != srs.NoRecall {
		p.CorrectCount++
	}
	p.LastReviewedAt = &now

	if err := s.progressRepo.Upsert(ctx, p); err != nil {
		return session.Card{}, false, fmt.Errorf("submit review: %w", err)
	}

	if err := s.activityRepo.IncrementDay(ctx, userID, now, 1); err != nil {
		// The review itself is saved; a lost activity tick only affects
		// the streak display.
		s.logger.Warn("failed to record activity",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	active.Sess.Advance()
	done := active.Sess.IsComplete()
	if done {
		s.sessions.Delete(userID)
		s.logger.Info("session completed",
			zap.Int64("user_id", userID),
			zap.String("corpus", string(active.Corpus)),
			zap.Int("cards", active.Sess.Size()),
		)
	}

	return card, done, nil
}
