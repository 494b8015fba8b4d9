package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
	"github.com/adilzhn/leksika-bot/internal/repository"
	"github.com/adilzhn/leksika-bot/internal/session"
	"github.com/adilzhn/leksika-bot/internal/srs"
	"github.com/adilzhn/leksika-bot/internal/storage"
)

type fakeCorpus struct {
	ids       []string
	scenarios map[string]int
}

func (c *fakeCorpus) IDs() []string               { return c.ids }
func (c *fakeCorpus) ScenarioCount(id string) int { return c.scenarios[id] }

type fakeProgressRepo struct {
	records map[string]*entities.Progress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: map[string]*entities.Progress{}}
}

func progressKey(userID int64, corpus entities.Corpus, itemID string) string {
	return fmt.Sprintf("%d/%s/%s", userID, corpus, itemID)
}

func (f *fakeProgressRepo) Get(_ context.Context, userID int64, corpus entities.Corpus, itemID string) (*entities.Progress, error) {
	p, ok := f.records[progressKey(userID, corpus, itemID)]
	if !ok {
		return nil, repository.ErrProgressNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProgressRepo) Upsert(_ context.Context, p *entities.Progress) error {
	cp := *p
	f.records[progressKey(p.UserID, p.Corpus, p.ItemID)] = &cp
	return nil
}

func (f *fakeProgressRepo) Snapshot(_ context.Context, userID int64, corpus entities.Corpus) (map[string]srs.State, error) {
	snapshot := map[string]srs.State{}
	for _, p := range f.records {
		if p.UserID != userID || p.Corpus != corpus {
			continue
		}
		snapshot[p.ItemID] = srs.State{
			EaseFactor:   p.EaseFactor,
			IntervalDays: p.IntervalDays,
			Repetitions:  p.Repetitions,
			NextReviewAt: p.NextReviewAt,
		}
	}
	return snapshot, nil
}

type fakeActivityRepo struct {
	total int
}

func (f *fakeActivityRepo) IncrementDay(_ context.Context, _ int64, _ time.Time, reviewed int) error {
	f.total += reviewed
	return nil
}

func newPracticeService(words []string) (*PracticeService, *fakeProgressRepo, *fakeActivityRepo) {
	progress := newFakeProgressRepo()
	activity := &fakeActivityRepo{}
	svc := NewPracticeService(
		&fakeCorpus{ids: words, scenarios: map[string]int{}},
		&fakeCorpus{},
		progress,
		activity,
		storage.NewSessionStorage(),
		zap.NewNop(),
	)
	return svc, progress, activity
}

func TestPracticeService_FullSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, progress, activity := newPracticeService([]string{"a", "b", "c", "d", "e"})

	sess, err := svc.StartSession(ctx, 1, entities.CorpusWords, session.ModeMixed)
	require.NoError(t, err)
	require.Equal(t, 4, sess.Size(), "all-new pool tops up to the configured minimum")

	var graded int
	for {
		_, done, err := svc.SubmitReview(ctx, 1, srs.FullRecall)
		require.NoError(t, err)
		graded++
		if done {
			break
		}
		require.Less(t, graded, 100, "session never completed")
	}

	assert.Equal(t, sess.Size(), graded)
	assert.Equal(t, sess.Size(), activity.total, "one activity tick per graded card")

	_, ok := svc.ActiveSession(1)
	assert.False(t, ok, "completed session must be dropped")

	// Every graded card got a first-pass schedule.
	assert.Len(t, progress.records, sess.Size())
	for _, p := range progress.records {
		assert.Equal(t, 1, p.Repetitions)
		assert.Equal(t, 1, p.IntervalDays)
		assert.Equal(t, 1, p.ReviewCount)
		assert.Equal(t, 1, p.CorrectCount)
		assert.NotNil(t, p.LastReviewedAt)
	}
}

func TestPracticeService_FailedReviewResetsSchedule(t *testing.T) {
	ctx := context.Background()
	svc, progress, _ := newPracticeService([]string{"a"})

	seeded := entities.NewProgress(1, entities.CorpusWords, "a")
	seeded.EaseFactor = 2.8
	seeded.IntervalDays = 30
	seeded.Repetitions = 5
	seeded.CorrectCount = 5
	seeded.ReviewCount = 5
	seeded.NextReviewAt = time.Now().AddDate(0, 0, -1)
	require.NoError(t, progress.Upsert(ctx, seeded))

	_, err := svc.StartSession(ctx, 1, entities.CorpusWords, session.ModeReviewOnly)
	require.NoError(t, err)

	card, done, err := svc.SubmitReview(ctx, 1, srs.NoRecall)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "a", card.ItemID)
	assert.True(t, card.IsReview)

	p, err := progress.Get(ctx, 1, entities.CorpusWords, "a")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Repetitions)
	assert.Equal(t, 1, p.IntervalDays)
	assert.Equal(t, 6, p.ReviewCount)
	assert.Equal(t, 5, p.CorrectCount, "failed review must not count as correct")
}

func TestPracticeService_StartSessionEmptyCorpus(t *testing.T) {
	svc, _, _ := newPracticeService(nil)

	_, err := svc.StartSession(context.Background(), 1, entities.CorpusWords, session.ModeMixed)

	assert.ErrorIs(t, err, ErrNoCardsAvailable)
}

func TestPracticeService_SubmitWithoutSession(t *testing.T) {
	svc, _, _ := newPracticeService([]string{"a"})

	_, _, err := svc.SubmitReview(context.Background(), 1, srs.FullRecall)

	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestPracticeService_StartReplacesUnfinishedSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newPracticeService([]string{"a", "b", "c", "d", "e", "f"})

	first, err := svc.StartSession(ctx, 1, entities.CorpusWords, session.ModeMixed)
	require.NoError(t, err)

	second, err := svc.StartSession(ctx, 1, entities.CorpusWords, session.ModeMixed)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	active, ok := svc.ActiveSession(1)
	require.True(t, ok)
	assert.Equal(t, second.ID, active.Sess.ID)
}

func TestPracticeService_UnknownCorpus(t *testing.T) {
	svc, _, _ := newPracticeService([]string{"a"})

	_, err := svc.StartSession(context.Background(), 1, entities.Corpus("grammar"), session.ModeMixed)

	assert.Error(t, err)
}
