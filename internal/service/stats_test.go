package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
)

type fakeDueCounter struct {
	due      map[entities.Corpus]int
	reviewed map[entities.Corpus]int
}

func (f *fakeDueCounter) CountDue(_ context.Context, _ int64, corpus entities.Corpus, _ time.Time) (int, error) {
	return f.due[corpus], nil
}

func (f *fakeDueCounter) CountReviewed(_ context.Context, _ int64, corpus entities.Corpus) (int, error) {
	return f.reviewed[corpus], nil
}

type fakeActivityLog struct {
	records []entities.ActivityRecord
	total   int
}

func (f *fakeActivityLog) ListByUserID(_ context.Context, _ int64) ([]entities.ActivityRecord, error) {
	return f.records, nil
}

func (f *fakeActivityLog) TotalReviewed(_ context.Context, _ int64) (int, error) {
	return f.total, nil
}

func TestStatsService_Summary(t *testing.T) {
	now := time.Now()
	counter := &fakeDueCounter{
		due:      map[entities.Corpus]int{entities.CorpusWords: 3, entities.CorpusPhrases: 1},
		reviewed: map[entities.Corpus]int{entities.CorpusWords: 20, entities.CorpusPhrases: 5},
	}
	log := &fakeActivityLog{
		records: []entities.ActivityRecord{
			{UserID: 1, Day: now.AddDate(0, 0, -1), WordsReviewed: 4},
			{UserID: 1, Day: now, WordsReviewed: 6},
		},
		total: 123,
	}

	svc := NewStatsService(counter, log, 500, 80)

	summary, err := svc.Summary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 500, summary.WordsTotal)
	assert.Equal(t, 20, summary.WordsSeen)
	assert.Equal(t, 3, summary.WordsDue)
	assert.Equal(t, 80, summary.PhrasesTotal)
	assert.Equal(t, 5, summary.PhrasesSeen)
	assert.Equal(t, 1, summary.PhrasesDue)
	assert.Equal(t, 123, summary.TotalReviews)
	assert.Equal(t, 2, summary.CurrentStreak)
}

func TestStatsService_StreakWithoutActivity(t *testing.T) {
	svc := NewStatsService(&fakeDueCounter{}, &fakeActivityLog{}, 10, 10)

	days, err := svc.Streak(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, days)
}
