package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
)

var today = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func record(daysAgo, reviewed int) entities.ActivityRecord {
	return entities.ActivityRecord{
		Day:           today.AddDate(0, 0, -daysAgo),
		WordsReviewed: reviewed,
	}
}

func TestCurrent(t *testing.T) {
	tests := []struct {
		name    string
		records []entities.ActivityRecord
		want    int
	}{
		{
			name: "no activity at all",
			want: 0,
		},
		{
			name:    "three days including today",
			records: []entities.ActivityRecord{record(2, 5), record(1, 3), record(0, 8)},
			want:    3,
		},
		{
			name:    "today not practiced yet keeps the streak",
			records: []entities.ActivityRecord{record(2, 5), record(1, 3)},
			want:    2,
		},
		{
			name:    "gap before yesterday breaks the streak",
			records: []entities.ActivityRecord{record(3, 5)},
			want:    0,
		},
		{
			name:    "gap in the middle stops the walk-back",
			records: []entities.ActivityRecord{record(4, 2), record(3, 2), record(1, 2), record(0, 2)},
			want:    2,
		},
		{
			name:    "single review today",
			records: []entities.ActivityRecord{record(0, 1)},
			want:    1,
		},
		{
			name:    "zero-count records are not active days",
			records: []entities.ActivityRecord{record(1, 0), record(0, 4)},
			want:    1,
		},
		{
			name: "time of day is ignored",
			records: []entities.ActivityRecord{
				{Day: today.AddDate(0, 0, -1).Add(13 * time.Hour), WordsReviewed: 2},
				{Day: today.Add(-9 * time.Hour), WordsReviewed: 2},
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Current(tt.records, today))
		})
	}
}

func TestCurrent_LongStreak(t *testing.T) {
	var records []entities.ActivityRecord
	for i := 0; i < 30; i++ {
		records = append(records, record(i, 1))
	}

	assert.Equal(t, 30, Current(records, today))
}
