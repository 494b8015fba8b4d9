// Package streak computes consecutive-day engagement streaks over the
// sparse daily activity log.
package streak

import (
	"time"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
)

// Current returns the number of consecutive calendar days with at least
// one review, counting back from today.
//
// If today has no activity yet, the streak anchors on yesterday instead:
// a streak must not visually reset at midnight before the user has had a
// chance to practice that day. If neither today nor yesterday is active,
// the streak is 0. Calendar days are compared in UTC.
func Current(records []entities.ActivityRecord, today time.Time) int {
	active := make(map[time.Time]struct{}, len(records))
	for _, r := range records {
		if r.WordsReviewed > 0 {
			active[dateOnly(r.Day)] = struct{}{}
		}
	}
	if len(active) == 0 {
		return 0
	}

	day := dateOnly(today)
	if _, ok := active[day]; !ok {
		// Grace period: yesterday still counts as the anchor.
		day = day.AddDate(0, 0, -1)
		if _, ok := active[day]; !ok {
			return 0
		}
	}

	count := 0
	for {
		if _, ok := active[day]; !ok {
			break
		}
		count++
		day = day.AddDate(0, 0, -1)
	}

	return count
}

// dateOnly strips the time of day, normalizing to midnight UTC.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
