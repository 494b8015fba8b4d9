package entities

import "time"

// ActivityRecord is one day of practice activity. The activity log is
// sparse: days without any reviews have no record at all.
type ActivityRecord struct {
	UserID        int64
	Day           time.Time // calendar day, time-of-day is midnight UTC
	WordsReviewed int       // number of items reviewed that day
}
