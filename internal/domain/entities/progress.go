package entities

import "time"

// Corpus identifies which item collection a progress record belongs to.
type Corpus string

const (
	CorpusWords   Corpus = "words"
	CorpusPhrases Corpus = "phrases"
)

// Progress stores the review schedule of a user for a single item.
// A record is created the first time an item is reviewed; an item with
// no record has never been seen and belongs to the "new" pool.
type Progress struct {
	UserID int64
	Corpus Corpus
	ItemID string

	// Schedule fields, owned by the SM-2 scheduler.
	EaseFactor   float64   // ease factor, never below 1.3
	IntervalDays int       // days until the next review
	Repetitions  int       // consecutive successful reviews
	NextReviewAt time.Time // when the item is due again

	// Bookkeeping.
	ReviewCount    int        // total reviews, including failed ones
	CorrectCount   int        // total passing reviews
	LastReviewedAt *time.Time // last review timestamp, nil before first review
}

// NewProgress creates a progress record with initial schedule values
// for an item that is about to be reviewed for the first time.
func NewProgress(userID int64, corpus Corpus, itemID string) *Progress {
	return &Progress{
		UserID:       userID,
		Corpus:       corpus,
		ItemID:       itemID,
		EaseFactor:   2.5,
		IntervalDays: 0,
		Repetitions:  0,
	}
}
