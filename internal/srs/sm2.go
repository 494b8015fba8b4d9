// Package srs implements the SM-2 spaced repetition scheduler.
package srs

import (
	"math"
	"time"
)

// Quality grades a single recall attempt.
type Quality int

const (
	// NoRecall means the user could not recall the item at all.
	NoRecall Quality = 1
	// PartialRecall means the item was recalled with noticeable effort.
	PartialRecall Quality = 3
	// FullRecall means the item was recalled instantly and correctly.
	FullRecall Quality = 5
)

const (
	passThreshold     = 3
	minEaseFactor     = 1.3
	initialEaseFactor = 2.5
)

// State is the review schedule of a single item for a single user.
type State struct {
	EaseFactor   float64   // growth multiplier for the interval, never below 1.3
	IntervalDays int       // days until the next review
	Repetitions  int       // consecutive passing reviews
	NextReviewAt time.Time // when the item is due again
}

// NewState returns the schedule of a never-reviewed item.
func NewState() State {
	return State{EaseFactor: initialEaseFactor}
}

// Schedule applies one review to the current schedule and returns the
// updated one. The function is pure and total: it never fails, and
// out-of-domain inputs are clamped to the nearest valid value.
//
// A failing review (quality below the pass threshold) resets the
// repetition count and schedules the item for tomorrow. A passing review
// grows the interval: 1 day after the first pass, 6 days after the
// second, then the previous interval multiplied by the pre-update ease
// factor. The ease factor itself is adjusted on every review and clamped
// at 1.3 from below.
func Schedule(quality Quality, cur State, now time.Time) State {
	cur = sanitize(cur)

	var next State
	if quality < passThreshold {
		next.Repetitions = 0
		next.IntervalDays = 1
	} else {
		next.Repetitions = cur.Repetitions + 1

		switch next.Repetitions {
		case 1:
			next.IntervalDays = 1
		case 2:
			next.IntervalDays = 6
		default:
			next.IntervalDays = int(math.Round(float64(cur.IntervalDays) * cur.EaseFactor))
		}
	}

	// EF' = EF + (0.1 - (5-q) * (0.08 + (5-q)*0.02)), floor at 1.3.
	// Applied on both passing and failing reviews.
	q := float64(quality)
	ef := cur.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ef < minEaseFactor {
		ef = minEaseFactor
	}
	next.EaseFactor = ef

	// An item is always rescheduled strictly into the future.
	if next.IntervalDays < 1 {
		next.IntervalDays = 1
	}
	next.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)

	return next
}

// sanitize clamps out-of-domain schedule fields so that Schedule stays
// total even on corrupted input. An ease factor below 1.3 is kept as is:
// the output is clamped anyway.
func sanitize(s State) State {
	if math.IsNaN(s.EaseFactor) || math.IsInf(s.EaseFactor, 0) {
		s.EaseFactor = initialEaseFactor
	}
	if s.Repetitions < 0 {
		s.Repetitions = 0
	}
	if s.IntervalDays < 0 {
		s.IntervalDays = 0
	}
	return s
}
