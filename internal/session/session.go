// Package session composes bounded, randomized practice sessions from
// the due-for-review and never-seen item pools.
package session

import "time"

// Card is one item scheduled into a practice session. Cards are
// ephemeral: they live only for the duration of the sitting and are
// never persisted.
type Card struct {
	ItemID        string
	IsReview      bool // true when drawn from the due pool
	ScenarioIndex int  // which usage scenario to display, 0 for corpora without scenarios
}

// Session is an ordered, shuffled sequence of cards plus a cursor.
// The cursor only moves forward; the session is complete once it has
// passed the last card.
type Session struct {
	ID           string
	Cards        []Card
	CurrentIndex int
	Mode         Mode
	StartedAt    time.Time
}

// Current returns the card under the cursor, or false when the session
// is complete.
func (s *Session) Current() (Card, bool) {
	if s.IsComplete() {
		return Card{}, false
	}
	return s.Cards[s.CurrentIndex], true
}

// Advance moves the cursor to the next card. Advancing a completed
// session is a no-op.
func (s *Session) Advance() {
	if s.IsComplete() {
		return
	}
	s.CurrentIndex++
}

// IsComplete reports whether every card has been shown.
func (s *Session) IsComplete() bool {
	return s.CurrentIndex >= len(s.Cards)
}

// Size returns the total number of cards in the session.
func (s *Session) Size() int {
	return len(s.Cards)
}
