package session

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/adilzhn/leksika-bot/internal/srs"
)

// Mode selects the composition policy for one sitting.
type Mode string

const (
	// ModeMixed interleaves due items with never-seen ones.
	ModeMixed Mode = "mixed"
	// ModeReviewOnly draws exclusively from the due pool.
	ModeReviewOnly Mode = "review_only"
)

// Corpus is a read-only view of an item collection. The composer never
// mutates the corpus; it only enumerates ids and asks how many usage
// scenarios an item has (0 for corpora without scenario variants).
type Corpus interface {
	IDs() []string
	ScenarioCount(id string) int
}

// Config holds the per-corpus sampling constants. The words and phrases
// corpora share one composer implementation and differ only here.
type Config struct {
	ReviewMin     int // lower bound of the mixed-mode review draw
	ReviewMax     int // upper bound of the mixed-mode review draw
	NewMin        int // lower bound of the mixed-mode new-item draw
	NewMax        int // upper bound of the mixed-mode new-item draw
	ReviewOnlyCap int // maximum cards in a review-only sitting
	MinSize       int // minimum mixed session size before pools exhaust
}

// WordsConfig are the sampling constants for the vocabulary corpus.
func WordsConfig() Config {
	return Config{
		ReviewMin:     2,
		ReviewMax:     4,
		NewMin:        2,
		NewMax:        3,
		ReviewOnlyCap: 10,
		MinSize:       4,
	}
}

// PhrasesConfig are the sampling constants for the phrases corpus.
func PhrasesConfig() Config {
	return Config{
		ReviewMin:     2,
		ReviewMax:     2,
		NewMin:        3,
		NewMax:        3,
		ReviewOnlyCap: 10,
		MinSize:       3,
	}
}

// Composer builds practice sessions over a single corpus.
type Composer struct {
	corpus Corpus
	cfg    Config
}

// NewComposer creates a composer for the given corpus and sampling
// configuration.
func NewComposer(corpus Corpus, cfg Config) *Composer {
	return &Composer{corpus: corpus, cfg: cfg}
}

// Compose builds one practice session from a point-in-time snapshot of
// schedule states, keyed by item id. Items present in the snapshot whose
// next review falls before the start of tomorrow form the due pool
// (due today or overdue); items absent from the snapshot form the new
// pool. Sampling is uniform without replacement, so an item id never
// appears twice in one session. If both pools are empty the session has
// zero cards and is immediately complete.
func (c *Composer) Compose(snapshot map[string]srs.State, mode Mode, now time.Time) *Session {
	due, fresh := c.classify(snapshot, now)

	var cards []Card
	switch mode {
	case ModeReviewOnly:
		for _, id := range sample(due, c.cfg.ReviewOnlyCap) {
			cards = append(cards, c.reviewCard(id, snapshot))
		}

	default: // ModeMixed
		cards = c.composeMixed(due, fresh, snapshot)
	}

	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &Session{
		ID:        uuid.NewString(),
		Cards:     cards,
		Mode:      mode,
		StartedAt: now,
	}
}

// composeMixed draws from both pools, then tops the session up to the
// configured minimum: additional new items first, then additional due
// items, until the minimum is met or both pools are exhausted. Cards
// already drawn are never removed.
func (c *Composer) composeMixed(due, fresh []string, snapshot map[string]srs.State) []Card {
	chosen := make(map[string]struct{})
	var cards []Card

	for _, id := range sample(due, randRange(c.cfg.ReviewMin, c.cfg.ReviewMax)) {
		cards = append(cards, c.reviewCard(id, snapshot))
		chosen[id] = struct{}{}
	}
	for _, id := range sample(fresh, randRange(c.cfg.NewMin, c.cfg.NewMax)) {
		cards = append(cards, c.newCard(id))
		chosen[id] = struct{}{}
	}

	if need := c.cfg.MinSize - len(cards); need > 0 {
		for _, id := range sampleExcluding(fresh, chosen, need) {
			cards = append(cards, c.newCard(id))
			chosen[id] = struct{}{}
			need--
		}
		for _, id := range sampleExcluding(due, chosen, need) {
			cards = append(cards, c.reviewCard(id, snapshot))
			chosen[id] = struct{}{}
		}
	}

	return cards
}

// classify splits the corpus into the due-for-review pool and the
// never-seen pool as of now. Items that have a schedule but are not yet
// due belong to neither.
func (c *Composer) classify(snapshot map[string]srs.State, now time.Time) (due, fresh []string) {
	cutoff := startOfNextDay(now)

	for _, id := range c.corpus.IDs() {
		st, ok := snapshot[id]
		if !ok {
			fresh = append(fresh, id)
			continue
		}
		if st.NextReviewAt.Before(cutoff) {
			due = append(due, id)
		}
	}

	return due, fresh
}

func (c *Composer) reviewCard(id string, snapshot map[string]srs.State) Card {
	card := Card{ItemID: id, IsReview: true}
	// Cycle the displayed scenario by repetition count so repeated
	// reviews show different phrasings.
	if n := c.corpus.ScenarioCount(id); n > 0 {
		card.ScenarioIndex = snapshot[id].Repetitions % n
	}
	return card
}

func (c *Composer) newCard(id string) Card {
	return Card{ItemID: id, IsReview: false}
}

// sample draws up to n items uniformly at random, without replacement.
func sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}

	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:n]
}

// sampleExcluding draws up to n items from the pool, skipping ids that
// are already part of the session.
func sampleExcluding(pool []string, exclude map[string]struct{}, n int) []string {
	remaining := make([]string, 0, len(pool))
	for _, id := range pool {
		if _, ok := exclude[id]; !ok {
			remaining = append(remaining, id)
		}
	}
	return sample(remaining, n)
}

// randRange returns a uniform random count in [lo, hi].
func randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rand.Intn(hi-lo+1)
}

// startOfNextDay returns midnight UTC of the day after t, so that
// "due today" stays due until the end of the calendar day.
func startOfNextDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}
