package entities

// Phrase represents a set expression from the phrases corpus.
// Unlike words, phrases carry no usage scenarios: the phrase itself
// is already a complete utterance.
type Phrase struct {
	ID          string `json:"id"`          // stable unique key within the corpus
	Text        string `json:"text"`        // the phrase in Kazakh
	Translation string `json:"translation"` // Russian translation
	Note        string `json:"note"`        // optional usage note
}
