// Package entities contains domain entities used across the application.
package entities

// Scenario is one example usage of a word. Repeated reviews of the same
// word cycle through its scenarios so the learner sees different phrasings.
type Scenario struct {
	Text        string `json:"text"`        // example sentence in Kazakh
	Translation string `json:"translation"` // Russian translation of the sentence
}

// Word represents a single vocabulary item from the words corpus.
type Word struct {
	ID            string     `json:"id"`            // stable unique key within the corpus
	Headword      string     `json:"headword"`      // the Kazakh word
	Transcription string     `json:"transcription"` // pronunciation hint
	Translation   string     `json:"translation"`   // Russian translation
	Scenarios     []Scenario `json:"scenarios"`     // example usages, at least one per word
}
