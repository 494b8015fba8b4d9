package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
)

var ErrPhraseNotFound = errors.New("phrase not found")

// PhraseRepository provides read-only access to the phrases corpus.
type PhraseRepository struct {
	phrases []*entities.Phrase
	byID    map[string]*entities.Phrase
	idList  []string
}

// NewPhraseRepository loads the phrases corpus from the given JSON file.
func NewPhraseRepository(path string) (*PhraseRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read phrases file: %w", err)
	}

	var phrases []*entities.Phrase
	if err := json.Unmarshal(data, &phrases); err != nil {
		return nil, fmt.Errorf("parse phrases file: %w", err)
	}

	r := &PhraseRepository{
		phrases: phrases,
		byID:    make(map[string]*entities.Phrase, len(phrases)),
	}
	for _, p := range phrases {
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate phrase id %q in corpus", p.ID)
		}
		r.byID[p.ID] = p
		r.idList = append(r.idList, p.ID)
	}

	return r, nil
}

// GetByID retrieves a phrase by its corpus id.
func (r *PhraseRepository) GetByID(id string) (*entities.Phrase, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrPhraseNotFound
	}
	return p, nil
}

// GetAll retrieves the whole corpus.
func (r *PhraseRepository) GetAll() []*entities.Phrase {
	return r.phrases
}

// Count returns the corpus size.
func (r *PhraseRepository) Count() int {
	return len(r.phrases)
}

// IDs returns all phrase ids in corpus order.
func (r *PhraseRepository) IDs() []string {
	return r.idList
}

// ScenarioCount always returns 0: phrases carry no scenario variants.
func (r *PhraseRepository) ScenarioCount(string) int {
	return 0
}
