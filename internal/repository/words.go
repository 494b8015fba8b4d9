package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
)

var ErrWordNotFound = errors.New("word not found")

// WordRepository provides read-only access to the vocabulary corpus.
// The corpus is loaded once from a JSON file and never mutated.
type WordRepository struct {
	words  []*entities.Word
	byID   map[string]*entities.Word
	idList []string
}

// NewWordRepository loads the vocabulary corpus from the given JSON file.
func NewWordRepository(path string) (*WordRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read words file: %w", err)
	}

	var words []*entities.Word
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parse words file: %w", err)
	}

	r := &WordRepository{
		words: words,
		byID:  make(map[string]*entities.Word, len(words)),
	}
	for _, w := range words {
		if _, dup := r.byID[w.ID]; dup {
			return nil, fmt.Errorf("duplicate word id %q in corpus", w.ID)
		}
		r.byID[w.ID] = w
		r.idList = append(r.idList, w.ID)
	}

	return r, nil
}

// GetByID retrieves a word by its corpus id.
func (r *WordRepository) GetByID(id string) (*entities.Word, error) {
	w, ok := r.byID[id]
	if !ok {
		return nil, ErrWordNotFound
	}
	return w, nil
}

// GetAll retrieves the whole corpus.
func (r *WordRepository) GetAll() []*entities.Word {
	return r.words
}

// Count returns the corpus size.
func (r *WordRepository) Count() int {
	return len(r.words)
}

// IDs returns all word ids in corpus order.
func (r *WordRepository) IDs() []string {
	return r.idList
}

// ScenarioCount returns how many usage scenarios a word has.
func (r *WordRepository) ScenarioCount(id string) int {
	w, ok := r.byID[id]
	if !ok {
		return 0
	}
	return len(w.Scenarios)
}
