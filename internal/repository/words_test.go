package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpusFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewWordRepository(t *testing.T) {
	path := writeCorpusFile(t, "words.json", `[
		{
			"id": "kitap",
			"headword": "кітап",
			"translation": "книга",
			"scenarios": [
				{"text": "Мен кітап оқимын.", "translation": "Я читаю книгу."},
				{"text": "Кітап үстелде жатыр.", "translation": "Книга лежит на столе."}
			]
		},
		{"id": "su", "headword": "су", "translation": "вода", "scenarios": []}
	]`)

	repo, err := NewWordRepository(path)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.Count())
	assert.Equal(t, []string{"kitap", "su"}, repo.IDs())
	assert.Equal(t, 2, repo.ScenarioCount("kitap"))
	assert.Equal(t, 0, repo.ScenarioCount("su"))
	assert.Equal(t, 0, repo.ScenarioCount("missing"))

	word, err := repo.GetByID("kitap")
	require.NoError(t, err)
	assert.Equal(t, "кітап", word.Headword)
	assert.Equal(t, "книга", word.Translation)

	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, ErrWordNotFound)
}

func TestNewWordRepository_DuplicateID(t *testing.T) {
	path := writeCorpusFile(t, "words.json", `[
		{"id": "kitap", "headword": "кітап", "translation": "книга"},
		{"id": "kitap", "headword": "кітап", "translation": "книга"}
	]`)

	_, err := NewWordRepository(path)
	assert.Error(t, err)
}

func TestNewWordRepository_MissingFile(t *testing.T) {
	_, err := NewWordRepository(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestNewPhraseRepository(t *testing.T) {
	path := writeCorpusFile(t, "phrases.json", `[
		{"id": "rakhmet", "text": "Рақмет!", "translation": "Спасибо!"},
		{"id": "kalaysyz", "text": "Қалайсыз?", "translation": "Как дела?", "note": "Вежливая форма."}
	]`)

	repo, err := NewPhraseRepository(path)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.Count())
	assert.Equal(t, []string{"rakhmet", "kalaysyz"}, repo.IDs())

	// Phrases never carry scenario variants.
	assert.Equal(t, 0, repo.ScenarioCount("rakhmet"))

	phrase, err := repo.GetByID("kalaysyz")
	require.NoError(t, err)
	assert.Equal(t, "Вежливая форма.", phrase.Note)

	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, ErrPhraseNotFound)
}
