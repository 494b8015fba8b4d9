package telegram

import (
	"fmt"
	"html"
	"strings"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
	"github.com/adilzhn/leksika-bot/internal/service"
	"github.com/adilzhn/leksika-bot/internal/session"
	"github.com/adilzhn/leksika-bot/internal/storage"
)

// renderCardFront renders the question side of the current card: the
// item in Kazakh, without the translation.
func (h *Handler) renderCardFront(active *storage.ActiveSession) (string, error) {
	card, ok := active.Sess.Current()
	if !ok {
		return "", fmt.Errorf("session already complete")
	}

	var b strings.Builder
	b.WriteString(cardHeader(active, card))

	switch active.Corpus {
	case entities.CorpusWords:
		word, err := h.words.GetByID(card.ItemID)
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&b, "<b>%s</b>", html.EscapeString(word.Headword))
		if word.Transcription != "" {
			fmt.Fprintf(&b, " [%s]", html.EscapeString(word.Transcription))
		}
		if sc := scenarioFor(word, card); sc != nil {
			fmt.Fprintf(&b, "\n\n<i>%s</i>", html.EscapeString(sc.Text))
		}

	case entities.CorpusPhrases:
		phrase, err := h.phrases.GetByID(card.ItemID)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "<b>%s</b>", html.EscapeString(phrase.Text))
	}

	return b.String(), nil
}

// renderCardBack renders the answer side: front plus the translation.
func (h *Handler) renderCardBack(active *storage.ActiveSession) (string, error) {
	card, ok := active.Sess.Current()
	if !ok {
		return "", fmt.Errorf("session already complete")
	}

	var b strings.Builder
	b.WriteString(cardHeader(active, card))

	switch active.Corpus {
	case entities.CorpusWords:
		word, err := h.words.GetByID(card.ItemID)
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&b, "<b>%s</b>", html.EscapeString(word.Headword))
		if word.Transcription != "" {
			fmt.Fprintf(&b, " [%s]", html.EscapeString(word.Transcription))
		}
		fmt.Fprintf(&b, " — %s", html.EscapeString(word.Translation))
		if sc := scenarioFor(word, card); sc != nil {
			fmt.Fprintf(&b, "\n\n<i>%s</i>\n%s",
				html.EscapeString(sc.Text),
				html.EscapeString(sc.Translation),
			)
		}

	case entities.CorpusPhrases:
		phrase, err := h.phrases.GetByID(card.ItemID)
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&b, "<b>%s</b> — %s",
			html.EscapeString(phrase.Text),
			html.EscapeString(phrase.Translation),
		)
		if phrase.Note != "" {
			fmt.Fprintf(&b, "\n\n<i>%s</i>", html.EscapeString(phrase.Note))
		}
	}

	b.WriteString("\n\nНасколько хорошо вы вспомнили?")

	return b.String(), nil
}

// cardHeader shows the position within the session and whether this is
// a review or a new card.
func cardHeader(active *storage.ActiveSession, card session.Card) string {
	kind := "🆕 Новая карточка"
	if card.IsReview {
		kind = "🔁 Повторение"
	}

	return fmt.Sprintf("Карточка %d/%d · %s\n\n",
		active.Sess.CurrentIndex+1, active.Sess.Size(), kind)
}

// scenarioFor picks the usage scenario selected by the composer.
func scenarioFor(word *entities.Word, card session.Card) *entities.Scenario {
	if len(word.Scenarios) == 0 {
		return nil
	}
	idx := card.ScenarioIndex
	if idx < 0 || idx >= len(word.Scenarios) {
		idx = 0
	}
	return &word.Scenarios[idx]
}

func renderSummary(s *service.Summary) string {
	return fmt.Sprintf(
		"📊 <b>Ваш прогресс</b>\n\n"+
			"Слова: %d из %d изучено, %d к повторению\n"+
			"Фразы: %d из %d изучено, %d к повторению\n\n"+
			"Всего повторений: %d\n"+
			"🔥 Серия: %d дн.",
		s.WordsSeen, s.WordsTotal, s.WordsDue,
		s.PhrasesSeen, s.PhrasesTotal, s.PhrasesDue,
		s.TotalReviews,
		s.CurrentStreak,
	)
}

func renderSettings(settings *entities.UserSettings) string {
	state := "выключены"
	if settings.RemindersEnabled {
		state = fmt.Sprintf("включены, в %02d:00 UTC", settings.ReminderHourUTC)
	}

	return fmt.Sprintf("⚙️ <b>Настройки</b>\n\nНапоминания: %s", state)
}
