// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	msgWelcome = "Привет! Я помогу выучить казахские слова и фразы.\n\n" +
		"/practice — тренировка слов (новые + повторение)\n" +
		"/review — только повторение слов\n" +
		"/phrases — тренировка фраз\n" +
		"/streak — ваша серия дней\n" +
		"/progress — прогресс\n" +
		"/settings — настройки напоминаний\n" +
		"/help — помощь"

	msgHelp = "Как это работает:\n\n" +
		"Я показываю карточку — слово или фразу. Вспомните перевод, " +
		"нажмите «Показать ответ» и честно оцените себя:\n" +
		"❌ — не вспомнил\n" +
		"🤔 — вспомнил с трудом\n" +
		"✅ — вспомнил сразу\n\n" +
		"От оценки зависит, когда карточка вернётся: интервалы растут " +
		"по методу интервального повторения.\n\n" +
		"/practice — слова, /phrases — фразы, /review — только повторение."

	msgUnknownCommand = "Неизвестная команда. Посмотрите /help."

	msgNoCards   = "Пока нечего повторять и новых карточек нет.\nЗагляните позже."
	msgNoReviews = "Повторений на сегодня нет — все карточки подождут.\nПопробуйте /practice, чтобы взять новые слова."

	msgSessionDone      = "Сессия завершена! 🎉"
	msgNoActiveSession  = "Нет активной сессии. Начните с /practice или /phrases."
	msgSessionAbandoned = "Сессия прервана. Прогресс по оценённым карточкам сохранён."
	msgInternalError    = "Что-то пошло не так. Попробуйте позже."
)

// newPlainMessage creates a plain message without special parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// revealKeyboard is shown with the front side of a card.
func revealKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Показать ответ", buildRevealCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏹ Прервать", buildStopCallback()),
		),
	)
}

// gradeKeyboard is shown with the revealed side of a card.
func gradeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌", buildGradeCallback(1)),
			tgbotapi.NewInlineKeyboardButtonData("🤔", buildGradeCallback(3)),
			tgbotapi.NewInlineKeyboardButtonData("✅", buildGradeCallback(5)),
		),
	)
}

// settingsKeyboard renders the reminder controls.
func settingsKeyboard(remindersEnabled bool) tgbotapi.InlineKeyboardMarkup {
	toggleLabel := "🔔 Включить напоминания"
	if remindersEnabled {
		toggleLabel = "🔕 Выключить напоминания"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(toggleLabel, buildRemindersCallback(!remindersEnabled)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Утром (9:00)", buildReminderHourCallback(9)),
			tgbotapi.NewInlineKeyboardButtonData("Днём (13:00)", buildReminderHourCallback(13)),
			tgbotapi.NewInlineKeyboardButtonData("Вечером (19:00)", buildReminderHourCallback(19)),
		),
	)
}

func formatReminder(dueWords, duePhrases int) string {
	switch {
	case duePhrases == 0:
		return fmt.Sprintf("Пора повторить: %d слов(а) ждут вас. /review", dueWords)
	case dueWords == 0:
		return fmt.Sprintf("Пора повторить: %d фраз(ы) ждут вас. /phrases", duePhrases)
	default:
		return fmt.Sprintf("Пора повторить: %d слов(а) и %d фраз(ы). /review", dueWords, duePhrases)
	}
}

func formatStreak(days int) string {
	if days == 0 {
		return "Серия пока не началась. Пройдите хотя бы одну карточку сегодня — и счёт пойдёт! /practice"
	}
	return fmt.Sprintf("🔥 Ваша серия: %d дн. подряд.\nНе прерывайте её сегодня!", days)
}
