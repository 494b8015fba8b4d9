package telegram

import (
	"context"
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/adilzhn/leksika-bot/internal/service"
	"github.com/adilzhn/leksika-bot/internal/srs"
)

func (h *Handler) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	// Stop the loading spinner on the pressed button.
	if _, err := h.bot.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		h.logger.Debug("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil {
		return
	}

	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID
	userID := query.From.ID
	data := decodeCallback(query.Data)

	switch data.Action {
	case actionPractice:
		h.handlePracticeCallback(ctx, chatID, messageID, userID, data)
	case actionSettings:
		h.handleSettingsCallback(ctx, chatID, messageID, userID, data)
	}
}

func (h *Handler) handlePracticeCallback(
	ctx context.Context, chatID int64, messageID int, userID int64, data callbackData,
) {
	if len(data.Params) == 0 {
		return
	}

	switch data.Params[0] {
	case practiceReveal:
		h.revealCurrentCard(chatID, messageID, userID)

	case practiceGrade:
		if len(data.Params) < 2 {
			return
		}
		h.gradeCurrentCard(ctx, chatID, messageID, userID, data.Params[1])

	case practiceStop:
		h.practiceService.AbandonSession(userID)
		h.send(tgbotapi.NewEditMessageText(chatID, messageID, msgSessionAbandoned))
	}
}

// revealCurrentCard re-renders the current card with its answer and the
// self-grading buttons.
func (h *Handler) revealCurrentCard(chatID int64, messageID int, userID int64) {
	active, ok := h.practiceService.ActiveSession(userID)
	if !ok {
		h.send(newPlainMessage(chatID, msgNoActiveSession))
		return
	}

	text, err := h.renderCardBack(active)
	if err != nil {
		h.logger.Error("failed to render card",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}

	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	keyboard := gradeKeyboard()
	edit.ReplyMarkup = &keyboard
	h.send(edit)
}

// gradeCurrentCard applies the user's self-assessment to the current
// card and moves the session forward.
func (h *Handler) gradeCurrentCard(
	ctx context.Context, chatID int64, messageID int, userID int64, rawQuality string,
) {
	quality, err := parseQuality(rawQuality)
	if err != nil {
		h.logger.Warn("invalid quality in callback",
			zap.Int64("user_id", userID),
			zap.String("quality", rawQuality),
		)
		return
	}

	_, done, err := h.practiceService.SubmitReview(ctx, userID, quality)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			h.send(tgbotapi.NewEditMessageText(chatID, messageID, msgNoActiveSession))
			return
		}

		h.logger.Error("failed to submit review",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}

	if done {
		text := msgSessionDone
		if days, err := h.statsService.Streak(ctx, userID); err == nil {
			text += "\n\n" + formatStreak(days)
		}
		h.send(tgbotapi.NewEditMessageText(chatID, messageID, text))
		return
	}

	h.removeKeyboard(chatID, messageID)
	h.showCurrentCard(chatID, userID)
}

func (h *Handler) handleSettingsCallback(
	ctx context.Context, chatID int64, messageID int, userID int64, data callbackData,
) {
	if len(data.Params) < 2 {
		return
	}

	var err error
	switch data.Params[0] {
	case settingsReminders:
		err = h.settingsService.SetRemindersEnabled(ctx, userID, data.Params[1] == "true")

	case settingsHour:
		var hour int
		if hour, err = strconv.Atoi(data.Params[1]); err == nil {
			err = h.settingsService.SetReminderHour(ctx, userID, hour)
		}

	default:
		return
	}

	if err != nil {
		h.logger.Error("failed to update settings",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}

	settings, err := h.settingsService.GetOrCreate(ctx, userID)
	if err != nil {
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}

	edit := tgbotapi.NewEditMessageText(chatID, messageID, renderSettings(settings))
	edit.ParseMode = tgbotapi.ModeHTML
	keyboard := settingsKeyboard(settings.RemindersEnabled)
	edit.ReplyMarkup = &keyboard
	h.send(edit)
}

// showCurrentCard sends the front side of the current card as a new message.
func (h *Handler) showCurrentCard(chatID, userID int64) {
	active, ok := h.practiceService.ActiveSession(userID)
	if !ok {
		h.send(newPlainMessage(chatID, msgNoActiveSession))
		return
	}

	text, err := h.renderCardFront(active)
	if err != nil {
		h.logger.Error("failed to render card",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}

	msg := newHTMLMessage(chatID, text)
	msg.ReplyMarkup = revealKeyboard()
	h.send(msg)
}

// removeKeyboard strips the inline keyboard from an already-graded card
// so stale buttons cannot be pressed twice.
func (h *Handler) removeKeyboard(chatID int64, messageID int) {
	empty := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
	h.send(tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, empty))
}

func parseQuality(raw string) (srs.Quality, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}

	q := srs.Quality(n)
	switch q {
	case srs.NoRecall, srs.PartialRecall, srs.FullRecall:
		return q, nil
	default:
		return 0, errors.New("unknown quality value")
	}
}
