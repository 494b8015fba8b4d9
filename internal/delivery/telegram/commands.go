package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
	"github.com/adilzhn/leksika-bot/internal/service"
	"github.com/adilzhn/leksika-bot/internal/session"
)

// handleStartSession composes a fresh practice session and shows its
// first card.
func (h *Handler) handleStartSession(
	ctx context.Context, chatID, userID int64, corpus entities.Corpus, mode session.Mode,
) {
	_, err := h.practiceService.StartSession(ctx, userID, corpus, mode)
	if err != nil {
		if errors.Is(err, service.ErrNoCardsAvailable) {
			if mode == session.ModeReviewOnly {
				h.send(newPlainMessage(chatID, msgNoReviews))
			} else {
				h.send(newPlainMessage(chatID, msgNoCards))
			}
			return
		}

		h.logger.Error("failed to start session",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}

	h.showCurrentCard(chatID, userID)
}

func (h *Handler) handleStreak(ctx context.Context, chatID, userID int64) {
	days, err := h.statsService.Streak(ctx, userID)
	if err != nil {
		h.logger.Error("failed to compute streak",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}

	h.send(newPlainMessage(chatID, formatStreak(days)))
}

func (h *Handler) handleProgress(ctx context.Context, chatID, userID int64) {
	summary, err := h.statsService.Summary(ctx, userID)
	if err != nil {
		h.logger.Error("failed to build summary",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}

	h.send(newHTMLMessage(chatID, renderSummary(summary)))
}

func (h *Handler) handleSettings(ctx context.Context, chatID, userID int64) {
	settings, err := h.settingsService.GetOrCreate(ctx, userID)
	if err != nil {
		h.logger.Error("failed to load settings",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}

	msg := newHTMLMessage(chatID, renderSettings(settings))
	msg.ReplyMarkup = settingsKeyboard(settings.RemindersEnabled)
	h.send(msg)
}

func (h *Handler) handleStop(chatID, userID int64) {
	if _, ok := h.practiceService.ActiveSession(userID); !ok {
		h.send(newPlainMessage(chatID, msgNoActiveSession))
		return
	}

	h.practiceService.AbandonSession(userID)
	h.send(newPlainMessage(chatID, msgSessionAbandoned))
}
