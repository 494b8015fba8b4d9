package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/adilzhn/leksika-bot/internal/domain/entities"
	"github.com/adilzhn/leksika-bot/internal/service"
	"github.com/adilzhn/leksika-bot/internal/session"
	"github.com/adilzhn/leksika-bot/internal/srs"
	"github.com/adilzhn/leksika-bot/internal/storage"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64, firstName, username, languageCode string) error
}

type PracticeService interface {
	StartSession(ctx context.Context, userID int64, corpus entities.Corpus, mode session.Mode) (*session.Session, error)
	ActiveSession(userID int64) (*storage.ActiveSession, bool)
	AbandonSession(userID int64)
	SubmitReview(ctx context.Context, userID int64, quality srs.Quality) (session.Card, bool, error)
}

type StatsService interface {
	Streak(ctx context.Context, userID int64) (int, error)
	Summary(ctx context.Context, userID int64) (*service.Summary, error)
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error)
	SetRemindersEnabled(ctx context.Context, userID int64, enabled bool) error
	SetReminderHour(ctx context.Context, userID int64, hour int) error
}

type WordProvider interface {
	GetByID(id string) (*entities.Word, error)
}

type PhraseProvider interface {
	GetByID(id string) (*entities.Phrase, error)
}

type Handler struct {
	bot             *tgbotapi.BotAPI
	logger          *zap.Logger
	userService     UserService
	practiceService PracticeService
	statsService    StatsService
	settingsService SettingsService
	words           WordProvider
	phrases         PhraseProvider
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	userService UserService,
	practiceService PracticeService,
	statsService StatsService,
	settingsService SettingsService,
	words WordProvider,
	phrases PhraseProvider,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		userService:     userService,
		practiceService: practiceService,
		statsService:    statsService,
		settingsService: settingsService,
		words:           words,
		phrases:         phrases,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	err := h.userService.EnsureUser(ctx, from.ID, chatID, from.FirstName, from.UserName, from.LanguageCode)
	if err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if !update.Message.IsCommand() {
		h.send(newPlainMessage(chatID, msgUnknownCommand))
		return
	}

	switch update.Message.Command() {
	case "start":
		h.send(newPlainMessage(chatID, msgWelcome))

	case "practice":
		h.handleStartSession(ctx, chatID, from.ID, entities.CorpusWords, session.ModeMixed)

	case "review":
		h.handleStartSession(ctx, chatID, from.ID, entities.CorpusWords, session.ModeReviewOnly)

	case "phrases":
		h.handleStartSession(ctx, chatID, from.ID, entities.CorpusPhrases, session.ModeMixed)

	case "streak":
		h.handleStreak(ctx, chatID, from.ID)

	case "progress":
		h.handleProgress(ctx, chatID, from.ID)

	case "settings":
		h.handleSettings(ctx, chatID, from.ID)

	case "stop":
		h.handleStop(chatID, from.ID)

	case "help":
		h.send(newPlainMessage(chatID, msgHelp))

	default:
		h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message", zap.Error(err))
	}
}

// NotifyDueReviews implements service.ReminderNotifier.
func (h *Handler) NotifyDueReviews(chatID int64, dueWords, duePhrases int) error {
	msg := newPlainMessage(chatID, formatReminder(dueWords, duePhrases))
	_, err := h.bot.Send(msg)
	return err
}
