package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/adilzhn/leksika-bot/internal/config"
	"github.com/adilzhn/leksika-bot/internal/delivery/telegram"
	"github.com/adilzhn/leksika-bot/internal/logger"
	"github.com/adilzhn/leksika-bot/internal/repository"
	"github.com/adilzhn/leksika-bot/internal/service"
	"github.com/adilzhn/leksika-bot/internal/storage"
)

func main() {
	// Local development convenience; the file is absent in production.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot", zap.Error(err))
	}

	commands := []tgbotapi.BotCommand{
		{Command: "practice", Description: "Тренировка слов"},
		{Command: "review", Description: "Только повторение слов"},
		{Command: "phrases", Description: "Тренировка фраз"},
		{Command: "streak", Description: "Серия дней подряд"},
		{Command: "progress", Description: "Прогресс"},
		{Command: "settings", Description: "Настройки напоминаний"},
		{Command: "help", Description: "Помощь"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	zl.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load the immutable corpora.
	wordRepo, err := repository.NewWordRepository(cfg.WordsJSONPath)
	if err != nil {
		zl.Fatal("failed to load words corpus", zap.Error(err))
	}
	phraseRepo, err := repository.NewPhraseRepository(cfg.PhrasesJSONPath)
	if err != nil {
		zl.Fatal("failed to load phrases corpus", zap.Error(err))
	}

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zl.Fatal("database url is not configured", zap.Error(err))
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		zl.Fatal("failed to parse database config", zap.Error(err))
	}
	poolConfig.MaxConns = int32(cfg.DB.MaxConnections)
	poolConfig.MaxConnLifetime = cfg.DB.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	progressRepo := repository.NewProgressRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)

	sessions := storage.NewSessionStorage()

	userService := service.NewUserService(userRepo)
	practiceService := service.NewPracticeService(
		wordRepo, phraseRepo, progressRepo, activityRepo, sessions, zl,
	)
	statsService := service.NewStatsService(
		progressRepo, activityRepo, wordRepo.Count(), phraseRepo.Count(),
	)
	settingsService := service.NewSettingsService(settingsRepo)
	reminderService := service.NewReminderService(userRepo, settingsRepo, progressRepo, zl)

	handler := telegram.NewHandler(
		bot,
		zl,
		userService,
		practiceService,
		statsService,
		settingsService,
		wordRepo,
		phraseRepo,
	)
	reminderService.SetNotifier(handler)

	go reminderService.Start(ctx)

	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zl.Error("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
