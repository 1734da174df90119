package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"log/slog"

	"github.com/central-university-dev/go-message-sender/internal/bot/clients"
	"github.com/central-university-dev/go-message-sender/internal/bot/domain"
	"github.com/central-university-dev/go-message-sender/internal/bot/repository"
	botservice "github.com/central-university-dev/go-message-sender/internal/bot/service"
	"github.com/central-university-dev/go-message-sender/internal/bot/telegram"
	"github.com/central-university-dev/go-message-sender/internal/common/metrics"
	"github.com/central-university-dev/go-message-sender/internal/common/ratelimit"
	"github.com/central-university-dev/go-message-sender/internal/config"
	"github.com/central-university-dev/go-message-sender/internal/database"
	"github.com/central-university-dev/go-message-sender/internal/domain/models"
	"github.com/central-university-dev/go-message-sender/internal/mailer"
	"github.com/central-university-dev/go-message-sender/internal/scheduler"
	"github.com/central-university-dev/go-message-sender/pkg"
	"github.com/central-university-dev/go-message-sender/pkg/txs"
)

func setupTelegramCommands(telegramClient domain.TelegramClientAPI, appLogger *slog.Logger) {
	botCommands := []models.BotCommand{
		{Command: "start", Description: "Начать авторизацию"},
		{Command: "cancel", Description: "Отменить авторизацию"},
		{Command: "admin", Description: "Панель владельца"},
	}

	ctx := context.Background()
	if err := telegramClient.SetMyCommands(ctx, botCommands); err != nil {
		appLogger.Error("Ошибка при регистрации команд бота",
			"error", err,
		)
	} else {
		appLogger.Info("Команды бота успешно зарегистрированы")
	}
}

func gracefulShutdown(
	poller *telegram.Poller,
	metricsServer *metrics.MetricsServer,
	statsScheduler *scheduler.Scheduler,
	stopCh <-chan struct{},
	appLogger *slog.Logger,
) {
	<-stopCh
	appLogger.Info("Получен сигнал завершения")

	poller.Stop()
	statsScheduler.Stop()

	if err := metricsServer.Stop(context.Background()); err != nil {
		appLogger.Error("Ошибка при остановке сервера метрик",
			"error", err,
		)
	}

	appLogger.Info("Бот успешно остановлен")
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка запуска сервиса: %v\n", err)
		os.Exit(1)
	}
}

//nolint:funlen // Длина функции обусловлена необходимостью последовательной инициализации всех компонентов.
func run() error {
	appLogger := pkg.NewLogger(os.Stdout)

	cfg := config.LoadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.NewPostgresDB(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при подключении к базе данных",
			"error", err,
		)

		return fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, appLogger); err != nil {
		appLogger.Error("Ошибка при применении миграций",
			"error", err,
		)

		return fmt.Errorf("ошибка применения миграций: %w", err)
	}

	txManager := txs.NewTxManager(db.Pool, appLogger)

	repoFactory := repository.NewFactory(db, cfg, appLogger)

	userRepo, err := repoFactory.CreateUserRepository()
	if err != nil {
		return fmt.Errorf("ошибка создания репозитория пользователей: %w", err)
	}

	validTokenRepo, err := repoFactory.CreateValidTokenRepository()
	if err != nil {
		return fmt.Errorf("ошибка создания репозитория валидных токенов: %w", err)
	}

	messageRepo, err := repoFactory.CreateMessageRepository()
	if err != nil {
		return fmt.Errorf("ошибка создания репозитория сообщений: %w", err)
	}

	telegramClient := clients.NewTelegramClient(cfg.TelegramBotToken, appLogger)
	setupTelegramCommands(telegramClient, appLogger)

	smtpSender := mailer.NewSMTPSender(cfg, appLogger)

	tokenGenerator := models.NewHexTokenGenerator()

	botService := botservice.NewBotService(
		userRepo,
		validTokenRepo,
		messageRepo,
		txManager,
		telegramClient,
		smtpSender,
		tokenGenerator,
		cfg.SendCooldown,
		appLogger,
	)

	limiter := ratelimit.NewChatRateLimiter(ctx, cfg.RateLimitMessages, cfg.RateLimitWindow, appLogger)

	poller := telegram.NewPoller(telegramClient, botService, limiter, cfg.TelegramRequestTimeout, appLogger)
	poller.Start()

	metricsServer := metrics.NewMetricsServer(cfg.BotMetricsPort, appLogger)
	if err := metricsServer.Start(ctx); err != nil {
		return fmt.Errorf("ошибка запуска сервера метрик: %w", err)
	}

	statsScheduler := scheduler.NewScheduler(botService, cfg.StatsUpdateInterval, appLogger)
	statsScheduler.Start()

	stopCh := make(chan struct{})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		appLogger.Info("Получен системный сигнал",
			"signal", sig.String(),
		)
		close(stopCh)
	}()

	gracefulShutdown(poller, metricsServer, statsScheduler, stopCh, appLogger)

	return nil
}
