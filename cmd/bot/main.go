package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mdwlf90/ROC-SOLUTIONS/internal/catalog"
	"github.com/mdwlf90/ROC-SOLUTIONS/internal/config"
	"github.com/mdwlf90/ROC-SOLUTIONS/internal/delivery/telegram"
	"github.com/mdwlf90/ROC-SOLUTIONS/internal/infra/postgres"
	"github.com/mdwlf90/ROC-SOLUTIONS/internal/infra/postgres/repository"
	"github.com/mdwlf90/ROC-SOLUTIONS/internal/infra/sheets"
	"github.com/mdwlf90/ROC-SOLUTIONS/internal/logger"
	"github.com/mdwlf90/ROC-SOLUTIONS/internal/service"
	"github.com/mdwlf90/ROC-SOLUTIONS/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create telegram bot", zap.Error(err))
	}

	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Begin a new job application",
		},
		{
			Command:     "help",
			Description: "Show available commands",
		},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	zl.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	sink, cleanup, err := buildSink(ctx, cfg)
	if err != nil {
		zl.Fatal("failed to initialize record sink", zap.Error(err))
	}
	defer cleanup()

	engine := service.NewConversationService(catalog.New(), sink)
	sessions := storage.NewSessionStore()

	handler := telegram.NewHandler(bot, zl, engine, sessions)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zl.Fatal("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}

// buildSink wires the record sink selected in configuration: Google
// Sheets by default, Postgres as the alternative backend.
func buildSink(ctx context.Context, cfg *config.Config) (service.RecordSink, func(), error) {
	switch cfg.Sink.Backend {
	case config.SinkBackendSheets:
		sink, err := sheets.NewSink(ctx, cfg.Sink.CredentialsFile, cfg.Sink.SpreadsheetID, cfg.Sink.SheetRange)
		if err != nil {
			return nil, nil, err
		}
		return sink, func() {}, nil

	case config.SinkBackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		return repository.NewApplicationRepository(pool), pool.Close, nil

	default:
		return nil, nil, config.ErrUnknownSinkBackend
	}
}
