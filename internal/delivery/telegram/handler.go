package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/mdwlf90/ROC-SOLUTIONS/internal/domain/entities"
	"github.com/mdwlf90/ROC-SOLUTIONS/internal/storage"
)

// ConversationEngine produces one response per user input, mutating the
// passed state in place.
type ConversationEngine interface {
	HandleTurn(ctx context.Context, state *entities.ConversationState, input string) (string, error)
}

// Handler connects Telegram long polling to the conversation engine.
type Handler struct {
	bot      *tgbotapi.BotAPI
	logger   *zap.Logger
	engine   ConversationEngine
	sessions *storage.SessionStore
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	engine ConversationEngine,
	sessions *storage.SessionStore,
) *Handler {
	return &Handler{
		bot:      bot,
		logger:   logger,
		engine:   engine,
		sessions: sessions,
	}
}

// Run polls for updates until the context is cancelled.
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
	if update.Message == nil {
		h.logger.Debug("update without message")
		return
	}

	chatID := update.Message.Chat.ID

	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", update.Message.Text),
	)

	state := h.sessions.GetOrCreate(chatID)

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			// /start abandons any half-finished application and greets
			// again; the greeting is the opening assistant turn.
			state.Reset()
			state.Record(entities.SpeakerAssistant, msgGreeting)
			h.send(chatID, msgGreeting)
		case "help":
			h.send(chatID, msgHelp)
		default:
			h.send(chatID, msgHelp)
		}
		return
	}

	response, err := h.engine.HandleTurn(ctx, state, update.Message.Text)
	if err != nil {
		// The response already tells the applicant what happened; the
		// error is logged for the operator.
		h.logger.Error("submission failed",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
	if response == "" {
		response = msgInternalError
	}

	h.send(chatID, response)
}

// send delivers a message with legacy Markdown parse mode. The emphasis
// markup in prompts is cosmetic only.
func (h *Handler) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}
