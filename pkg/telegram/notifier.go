package telegram

import (
	"context"
	"fmt"

	"barbellfx-relay/config"
	"barbellfx-relay/internal/model"
	"barbellfx-relay/pkg/logger"

	"golang.org/x/time/rate"
	"gopkg.in/telebot.v3"
)

// Sender is the part of *telebot.Bot the notifier needs.
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// SignalNotifier posts every accepted signal into one chat.
type SignalNotifier struct {
	cfg     *config.TelegramConfig
	log     *logger.Logger
	sender  Sender
	chat    telebot.ChatID
	limiter *rate.Limiter
}

// NewBot creates a bot for cfg without calling the Telegram API, so the
// relay can start while Telegram is unreachable.
func NewBot(cfg *config.TelegramConfig) (*telebot.Bot, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:   cfg.BotToken,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return bot, nil
}

func NewSignalNotifier(cfg *config.TelegramConfig, log *logger.Logger, sender Sender) *SignalNotifier {
	perSecond := cfg.MaxGlobalRequestPerSecond
	if perSecond <= 0 {
		perSecond = 1
	}
	return &SignalNotifier{
		cfg:     cfg,
		log:     log,
		sender:  sender,
		chat:    telebot.ChatID(cfg.ChatID),
		limiter: rate.NewLimiter(rate.Limit(perSecond), perSecond),
	}
}

func (n *SignalNotifier) NotifySignal(ctx context.Context, signal model.Signal) error {
	if n.cfg.TimeoutDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.cfg.TimeoutDuration)
		defer cancel()
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for telegram rate limit: %w", err)
	}

	if _, err := n.sender.Send(n.chat, FormatSignalMessage(signal), telebot.ModeHTML); err != nil {
		return fmt.Errorf("failed to send signal to telegram: %w", err)
	}

	n.log.DebugContext(ctx, "Signal sent to telegram", logger.StringField("pair", signal.Pair))
	return nil
}
