// Package telegram connects the storefront to the Telegram Bot API through
// long polling.
package telegram

import (
	"context"
	"errors"
	"strings"

	"pix_storefront/internal/config"
	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/infrastructure/logging"
	"pix_storefront/internal/usecase"
	"pix_storefront/internal/usecase/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

const DefaultUpdateTimeout = 60

var ErrMissingToken = errors.New("telegram token is required")

// Handler receives the decoded updates. *usecase.BotDispatcher implements it.
type Handler interface {
	HandleCommand(ctx context.Context, ev entities.CommandEvent)
	HandleCallback(ctx context.Context, ev entities.CallbackEvent)
	HandleText(ctx context.Context, ev entities.TextEvent)
}

var _ Handler = (*usecase.BotDispatcher)(nil)

// UpdatesSource is the polling half of *tgbotapi.BotAPI.
type UpdatesSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Connect authenticates against the Bot API with the configured token.
func Connect(cfg config.TelegramConfig) (*tgbotapi.BotAPI, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, ErrMissingToken
	}
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}
	api.Debug = cfg.Debug
	log := logging.Component("telegram")
	log.Info().Str("username", api.Self.UserName).Msg("authorized on telegram")
	return api, nil
}

// Bot pulls updates and hands each one to Handler on its chat's queue.
type Bot struct {
	source    UpdatesSource
	handler   Handler
	messenger interfaces.IMessenger
	timeout   int
	logger    zerolog.Logger
}

func NewBot(source UpdatesSource, handler Handler, messenger interfaces.IMessenger, updateTimeout int) *Bot {
	if updateTimeout <= 0 {
		updateTimeout = DefaultUpdateTimeout
	}
	return &Bot{
		source:    source,
		handler:   handler,
		messenger: messenger,
		timeout:   updateTimeout,
		logger:    logging.Component("telegram"),
	}
}

// Run blocks until ctx is cancelled or the updates channel closes, then waits
// for in-flight updates to finish.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.timeout
	updates := b.source.GetUpdatesChan(u)

	queue := NewChatQueue(b.logger, b.apologize)
	defer queue.Close()

	b.logger.Info().Msg("bot polling started")
	for {
		select {
		case <-ctx.Done():
			b.source.StopReceivingUpdates()
			b.logger.Info().Msg("bot polling stopped")
			return nil
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			ev, ok := eventFromUpdate(upd)
			if !ok {
				continue
			}
			queue.Submit(ctx, ev.chatID, func(ctx context.Context) { b.deliver(ctx, ev) })
		}
	}
}

func (b *Bot) deliver(ctx context.Context, ev event) {
	switch {
	case ev.command != nil:
		b.handler.HandleCommand(ctx, *ev.command)
	case ev.callback != nil:
		b.handler.HandleCallback(ctx, *ev.callback)
	case ev.text != nil:
		b.handler.HandleText(ctx, *ev.text)
	}
}

func (b *Bot) apologize(ctx context.Context, chatID int64, _ any) {
	if _, err := b.messenger.Send(ctx, entities.OutgoingMessage{ChatID: chatID, Text: usecase.MsgGenericError}); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send apology")
	}
}

// event is exactly one of command, callback or text.
type event struct {
	chatID   int64
	command  *entities.CommandEvent
	callback *entities.CallbackEvent
	text     *entities.TextEvent
}

func eventFromUpdate(upd tgbotapi.Update) (event, bool) {
	if cq := upd.CallbackQuery; cq != nil {
		if cq.Message == nil || cq.Message.Chat == nil {
			return event{}, false
		}
		ev := entities.CallbackEvent{
			ID:        cq.ID,
			ChatID:    cq.Message.Chat.ID,
			MessageID: cq.Message.MessageID,
			Data:      cq.Data,
		}
		if cq.From != nil {
			ev.UserName = cq.From.UserName
		}
		return event{chatID: ev.ChatID, callback: &ev}, true
	}

	msg := upd.Message
	if msg == nil || msg.Chat == nil {
		return event{}, false
	}
	var userName string
	if msg.From != nil {
		userName = msg.From.UserName
	}
	if msg.IsCommand() {
		return event{chatID: msg.Chat.ID, command: &entities.CommandEvent{
			ChatID:   msg.Chat.ID,
			Command:  msg.Command(),
			Args:     msg.CommandArguments(),
			UserName: userName,
		}}, true
	}
	if strings.TrimSpace(msg.Text) == "" {
		return event{}, false
	}
	return event{chatID: msg.Chat.ID, text: &entities.TextEvent{
		ChatID:   msg.Chat.ID,
		Text:     msg.Text,
		UserName: userName,
	}}, true
}
