package usecase

import (
	"context"
	"strings"

	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/infrastructure/logging"
	"pix_storefront/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

const (
	CallbackMenuBuy  = "menu_buy"
	CallbackMenuInfo = "menu_info"

	CommandStart = "start"
	CommandMenu  = "menu"
)

const (
	MsgMainMenu = "🛍️ *Bem-vindo à nossa Loja Virtual!*"
	MsgInfo     = "ℹ️ *Informações*\n\n" +
		"• Entrega em todo Brasil\n" +
		"• Pagamento via PIX\n" +
		"• Suporte 24/7\n\n" +
		"Para fazer um pedido, use o comando /start"
	MsgOptionExpired = "⌛ Esta opção expirou. Escolha novamente no menu abaixo."
	MsgUseButtons    = "👆 Use os botões acima para continuar o seu pedido."
	MsgUseStart      = "Use o comando /start para ver o menu."

	BtnBuy  = "🛒 Fazer Pedido"
	BtnInfo = "ℹ️ Informações"
)

// BotDispatcher routes commands, button presses and free text.
type BotDispatcher struct {
	wizard    IOrderWizard
	messenger interfaces.IMessenger
	logger    zerolog.Logger
}

func NewBotDispatcher(wizard IOrderWizard, messenger interfaces.IMessenger) *BotDispatcher {
	return &BotDispatcher{
		wizard:    wizard,
		messenger: messenger,
		logger:    logging.Component("dispatcher"),
	}
}

func (d *BotDispatcher) HandleCommand(ctx context.Context, ev entities.CommandEvent) {
	cmd := strings.ToLower(ev.Command)
	d.logger.Info().Int64("chat_id", ev.ChatID).Str("command", cmd).Msg("command received")

	switch cmd {
	case CommandStart, CommandMenu:
		d.wizard.Leave(ev.ChatID)
		d.sendMainMenu(ctx, ev.ChatID, MsgMainMenu)
	default:
		d.reply(ctx, ev.ChatID, MsgUseStart, false)
	}
}

// HandleCallback answers the press first so the client spinner stops even if
// the rest fails.
func (d *BotDispatcher) HandleCallback(ctx context.Context, ev entities.CallbackEvent) {
	if err := d.messenger.AnswerCallback(ctx, ev.ID, ""); err != nil {
		d.logger.Warn().Err(err).Int64("chat_id", ev.ChatID).Msg("failed to answer callback")
	}

	switch ev.Data {
	case CallbackMenuBuy:
		d.wizard.Enter(ctx, ev.ChatID)
	case CallbackMenuInfo:
		d.reply(ctx, ev.ChatID, MsgInfo, true)
	default:
		if !d.wizard.HandleCallback(ctx, ev) {
			d.logger.Info().Int64("chat_id", ev.ChatID).Str("data", ev.Data).Msg("callback outside wizard")
			d.sendMainMenu(ctx, ev.ChatID, MsgOptionExpired)
		}
	}
}

func (d *BotDispatcher) HandleText(ctx context.Context, ev entities.TextEvent) {
	if d.wizard.Active(ev.ChatID) {
		d.reply(ctx, ev.ChatID, MsgUseButtons, false)
		return
	}
	d.reply(ctx, ev.ChatID, MsgUseStart, false)
}

func MainMenuKeyboard() entities.Keyboard {
	return entities.Keyboard{
		{{Text: BtnBuy, Data: CallbackMenuBuy}},
		{{Text: BtnInfo, Data: CallbackMenuInfo}},
	}
}

func (d *BotDispatcher) sendMainMenu(ctx context.Context, chatID int64, text string) {
	_, err := d.messenger.Send(ctx, entities.OutgoingMessage{
		ChatID:   chatID,
		Text:     text,
		Markdown: true,
		Keyboard: MainMenuKeyboard(),
	})
	if err != nil {
		d.logger.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send main menu")
	}
}

func (d *BotDispatcher) reply(ctx context.Context, chatID int64, text string, markdown bool) {
	if _, err := d.messenger.Send(ctx, entities.OutgoingMessage{ChatID: chatID, Text: text, Markdown: markdown}); err != nil {
		d.logger.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send reply")
	}
}
