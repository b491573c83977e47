package usecase

import (
	"context"
	"fmt"
	"strings"

	"pix_storefront/internal/domain"
	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/infrastructure/logging"
	"pix_storefront/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Callback data understood by the wizard. Category and quantity buttons carry
// entities.CategoryCallbackData / entities.QuantityCallbackData.
const (
	CallbackBackMain    = "back_main"
	CallbackBack        = "back"
	CallbackNewOrder    = "new_order"
	CallbackFinishOrder = "finish_order"

	categoryPrefix = "category" + entities.CallbackSeparator
	quantityPrefix = "quantity" + entities.CallbackSeparator
)

const (
	MsgWelcome        = "🎥 *Bem-vindo à nossa loja!*"
	MsgPriceTable     = "💰 *Tabela de Preços*"
	MsgSelectCategory = "📦 *Selecione a categoria do produto:*"
	MsgBackToMenu     = "🏠 Voltando ao menu principal..."
	MsgPixGenerated   = "🔍 QR Code gerado com sucesso! Escaneie para pagar."
	MsgAnotherOrder   = "Deseja fazer outro pedido?"
	MsgThanks         = "👋 Obrigado pela preferência! Volte sempre!"
	MsgGenericError   = "❌ Ocorreu um erro. Por favor, tente novamente."
	MsgPixError       = "❌ Erro ao gerar o PIX. Por favor, tente novamente."

	BtnBackToMenu = "⬅️ Voltar ao Menu"
	BtnBack       = "⬅️ Voltar"
	BtnYes        = "✅ Sim"
	BtnNo         = "❌ Não"
)

// IOrderWizard is what the dispatcher needs from the wizard.
type IOrderWizard interface {
	Enter(ctx context.Context, chatID int64)
	Leave(chatID int64)
	HandleCallback(ctx context.Context, ev entities.CallbackEvent) bool
	Active(chatID int64) bool
}

// OrderWizard drives Intro → AwaitingQuantity → AwaitingPostPaymentChoice → Done.
//
// Every handler runs inside IConversationStore.Update, so one chat never has
// two triggers in flight. Any error ends the conversation with an apology.
type OrderWizard struct {
	catalog   *entities.Catalog
	payments  IPixPaymentUseCase
	store     interfaces.IConversationStore
	messenger interfaces.IMessenger
	watcher   interfaces.IPaymentWatcher
	qr        interfaces.IQRCodeRenderer
	logger    zerolog.Logger
}

var _ IOrderWizard = (*OrderWizard)(nil)

// NewOrderWizard wires the wizard. watcher and qr may be nil: no status
// follow-up, and no image when the provider returns none.
func NewOrderWizard(
	catalog *entities.Catalog,
	payments IPixPaymentUseCase,
	store interfaces.IConversationStore,
	messenger interfaces.IMessenger,
	watcher interfaces.IPaymentWatcher,
	qr interfaces.IQRCodeRenderer,
) *OrderWizard {
	return &OrderWizard{
		catalog:   catalog,
		payments:  payments,
		store:     store,
		messenger: messenger,
		watcher:   watcher,
		qr:        qr,
		logger:    logging.Component("wizard"),
	}
}

func (w *OrderWizard) Active(chatID int64) bool {
	_, ok := w.store.Get(chatID)
	return ok
}

// Enter starts the wizard, discarding whatever state the chat had.
func (w *OrderWizard) Enter(ctx context.Context, chatID int64) {
	w.store.Update(chatID, func(st *entities.ConversationState) {
		w.cancelWatch(st)
		st.Reset()
		st.Step = entities.StepIntro
		w.logger.Info().Int64("chat_id", chatID).Msg("wizard entered")

		w.send(ctx, chatID, MsgWelcome)
		w.send(ctx, chatID, w.priceTable())
		if !w.renderCategoryPrompt(ctx, st) {
			w.finish(st)
		}
	})
}

// Leave silently drops the chat's wizard state.
func (w *OrderWizard) Leave(chatID int64) {
	w.store.Update(chatID, func(st *entities.ConversationState) {
		if st.Active() {
			w.logger.Info().Int64("chat_id", chatID).Str("step", st.Step.String()).Msg("wizard left")
		}
		w.finish(st)
	})
}

// HandleCallback feeds a button press to the wizard. It returns false when the
// chat has no wizard running, leaving the press to the caller.
func (w *OrderWizard) HandleCallback(ctx context.Context, ev entities.CallbackEvent) bool {
	handled := false
	w.store.Update(ev.ChatID, func(st *entities.ConversationState) {
		if !st.Active() {
			return
		}
		handled = true

		logger := w.logger.With().Int64("chat_id", ev.ChatID).Str("step", st.Step.String()).Str("data", ev.Data).Logger()
		if st.KeyboardMessageID != 0 && ev.MessageID != 0 && ev.MessageID != st.KeyboardMessageID {
			logger.Debug().Int("message_id", ev.MessageID).Msg("stale keyboard; ignored")
			return
		}

		switch st.Step {
		case entities.StepIntro:
			w.onIntro(ctx, st, ev.Data)
		case entities.StepAwaitingQuantity:
			w.onQuantity(ctx, st, ev.Data)
		case entities.StepAwaitingPostPaymentChoice:
			w.onPostPayment(ctx, st, ev.Data)
		default:
			w.abort(ctx, st, MsgGenericError, fmt.Errorf("unexpected step %s", st.Step))
		}
	})
	return handled
}

func (w *OrderWizard) onIntro(ctx context.Context, st *entities.ConversationState, data string) {
	switch {
	case data == CallbackBackMain:
		w.send(ctx, st.ChatID, MsgBackToMenu)
		w.finish(st)

	case strings.HasPrefix(data, categoryPrefix):
		categoryID := strings.TrimPrefix(data, categoryPrefix)
		cat, ok := w.catalog.Category(categoryID)
		if !ok {
			w.abort(ctx, st, MsgGenericError, fmt.Errorf("%w: %q", entities.ErrCategoryNotFound, categoryID))
			return
		}

		text := fmt.Sprintf("🛍️ *Categoria selecionada: %s*\n\nEscolha a quantidade:", cat.DisplayName())
		msgID, err := w.messenger.Send(ctx, entities.OutgoingMessage{
			ChatID:   st.ChatID,
			Text:     text,
			Markdown: true,
			Keyboard: quantityKeyboard(cat),
		})
		if err != nil {
			w.abort(ctx, st, MsgGenericError, err)
			return
		}
		st.CategoryID = cat.ID
		st.Step = entities.StepAwaitingQuantity
		st.KeyboardMessageID = msgID

	default:
		w.abort(ctx, st, MsgGenericError, domain.NewValidationError("callback", fmt.Sprintf("unexpected %q at %s", data, st.Step)))
	}
}

func (w *OrderWizard) onQuantity(ctx context.Context, st *entities.ConversationState, data string) {
	switch {
	case data == CallbackBack:
		st.ClearSelection()
		st.Step = entities.StepIntro
		if !w.renderCategoryPrompt(ctx, st) {
			w.finish(st)
		}

	case strings.HasPrefix(data, quantityPrefix):
		parts := strings.SplitN(strings.TrimPrefix(data, quantityPrefix), entities.CallbackSeparator, 2)
		if len(parts) != 2 || parts[0] != st.CategoryID {
			w.abort(ctx, st, MsgGenericError, domain.NewValidationError("callback", fmt.Sprintf("quantity %q does not match category %q", data, st.CategoryID)))
			return
		}
		tier := parts[1]
		price, err := w.catalog.PriceOf(st.CategoryID, tier)
		if err != nil {
			w.abort(ctx, st, MsgGenericError, err)
			return
		}
		st.Tier = tier
		st.Price = decimal.NewNullDecimal(price)
		w.issuePix(ctx, st, price)

	default:
		w.abort(ctx, st, MsgGenericError, domain.NewValidationError("callback", fmt.Sprintf("unexpected %q at %s", data, st.Step)))
	}
}

func (w *OrderWizard) issuePix(ctx context.Context, st *entities.ConversationState, price decimal.Decimal) {
	cat, _ := w.catalog.Category(st.CategoryID)
	w.send(ctx, st.ChatID, fmt.Sprintf("✅ *Pedido Selecionado*\n\nCategoria: %s\nQuantidade: %s\nValor: %s",
		cat.DisplayName(), st.Tier, entities.FormatBRL(price)))

	order, err := w.payments.CreatePixOrder(ctx, entities.PixOrderRequest{
		ChatID:     st.ChatID,
		CategoryID: st.CategoryID,
		Tier:       st.Tier,
		Amount:     price,
	})
	if err != nil {
		msg := MsgGenericError
		if _, ok := domain.IsGatewayError(err); ok {
			msg = MsgPixError
		}
		w.abort(ctx, st, msg, err)
		return
	}

	// An earlier order keeps its own watch until it settles or expires.
	st.LastOrderID = order.ID

	w.send(ctx, st.ChatID, "💳 *Dados do Pagamento PIX*\n\n"+
		fmt.Sprintf("Valor: %s\n\n", entities.FormatBRL(price))+
		"Copie o código PIX abaixo:")
	if _, err := w.messenger.Send(ctx, entities.OutgoingMessage{ChatID: st.ChatID, Text: order.QRCode}); err != nil {
		w.logger.Error().Err(err).Int64("chat_id", st.ChatID).Str("order_id", order.ID).Msg("failed to send pix code")
	}
	if photo := w.qrPhoto(order); photo != nil {
		if _, err := w.messenger.Send(ctx, entities.OutgoingMessage{ChatID: st.ChatID, Text: MsgPixGenerated, Photo: photo}); err != nil {
			w.logger.Error().Err(err).Int64("chat_id", st.ChatID).Str("order_id", order.ID).Msg("failed to send qr image")
		}
	}

	if w.watcher != nil {
		if err := w.watcher.Watch(st.ChatID, order.ID, order.ExpiresAt); err != nil {
			w.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to watch order")
		}
	}

	msgID, err := w.messenger.Send(ctx, entities.OutgoingMessage{
		ChatID: st.ChatID,
		Text:   MsgAnotherOrder,
		Keyboard: entities.Keyboard{
			{{Text: BtnYes, Data: CallbackNewOrder}},
			{{Text: BtnNo, Data: CallbackFinishOrder}},
		},
	})
	if err != nil {
		w.logger.Error().Err(err).Int64("chat_id", st.ChatID).Msg("failed to send post-payment keyboard")
		w.finish(st)
		return
	}
	st.Step = entities.StepAwaitingPostPaymentChoice
	st.KeyboardMessageID = msgID
	w.logger.Info().Int64("chat_id", st.ChatID).Str("order_id", order.ID).Msg("pix issued")
}

func (w *OrderWizard) onPostPayment(ctx context.Context, st *entities.ConversationState, data string) {
	switch data {
	case CallbackNewOrder:
		// The previous PIX stays watched: it may still be paid.
		st.ClearSelection()
		st.Step = entities.StepIntro
		st.KeyboardMessageID = 0
		w.send(ctx, st.ChatID, MsgWelcome)
		w.send(ctx, st.ChatID, w.priceTable())
		if !w.renderCategoryPrompt(ctx, st) {
			w.finish(st)
		}

	case CallbackFinishOrder:
		w.send(ctx, st.ChatID, MsgThanks)
		w.finish(st)

	default:
		w.abort(ctx, st, MsgGenericError, domain.NewValidationError("callback", fmt.Sprintf("unexpected %q at %s", data, st.Step)))
	}
}

// renderCategoryPrompt sends the category keyboard and records it as current.
func (w *OrderWizard) renderCategoryPrompt(ctx context.Context, st *entities.ConversationState) bool {
	msgID, err := w.messenger.Send(ctx, entities.OutgoingMessage{
		ChatID:   st.ChatID,
		Text:     MsgSelectCategory,
		Markdown: true,
		Keyboard: w.categoryKeyboard(),
	})
	if err != nil {
		w.logger.Error().Err(err).Int64("chat_id", st.ChatID).Msg("failed to send category keyboard")
		return false
	}
	st.KeyboardMessageID = msgID
	return true
}

func (w *OrderWizard) priceTable() string {
	var b strings.Builder
	b.WriteString(MsgPriceTable)
	for _, cat := range w.catalog.ListCategories() {
		fmt.Fprintf(&b, "\n\n*%s*:", cat.DisplayName())
		for _, t := range cat.Tiers {
			fmt.Fprintf(&b, "\n%s - %s", t.Label, entities.FormatBRL(t.Price))
		}
	}
	return b.String()
}

func (w *OrderWizard) categoryKeyboard() entities.Keyboard {
	cats := w.catalog.ListCategories()
	kb := make(entities.Keyboard, 0, len(cats)+1)
	for _, cat := range cats {
		label := cat.DisplayName()
		if cat.Emoji != "" {
			label = cat.Emoji + " " + label
		}
		kb = append(kb, []entities.Button{{Text: label, Data: entities.CategoryCallbackData(cat.ID)}})
	}
	return append(kb, []entities.Button{{Text: BtnBackToMenu, Data: CallbackBackMain}})
}

func quantityKeyboard(cat entities.Category) entities.Keyboard {
	kb := make(entities.Keyboard, 0, len(cat.Tiers)+1)
	for _, t := range cat.Tiers {
		kb = append(kb, []entities.Button{{
			Text: fmt.Sprintf("%s - %s", t.Label, entities.FormatBRL(t.Price)),
			Data: entities.QuantityCallbackData(cat.ID, t.Label),
		}})
	}
	return append(kb, []entities.Button{{Text: BtnBack, Data: CallbackBack}})
}

// qrPhoto prefers the provider's image URL, then its PNG, then a local render.
func (w *OrderWizard) qrPhoto(order entities.PixOrder) *entities.Photo {
	switch {
	case order.QRCodeURL != "":
		return &entities.Photo{URL: order.QRCodeURL}
	case len(order.QRCodeImage) > 0:
		return &entities.Photo{PNG: order.QRCodeImage, Name: order.ID + ".png"}
	case w.qr != nil:
		png, err := w.qr.PNG(order.QRCode)
		if err != nil {
			w.logger.Warn().Err(err).Str("order_id", order.ID).Msg("failed to render qr code")
			return nil
		}
		return &entities.Photo{PNG: png, Name: order.ID + ".png"}
	}
	return nil
}

// send delivers a Markdown text; failures are logged only.
func (w *OrderWizard) send(ctx context.Context, chatID int64, text string) {
	if _, err := w.messenger.Send(ctx, entities.OutgoingMessage{ChatID: chatID, Text: text, Markdown: true}); err != nil {
		w.logger.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send message")
	}
}

// abort apologizes and ends the conversation.
func (w *OrderWizard) abort(ctx context.Context, st *entities.ConversationState, userMsg string, cause error) {
	w.logger.Warn().Err(cause).Int64("chat_id", st.ChatID).Str("step", st.Step.String()).Msg("wizard aborted")
	if _, err := w.messenger.Send(ctx, entities.OutgoingMessage{ChatID: st.ChatID, Text: userMsg}); err != nil {
		w.logger.Error().Err(err).Int64("chat_id", st.ChatID).Msg("failed to send apology")
	}
	w.finish(st)
}

func (w *OrderWizard) finish(st *entities.ConversationState) {
	w.cancelWatch(st)
	st.Reset()
}

func (w *OrderWizard) cancelWatch(st *entities.ConversationState) {
	if w.watcher != nil && st.LastOrderID != "" {
		w.watcher.Cancel(st.LastOrderID)
	}
}
