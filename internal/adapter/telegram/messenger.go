package telegram

import (
	"context"
	"errors"

	"pix_storefront/internal/domain"
	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/usecase/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of *tgbotapi.BotAPI the messenger uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

var errCallbackRejected = errors.New("callback answer rejected")

// Messenger turns OutgoingMessage values into Bot API calls.
type Messenger struct {
	api Sender
}

var _ interfaces.IMessenger = (*Messenger)(nil)

func NewMessenger(api Sender) *Messenger {
	return &Messenger{api: api}
}

func (m *Messenger) Send(ctx context.Context, msg entities.OutgoingMessage) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, &domain.TransportError{ChatID: msg.ChatID, Op: "send", Err: err}
	}

	sent, err := m.api.Send(buildChattable(msg))
	if err != nil {
		op := "send_message"
		if msg.Photo != nil {
			op = "send_photo"
		}
		return 0, &domain.TransportError{ChatID: msg.ChatID, Op: op, Err: err}
	}
	return sent.MessageID, nil
}

func (m *Messenger) AnswerCallback(ctx context.Context, callbackID, text string) error {
	if callbackID == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return &domain.TransportError{Op: "answer_callback", Err: err}
	}
	resp, err := m.api.Request(tgbotapi.NewCallback(callbackID, text))
	if err != nil {
		return &domain.TransportError{Op: "answer_callback", Err: err}
	}
	if resp != nil && !resp.Ok {
		return &domain.TransportError{Op: "answer_callback", Err: errCallbackRejected}
	}
	return nil
}

func buildChattable(msg entities.OutgoingMessage) tgbotapi.Chattable {
	if msg.Photo != nil {
		var file tgbotapi.RequestFileData
		if msg.Photo.URL != "" {
			file = tgbotapi.FileURL(msg.Photo.URL)
		} else {
			name := msg.Photo.Name
			if name == "" {
				name = "qrcode.png"
			}
			file = tgbotapi.FileBytes{Name: name, Bytes: msg.Photo.PNG}
		}
		photo := tgbotapi.NewPhoto(msg.ChatID, file)
		photo.Caption = msg.Text
		if msg.Markdown {
			photo.ParseMode = tgbotapi.ModeMarkdown
		}
		if kb := inlineKeyboard(msg.Keyboard); kb != nil {
			photo.ReplyMarkup = *kb
		}
		return photo
	}

	out := tgbotapi.NewMessage(msg.ChatID, msg.Text)
	if msg.Markdown {
		out.ParseMode = tgbotapi.ModeMarkdown
	}
	if kb := inlineKeyboard(msg.Keyboard); kb != nil {
		out.ReplyMarkup = *kb
	}
	return out
}

func inlineKeyboard(kb entities.Keyboard) *tgbotapi.InlineKeyboardMarkup {
	if len(kb) == 0 {
		return nil
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(kb))
	for _, row := range kb {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons...))
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}
