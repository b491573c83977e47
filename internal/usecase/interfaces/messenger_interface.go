package interfaces

import (
	"context"

	"pix_storefront/internal/domain/entities"
)

// IMessenger is the only capability the storefront needs from the chat transport.
// Delivery failures come back as *domain.TransportError.
type IMessenger interface {
	Send(ctx context.Context, msg entities.OutgoingMessage) (messageID int, err error)
	AnswerCallback(ctx context.Context, callbackID, text string) error
}
