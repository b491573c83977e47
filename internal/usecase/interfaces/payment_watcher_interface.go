package interfaces

import "time"

// IPaymentWatcher follows a PIX order until it settles, expires or is cancelled.
type IPaymentWatcher interface {
	Watch(chatID int64, orderID string, expiresAt time.Time) error
	Cancel(orderID string)
}
