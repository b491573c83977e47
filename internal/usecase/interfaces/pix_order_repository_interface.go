package interfaces

import (
	"context"

	"pix_storefront/internal/domain/entities"
)

// IPixOrderRepository persists issued PIX orders.
//
// Lookups of unknown ids return the zero value and a nil error.
type IPixOrderRepository interface {
	Create(ctx context.Context, o entities.PixOrder) (entities.PixOrder, error)
	GetByID(ctx context.Context, id string) (entities.PixOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.PixOrder, error)
	ListByChatID(ctx context.Context, chatID int64) ([]entities.PixOrder, error)
}
