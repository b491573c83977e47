package interfaces

import (
	"context"

	"pix_storefront/internal/domain/entities"
)

// IPaymentGateway abstracts PIX providers (Pagar.me, Mercado Pago).
//
// Implementations make a single attempt per call and report every failure as a
// *domain.GatewayError. A successful CreatePixOrder always carries a QR code.
type IPaymentGateway interface {
	Name() string
	CreatePixOrder(ctx context.Context, charge entities.PixCharge) (entities.PixPayment, error)
	GetOrderStatus(ctx context.Context, orderID string) (entities.PaymentStatus, error)
}
