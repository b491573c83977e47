package payments

import (
	"fmt"

	"pix_storefront/internal/config"
	"pix_storefront/internal/usecase/interfaces"
)

// NewGateway builds the gateway selected by payment.provider.
func NewGateway(cfg *config.Config) (interfaces.IPaymentGateway, error) {
	switch cfg.Payment.Provider {
	case config.ProviderPagarme, "":
		return NewPagarmeGateway(cfg.Pagarme, cfg.Customer)
	case config.ProviderMercadoPago:
		return NewMercadoPagoGateway(cfg.MercadoPago, cfg.Customer)
	case config.ProviderMock:
		return NewMockGateway(), nil
	default:
		return nil, fmt.Errorf("unknown payment provider %q", cfg.Payment.Provider)
	}
}
