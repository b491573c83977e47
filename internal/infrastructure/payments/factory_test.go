package payments

import (
	"testing"

	"pix_storefront/internal/config"
)

func TestNewGateway(t *testing.T) {
	cfg := &config.Config{}

	cfg.Payment.Provider = config.ProviderMock
	g, err := NewGateway(cfg)
	if err != nil || g.Name() != ProviderMock {
		t.Fatalf("expected mock gateway, got %v %v", g, err)
	}

	cfg.Payment.Provider = config.ProviderPagarme
	cfg.Pagarme = config.PagarmeConfig{SecretKey: "sk_test"}
	g, err = NewGateway(cfg)
	if err != nil || g.Name() != ProviderPagarme {
		t.Fatalf("expected pagarme gateway, got %v %v", g, err)
	}

	cfg.Payment.Provider = config.ProviderMercadoPago
	if _, err := NewGateway(cfg); err == nil {
		t.Fatalf("expected error without access token")
	}

	cfg.Payment.Provider = "paypal"
	if _, err := NewGateway(cfg); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}
