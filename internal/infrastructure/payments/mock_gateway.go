package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"pix_storefront/internal/domain"
	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/infrastructure/logging"
	"pix_storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const ProviderMock = "mock"

// MockGateway answers locally with a fake PIX code, for development without
// provider credentials. Orders it issued report as paid on the first status check.
type MockGateway struct {
	mu     sync.Mutex
	orders map[string]entities.PaymentStatus
	now    func() time.Time
	logger zerolog.Logger
}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	return &MockGateway{
		orders: make(map[string]entities.PaymentStatus),
		now:    time.Now,
		logger: logging.Component("payment.gateway").With().Str("provider", ProviderMock).Logger(),
	}
}

func (g *MockGateway) Name() string { return ProviderMock }

func (g *MockGateway) CreatePixOrder(ctx context.Context, charge entities.PixCharge) (entities.PixPayment, error) {
	if charge.AmountCents <= 0 {
		return entities.PixPayment{}, domain.NewValidationError("amount", "must be greater than zero")
	}
	if err := ctx.Err(); err != nil {
		return entities.PixPayment{}, domain.NewGatewayError(ProviderMock, domain.GatewayReasonTimeout, 0, err)
	}

	id := "or_mock_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	now := g.now().UTC()
	code := fmt.Sprintf("00020101021226820014br.gov.bcb.pix2560mock.pix/%s5204000053039865406%d5802BR6304MOCK", id, charge.AmountCents)

	raw, err := json.Marshal(map[string]any{
		"id":     id,
		"code":   charge.Reference,
		"status": "pending",
		"amount": charge.AmountCents,
		"charges": []map[string]any{{
			"last_transaction": map[string]any{
				"qr_code":    code,
				"expires_at": now.Add(charge.ExpiresIn).Format(time.RFC3339),
			},
		}},
	})
	if err != nil {
		return entities.PixPayment{}, domain.NewGatewayError(ProviderMock, domain.GatewayReasonMalformed, 0, err)
	}

	g.mu.Lock()
	g.orders[id] = entities.PaymentStatusPending
	g.mu.Unlock()

	g.logger.Info().Str("order_id", id).Int64("amount_cents", charge.AmountCents).Msg("mock pix order created")
	return entities.PixPayment{
		OrderID:   id,
		Status:    entities.PaymentStatusPending,
		QRCode:    code,
		ExpiresAt: now.Add(charge.ExpiresIn),
		Raw:       raw,
	}, nil
}

func (g *MockGateway) GetOrderStatus(_ context.Context, orderID string) (entities.PaymentStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.orders[orderID]; !ok {
		return "", domain.NewGatewayError(ProviderMock, domain.GatewayReasonHTTPStatus, 404, fmt.Errorf("order %s %w", orderID, domain.ErrNotFound))
	}
	g.orders[orderID] = entities.PaymentStatusPaid
	return entities.PaymentStatusPaid, nil
}
