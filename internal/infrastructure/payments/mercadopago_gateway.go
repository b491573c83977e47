package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pix_storefront/internal/config"
	"pix_storefront/internal/domain"
	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/infrastructure/logging"
	"pix_storefront/internal/usecase/interfaces"

	"github.com/rs/zerolog"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

const ProviderMercadoPago = "mercadopago"

// mercadoPagoPayments is the part of payment.Client the gateway uses.
type mercadoPagoPayments interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway issues PIX payments through the Mercado Pago SDK.
type MercadoPagoGateway struct {
	client     mercadoPagoPayments
	payerEmail string
	logger     zerolog.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(mc config.MercadoPagoConfig, customer config.CustomerConfig) (*MercadoPagoGateway, error) {
	logger := logging.Component("payment.gateway").With().Str("provider", ProviderMercadoPago).Logger()
	if strings.TrimSpace(mc.AccessToken) == "" {
		logger.Warn().Msg("missing access token")
		return nil, domain.NewGatewayError(ProviderMercadoPago, domain.GatewayReasonNotConfigured, 0, config.ErrMissingMercadoPagoAT)
	}

	cfg, err := mpconfig.New(mc.AccessToken)
	if err != nil {
		logger.Error().Err(err).Msg("failed creating sdk config")
		return nil, domain.NewGatewayError(ProviderMercadoPago, domain.GatewayReasonNotConfigured, 0, err)
	}
	logger.Info().Msg("Mercado Pago client initialized")

	return newMercadoPagoGateway(payment.NewClient(cfg), payerEmail(mc, customer)), nil
}

func newMercadoPagoGateway(client mercadoPagoPayments, email string) *MercadoPagoGateway {
	return &MercadoPagoGateway{
		client:     client,
		payerEmail: email,
		logger:     logging.Component("payment.gateway").With().Str("provider", ProviderMercadoPago).Logger(),
	}
}

func payerEmail(mc config.MercadoPagoConfig, customer config.CustomerConfig) string {
	if e := strings.TrimSpace(mc.PayerEmail); e != "" {
		return e
	}
	if e := strings.TrimSpace(customer.Email); e != "" {
		return e
	}
	// Sandbox-safe fallback recommended by Mercado Pago examples.
	if strings.HasPrefix(strings.TrimSpace(mc.AccessToken), "TEST-") {
		return "test_user_br@testuser.com"
	}
	return ""
}

func (g *MercadoPagoGateway) Name() string { return ProviderMercadoPago }

func (g *MercadoPagoGateway) CreatePixOrder(ctx context.Context, charge entities.PixCharge) (entities.PixPayment, error) {
	if charge.AmountCents <= 0 {
		return entities.PixPayment{}, domain.NewValidationError("amount", "must be greater than zero")
	}
	logger := g.logger.With().Str("reference", charge.Reference).Int64("amount_cents", charge.AmountCents).Logger()
	logger.Info().Msg("create pix payment start")

	req := payment.Request{
		TransactionAmount: entities.FromCents(charge.AmountCents).InexactFloat64(),
		PaymentMethodID:   "pix",
		Description:       charge.Description,
		ExternalReference: charge.Reference,
	}
	if charge.ExpiresIn > 0 {
		exp := time.Now().Add(charge.ExpiresIn).UTC()
		req.DateOfExpiration = &exp
	}
	if g.payerEmail != "" {
		req.Payer = &payment.PayerRequest{Email: g.payerEmail}
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("sdk create failed")
		return entities.PixPayment{}, classifySDKError(ctx, err)
	}

	p, err := parseMercadoPagoPayment(resp)
	if err != nil {
		logger.Error().Err(err).Msg("sdk create: malformed response")
		return entities.PixPayment{}, err
	}
	logger.Info().Str("order_id", p.OrderID).Str("status", string(p.Status)).Msg("create pix payment success")
	return p, nil
}

func (g *MercadoPagoGateway) GetOrderStatus(ctx context.Context, orderID string) (entities.PaymentStatus, error) {
	id, err := strconv.Atoi(strings.TrimSpace(orderID))
	if err != nil || id <= 0 {
		return "", domain.NewValidationError("order_id", "must be a numeric Mercado Pago payment id")
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		g.logger.Warn().Err(err).Str("order_id", orderID).Msg("sdk get failed")
		return "", classifySDKError(ctx, err)
	}
	if resp == nil || resp.Status == "" {
		return "", domain.NewGatewayError(ProviderMercadoPago, domain.GatewayReasonMalformed, 0, errors.New("missing payment status"))
	}
	return mapMercadoPagoStatus(resp.Status), nil
}

func parseMercadoPagoPayment(resp *payment.Response) (entities.PixPayment, error) {
	malformed := func(err error) (entities.PixPayment, error) {
		return entities.PixPayment{}, domain.NewGatewayError(ProviderMercadoPago, domain.GatewayReasonMalformed, 0, err)
	}
	if resp == nil || resp.ID == 0 {
		return malformed(errors.New("missing payment id"))
	}
	td := resp.PointOfInteraction.TransactionData
	if strings.TrimSpace(td.QRCode) == "" {
		return malformed(errors.New("missing point_of_interaction.transaction_data.qr_code"))
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return malformed(err)
	}

	p := entities.PixPayment{
		OrderID: strconv.Itoa(resp.ID),
		Status:  mapMercadoPagoStatus(resp.Status),
		QRCode:  td.QRCode,
		Raw:     raw,
	}
	if td.QRCodeBase64 != "" {
		if img, err := base64.StdEncoding.DecodeString(td.QRCodeBase64); err == nil {
			p.QRCodeImage = img
		}
	}
	if !resp.DateOfExpiration.IsZero() {
		p.ExpiresAt = resp.DateOfExpiration.UTC()
	}
	return p, nil
}

func mapMercadoPagoStatus(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "authorized":
		return entities.PaymentStatusPaid
	case "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusCanceled
	case "rejected":
		return entities.PaymentStatusFailed
	case "expired":
		return entities.PaymentStatusExpired
	default:
		return entities.PaymentStatusPending
	}
}

// classifySDKError maps SDK failures. The SDK reports HTTP errors as text that
// carries the status code, e.g. `"status":400`.
func classifySDKError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.NewGatewayError(ProviderMercadoPago, domain.GatewayReasonTimeout, 0, err)
	}
	msg := strings.ToLower(err.Error())
	for _, code := range []int{400, 401, 403, 404, 409, 422, 429, 500, 502, 503} {
		if strings.Contains(msg, fmt.Sprintf(`"status":%d`, code)) {
			return domain.NewGatewayError(ProviderMercadoPago, domain.GatewayReasonHTTPStatus, code, err)
		}
	}
	return domain.NewGatewayError(ProviderMercadoPago, domain.GatewayReasonNetwork, 0, err)
}
