package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pix_storefront/internal/config"
	"pix_storefront/internal/domain"
	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/infrastructure/logging"
	"pix_storefront/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

const (
	ProviderPagarme       = "pagarme"
	DefaultPagarmeBaseURL = "https://api.pagar.me/core/v5"

	// maxErrorBody caps how much of a provider error body is kept for logs.
	maxErrorBody = 2048
)

// PagarmeGateway talks to the Pagar.me Core API v5 orders endpoint.
type PagarmeGateway struct {
	client    *http.Client
	baseURL   string
	secretKey string
	customer  pagarmeCustomer
	logger    zerolog.Logger
}

var _ interfaces.IPaymentGateway = (*PagarmeGateway)(nil)

type PagarmeOption func(*PagarmeGateway)

// WithHTTPClient replaces the default client. Deadlines come from the caller's
// context, so the client itself needs no timeout.
func WithHTTPClient(c *http.Client) PagarmeOption {
	return func(g *PagarmeGateway) { g.client = c }
}

func NewPagarmeGateway(pc config.PagarmeConfig, customer config.CustomerConfig, opts ...PagarmeOption) (*PagarmeGateway, error) {
	if strings.TrimSpace(pc.SecretKey) == "" {
		return nil, domain.NewGatewayError(ProviderPagarme, domain.GatewayReasonNotConfigured, 0, config.ErrMissingPagarmeKey)
	}
	baseURL := strings.TrimRight(strings.TrimSpace(pc.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultPagarmeBaseURL
	}

	g := &PagarmeGateway{
		client:    &http.Client{},
		baseURL:   baseURL,
		secretKey: pc.SecretKey,
		customer:  newPagarmeCustomer(customer),
		logger:    logging.Component("payment.gateway").With().Str("provider", ProviderPagarme).Logger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *PagarmeGateway) Name() string { return ProviderPagarme }

type pagarmePhone struct {
	CountryCode string `json:"country_code"`
	AreaCode    string `json:"area_code"`
	Number      string `json:"number"`
}

type pagarmeCustomer struct {
	Name     string          `json:"name,omitempty"`
	Type     string          `json:"type,omitempty"`
	Email    string          `json:"email,omitempty"`
	Document string          `json:"document,omitempty"`
	Address  *pagarmeAddress `json:"address,omitempty"`
	Phones   *pagarmePhones  `json:"phones,omitempty"`
}

type pagarmeAddress struct {
	Line1   string `json:"line_1"`
	Line2   string `json:"line_2,omitempty"`
	ZipCode string `json:"zip_code"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type pagarmePhones struct {
	HomePhone   *pagarmePhone `json:"home_phone,omitempty"`
	MobilePhone *pagarmePhone `json:"mobile_phone,omitempty"`
}

func newPagarmeCustomer(c config.CustomerConfig) pagarmeCustomer {
	out := pagarmeCustomer{
		Name:     c.Name,
		Type:     c.Type,
		Email:    c.Email,
		Document: c.Document,
	}
	if c.Address.Line1 != "" {
		out.Address = &pagarmeAddress{
			Line1:   c.Address.Line1,
			Line2:   c.Address.Line2,
			ZipCode: c.Address.ZipCode,
			City:    c.Address.City,
			State:   c.Address.State,
			Country: c.Address.Country,
		}
	}
	if c.Phone.Number != "" {
		phone := &pagarmePhone{CountryCode: c.Phone.CountryCode, AreaCode: c.Phone.AreaCode, Number: c.Phone.Number}
		out.Phones = &pagarmePhones{HomePhone: phone, MobilePhone: phone}
	}
	return out
}

type pagarmeItem struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Code        string `json:"code"`
}

type pagarmeAdditionalInfo struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type pagarmePix struct {
	ExpiresIn             int64                   `json:"expires_in"`
	AdditionalInformation []pagarmeAdditionalInfo `json:"additional_information,omitempty"`
}

type pagarmePayment struct {
	PaymentMethod string     `json:"payment_method"`
	Pix           pagarmePix `json:"pix"`
}

type pagarmeOrderRequest struct {
	Code     string           `json:"code,omitempty"`
	Closed   bool             `json:"closed"`
	Customer pagarmeCustomer  `json:"customer"`
	Items    []pagarmeItem    `json:"items"`
	Payments []pagarmePayment `json:"payments"`
}

// pagarmeOrderResponse holds only what is read; nested values are pointers so a
// missing field can be told apart from an empty one.
type pagarmeOrderResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Charges []struct {
		Status          string `json:"status"`
		LastTransaction *struct {
			Status    string  `json:"status"`
			QRCode    *string `json:"qr_code"`
			QRCodeURL *string `json:"qr_code_url"`
			ExpiresAt *string `json:"expires_at"`
		} `json:"last_transaction"`
	} `json:"charges"`
}

func (g *PagarmeGateway) buildOrderRequest(charge entities.PixCharge) pagarmeOrderRequest {
	return pagarmeOrderRequest{
		Code:     charge.Reference,
		Closed:   true,
		Customer: g.customer,
		Items: []pagarmeItem{{
			Amount:      charge.AmountCents,
			Description: charge.Description,
			Quantity:    1,
			Code:        charge.Code,
		}},
		Payments: []pagarmePayment{{
			PaymentMethod: "pix",
			Pix: pagarmePix{
				ExpiresIn: int64(charge.ExpiresIn / time.Second),
				AdditionalInformation: []pagarmeAdditionalInfo{{
					Name:  "Saldo",
					Value: charge.Amount.StringFixed(2),
				}},
			},
		}},
	}
}

// CreatePixOrder performs exactly one POST /orders.
func (g *PagarmeGateway) CreatePixOrder(ctx context.Context, charge entities.PixCharge) (entities.PixPayment, error) {
	if charge.AmountCents <= 0 {
		return entities.PixPayment{}, domain.NewValidationError("amount", "must be greater than zero")
	}
	logger := g.logger.With().Str("reference", charge.Reference).Int64("amount_cents", charge.AmountCents).Logger()
	logger.Info().Msg("create pix order start")

	body, err := json.Marshal(g.buildOrderRequest(charge))
	if err != nil {
		return entities.PixPayment{}, domain.NewGatewayError(ProviderPagarme, domain.GatewayReasonMalformed, 0, err)
	}

	status, raw, err := g.do(ctx, http.MethodPost, g.baseURL+"/orders", body)
	if err != nil {
		logger.Error().Err(err).Msg("create pix order failed")
		return entities.PixPayment{}, err
	}

	payment, err := parsePagarmeOrder(raw)
	if err != nil {
		logger.Error().Err(err).Int("status", status).Msg("create pix order: malformed response")
		return entities.PixPayment{}, err
	}
	logger.Info().Str("order_id", payment.OrderID).Str("status", string(payment.Status)).Msg("create pix order success")
	return payment, nil
}

func (g *PagarmeGateway) GetOrderStatus(ctx context.Context, orderID string) (entities.PaymentStatus, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return "", domain.NewValidationError("order_id", "must not be empty")
	}

	_, raw, err := g.do(ctx, http.MethodGet, g.baseURL+"/orders/"+url.PathEscape(orderID), nil)
	if err != nil {
		g.logger.Warn().Err(err).Str("order_id", orderID).Msg("get order status failed")
		return "", err
	}

	var resp pagarmeOrderResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", domain.NewGatewayError(ProviderPagarme, domain.GatewayReasonMalformed, 0, err)
	}
	if resp.Status == "" {
		return "", domain.NewGatewayError(ProviderPagarme, domain.GatewayReasonMalformed, 0, errors.New("missing order status"))
	}
	return mapPagarmeStatus(resp.Status), nil
}

func (g *PagarmeGateway) do(ctx context.Context, method, endpoint string, body []byte) (int, json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, nil, domain.NewGatewayError(ProviderPagarme, domain.GatewayReasonNetwork, 0, err)
	}
	req.SetBasicAuth(g.secretKey, "")
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, nil, classifyTransportError(ctx, ProviderPagarme, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, classifyTransportError(ctx, ProviderPagarme, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(raw) > maxErrorBody {
			raw = raw[:maxErrorBody]
		}
		g.logger.Warn().Int("status", resp.StatusCode).Str("body", string(raw)).Msg("provider returned non-2xx")
		return resp.StatusCode, nil, domain.NewGatewayError(ProviderPagarme, domain.GatewayReasonHTTPStatus, resp.StatusCode,
			fmt.Errorf("%s %s returned %d", method, endpoint, resp.StatusCode))
	}
	return resp.StatusCode, raw, nil
}

func parsePagarmeOrder(raw []byte) (entities.PixPayment, error) {
	malformed := func(err error) (entities.PixPayment, error) {
		return entities.PixPayment{}, domain.NewGatewayError(ProviderPagarme, domain.GatewayReasonMalformed, 0, err)
	}

	var resp pagarmeOrderResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return malformed(err)
	}
	if strings.TrimSpace(resp.ID) == "" {
		return malformed(errors.New("missing order id"))
	}
	if len(resp.Charges) == 0 {
		return malformed(errors.New("missing charges"))
	}
	tx := resp.Charges[0].LastTransaction
	if tx == nil {
		return malformed(errors.New("missing charges[0].last_transaction"))
	}
	if tx.QRCode == nil || strings.TrimSpace(*tx.QRCode) == "" {
		return malformed(errors.New("missing charges[0].last_transaction.qr_code"))
	}

	p := entities.PixPayment{
		OrderID: resp.ID,
		Status:  mapPagarmeStatus(resp.Status),
		QRCode:  *tx.QRCode,
		Raw:     json.RawMessage(raw),
	}
	if tx.QRCodeURL != nil {
		p.QRCodeURL = strings.TrimSpace(*tx.QRCodeURL)
	}
	if tx.ExpiresAt != nil {
		if ts, err := time.Parse(time.RFC3339, *tx.ExpiresAt); err == nil {
			p.ExpiresAt = ts.UTC()
		}
	}
	return p, nil
}

func mapPagarmeStatus(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paid":
		return entities.PaymentStatusPaid
	case "canceled":
		return entities.PaymentStatusCanceled
	case "failed":
		return entities.PaymentStatusFailed
	default:
		return entities.PaymentStatusPending
	}
}

func classifyTransportError(ctx context.Context, provider string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.NewGatewayError(provider, domain.GatewayReasonTimeout, 0, err)
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.NewGatewayError(provider, domain.GatewayReasonTimeout, 0, err)
	}
	return domain.NewGatewayError(provider, domain.GatewayReasonNetwork, 0, err)
}
