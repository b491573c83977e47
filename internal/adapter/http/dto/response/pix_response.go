package response

import (
	"encoding/json"
	"time"

	"pix_storefront/internal/domain/entities"
)

type PixOrderResponse struct {
	OrderID     string    `json:"order_id"`
	Reference   string    `json:"reference"`
	Provider    string    `json:"provider"`
	Status      string    `json:"status"`
	Amount      string    `json:"amount"`
	AmountCents int64     `json:"amount_cents"`
	QRCode      string    `json:"qr_code"`
	QRCodeURL   string    `json:"qr_code_url,omitempty"`
	ChatID      int64     `json:"chat_id,omitempty"`
	CategoryID  string    `json:"category_id,omitempty"`
	Tier        string    `json:"tier,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	ProviderPayload json.RawMessage `json:"provider_payload,omitempty" swaggertype:"object"`
}

func FromPixOrder(o entities.PixOrder) PixOrderResponse {
	res := PixOrderResponse{
		OrderID:     o.ID,
		Reference:   o.Reference,
		Provider:    o.Provider,
		Status:      string(o.Status),
		Amount:      o.Amount.StringFixed(2),
		AmountCents: o.AmountCents,
		QRCode:      o.QRCode,
		QRCodeURL:   o.QRCodeURL,
		ChatID:      o.ChatID,
		CategoryID:  o.CategoryID,
		Tier:        o.Tier,
		ExpiresAt:   o.ExpiresAt,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if json.Valid(o.ProviderPayloadRaw) {
		res.ProviderPayload = o.ProviderPayloadRaw
	}
	return res
}

func FromPixOrders(orders []entities.PixOrder) []PixOrderResponse {
	out := make([]PixOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromPixOrder(o))
	}
	return out
}

// PixStatusResponse is returned by the status routes.
type PixStatusResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Paid    bool   `json:"paid"`
}

func FromPixStatus(o entities.PixOrder) PixStatusResponse {
	return PixStatusResponse{
		OrderID: o.ID,
		Status:  string(o.Status),
		Paid:    o.Status == entities.PaymentStatusPaid,
	}
}

type PingResponse struct {
	Message string `json:"message" example:"pong"`
}
