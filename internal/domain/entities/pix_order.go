package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the provider-neutral status of a PIX order.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusCanceled PaymentStatus = "canceled"
	PaymentStatusExpired  PaymentStatus = "expired"
)

// Final reports whether the status can no longer change.
func (s PaymentStatus) Final() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusFailed, PaymentStatusCanceled, PaymentStatusExpired:
		return true
	}
	return false
}

// PixCharge is what a gateway needs to open a PIX order.
type PixCharge struct {
	Reference   string
	Amount      decimal.Decimal
	AmountCents int64
	Description string
	Code        string
	ExpiresIn   time.Duration
}

// PixPayment is the validated result of a gateway "create order" call.
// QRCode is always present; QRCodeURL and QRCodeImage are optional.
type PixPayment struct {
	OrderID     string
	Status      PaymentStatus
	QRCode      string
	QRCodeURL   string
	QRCodeImage []byte
	ExpiresAt   time.Time
	Raw         json.RawMessage
}

// PixOrderRequest asks for a PIX order of Amount. Category and tier are empty for
// orders created outside the wizard.
type PixOrderRequest struct {
	ChatID      int64
	CategoryID  string
	Tier        string
	Amount      decimal.Decimal
	Description string
}

// PixOrder is the record kept for every PIX order issued.
//
// Storage model (DynamoDB):
//   - PK: id (provider order id)
//   - GSI1 (chat_id-index): chat_id
type PixOrder struct {
	ID          string          `json:"id"`
	Reference   string          `json:"reference"`
	Provider    string          `json:"provider"`
	ChatID      int64           `json:"chat_id,omitempty"`
	CategoryID  string          `json:"category_id,omitempty"`
	Tier        string          `json:"tier,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	AmountCents int64           `json:"amount_cents"`
	Status      PaymentStatus   `json:"status"`
	QRCode      string          `json:"qr_code"`
	QRCodeURL   string          `json:"qr_code_url,omitempty"`
	QRCodeImage []byte          `json:"-"`
	ExpiresAt   time.Time       `json:"expires_at"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
