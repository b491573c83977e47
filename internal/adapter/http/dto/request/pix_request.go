package request

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingValor = errors.New("valor is required")
	ErrInvalidValor = errors.New("valor must be a positive amount with at most two decimals")
)

// PixQRCodeRequest is the body of POST /v1/pix/qrcode and the legacy
// POST /gerar-qrcode. valor accepts a JSON number or a numeric string.
type PixQRCodeRequest struct {
	Valor     *decimal.Decimal `json:"valor" swaggertype:"number" example:"180.00"`
	Descricao string           `json:"descricao,omitempty" example:"Adição de Saldo"`
	ChatID    int64            `json:"chat_id,omitempty"`
}

func (r PixQRCodeRequest) ResolveAmount() (decimal.Decimal, error) {
	if r.Valor == nil {
		return decimal.Decimal{}, ErrMissingValor
	}
	if !r.Valor.IsPositive() || !r.Valor.Equal(r.Valor.Round(2)) {
		return decimal.Decimal{}, ErrInvalidValor
	}
	return *r.Valor, nil
}
