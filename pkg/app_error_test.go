package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("provider said no")
	appErr := NewDomainError("PAYMENT_PROVIDER_ERROR", "Erro ao gerar o PIX", cause, http.StatusBadGateway)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause")
	}
	body := appErr.ToHTTPError()
	if body.Code != "PAYMENT_PROVIDER_ERROR" || body.Error != "Erro ao gerar o PIX" {
		t.Fatalf("unexpected body %+v", body)
	}

	simple := NewDomainErrorSimple("PIX_ORDER_NOT_FOUND", "PIX order not found", http.StatusNotFound)
	if simple.Error() != "PIX_ORDER_NOT_FOUND: PIX order not found" {
		t.Fatalf("unexpected message %q", simple.Error())
	}
}
