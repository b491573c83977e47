package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pix_storefront/internal/config"
	"pix_storefront/internal/domain"
	"pix_storefront/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const pagarmeOK = `{
  "id": "or_123",
  "status": "pending",
  "charges": [{
    "status": "pending",
    "last_transaction": {
      "status": "waiting_payment",
      "qr_code": "00020101pix-code",
      "qr_code_url": "https://api.pagar.me/qr/or_123.png",
      "expires_at": "2026-10-15T14:00:00Z"
    }
  }]
}`

func newTestPagarme(t *testing.T, handler http.HandlerFunc) *PagarmeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewPagarmeGateway(
		config.PagarmeConfig{SecretKey: "sk_test", BaseURL: srv.URL + "/core/v5/"},
		config.CustomerConfig{Name: "Cliente", Email: "cliente@example.com", Type: "individual", Document: "00000000000"},
	)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return g
}

func testCharge(amount string) entities.PixCharge {
	d := decimal.RequireFromString(amount)
	cents, _ := entities.ToCents(d)
	return entities.PixCharge{
		Reference:   "ref-1",
		Amount:      d,
		AmountCents: cents,
		Description: "Adição de Saldo",
		Code:        "123",
		ExpiresIn:   2 * time.Hour,
	}
}

func TestNewPagarmeGateway_MissingKey(t *testing.T) {
	_, err := NewPagarmeGateway(config.PagarmeConfig{}, config.CustomerConfig{})
	gwErr, ok := domain.IsGatewayError(err)
	if !ok || gwErr.Reason != domain.GatewayReasonNotConfigured {
		t.Fatalf("expected not_configured gateway error, got %v", err)
	}
}

func TestPagarmeGateway_CreatePixOrder(t *testing.T) {
	t.Run("success sends one authenticated request", func(t *testing.T) {
		var calls int
		g := newTestPagarme(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			if r.Method != http.MethodPost || r.URL.Path != "/core/v5/orders" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			user, pass, ok := r.BasicAuth()
			if !ok || user != "sk_test" || pass != "" {
				t.Errorf("unexpected basic auth %q %q %v", user, pass, ok)
			}

			b, _ := io.ReadAll(r.Body)
			var body map[string]any
			if err := json.Unmarshal(b, &body); err != nil {
				t.Errorf("body is not json: %v", err)
			}
			if body["closed"] != true {
				t.Errorf("expected closed=true, got %v", body["closed"])
			}
			item := body["items"].([]any)[0].(map[string]any)
			if item["amount"] != float64(36000) || item["quantity"] != float64(1) {
				t.Errorf("unexpected item: %v", item)
			}
			pay := body["payments"].([]any)[0].(map[string]any)
			if pay["payment_method"] != "pix" {
				t.Errorf("unexpected payment method: %v", pay["payment_method"])
			}
			pix := pay["pix"].(map[string]any)
			if pix["expires_in"] != float64(7200) {
				t.Errorf("unexpected expires_in: %v", pix["expires_in"])
			}
			customer := body["customer"].(map[string]any)
			if customer["email"] != "cliente@example.com" {
				t.Errorf("unexpected customer: %v", customer)
			}

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(pagarmeOK))
		})

		p, err := g.CreatePixOrder(context.Background(), testCharge("360.00"))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if calls != 1 {
			t.Fatalf("expected exactly one call, got %d", calls)
		}
		if p.OrderID != "or_123" || p.QRCode != "00020101pix-code" {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if p.QRCodeURL != "https://api.pagar.me/qr/or_123.png" {
			t.Fatalf("unexpected qr url: %q", p.QRCodeURL)
		}
		if p.Status != entities.PaymentStatusPending {
			t.Fatalf("unexpected status: %s", p.Status)
		}
		if !p.ExpiresAt.Equal(time.Date(2026, 10, 15, 14, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected expires_at: %s", p.ExpiresAt)
		}
		if !json.Valid(p.Raw) {
			t.Fatalf("raw payload should be kept")
		}
	})

	t.Run("qr url is optional", func(t *testing.T) {
		g := newTestPagarme(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":"or_1","charges":[{"last_transaction":{"qr_code":"abc"}}]}`))
		})
		p, err := g.CreatePixOrder(context.Background(), testCharge("180"))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if p.QRCode != "abc" || p.QRCodeURL != "" {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	malformed := map[string]string{
		"not json":         `<html>`,
		"no id":            `{"charges":[{"last_transaction":{"qr_code":"abc"}}]}`,
		"no charges":       `{"id":"or_1","charges":[]}`,
		"no transaction":   `{"id":"or_1","charges":[{}]}`,
		"no qr code":       `{"id":"or_1","charges":[{"last_transaction":{"qr_code_url":"x"}}]}`,
		"empty qr code":    `{"id":"or_1","charges":[{"last_transaction":{"qr_code":"  "}}]}`,
		"charges not list": `{"id":"or_1","charges":{}}`,
	}
	for name, body := range malformed {
		body := body
		t.Run("malformed "+name, func(t *testing.T) {
			g := newTestPagarme(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			_, err := g.CreatePixOrder(context.Background(), testCharge("180"))
			gwErr, ok := domain.IsGatewayError(err)
			if !ok || gwErr.Reason != domain.GatewayReasonMalformed {
				t.Fatalf("expected malformed_response, got %v", err)
			}
		})
	}

	t.Run("non-2xx", func(t *testing.T) {
		g := newTestPagarme(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Authorization has been denied"}`))
		})
		_, err := g.CreatePixOrder(context.Background(), testCharge("180"))
		gwErr, ok := domain.IsGatewayError(err)
		if !ok || gwErr.Reason != domain.GatewayReasonHTTPStatus || gwErr.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected http_status 401, got %v", err)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		g := newTestPagarme(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err := g.CreatePixOrder(ctx, testCharge("180"))
		gwErr, ok := domain.IsGatewayError(err)
		if !ok || gwErr.Reason != domain.GatewayReasonTimeout {
			t.Fatalf("expected timeout, got %v", err)
		}
	})

	t.Run("network", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		g, _ := NewPagarmeGateway(config.PagarmeConfig{SecretKey: "sk", BaseURL: url}, config.CustomerConfig{})
		_, err := g.CreatePixOrder(context.Background(), testCharge("180"))
		gwErr, ok := domain.IsGatewayError(err)
		if !ok || gwErr.Reason != domain.GatewayReasonNetwork {
			t.Fatalf("expected network, got %v", err)
		}
	})

	t.Run("non positive amount", func(t *testing.T) {
		g := newTestPagarme(t, func(w http.ResponseWriter, _ *http.Request) {
			t.Errorf("no request expected")
		})
		_, err := g.CreatePixOrder(context.Background(), entities.PixCharge{})
		var vErr *domain.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestPagarmeGateway_GetOrderStatus(t *testing.T) {
	cases := map[string]entities.PaymentStatus{
		"paid":       entities.PaymentStatusPaid,
		"pending":    entities.PaymentStatusPending,
		"processing": entities.PaymentStatusPending,
		"canceled":   entities.PaymentStatusCanceled,
		"failed":     entities.PaymentStatusFailed,
	}
	for providerStatus, want := range cases {
		providerStatus, want := providerStatus, want
		t.Run(providerStatus, func(t *testing.T) {
			g := newTestPagarme(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet || !strings.HasSuffix(r.URL.Path, "/orders/or_123") {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				_, _ = w.Write([]byte(`{"id":"or_123","status":"` + providerStatus + `"}`))
			})
			got, err := g.GetOrderStatus(context.Background(), "or_123")
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != want {
				t.Fatalf("expected %s, got %s", want, got)
			}
		})
	}

	t.Run("not found", func(t *testing.T) {
		g := newTestPagarme(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		_, err := g.GetOrderStatus(context.Background(), "or_x")
		gwErr, ok := domain.IsGatewayError(err)
		if !ok || gwErr.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404 gateway error, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		g := newTestPagarme(t, func(w http.ResponseWriter, _ *http.Request) {})
		if _, err := g.GetOrderStatus(context.Background(), " "); err == nil {
			t.Fatalf("expected error")
		}
	})
}
