package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestPixQRCodeRequest_ResolveAmount(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr error
	}{
		{name: "number", body: `{"valor": 180}`, want: "180"},
		{name: "decimal number", body: `{"valor": 360.50}`, want: "360.5"},
		{name: "numeric string", body: `{"valor": "250.00"}`, want: "250"},
		{name: "missing", body: `{}`, wantErr: ErrMissingValor},
		{name: "null", body: `{"valor": null}`, wantErr: ErrMissingValor},
		{name: "zero", body: `{"valor": 0}`, wantErr: ErrInvalidValor},
		{name: "negative", body: `{"valor": -1}`, wantErr: ErrInvalidValor},
		{name: "sub cent", body: `{"valor": 1.005}`, wantErr: ErrInvalidValor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req PixQRCodeRequest
			if err := json.Unmarshal([]byte(tc.body), &req); err != nil {
				t.Fatalf("unexpected unmarshal error: %v", err)
			}
			got, err := req.ResolveAmount()
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got.String() != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got.String())
			}
		})
	}
}

func TestPixQRCodeRequest_RejectsNonNumeric(t *testing.T) {
	var req PixQRCodeRequest
	if err := json.Unmarshal([]byte(`{"valor": "abc"}`), &req); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}
