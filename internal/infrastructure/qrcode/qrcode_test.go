package qrcode

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRenderer_PNG(t *testing.T) {
	t.Run("renders png", func(t *testing.T) {
		img, err := NewRenderer(0).PNG("00020101021226850014br.gov.bcb.pix")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !bytes.HasPrefix(img, pngMagic) {
			t.Fatalf("expected png header, got %x", img[:8])
		}
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := NewRenderer(128).PNG("  ")
		if !errors.Is(err, ErrEmptyContent) {
			t.Fatalf("expected ErrEmptyContent, got %v", err)
		}
	})
}

func TestTerminal(t *testing.T) {
	out, err := Terminal("pix-code")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(strings.Split(strings.TrimSpace(out), "\n")) < 5 {
		t.Fatalf("unexpected terminal qr: %q", out)
	}

	if _, err := Terminal(""); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}
