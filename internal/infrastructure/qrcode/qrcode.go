// Package qrcode renders PIX copy-and-paste codes as QR images.
package qrcode

import (
	"errors"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

const DefaultSize = 256

var ErrEmptyContent = errors.New("qrcode: empty content")

type Renderer struct {
	size int
}

func NewRenderer(size int) *Renderer {
	if size <= 0 {
		size = DefaultSize
	}
	return &Renderer{size: size}
}

// PNG encodes content with medium error correction.
func (r *Renderer) PNG(content string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	return qr.Encode(content, qr.Medium, r.size)
}

// Terminal renders content with half-block characters for a terminal.
func Terminal(content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}
	code, err := qr.New(content, qr.Medium)
	if err != nil {
		return "", err
	}
	return code.ToSmallString(false), nil
}
