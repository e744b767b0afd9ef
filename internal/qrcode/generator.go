// Package qrcode renders payment link URLs as PNG QR codes.
package qrcode

import (
	"errors"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

const (
	minSize = 64
	maxSize = 1024
)

var ErrEmptyContent = errors.New("qr content is empty")

type Generator struct {
	size int
}

// NewGenerator clamps size to a sensible pixel range.
func NewGenerator(size int) *Generator {
	switch {
	case size < minSize:
		size = minSize
	case size > maxSize:
		size = maxSize
	}
	return &Generator{size: size}
}

// PNG encodes content at medium error correction.
func (g *Generator) PNG(content string) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	png, err := qr.Encode(content, qr.Medium, g.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

func (g *Generator) Size() int { return g.size }
