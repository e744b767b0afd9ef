package qrcode

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
)

func TestPNGEncodesLink(t *testing.T) {
	g := NewGenerator(128)
	out, err := g.PNG("https://sandbox.intasend.com/pay/3f1c1e2a/")
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if got := img.Bounds().Dx(); got != 128 {
		t.Fatalf("expected 128px wide image got %d", got)
	}
}

func TestPNGRejectsEmptyContent(t *testing.T) {
	if _, err := NewGenerator(128).PNG(""); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent got %v", err)
	}
}

func TestNewGeneratorClampsSize(t *testing.T) {
	if got := NewGenerator(1).Size(); got != minSize {
		t.Fatalf("expected %d got %d", minSize, got)
	}
	if got := NewGenerator(1 << 20).Size(); got != maxSize {
		t.Fatalf("expected %d got %d", maxSize, got)
	}
}
