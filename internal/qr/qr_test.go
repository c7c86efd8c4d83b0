package qr

import (
	"errors"
	"image"
	"testing"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []string{
		"ABC123",
		"https://example.com/resource?id=42",
		"short",
	}
	d := NewDecoder()
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			img, err := Encode(text, 256)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := d.Decode(img)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got != text {
				t.Errorf("round trip = %q, want %q", got, text)
			}
		})
	}
}

func TestDecode_BlankImage(t *testing.T) {
	d := NewDecoder()
	_, err := d.Decode(image.NewGray(image.Rect(0, 0, 64, 64)))
	if err == nil {
		t.Fatal("decoding a blank image should fail")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error %v should wrap ErrNotFound", err)
	}
}

func TestEncode_EmptyText(t *testing.T) {
	if _, err := Encode("", 64); err == nil {
		t.Error("encoding empty text should fail")
	}
}
