package qr

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// Encode renders text as a size×size QR code image. Used by the --check
// decoder self-test and by tests; the scan pipeline itself only decodes.
func Encode(text string, size int) (image.Image, error) {
	matrix, err := qrcode.NewQRCodeWriter().Encode(
		text, gozxing.BarcodeFormat_QR_CODE, size, size, nil)
	if err != nil {
		return nil, fmt.Errorf("encode QR code: %w", err)
	}
	return matrix, nil
}
