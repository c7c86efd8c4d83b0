// Package qr wraps the gozxing QR reader behind the decoder interface used
// by the scan pipeline.
package qr

import (
	"errors"
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ErrNotFound is returned when the image holds no decodable QR code.
var ErrNotFound = errors.New("no QR code found")

// Decoder decodes QR codes from page images. The zero value is not usable;
// create one with NewDecoder. Decode is safe for concurrent use: a fresh
// gozxing reader is created per call because the reader keeps decode state.
type Decoder struct {
	hints map[gozxing.DecodeHintType]interface{}
}

// NewDecoder returns a Decoder with the TryHarder hint enabled, matching
// the thoroughness of the original zxing configuration.
func NewDecoder() *Decoder {
	return &Decoder{
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

// Decode returns the text of the QR code in img, or ErrNotFound when no
// code is present or legible.
func (d *Decoder) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("binarize page image: %w", err)
	}
	result, err := qrcode.NewQRCodeReader().Decode(bmp, d.hints)
	if err != nil {
		// gozxing reports both "nothing there" and "unreadable" as reader
		// errors; the pipeline treats every decode miss as not found.
		return "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return result.GetText(), nil
}
