// Package render turns a (document, page) pair into an image.Image using
// pdfcpu. Scanned PDFs carry each page as one large embedded raster; the
// renderer extracts the images on the target page and decodes the largest
// one, which is the page scan itself.
package render

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	// Register decoders for the image formats pdfcpu extracts.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Sentinel errors distinguishing "page unreachable" from "page empty".
var (
	// ErrPageNotFound means the document has fewer pages than requested.
	ErrPageNotFound = errors.New("page not found in document")
	// ErrNoPageImage means the page exists but carries no decodable raster,
	// so no QR code can be present on it.
	ErrNoPageImage = errors.New("no image on page")
)

// Renderer extracts page images from PDF files. Safe for concurrent use.
type Renderer struct {
	conf *model.Configuration
}

// New returns a Renderer with relaxed validation, so slightly malformed
// scanner output still opens.
func New() *Renderer {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Renderer{conf: conf}
}

// Render returns the dominant raster of the given 1-based page.
// Open/parse failures and out-of-range pages surface as errors (the batch
// classifies them as access failures); a present-but-imageless page returns
// ErrNoPageImage.
func (r *Renderer) Render(path string, page int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	count, err := api.PageCount(f, r.conf)
	if err != nil {
		return nil, fmt.Errorf("page count of %s: %w", path, err)
	}
	if page > count {
		return nil, fmt.Errorf("%w: want page %d, document has %d", ErrPageNotFound, page, count)
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("rewind %s: %w", path, err)
	}
	pages, err := api.ExtractImagesRaw(f, []string{strconv.Itoa(page)}, r.conf)
	if err != nil {
		return nil, fmt.Errorf("extract images from %s page %d: %w", path, page, err)
	}

	img := largestImage(pages)
	if img == nil {
		return nil, fmt.Errorf("%w: %s page %d", ErrNoPageImage, path, page)
	}
	return img, nil
}

// largestImage decodes every extracted image and returns the one covering
// the most pixels. Undecodable entries are skipped; nil when nothing
// decodes.
func largestImage(pages []map[int]model.Image) image.Image {
	var best image.Image
	var bestArea int
	for _, imgs := range pages {
		for _, pi := range imgs {
			img, _, err := image.Decode(pi)
			if err != nil {
				continue
			}
			b := img.Bounds()
			if area := b.Dx() * b.Dy(); area > bestArea {
				best, bestArea = img, area
			}
		}
	}
	return best
}
