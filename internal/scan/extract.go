package scan

import (
	"context"
	"errors"
	"image"

	"github.com/ryanezv/scan-qr-files/internal/logging"
	"github.com/ryanezv/scan-qr-files/internal/render"
)

// PageRenderer turns a (document, page) pair into a raster. Implemented by
// the pdfcpu renderer; faked in tests.
type PageRenderer interface {
	Render(path string, page int) (image.Image, error)
}

// SymbolDecoder reads a QR code value from a page raster.
type SymbolDecoder interface {
	Decode(img image.Image) (string, error)
}

// AttributeStore persists decoded codes as per-file metadata. Absence of a
// cached value is reported via ok, not an error.
type AttributeStore interface {
	ReadCode(path string) (code string, page int, ok bool)
	WriteCode(path string, page int, code string) error
}

// OutcomeKind classifies a single extraction attempt.
type OutcomeKind int

const (
	// OutcomeDecoded means a code was obtained, from cache or a fresh decode.
	OutcomeDecoded OutcomeKind = iota
	// OutcomeAccessFailed means the file or the target page was unreachable.
	OutcomeAccessFailed
	// OutcomeNotFound means the page was readable but held no decodable code.
	OutcomeNotFound
)

// Outcome is the transient result of one extraction. Exactly one of Code
// (for OutcomeDecoded) and Err (otherwise) is meaningful.
type Outcome struct {
	Kind OutcomeKind
	Code string
	Err  error
}

// Extractor decides between reusing a cached code and decoding the page,
// and writes the cache back after a successful decode. All failure modes
// come back as Outcome variants; nothing escapes the item boundary.
type Extractor struct {
	Renderer PageRenderer
	Decoder  SymbolDecoder
	Store    AttributeStore
	Log      *logging.Logger
	Verbose  bool
}

// Extract obtains the code for doc at the 1-based page. When useAttrs is
// set and the store holds a code recorded for this very page, that code is
// returned without touching the document. Otherwise the page is rendered
// and decoded; with writeAttrs set, a successful decode is persisted
// best-effort (a cache-write failure is logged, never a failure of the
// item).
func (e *Extractor) Extract(ctx context.Context, doc *Document, page int, useAttrs, writeAttrs bool) Outcome {
	if err := ctx.Err(); err != nil {
		return Outcome{Kind: OutcomeAccessFailed, Err: err}
	}

	if useAttrs {
		if code, cachedPage, ok := e.Store.ReadCode(doc.Path); ok {
			doc.SetCached(cachedPage, code)
			if cached, ok := doc.CachedFor(page); ok {
				e.Log.Debug(e.Verbose, "Using stored attribute for %s", doc.Path)
				return Outcome{Kind: OutcomeDecoded, Code: cached}
			}
			e.Log.Debug(e.Verbose, "Stored attribute of %s is for page %d, rescanning page %d",
				doc.Path, cachedPage, page)
		}
	}

	img, err := e.Renderer.Render(doc.Path, page)
	if err != nil {
		// A page without any raster cannot carry a code; everything else is
		// an access problem (missing page, corrupt or unreadable file).
		if errors.Is(err, render.ErrNoPageImage) {
			return Outcome{Kind: OutcomeNotFound, Err: err}
		}
		return Outcome{Kind: OutcomeAccessFailed, Err: err}
	}

	code, err := e.Decoder.Decode(img)
	if err != nil {
		// The page was reachable, so any decode miss means no code there.
		return Outcome{Kind: OutcomeNotFound, Err: err}
	}

	if writeAttrs {
		if err := e.Store.WriteCode(doc.Path, page, code); err != nil {
			e.Log.Warn("Could not store attribute on %s: %v", doc.Path, err)
		} else {
			doc.SetCached(page, code)
		}
	}
	return Outcome{Kind: OutcomeDecoded, Code: code}
}
