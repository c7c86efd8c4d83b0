package scan

import (
	"context"
	"strings"

	"github.com/ryanezv/scan-qr-files/internal/logging"
)

// Status is the externally visible per-document outcome vocabulary.
type Status string

const (
	// StatusCodeFound means a code was decoded (or reused from cache).
	StatusCodeFound Status = "CODE_FOUND"
	// StatusNoFileAccess means the file or the target page was unreachable.
	StatusNoFileAccess Status = "NO_FILE_ACCESS"
	// StatusNoCodeFound means the page was readable but held no code.
	StatusNoCodeFound Status = "NO_CODE_FOUND"
)

// unresolvedPrefix marks payloads whose URL could not be fetched. The code
// itself was still found, so the status stays CODE_FOUND.
const unresolvedPrefix = "UNRESOLVED: "

// Result is the immutable per-document record accumulated by the runner
// and serialized into the report.
type Result struct {
	// Path of the scanned document.
	Path string
	// Status is exactly one of the three Status values.
	Status Status
	// Page is the 1-based page that was scanned.
	Page int
	// Code is the decoded value; empty unless Status is StatusCodeFound.
	Code string
	// Payload is the fetched body for URL codes; empty when the code is not
	// a URL or fetching is disabled, UNRESOLVED-prefixed when the fetch
	// failed.
	Payload string
}

// ResourceFetcher resolves a URL value into its payload.
type ResourceFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Classifier maps extraction outcomes onto Results and, for URL-shaped
// codes, attaches the resolved payload.
type Classifier struct {
	Fetcher   ResourceFetcher
	FetchURLs bool
	Log       *logging.Logger
}

// Classify builds the Result for doc at page from outcome. Pure except for
// the optional URL fetch; a fetch failure attaches the unresolved sentinel
// instead of downgrading the status.
func (c *Classifier) Classify(ctx context.Context, doc *Document, page int, outcome Outcome) Result {
	res := Result{Path: doc.Path, Page: page}
	switch outcome.Kind {
	case OutcomeDecoded:
		res.Status = StatusCodeFound
		res.Code = outcome.Code
		res.Payload = c.resolvePayload(ctx, outcome.Code)
	case OutcomeAccessFailed:
		res.Status = StatusNoFileAccess
	case OutcomeNotFound:
		res.Status = StatusNoCodeFound
	}
	return res
}

// resolvePayload fetches the payload for URL-shaped codes when enabled.
func (c *Classifier) resolvePayload(ctx context.Context, code string) string {
	if !c.FetchURLs || !IsFetchable(code) || c.Fetcher == nil {
		return ""
	}
	payload, err := c.Fetcher.Fetch(ctx, code)
	if err != nil {
		c.Log.Warn("Could not resolve %s: %v", code, err)
		return unresolvedPrefix + code
	}
	return payload
}

// IsFetchable reports whether a decoded value is a fetchable network
// reference, i.e. starts with a recognized URL scheme.
func IsFetchable(code string) bool {
	return strings.HasPrefix(code, "http://") || strings.HasPrefix(code, "https://")
}
