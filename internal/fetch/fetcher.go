// Package fetch resolves decoded URL values into their response bodies.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxBody caps how much of a resolved payload is kept. Reports embed the
// payload inline, so unbounded bodies are not useful.
const maxBody = 1 << 20 // 1 MiB

// Fetcher performs the HTTP GETs for decoded URL values. Safe for
// concurrent use.
type Fetcher struct {
	client *http.Client
}

// New returns a Fetcher whose requests give up after timeout.
func New(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch GETs url and returns the response body with surrounding whitespace
// trimmed. Non-2xx responses are errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", fmt.Errorf("read body of %s: %w", url, err)
	}
	return strings.TrimSpace(string(body)), nil
}
