package scan

import (
	"context"
	"errors"
	"image"
	"sync"

	"github.com/ryanezv/scan-qr-files/internal/config"
	"github.com/ryanezv/scan-qr-files/internal/logging"
)

// Shared fakes for the scan package tests.

// fakeRenderer serves a fixed image, or a per-path error.
type fakeRenderer struct {
	mu      sync.Mutex
	calls   int
	img     image.Image
	err     error
	pathErr map[string]error // keyed by full path; overrides err
}

func (f *fakeRenderer) Render(path string, page int) (image.Image, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if e, ok := f.pathErr[path]; ok {
		return nil, e
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.img != nil {
		return f.img, nil
	}
	return image.NewGray(image.Rect(0, 0, 8, 8)), nil
}

// fakeDecoder returns a fixed code or error and counts invocations.
type fakeDecoder struct {
	mu    sync.Mutex
	calls int
	code  string
	err   error
}

func (f *fakeDecoder) Decode(img image.Image) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.code, nil
}

func (f *fakeDecoder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// memStore is an in-memory AttributeStore.
type memStore struct {
	mu       sync.Mutex
	codes    map[string]string
	pages    map[string]int
	writeErr error
}

func newMemStore() *memStore {
	return &memStore{codes: map[string]string{}, pages: map[string]int{}}
}

func (m *memStore) ReadCode(path string) (string, int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	code, ok := m.codes[path]
	if !ok || code == "" {
		return "", 0, false
	}
	return code, m.pages[path], true
}

func (m *memStore) WriteCode(path string, page int, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.codes[path] = code
	m.pages[path] = page
	return nil
}

// fakeFetcher records requested URLs and serves a fixed payload or error.
type fakeFetcher struct {
	mu      sync.Mutex
	urls    []string
	payload string
	err     error
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.mu.Lock()
	f.urls = append(f.urls, url)
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.payload, nil
}

// fakeReport records the hand-off from the runner.
type fakeReport struct {
	mu      sync.Mutex
	calls   int
	results []Result
	dir     string
	err     error
}

func (f *fakeReport) Write(results []Result, dir string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.results = results
	f.dir = dir
	if f.err != nil {
		return "", f.err
	}
	return dir + "/fake-report.csv", nil
}

var errBoom = errors.New("boom")

// newTestLogger returns a quiet, colorless logger for tests.
func newTestLogger() *logging.Logger {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := logging.NewLogger(&cfg)
	if err != nil {
		panic(err)
	}
	return l
}
