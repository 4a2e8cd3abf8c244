package brandprint

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/alnah/go-brandprint/internal/assets"
)

// failingLoader returns an error for every mark.
type failingLoader struct{}

func (failingLoader) LoadMark(theme, kind string) (assets.Mark, error) {
	return assets.Mark{}, assets.ErrMarkNotFound
}

// mockRenderer records rendered documents and returns canned output.
type mockRenderer struct {
	mu      sync.Mutex
	output  []byte
	err     error
	calls   []string
	closed  bool
	closeFn func() error
}

func (m *mockRenderer) RenderPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, htmlContent)
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return []byte("%PDF-1.4 mock"), nil
}

func (m *mockRenderer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	if m.closeFn != nil {
		return m.closeFn()
	}
	return nil
}

// withRenderer injects a renderer in place of the browser.
func withRenderer(r pdfRenderer) Option {
	return func(c *Converter) {
		c.renderer = r
	}
}

// mustAsset returns a built-in asset type or fails the test.
func mustAsset(t *testing.T, id string) AssetTypeConfig {
	t.Helper()
	a, ok := LookupAssetType(id)
	if !ok {
		t.Fatalf("LookupAssetType(%q) not found", id)
	}
	return a
}

// bodyOf returns the markup between <body> and </body>.
func bodyOf(t *testing.T, doc string) string {
	t.Helper()
	_, after, ok := strings.Cut(doc, "<body>")
	if !ok {
		t.Fatalf("document has no <body>: %.80q", doc)
	}
	body, _, ok := strings.Cut(after, "</body>")
	if !ok {
		t.Fatalf("document has no </body>: %.80q", doc)
	}
	return body
}

// styleOf returns the contents of the single <style> element.
func styleOf(t *testing.T, doc string) string {
	t.Helper()
	_, after, ok := strings.Cut(doc, "<style>")
	if !ok {
		t.Fatalf("document has no <style>")
	}
	css, _, ok := strings.Cut(after, "</style>")
	if !ok {
		t.Fatalf("document has no </style>")
	}
	return css
}

var errRender = errors.New("render exploded")
