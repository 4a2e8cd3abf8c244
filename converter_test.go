package brandprint

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewConverter_Defaults(t *testing.T) {
	t.Parallel()

	c, err := NewConverter(withRenderer(&mockRenderer{}))
	if err != nil {
		t.Fatalf("NewConverter() unexpected error: %v", err)
	}
	if c.cfg.timeout != defaultTimeout {
		t.Errorf("timeout = %v, want %v", c.cfg.timeout, defaultTimeout)
	}
	if c.Registry() != DefaultRegistry() {
		t.Error("converter should use the default registry")
	}
}

func TestNewConverter_Options(t *testing.T) {
	t.Parallel()

	custom := NewRegistry()
	c, err := NewConverter(
		withRenderer(&mockRenderer{}),
		WithTimeout(5*time.Second),
		WithTimeout(-1),
		WithRegistry(custom),
		WithRegistry(nil),
	)
	if err != nil {
		t.Fatalf("NewConverter() unexpected error: %v", err)
	}
	if c.cfg.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", c.cfg.timeout)
	}
	if c.Registry() != custom {
		t.Error("WithRegistry(nil) should not override an earlier registry")
	}
}

func TestNewConverter_WithAssetPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	markDir := filepath.Join(dir, "marks", "dark")
	if err := os.MkdirAll(markDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(markDir, "logo.png"), []byte("png-bytes"), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := NewConverter(withRenderer(&mockRenderer{}), WithAssetPath(dir))
	if err != nil {
		t.Fatalf("NewConverter() unexpected error: %v", err)
	}

	res, err := c.Convert(context.Background(), Input{
		Request:  Request{Asset: mustAsset(t, AssetSticker), TemplateID: "dark"},
		HTMLOnly: true,
	})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	html := string(res.HTML)
	if !strings.Contains(html, `src="data:image/png;base64,cG5nLWJ5dGVz"`) {
		t.Error("custom dark logo should be used")
	}
	if !strings.Contains(html, `src="`+ResolveTheme("dark").Marks.Icon+`"`) {
		t.Error("missing custom icon should fall back to the embedded icon")
	}
}

func TestNewConverter_WithAssetPath_Invalid(t *testing.T) {
	t.Parallel()

	_, err := NewConverter(withRenderer(&mockRenderer{}), WithAssetPath(filepath.Join(t.TempDir(), "missing")))
	if !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("NewConverter() error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	renderer := &mockRenderer{output: []byte("%PDF-1.7 card")}
	c, err := NewConverter(withRenderer(renderer))
	if err != nil {
		t.Fatal(err)
	}

	req := Request{
		Asset:      mustAsset(t, AssetBusinessCard),
		TemplateID: "light",
		Fields:     map[string]string{"name": "Alice"},
	}
	res, err := c.Convert(context.Background(), Input{Request: req})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	if string(res.PDF) != "%PDF-1.7 card" {
		t.Errorf("PDF = %q", res.PDF)
	}
	if string(res.HTML) != Generate(req) {
		t.Error("HTML should equal the generated document")
	}
	if len(renderer.calls) != 1 || renderer.calls[0] != string(res.HTML) {
		t.Error("renderer should receive the generated document once")
	}
}

func TestConverter_Convert_HTMLOnly(t *testing.T) {
	t.Parallel()

	renderer := &mockRenderer{}
	c, err := NewConverter(withRenderer(renderer))
	if err != nil {
		t.Fatal(err)
	}

	res, err := c.Convert(context.Background(), Input{
		Request:  Request{Asset: mustAsset(t, AssetEnvelope), TemplateID: "dark-es"},
		HTMLOnly: true,
	})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if res.PDF != nil {
		t.Error("HTMLOnly should skip PDF rendering")
	}
	if len(renderer.calls) != 0 {
		t.Error("renderer should not be called")
	}
	if !strings.HasPrefix(string(res.HTML), "<!DOCTYPE html>") {
		t.Error("HTML should be a complete document")
	}
}

func TestConverter_Convert_Errors(t *testing.T) {
	t.Parallel()

	card := mustAsset(t, AssetBusinessCard)
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name     string
		ctx      context.Context
		input    Input
		renderer *mockRenderer
		wantErr  error
	}{
		{
			name:     "empty asset id",
			ctx:      context.Background(),
			input:    Input{Request: Request{TemplateID: "light"}},
			renderer: &mockRenderer{},
			wantErr:  ErrEmptyAssetID,
		},
		{
			name:     "invalid page",
			ctx:      context.Background(),
			input:    Input{Request: Request{Asset: card, Page: "middle"}},
			renderer: &mockRenderer{},
			wantErr:  ErrInvalidPage,
		},
		{
			name:     "attribute injection in logo",
			ctx:      context.Background(),
			input:    Input{Request: Request{Asset: card, Logo: `x" onerror="alert(1)`}},
			renderer: &mockRenderer{},
			wantErr:  ErrInvalidImageSource,
		},
		{
			name:     "file url icon",
			ctx:      context.Background(),
			input:    Input{Request: Request{Asset: card, Icon: "file:///etc/passwd"}},
			renderer: &mockRenderer{},
			wantErr:  ErrInvalidImageSource,
		},
		{
			name:     "canceled context",
			ctx:      canceled,
			input:    Input{Request: Request{Asset: card}},
			renderer: &mockRenderer{},
			wantErr:  context.Canceled,
		},
		{
			name:     "renderer failure",
			ctx:      context.Background(),
			input:    Input{Request: Request{Asset: card}},
			renderer: &mockRenderer{err: ErrPDFGeneration},
			wantErr:  ErrPDFGeneration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := NewConverter(withRenderer(tt.renderer))
			if err != nil {
				t.Fatal(err)
			}
			res, err := c.Convert(tt.ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Convert() error = %v, want %v", err, tt.wantErr)
			}
			if res != nil {
				t.Error("result should be nil on error")
			}
		})
	}
}

func TestConverter_Convert_RecoversPanic(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("boom", TemplateLight, func(Request, Theme) string { panic("generator bug") })

	c, err := NewConverter(withRenderer(&mockRenderer{}), WithRegistry(r))
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Convert(context.Background(), Input{Request: Request{Asset: AssetTypeConfig{ID: "boom"}, TemplateID: "light"}})
	if err == nil || !strings.Contains(err.Error(), "generator bug") {
		t.Errorf("Convert() error = %v, want recovered panic", err)
	}
}

func TestConverter_Close(t *testing.T) {
	t.Parallel()

	renderer := &mockRenderer{closeFn: func() error { return errRender }}
	c, err := NewConverter(withRenderer(renderer))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); !errors.Is(err, errRender) {
		t.Errorf("Close() error = %v, want %v", err, errRender)
	}
	if !renderer.closed {
		t.Error("renderer should be closed")
	}
}

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	for _, p := range []Page{PageAll, PageFront, PageBack} {
		if err := p.Validate(); err != nil {
			t.Errorf("Page(%q).Validate() = %v", p, err)
		}
	}
	for _, p := range []Page{"Front", "both", " back"} {
		if err := p.Validate(); !errors.Is(err, ErrInvalidPage) {
			t.Errorf("Page(%q).Validate() = %v, want ErrInvalidPage", p, err)
		}
	}
}

func TestValidateImageSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{name: "empty", src: ""},
		{name: "https", src: "https://cdn.example.com/logo.svg"},
		{name: "http with query", src: "http://cdn.example.com/logo.png?v=2&size=large"},
		{name: "png data uri", src: "data:image/png;base64,iVBORw0KGgo="},
		{name: "svg data uri", src: "data:image/svg+xml;base64,PHN2Zy8+"},
		{name: "quote breaks attribute", src: `x" onerror="alert(document.cookie)`, wantErr: true},
		{name: "tag injection", src: `"><iframe src="file:///etc/passwd"></iframe>`, wantErr: true},
		{name: "single quote", src: "https://cdn.example.com/a'b.svg", wantErr: true},
		{name: "whitespace", src: "https://cdn.example.com/a b.svg", wantErr: true},
		{name: "newline", src: "https://cdn.example.com/a\nb.svg", wantErr: true},
		{name: "file scheme", src: "file:///etc/passwd", wantErr: true},
		{name: "javascript scheme", src: "javascript:alert(1)", wantErr: true},
		{name: "relative path", src: "logo.svg", wantErr: true},
		{name: "no host", src: "https:///logo.svg", wantErr: true},
		{name: "html data uri", src: "data:text/html;base64,PHNjcmlwdD4=", wantErr: true},
		{name: "unencoded svg data uri", src: "data:image/svg+xml,<svg/>", wantErr: true},
		{name: "bad base64 alphabet", src: "data:image/png;base64,abc%22def", wantErr: true},
		{name: "empty payload", src: "data:image/png;base64,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateImageSource(tt.src)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidImageSource) {
					t.Errorf("ValidateImageSource(%q) = %v, want ErrInvalidImageSource", tt.src, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateImageSource(%q) = %v, want nil", tt.src, err)
			}
		})
	}
}

func TestRequest_ValidateMarks_NamesTheField(t *testing.T) {
	t.Parallel()

	err := Request{Logo: "https://cdn.example.com/logo.svg", Icon: "<svg>"}.ValidateMarks()
	if !errors.Is(err, ErrInvalidImageSource) || !strings.HasPrefix(err.Error(), "icon: ") {
		t.Errorf("ValidateMarks() = %v, want an icon error", err)
	}
}
