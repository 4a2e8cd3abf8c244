package brandprint

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// Page selects which face of a multi-page asset to render.
type Page string

// Page selectors. PageAll renders every face in order.
const (
	PageAll   Page = ""
	PageFront Page = "front"
	PageBack  Page = "back"
)

// Validate reports whether p is a known selector.
func (p Page) Validate() error {
	switch p {
	case PageAll, PageFront, PageBack:
		return nil
	}
	return fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidPage, string(p), PageFront, PageBack)
}

// Request describes one generation: which asset, in which template, with
// which field values and brand overrides.
type Request struct {
	Asset      AssetTypeConfig
	TemplateID string

	// Fields holds user-entered values by field key. Missing keys render
	// as empty strings.
	Fields map[string]string

	// Logo and Icon are image sources (URL or data URI). Empty means the
	// theme's default mark.
	Logo string
	Icon string

	// Tagline is the brand tagline. Spanish templates ignore it.
	Tagline string

	// Dark themes the fallback document when no generator matches.
	Dark bool

	Page Page
}

// Input is the conversion request passed to Converter.Convert.
type Input struct {
	Request Request

	// HTMLOnly skips PDF rendering.
	HTMLOnly bool
}

// Result holds the generated document and, unless HTMLOnly was set, the
// rendered PDF.
type Result struct {
	HTML []byte
	PDF  []byte
}

// imageDataPrefixes are the data URI headers accepted as image sources.
var imageDataPrefixes = []string{
	"data:image/png;base64,",
	"data:image/jpeg;base64,",
	"data:image/webp;base64,",
	"data:image/svg+xml;base64,",
}

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="

// ValidateImageSource reports whether src is safe to embed in a src
// attribute: empty, an absolute http(s) URL, or a base64 image data URI.
// Quotes, angle brackets, whitespace and control characters are rejected.
func ValidateImageSource(src string) error {
	if src == "" {
		return nil
	}
	if i := strings.IndexFunc(src, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r) || r == '"' || r == '\'' || r == '<' || r == '>' || r == '`'
	}); i >= 0 {
		return fmt.Errorf("%w: forbidden character at offset %d", ErrInvalidImageSource, i)
	}

	for _, prefix := range imageDataPrefixes {
		if data, ok := strings.CutPrefix(src, prefix); ok {
			if data == "" || strings.Trim(data, base64Alphabet) != "" {
				return fmt.Errorf("%w: malformed base64 payload", ErrInvalidImageSource)
			}
			return nil
		}
	}

	u, err := url.Parse(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImageSource, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: want an http(s) URL or an image data URI", ErrInvalidImageSource)
	}
	return nil
}

// ValidateMarks checks the request's logo and icon sources.
func (r Request) ValidateMarks() error {
	if err := ValidateImageSource(r.Logo); err != nil {
		return fmt.Errorf("logo: %w", err)
	}
	if err := ValidateImageSource(r.Icon); err != nil {
		return fmt.Errorf("icon: %w", err)
	}
	return nil
}
