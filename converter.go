package brandprint

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-brandprint/internal/assets"
)

// defaultTimeout bounds a single PDF render.
const defaultTimeout = 30 * time.Second

// Converter generates branded documents and renders them to PDF.
// Create with NewConverter, call Convert, and Close when done.
// A Converter holds one browser and serializes renders; use a
// ConverterPool for parallel work.
type Converter struct {
	cfg      converterConfig
	registry *Registry
	renderer pdfRenderer
}

type converterConfig struct {
	timeout   time.Duration
	assetPath string
}

// Option configures a Converter.
type Option func(*Converter)

// WithTimeout sets the render timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Converter) {
		if d > 0 {
			c.cfg.timeout = d
		}
	}
}

// WithRegistry replaces the built-in registry.
func WithRegistry(r *Registry) Option {
	return func(c *Converter) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithAssetPath loads default marks from basePath, falling back to the
// embedded marks for any file the directory lacks. Ignored when combined
// with WithRegistry.
func WithAssetPath(basePath string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = basePath
	}
}

// NewConverter creates a Converter. The browser is not started until the
// first PDF render.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{cfg: converterConfig{timeout: defaultTimeout}}

	for _, opt := range opts {
		opt(c)
	}

	if c.registry == nil {
		c.registry = defaultRegistry
		if c.cfg.assetPath != "" {
			resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
			}
			light, dark, err := LoadMarks(resolver)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
			}
			c.registry = NewBuiltinRegistry(WithMarks(light, dark))
		}
	}

	// Tests inject a fake renderer.
	if c.renderer == nil {
		c.renderer = newRodRenderer(c.cfg.timeout)
	}
	return c, nil
}

// Registry returns the registry used for generation.
func (c *Converter) Registry() *Registry {
	return c.registry
}

// Convert generates the document for input.Request and, unless HTMLOnly is
// set, renders it to PDF. Generation itself never fails; errors come from
// input validation, cancellation, or the browser.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := c.registry.Generate(input.Request)
	res := &Result{HTML: []byte(doc)}
	if input.HTMLOnly {
		return res, nil
	}

	pdf, err := c.renderer.RenderPDF(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdf
	return res, nil
}

// Close releases the browser.
func (c *Converter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}

// validateInput is the trust boundary for library callers. Generation
// tolerates any request; only selectors with no sensible reading are
// rejected here.
func validateInput(input Input) error {
	if input.Request.Asset.ID == "" {
		return ErrEmptyAssetID
	}
	if err := input.Request.Page.Validate(); err != nil {
		return err
	}
	return input.Request.ValidateMarks()
}
