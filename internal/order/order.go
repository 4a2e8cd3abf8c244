// Package order turns a generation request into a printed-asset order: it
// renders every face of the asset, publishes the PDF and notifies the print
// shop.
package order

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alnah/go-brandprint"
	"github.com/alnah/go-brandprint/internal/delivery"
	"github.com/alnah/go-brandprint/internal/fileutil"
	"github.com/alnah/go-brandprint/internal/storage"
)

// Sentinel errors for order placement. Validation errors are the caller's
// fault; the rest come from collaborators.
var (
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrMissingRequester = errors.New("requester name is required")
	ErrUnknownAsset     = errors.New("unknown asset type")
	ErrUnknownTemplate  = errors.New("unknown template")
	ErrMissingFields    = errors.New("required fields are empty")
	ErrRender           = errors.New("rendering order failed")
	ErrPublish          = errors.New("publishing order failed")
	ErrNotify           = errors.New("notifying order failed")
)

// Quantities lists the print runs that can be ordered.
var Quantities = []int{25, 50, 100, 250, 500, 1000}

// KeyPrefix is the storage prefix for published orders.
const KeyPrefix = "orders/"

// Order is a request to print an asset.
type Order struct {
	AssetID    string            `json:"assetId"`
	TemplateID string            `json:"templateId"`
	Fields     map[string]string `json:"fields"`
	Logo       string            `json:"logo,omitempty"`
	Icon       string            `json:"icon,omitempty"`
	Tagline    string            `json:"tagline,omitempty"`
	Requester  string            `json:"requester"`
	Quantity   int               `json:"quantity"`
	Filename   string            `json:"filename,omitempty"` // defaults to <assetId>-<templateId>
}

// Receipt is returned once an order is placed.
type Receipt struct {
	ID         string    `json:"id"`
	AssetID    string    `json:"assetId"`
	TemplateID string    `json:"templateId"`
	Quantity   int       `json:"quantity"`
	Filename   string    `json:"filename"`
	Key        string    `json:"key,omitempty"`
	URL        string    `json:"url,omitempty"`
	MessageID  string    `json:"messageId"`
	PlacedAt   time.Time `json:"placedAt"`
}

// Renderer produces the PDF for a request.
type Renderer interface {
	Convert(ctx context.Context, input brandprint.Input) (*brandprint.Result, error)
}

// Publisher stores a PDF and returns its public location.
type Publisher interface {
	Publish(ctx context.Context, key string, data []byte) (*storage.Object, error)
}

// Notifier delivers the order notice.
type Notifier interface {
	Notify(ctx context.Context, n delivery.Notice) (string, error)
}

// Compile-time interface checks.
var (
	_ Renderer  = (*brandprint.Converter)(nil)
	_ Renderer  = (*brandprint.ConverterPool)(nil)
	_ Publisher = (*storage.Publisher)(nil)
	_ Notifier  = (*delivery.Mailer)(nil)
)

// Option configures a Service.
type Option func(*Service)

// WithPublisher enables publishing to object storage. Without it, orders
// are only delivered by e-mail.
func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator overrides order id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

// Service places orders. It is safe for concurrent use when its
// collaborators are.
type Service struct {
	renderer  Renderer
	publisher Publisher
	notifier  Notifier
	now       func() time.Time
	newID     func() string
}

// NewService builds a Service. renderer and notifier are required.
func NewService(renderer Renderer, notifier Notifier, opts ...Option) *Service {
	s := &Service{
		renderer: renderer,
		notifier: notifier,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidQuantity reports whether q is an orderable print run.
func ValidQuantity(q int) bool {
	return slices.Contains(Quantities, q)
}

// Place validates o, renders both faces, publishes the PDF when storage is
// configured and notifies the print shop.
func (s *Service) Place(ctx context.Context, o Order) (*Receipt, error) {
	asset, err := validate(o)
	if err != nil {
		return nil, err
	}

	req := brandprint.Request{
		Asset:      asset,
		TemplateID: o.TemplateID,
		Fields:     o.Fields,
		Logo:       o.Logo,
		Icon:       o.Icon,
		Tagline:    o.Tagline,
		Dark:       brandprint.ParseTemplateID(o.TemplateID).Theme == brandprint.ThemeDark,
		Page:       brandprint.PageAll,
	}
	res, err := s.renderer.Convert(ctx, brandprint.Input{Request: req})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	receipt := &Receipt{
		ID:         s.newID(),
		AssetID:    asset.ID,
		TemplateID: o.TemplateID,
		Quantity:   o.Quantity,
		Filename:   Filename(o),
		PlacedAt:   s.now().UTC(),
	}

	if s.publisher != nil {
		key := KeyPrefix + receipt.ID + "/" + receipt.Filename + ".pdf"
		obj, err := s.publisher.Publish(ctx, key, res.PDF)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPublish, err)
		}
		receipt.Key = obj.Key
		receipt.URL = obj.URL
	}

	msgID, err := s.notifier.Notify(ctx, delivery.Notice{
		Requester: strings.TrimSpace(o.Requester),
		Label:     asset.Label,
		Quantity:  o.Quantity,
		URL:       receipt.URL,
		Filename:  receipt.Filename,
		PDF:       res.PDF,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotify, err)
	}
	receipt.MessageID = msgID
	return receipt, nil
}

// Filename returns the sanitized base name (no extension) of the order PDF.
func Filename(o Order) string {
	fallback := o.AssetID + "-" + o.TemplateID
	name := o.Filename
	if strings.TrimSpace(name) == "" {
		name = fallback
	}
	return fileutil.SanitizeFilename(name, "order")
}

func validate(o Order) (brandprint.AssetTypeConfig, error) {
	if !ValidQuantity(o.Quantity) {
		return brandprint.AssetTypeConfig{}, fmt.Errorf("%w: %d (allowed: %v)", ErrInvalidQuantity, o.Quantity, Quantities)
	}
	if strings.TrimSpace(o.Requester) == "" {
		return brandprint.AssetTypeConfig{}, ErrMissingRequester
	}
	asset, ok := brandprint.LookupAssetType(o.AssetID)
	if !ok {
		return brandprint.AssetTypeConfig{}, fmt.Errorf("%w: %q", ErrUnknownAsset, o.AssetID)
	}
	if !asset.HasTemplate(o.TemplateID) {
		return brandprint.AssetTypeConfig{}, fmt.Errorf("%w: %q for %s", ErrUnknownTemplate, o.TemplateID, asset.ID)
	}
	if missing := brandprint.MissingRequired(asset, o.Fields); len(missing) > 0 {
		return brandprint.AssetTypeConfig{}, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	if err := (brandprint.Request{Logo: o.Logo, Icon: o.Icon}).ValidateMarks(); err != nil {
		return brandprint.AssetTypeConfig{}, err
	}
	return asset, nil
}

// IsValidation reports whether err was caused by the order itself rather
// than a collaborator.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidQuantity, ErrMissingRequester, ErrUnknownAsset, ErrUnknownTemplate,
		ErrMissingFields, brandprint.ErrInvalidImageSource,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
