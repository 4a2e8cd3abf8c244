package order

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alnah/go-brandprint"
	"github.com/alnah/go-brandprint/internal/delivery"
	"github.com/alnah/go-brandprint/internal/storage"
)

type fakeRenderer struct {
	mu     sync.Mutex
	err    error
	inputs []brandprint.Input
}

func (f *fakeRenderer) Convert(_ context.Context, in brandprint.Input) (*brandprint.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &brandprint.Result{
		HTML: []byte(brandprint.Generate(in.Request)),
		PDF:  []byte("%PDF-1.7 order"),
	}, nil
}

type fakePublisher struct {
	err  error
	keys []string
}

func (f *fakePublisher) Publish(_ context.Context, key string, data []byte) (*storage.Object, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.keys = append(f.keys, key)
	return &storage.Object{Key: key, URL: "https://cdn.example.com/" + key, Size: len(data)}, nil
}

type fakeNotifier struct {
	err     error
	notices []delivery.Notice
}

func (f *fakeNotifier) Notify(_ context.Context, n delivery.Notice) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.notices = append(f.notices, n)
	return "msg-42", nil
}

var fixedTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.FixedZone("EST", -5*3600))

func cardOrder() Order {
	return Order{
		AssetID:    brandprint.AssetBusinessCard,
		TemplateID: "dark-es",
		Fields:     map[string]string{"name": "Alice Smith", "email": "alice@example.com"},
		Requester:  "  Alice Smith ",
		Quantity:   250,
	}
}

func newTestService(r *fakeRenderer, n *fakeNotifier, opts ...Option) *Service {
	opts = append([]Option{
		WithClock(func() time.Time { return fixedTime }),
		WithIDGenerator(func() string { return "0b6e2a4c" }),
	}, opts...)
	return NewService(r, n, opts...)
}

// ---------------------------------------------------------------------------
// TestPlace - Happy path
// ---------------------------------------------------------------------------

func TestPlace_PublishesAndNotifies(t *testing.T) {
	t.Parallel()

	r, n, p := &fakeRenderer{}, &fakeNotifier{}, &fakePublisher{}
	svc := newTestService(r, n, WithPublisher(p))

	receipt, err := svc.Place(context.Background(), cardOrder())
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	want := Receipt{
		ID:         "0b6e2a4c",
		AssetID:    brandprint.AssetBusinessCard,
		TemplateID: "dark-es",
		Quantity:   250,
		Filename:   "business-card-dark-es",
		Key:        "orders/0b6e2a4c/business-card-dark-es.pdf",
		URL:        "https://cdn.example.com/orders/0b6e2a4c/business-card-dark-es.pdf",
		MessageID:  "msg-42",
		PlacedAt:   fixedTime.UTC(),
	}
	if *receipt != want {
		t.Errorf("receipt = %+v\nwant      %+v", *receipt, want)
	}

	if len(r.inputs) != 1 {
		t.Fatalf("renderer called %d times, want 1", len(r.inputs))
	}
	in := r.inputs[0]
	if in.HTMLOnly {
		t.Error("orders must render a PDF")
	}
	if in.Request.Page != brandprint.PageAll {
		t.Errorf("Page = %q, want both faces", in.Request.Page)
	}
	if !in.Request.Dark {
		t.Error("dark template should set Dark")
	}

	if len(n.notices) != 1 {
		t.Fatalf("notifier called %d times, want 1", len(n.notices))
	}
	notice := n.notices[0]
	if notice.Requester != "Alice Smith" {
		t.Errorf("Requester = %q, want trimmed name", notice.Requester)
	}
	if notice.Label != "Business Cards" || notice.Quantity != 250 {
		t.Errorf("notice = %+v", notice)
	}
	if notice.URL != want.URL || string(notice.PDF) != "%PDF-1.7 order" {
		t.Errorf("notice URL %q PDF %q", notice.URL, notice.PDF)
	}
}

func TestPlace_RendersBothFaces(t *testing.T) {
	t.Parallel()

	r := &fakeRenderer{}
	svc := newTestService(r, &fakeNotifier{})
	if _, err := svc.Place(context.Background(), cardOrder()); err != nil {
		t.Fatal(err)
	}

	doc := brandprint.Generate(r.inputs[0].Request)
	if !strings.Contains(doc, `class="card"`) || !strings.Contains(doc, `class="back"`) {
		t.Error("order document should contain front and back")
	}
}

func TestPlace_WithoutPublisher(t *testing.T) {
	t.Parallel()

	n := &fakeNotifier{}
	svc := newTestService(&fakeRenderer{}, n)

	receipt, err := svc.Place(context.Background(), cardOrder())
	if err != nil {
		t.Fatal(err)
	}
	if receipt.Key != "" || receipt.URL != "" {
		t.Errorf("receipt without storage = key %q url %q", receipt.Key, receipt.URL)
	}
	if n.notices[0].URL != "" {
		t.Error("notice should carry no URL")
	}
}

func TestPlace_CustomFilename(t *testing.T) {
	t.Parallel()

	p := &fakePublisher{}
	svc := newTestService(&fakeRenderer{}, &fakeNotifier{}, WithPublisher(p))

	o := cardOrder()
	o.Filename = "Alice's cards (final)"
	receipt, err := svc.Place(context.Background(), o)
	if err != nil {
		t.Fatal(err)
	}
	if receipt.Filename != "Alice-s-cards-final" {
		t.Errorf("Filename = %q", receipt.Filename)
	}
	if p.keys[0] != "orders/0b6e2a4c/Alice-s-cards-final.pdf" {
		t.Errorf("key = %q", p.keys[0])
	}
}

// ---------------------------------------------------------------------------
// TestPlace - Validation
// ---------------------------------------------------------------------------

func TestPlace_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Order)
		wantErr error
	}{
		{name: "zero quantity", mutate: func(o *Order) { o.Quantity = 0 }, wantErr: ErrInvalidQuantity},
		{name: "unlisted quantity", mutate: func(o *Order) { o.Quantity = 300 }, wantErr: ErrInvalidQuantity},
		{name: "blank requester", mutate: func(o *Order) { o.Requester = " \t" }, wantErr: ErrMissingRequester},
		{name: "unknown asset", mutate: func(o *Order) { o.AssetID = "poster" }, wantErr: ErrUnknownAsset},
		{name: "unknown template", mutate: func(o *Order) { o.TemplateID = "Light" }, wantErr: ErrUnknownTemplate},
		{name: "missing required field", mutate: func(o *Order) { o.Fields["name"] = "  " }, wantErr: ErrMissingFields},
		{name: "logo breaks attribute", mutate: func(o *Order) { o.Logo = `x" onerror="alert(1)` }, wantErr: brandprint.ErrInvalidImageSource},
		{name: "icon injects frame", mutate: func(o *Order) { o.Icon = `"><iframe src="file:///etc/passwd"></iframe>` }, wantErr: brandprint.ErrInvalidImageSource},
		{name: "local file logo", mutate: func(o *Order) { o.Logo = "file:///etc/passwd" }, wantErr: brandprint.ErrInvalidImageSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, n := &fakeRenderer{}, &fakeNotifier{}
			svc := newTestService(r, n)
			o := cardOrder()
			tt.mutate(&o)

			_, err := svc.Place(context.Background(), o)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if !IsValidation(err) {
				t.Error("IsValidation() = false")
			}
			if len(r.inputs) != 0 || len(n.notices) != 0 {
				t.Error("invalid orders must not reach collaborators")
			}
		})
	}
}

func TestPlace_StickerNeedsNoFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeRenderer{}, &fakeNotifier{})
	o := Order{AssetID: brandprint.AssetSticker, TemplateID: "light", Requester: "Bob", Quantity: 25}
	if _, err := svc.Place(context.Background(), o); err != nil {
		t.Errorf("Place() error = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestPlace - Collaborator failures
// ---------------------------------------------------------------------------

func TestPlace_CollaboratorErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tests := []struct {
		name      string
		renderer  *fakeRenderer
		publisher *fakePublisher
		notifier  *fakeNotifier
		wantErr   error
	}{
		{name: "render", renderer: &fakeRenderer{err: boom}, publisher: &fakePublisher{}, notifier: &fakeNotifier{}, wantErr: ErrRender},
		{name: "publish", renderer: &fakeRenderer{}, publisher: &fakePublisher{err: boom}, notifier: &fakeNotifier{}, wantErr: ErrPublish},
		{name: "notify", renderer: &fakeRenderer{}, publisher: &fakePublisher{}, notifier: &fakeNotifier{err: boom}, wantErr: ErrNotify},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestService(tt.renderer, tt.notifier, WithPublisher(tt.publisher))
			_, err := svc.Place(context.Background(), cardOrder())
			if !errors.Is(err, tt.wantErr) || !errors.Is(err, boom) {
				t.Errorf("error = %v, want %v wrapping boom", err, tt.wantErr)
			}
			if IsValidation(err) {
				t.Error("collaborator failures are not validation errors")
			}
		})
	}
}

func TestPlace_PublishFailureSkipsNotify(t *testing.T) {
	t.Parallel()

	n := &fakeNotifier{}
	svc := newTestService(&fakeRenderer{}, n, WithPublisher(&fakePublisher{err: errors.New("denied")}))
	if _, err := svc.Place(context.Background(), cardOrder()); err == nil {
		t.Fatal("expected error")
	}
	if len(n.notices) != 0 {
		t.Error("notifier should not run after a failed publish")
	}
}

// ---------------------------------------------------------------------------
// TestFilename / TestValidQuantity
// ---------------------------------------------------------------------------

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		o    Order
		want string
	}{
		{name: "default", o: Order{AssetID: "envelope", TemplateID: "light"}, want: "envelope-light"},
		{name: "blank uses default", o: Order{AssetID: "sticker", TemplateID: "dark", Filename: "   "}, want: "sticker-dark"},
		{name: "custom", o: Order{AssetID: "sticker", TemplateID: "dark", Filename: "launch run"}, want: "launch-run"},
		{name: "nothing usable", o: Order{Filename: "///"}, want: "order"},
		{name: "dot runs collapse", o: Order{Filename: "v2..final"}, want: "v2.final"},
		{name: "traversal", o: Order{Filename: "../../etc/passwd"}, want: "etc-passwd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Filename(tt.o); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlace_DottedFilenamePublishes(t *testing.T) {
	t.Parallel()

	p := &fakePublisher{}
	svc := newTestService(&fakeRenderer{}, &fakeNotifier{}, WithPublisher(p))
	o := cardOrder()
	o.Filename = "v2..final"

	receipt, err := svc.Place(context.Background(), o)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if strings.Contains(receipt.Key, "..") {
		t.Errorf("Key = %q, must not contain a dot run", receipt.Key)
	}
	if !strings.HasSuffix(receipt.Key, "/v2.final.pdf") {
		t.Errorf("Key = %q", receipt.Key)
	}
}

func TestValidQuantity(t *testing.T) {
	t.Parallel()

	for _, q := range Quantities {
		if !ValidQuantity(q) {
			t.Errorf("ValidQuantity(%d) = false", q)
		}
	}
	for _, q := range []int{-25, 0, 1, 26, 2000} {
		if ValidQuantity(q) {
			t.Errorf("ValidQuantity(%d) = true", q)
		}
	}
}
