// Package delivery notifies the print shop about placed orders through
// Postmark, attaching the rendered PDF.
package delivery

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"github.com/mrz1836/postmark"
)

// Sentinel errors for delivery operations.
var (
	ErrInvalidConfig = errors.New("delivery: invalid config")
	ErrInvalidNotice = errors.New("delivery: invalid notice")
	ErrSendFailed    = errors.New("delivery: failed to send email")
)

// DefaultSubject prefixes the notification subject.
const DefaultSubject = "New Order"

// Sender is the subset of *postmark.Client the mailer calls.
type Sender interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

var _ Sender = (*postmark.Client)(nil)

// Config holds Postmark credentials and the fixed addresses.
type Config struct {
	ServerToken  string
	AccountToken string
	From         string
	To           string // every order goes to this address
	Tag          string
}

func (c Config) validate() error {
	if c.ServerToken == "" {
		return fmt.Errorf("%w: server token is required", ErrInvalidConfig)
	}
	for _, a := range []struct{ name, addr string }{{"from", c.From}, {"to", c.To}} {
		if a.addr == "" {
			return fmt.Errorf("%w: %s address is required", ErrInvalidConfig, a.name)
		}
		if _, err := mail.ParseAddress(a.addr); err != nil {
			return fmt.Errorf("%w: %s address: %v", ErrInvalidConfig, a.name, err)
		}
	}
	return nil
}

// Notice describes one placed order.
type Notice struct {
	Requester string // display name of whoever placed the order
	Label     string // human label of the ordered artifact
	Quantity  int
	URL       string // public location of the PDF, optional
	Filename  string // attachment name without extension
	PDF       []byte
}

func (n Notice) validate() error {
	switch {
	case strings.TrimSpace(n.Requester) == "":
		return fmt.Errorf("%w: requester is required", ErrInvalidNotice)
	case n.Filename == "":
		return fmt.Errorf("%w: filename is required", ErrInvalidNotice)
	case len(n.PDF) == 0:
		return fmt.Errorf("%w: pdf attachment is empty", ErrInvalidNotice)
	}
	return nil
}

// Subject returns the notification subject line.
func (n Notice) Subject() string {
	return DefaultSubject + ": " + n.Label
}

// markdownPunct is the ASCII punctuation CommonMark allows to be
// backslash-escaped.
const markdownPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// escapeMarkdown makes s literal inline text: whitespace runs, newlines
// included, become one space and every Markdown punctuation character is
// backslash-escaped, so links, emphasis and autolinks cannot form.
func escapeMarkdown(s string) string {
	var b strings.Builder
	for i, word := range strings.Fields(s) {
		if i > 0 {
			b.WriteByte(' ')
		}
		for _, r := range word {
			if r < 0x80 && strings.ContainsRune(markdownPunct, r) {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Markdown returns the message body in Markdown. It doubles as the plain
// text part.
func (n Notice) Markdown() string {
	var b strings.Builder
	b.WriteString("New order from " + escapeMarkdown(n.Requester) + ".\n\n")
	b.WriteString("Asset: " + escapeMarkdown(n.Label) + "\n\n")
	if n.Quantity > 0 {
		b.WriteString("Quantity: " + strconv.Itoa(n.Quantity) + "\n\n")
	}
	if n.URL != "" {
		b.WriteString("Download: <" + n.URL + ">\n\n")
	}
	b.WriteString("The PDF is attached.")
	return b.String()
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithSender replaces the Postmark client.
func WithSender(s Sender) Option {
	return func(m *Mailer) {
		m.sender = s
	}
}

// Mailer sends order notifications. It is safe for concurrent use.
type Mailer struct {
	sender   Sender
	cfg      Config
	markdown *markdownRenderer
}

// NewMailer validates cfg and builds a Postmark-backed Mailer.
func NewMailer(cfg Config, opts ...Option) (*Mailer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	m := &Mailer{cfg: cfg, markdown: newMarkdownRenderer()}
	for _, opt := range opts {
		opt(m)
	}
	if m.sender == nil {
		m.sender = postmark.NewClient(cfg.ServerToken, cfg.AccountToken)
	}
	return m, nil
}

// Notify sends n to the configured destination and returns the Postmark
// message id.
func (m *Mailer) Notify(ctx context.Context, n Notice) (string, error) {
	if err := n.validate(); err != nil {
		return "", err
	}

	text := n.Markdown()
	body, err := m.markdown.ToHTML(ctx, text)
	if err != nil {
		return "", err
	}

	resp, err := m.sender.SendEmail(ctx, postmark.Email{
		From:     m.cfg.From,
		To:       m.cfg.To,
		Subject:  n.Subject(),
		Tag:      m.cfg.Tag,
		HTMLBody: body,
		TextBody: text,
		Attachments: []postmark.Attachment{{
			Name:        n.Filename + ".pdf",
			Content:     base64.StdEncoding.EncodeToString(n.PDF),
			ContentType: "application/pdf",
		}},
	})
	if err != nil {
		return "", errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return "", fmt.Errorf("%w: postmark error %d: %s", ErrSendFailed, resp.ErrorCode, resp.Message)
	}
	return resp.MessageID, nil
}
