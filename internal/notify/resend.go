package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/Affiliat0r/Vertaler/internal/models"
)

// DefaultBaseURL is the Resend API root.
const DefaultBaseURL = "https://api.resend.com/"

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("email sending disabled: no API key configured")

// Config configures the Resend mailer.
type Config struct {
	APIKey     string
	From       string
	Recipients []string
	// BaseURL overrides the Resend API root.
	BaseURL string
	Timeout time.Duration
}

// Mailer sends notifications through Resend.
type Mailer struct {
	config Config
	client *resend.Client
}

// NewMailer returns a Mailer. An empty API key yields a mailer whose sends
// return ErrDisabled.
func NewMailer(config Config) (*Mailer, error) {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid resend base URL %q: %w", config.BaseURL, err)
	}

	client := resend.NewCustomClient(&http.Client{Timeout: config.Timeout}, config.APIKey)
	client.BaseURL = baseURL
	return &Mailer{config: config, client: client}, nil
}

// Enabled reports whether an API key is configured.
func (m *Mailer) Enabled() bool {
	return m.config.APIKey != ""
}

// Send delivers msg and returns the provider's message id.
func (m *Mailer) Send(ctx context.Context, msg Message) (string, error) {
	if !m.Enabled() {
		return "", ErrDisabled
	}
	if len(msg.To) == 0 {
		return "", errors.New("message has no recipients")
	}

	req := &resend.SendEmailRequest{
		From:    m.config.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}
	for _, a := range msg.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename: a.Filename,
			Content:  a.Content,
		})
	}

	sent, err := m.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}
	return sent.Id, nil
}

// NotifyTranslated emails the configured recipients about a translated
// submission with the output document attached.
func (m *Mailer) NotifyTranslated(ctx context.Context, sub *models.Submission, doc Document) error {
	if !m.Enabled() {
		return ErrDisabled
	}
	msg, err := BuildMessage(sub, doc, m.config.Recipients)
	if err != nil {
		return err
	}
	id, err := m.Send(ctx, msg)
	if err != nil {
		return err
	}
	slog.Info("Notification email sent.", "submissionId", sub.ShortID(), "emailId", id, "recipients", len(msg.To))
	return nil
}
