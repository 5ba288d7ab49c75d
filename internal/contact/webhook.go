package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/webbplats/site/internal/utils"
)

// DefaultPhone is relayed when the submitter leaves the phone field empty.
const DefaultPhone = "Ej angiven"

// submittedAtLayout is ISO-8601 in UTC with millisecond precision.
const submittedAtLayout = "2006-01-02T15:04:05.000Z"

// maxErrorBody bounds how much of a failed webhook response is kept for logs.
const maxErrorBody = 4 << 10

// ErrWebhookNotConfigured is returned by Send when no URL is set.
var ErrWebhookNotConfigured = errors.New("contact webhook URL is not configured")

// WebhookPayload is the JSON body posted to the webhook.
type WebhookPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submittedAt"`
	IP          string `json:"ip"`
}

// NewWebhookPayload builds the relayed payload for an accepted submission.
func NewWebhookPayload(sub Submission, ip string, at time.Time) WebhookPayload {
	phone := sub.Phone
	if phone == "" {
		phone = DefaultPhone
	}
	return WebhookPayload{
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       phone,
		Message:     sub.Message,
		SubmittedAt: at.UTC().Format(submittedAtLayout),
		IP:          ip,
	}
}

// Relay delivers accepted submissions.
type Relay interface {
	Configured() bool
	Send(ctx context.Context, payload WebhookPayload) error
}

// RelayError reports a non-2xx webhook response.
type RelayError struct {
	StatusCode int
	Body       string
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("webhook returned status %d: %s", e.StatusCode, e.Body)
}

// WebhookRelay posts submissions as JSON to a single URL.
type WebhookRelay struct {
	url    string
	client *http.Client
}

// NewWebhookRelay creates a relay. A nil client gets the shared outbound defaults.
func NewWebhookRelay(webhookURL string, client *http.Client) *WebhookRelay {
	if client == nil {
		client = utils.NewHTTPClient(utils.DefaultHTTPTimeout)
	}
	return &WebhookRelay{
		url:    strings.TrimSpace(webhookURL),
		client: client,
	}
}

func (r *WebhookRelay) Configured() bool {
	return r != nil && r.url != ""
}

// Send posts payload to the webhook URL.
func (r *WebhookRelay) Send(ctx context.Context, payload WebhookPayload) error {
	if !r.Configured() {
		return ErrWebhookNotConfigured
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		// url.Error would echo the secret webhook URL
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("failed to send webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &RelayError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return nil
}
