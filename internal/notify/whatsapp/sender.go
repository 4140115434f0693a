// Package whatsapp posts fund movement messages to the WhatsApp gateway
// webhook. The gateway owns the actual WhatsApp session; this side only
// delivers the JSON payload.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lunnorapp/lunnor_caixa/internal/notify"
)

const requestTimeout = 10 * time.Second

// Sender delivers fund movement payloads to a webhook URL.
type Sender struct {
	webhookURL string
	client     *http.Client
}

// NewSender builds a Sender for the given webhook URL.
func NewSender(webhookURL string) *Sender {
	return &Sender{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: requestTimeout},
	}
}

// Send posts the message as JSON. Any non-2xx response is an error; the
// caller logs it and moves on.
func (s *Sender) Send(ctx context.Context, msg notify.FundMovementMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal fund movement: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Read a bounded slice of the body for the error message.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(snippet))
	}

	return nil
}
