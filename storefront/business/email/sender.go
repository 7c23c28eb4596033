package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"encore.app/storefront/model"
)

// Sender hands one message to the delivery provider.
type Sender interface {
	Deliver(ctx context.Context, msg model.EmailMessage) error
}

// FunctionSender posts messages to the hosted send-email function.
type FunctionSender struct {
	url    string
	apiKey string
	client *http.Client
}

var _ Sender = (*FunctionSender)(nil)

// NewFunctionSender creates a sender for the function at url, authorized with apiKey
func NewFunctionSender(url, apiKey string) *FunctionSender {
	return &FunctionSender{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *FunctionSender) Deliver(ctx context.Context, msg model.EmailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build send-email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("call send-email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("send-email returned %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}
