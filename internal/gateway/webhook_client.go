package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var _ Client = (*WebhookClient)(nil)

// sendPayload is the gateway's send-message contract. Both "message"
// and "text" carry the body because gateway versions disagree on the
// field name; "to" carries the JID form some gateways expect.
type sendPayload struct {
	Phone   string `json:"phone"`
	To      string `json:"to"`
	Message string `json:"message"`
	Text    string `json:"text"`
	Type    string `json:"type"`
}

// WebhookClient delivers outbound messages to the gateway's HTTP API.
type WebhookClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewWebhookClient creates a gateway client for the given base URL.
func NewWebhookClient(baseURL, apiKey string) *WebhookClient {
	return &WebhookClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// withTimeout wraps the context with a timeout if it doesn't already have one.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		// Already has a deadline; no need to wrap again.
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// Send implements Client.Send by posting to the gateway's send endpoint.
// A slow or unreachable gateway is cut off by the context deadline so
// the polling loop can never stall on one item.
func (c *WebhookClient) Send(ctx context.Context, phone, body, msgType string) (string, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	to := phone
	if !strings.Contains(to, "@") {
		to = phone + "@s.whatsapp.net"
	}
	if msgType == "" {
		msgType = "text"
	}

	payload, err := json.Marshal(sendPayload{
		Phone:   phone,
		To:      to,
		Message: body,
		Text:    body,
		Type:    msgType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal send payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/send-message", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", fmt.Errorf("gateway request timeout or canceled: %w", err)
		}
		return "", fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	rawBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read gateway response: %w", err)
	}
	raw := string(rawBytes)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return raw, fmt.Errorf("gateway returned non-2xx status: %d", resp.StatusCode)
	}

	return raw, nil
}

// Health implements Client.Health with a simple GET against the gateway root.
func (c *WebhookClient) Health(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return fmt.Errorf("health: failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return fmt.Errorf("health: request timeout or canceled: %w", err)
		}
		return fmt.Errorf("health: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("health: non-2xx status: %d", resp.StatusCode)
	}

	return nil
}
