package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Notifier pushes short operator notifications to an external channel.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// TelegramNotifier relays operator notifications through the Telegram
// Bot API. It is best-effort by contract: callers log failures and move
// on, local state is never affected.
type TelegramNotifier struct {
	apiBase    string
	chatID     string
	httpClient *http.Client
}

// NewTelegramNotifier creates a notifier for the given bot token and chat.
func NewTelegramNotifier(botToken, chatID string) *TelegramNotifier {
	return &TelegramNotifier{
		apiBase: "https://api.telegram.org/bot" + botToken,
		chatID:  chatID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type telegramSendRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type telegramSendResponse struct {
	OK bool `json:"ok"`
}

// Notify sends one text message to the configured chat.
func (n *TelegramNotifier) Notify(ctx context.Context, text string) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	payload, err := json.Marshal(telegramSendRequest{ChatID: n.chatID, Text: text})
	if err != nil {
		return fmt.Errorf("telegram: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.apiBase+"/sendMessage", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("telegram: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("telegram: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram: non-2xx status %d body=%q", resp.StatusCode, string(raw))
	}

	var parsed telegramSendResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("telegram: failed to parse response: %w body=%q", err, string(raw))
	}
	if !parsed.OK {
		return fmt.Errorf("telegram: send rejected body=%q", string(raw))
	}

	return nil
}

var _ Notifier = (*TelegramNotifier)(nil)
