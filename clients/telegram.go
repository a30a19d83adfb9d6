package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pasoapp/paso/logger"
)

const defaultTelegramAPIBase = "https://api.telegram.org"

// TelegramNotifier delivers best-effort notifications to a salon's Telegram
// channel. Delivery is at-most-once: failures are returned to the caller,
// which only logs them.
type TelegramNotifier struct {
	BaseURL    string
	HttpClient *http.Client
}

// NewTelegramNotifier creates a notifier with a short timeout so a slow
// Telegram API can never hold up a webhook response.
func NewTelegramNotifier() *TelegramNotifier {
	return &TelegramNotifier{
		BaseURL:    defaultTelegramAPIBase,
		HttpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type telegramSendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage posts a message to the chat identified by chatID using the
// given bot token. Empty credentials are a silent skip, not an error: salons
// without Telegram configured simply receive no notifications.
func (t *TelegramNotifier) SendMessage(ctx context.Context, botToken, chatID, text string) error {
	if botToken == "" || chatID == "" {
		logger.InfoLogger.Info("Telegram credentials not configured, skipping notification")
		return nil
	}

	payload := telegramSendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.BaseURL, botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.HttpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("telegram returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
