package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dawitk/portfolio-relay/internal/config"
)

const defaultTelegramAPIBase = "https://api.telegram.org"

// TelegramService performs the single outbound relay call to the Telegram
// bot API. Delivery is best-effort: one call, no retry; a failed relay is a
// terminal failure for the request.
type TelegramService struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
}

// NewTelegramService creates a new Telegram service
func NewTelegramService(cfg *config.Config) *TelegramService {
	return &TelegramService{
		botToken: cfg.TelegramBotToken,
		chatID:   cfg.TelegramChatID,
		baseURL:  defaultTelegramAPIBase,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewTelegramServiceAt is like NewTelegramService but targets an explicit
// API base URL. Tests point it at a stub server.
func NewTelegramServiceAt(baseURL, botToken, chatID string) *TelegramService {
	return &TelegramService{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// telegramMessage represents a Telegram API sendMessage request. No
// parse_mode is set on purpose: the channel renders the payload as literal
// text, which closes off Markdown/HTML injection entirely.
type telegramMessage struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// Configured reports whether the relay credentials are present.
func (s *TelegramService) Configured() bool {
	return s.botToken != "" && s.chatID != ""
}

// Send relays a formatted notification. The returned error carries upstream
// detail for server-side logging; callers must not echo it to the public
// response.
func (s *TelegramService) Send(ctx context.Context, text string) error {
	if !s.Configured() {
		return fmt.Errorf("telegram bot token or chat ID not configured")
	}

	payload := telegramMessage{
		ChatID: s.chatID,
		Text:   text,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, detail)
	}

	return nil
}
