package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/habrdigest/habrdigest/pkg/config"
)

// Messenger sends messages to Telegram chats via the bot API
type Messenger struct {
	cfg    config.TelegramConfig
	client *http.Client
}

// NewMessenger creates a messenger with the configured token and API base
func NewMessenger(cfg config.TelegramConfig) *Messenger {
	return &Messenger{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Send posts a plain-text message to the given chat. The error includes the
// response body on non-200 status, Telegram puts the reason there.
func (m *Messenger) Send(ctx context.Context, chatID int64, text string) error {
	if m.cfg.Token == "" {
		return fmt.Errorf("telegram messenger misconfigured: empty token")
	}
	if text == "" {
		return fmt.Errorf("refusing to send empty message to chat %d", chatID)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(m.cfg.APIURL, "/"), m.cfg.Token)
	form := url.Values{}
	form.Set("chat_id", strconv.FormatInt(chatID, 10))
	form.Set("text", text)
	form.Set("disable_web_page_preview", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send message to chat %d: %w", chatID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram error for chat %d: %s: %s", chatID, resp.Status, strings.TrimSpace(string(body)))
	}

	return nil
}
