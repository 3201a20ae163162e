package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// IBotClient sends plain-text messages to a fixed admin chat. Delivery is
// best-effort: a single bounded call, no retry.
type IBotClient interface {
	Enabled() bool
	SendMessage(text string) error
}

type botClient struct {
	apiBase string
	token   string
	chatID  string
	client  *http.Client
}

// NewBotClient builds a client for the bot messaging API. An empty token or
// chat id yields a disabled client; callers may still invoke SendMessage and
// get a no-op.
func NewBotClient(token, chatID string) IBotClient {
	return &botClient{
		apiBase: "https://api.telegram.org",
		token:   token,
		chatID:  chatID,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewBotClientWithBase is used by tests to point the client at a stub server.
func NewBotClientWithBase(apiBase, token, chatID string) IBotClient {
	return &botClient{
		apiBase: apiBase,
		token:   token,
		chatID:  chatID,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *botClient) Enabled() bool {
	return c.token != "" && c.chatID != ""
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

func (c *botClient) SendMessage(text string) error {
	if !c.Enabled() {
		return nil
	}

	body, err := json.Marshal(sendMessageRequest{ChatID: c.chatID, Text: text})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.apiBase, c.token)
	resp, err := c.client.Post(endpoint, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	// The response body is not consumed; only the status matters.
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram sendMessage status %d", resp.StatusCode)
	}
	return nil
}
