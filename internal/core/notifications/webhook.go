package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Notification is the JSON payload delivered to the account holder's
// webhook endpoint.
type Notification struct {
	AccountID string    `json:"account_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// WebhookClient delivers notifications over HTTP POST. Slow receivers must
// not block the service, so the client enforces a 5 second timeout.
type WebhookClient struct {
	url    string
	client *http.Client
}

func NewWebhookClient(url string) *WebhookClient {
	return &WebhookClient{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Send posts the notification. With no webhook URL configured the
// notification is dropped after a debug log; delivery is best-effort
// either way.
func (c *WebhookClient) Send(n Notification) error {
	if c.url == "" {
		slog.Debug("webhook URL not configured, dropping notification",
			"account", n.AccountID)
		return nil
	}

	body, err := json.Marshal(n)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "AmountTransfer-Webhook/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("webhook receiver returned error: %d", resp.StatusCode)
}
