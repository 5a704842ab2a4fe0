package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const slackTimeout = 10 * time.Second

// Sender posts a plain text message to an incoming webhook.
type Sender interface {
	Send(ctx context.Context, webhookURL, text string) error
}

type slackSender struct {
	client *http.Client
}

func NewSlackSender(client ...*http.Client) Sender {
	c := &http.Client{Timeout: slackTimeout}
	if len(client) > 0 && client[0] != nil {
		c = client[0]
	}
	return &slackSender{client: c}
}

// Send is a no-op for an empty URL, so an unconfigured channel is silent.
func (s *slackSender) Send(ctx context.Context, webhookURL, text string) error {
	if webhookURL == "" {
		return nil
	}

	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, slackTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("slack webhook returned %d", resp.StatusCode)
	}
	return nil
}
