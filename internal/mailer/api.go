package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIMailer delivers through an HTTP email provider (Resend-style contract:
// JSON body, Bearer token).
type APIMailer struct {
	apiURL string
	apiKey string
	http   *http.Client
}

func NewAPIMailer(apiURL, apiKey string) *APIMailer {
	return &APIMailer{
		apiURL: apiURL,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

type apiPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

func (m *APIMailer) Send(ctx context.Context, e Email) error {
	if m.apiURL == "" || m.apiKey == "" {
		return fmt.Errorf("mail provider credentials not configured")
	}

	body, err := json.Marshal(apiPayload{
		From:    formatAddress(e.FromName, e.From),
		To:      e.To,
		Subject: e.Subject,
		HTML:    e.HTMLBody,
		Text:    e.TextBody,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("mail provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail provider error %d: %s", resp.StatusCode, detail)
	}
	return nil
}
