package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoSender implements EmailSender against the Brevo transactional API.
type BrevoSender struct {
	APIKey      string
	SenderEmail string
	SenderName  string
	Client      *http.Client
}

// NewBrevoSender builds a sender, or returns an error when the service is
// not configured.
func NewBrevoSender(apiKey, senderEmail, senderName string) (*BrevoSender, error) {
	if apiKey == "" || senderEmail == "" || senderName == "" {
		return nil, fmt.Errorf("email service not configured: missing API key, sender email or sender name")
	}
	return &BrevoSender{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
		Client:      &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

// Send delivers one email. A non-2xx response is returned as an error.
func (s *BrevoSender) Send(toEmail, toName, subject, body string) error {
	if toEmail == "" || !strings.Contains(toEmail, "@") {
		return fmt.Errorf("invalid recipient email: %s", toEmail)
	}
	if toName == "" {
		toName = toEmail
	}

	payload := brevoPayload{
		Sender:      map[string]string{"email": s.SenderEmail, "name": s.SenderName},
		To:          []map[string]string{{"email": toEmail, "name": toName}},
		Subject:     subject,
		HTMLContent: body,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, brevoEndpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("api-key", s.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("email delivery failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("email delivery failed: status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
