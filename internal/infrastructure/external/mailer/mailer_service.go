package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/monopay/monopay-api/internal/domain"
)

type mailerServiceImpl struct {
	baseURL     string
	apiKey      string
	frontendURL string
	client      *retryablehttp.Client
}

// NewMailerService creates a client for the HTTP mail relay
func NewMailerService(baseURL, apiKey, frontendURL string) domain.MailerService {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient.Timeout = 30 * time.Second
	client.Logger = nil

	return &mailerServiceImpl{
		baseURL:     baseURL,
		apiKey:      apiKey,
		frontendURL: frontendURL,
		client:      client,
	}
}

// SendPasswordReset delivers the password reset email through the relay
func (m *mailerServiceImpl) SendPasswordReset(email, resetToken, displayName string) error {
	if displayName == "" {
		displayName = "there"
	}
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", m.frontendURL, resetToken)

	msg := domain.MailerMessage{
		To:       email,
		Subject:  "MonoPay - Password Reset Request",
		HTMLBody: buildResetHTML(displayName, resetURL),
		TextBody: buildResetText(displayName, resetURL),
	}

	url := fmt.Sprintf("%s/v1/messages", m.baseURL)
	var resp domain.MailerResponse
	return m.sendRequest("POST", url, msg, http.StatusAccepted, &resp)
}

// sendRequest sends an HTTP request to the relay and decodes the response
func (m *mailerServiceImpl) sendRequest(method, url string, bodyData any, expectedStatus int, out any) error {
	var body io.Reader

	if bodyData != nil {
		jsonBytes, err := json.Marshal(bodyData)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := retryablehttp.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		var errResp domain.MailerServiceError
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Code != "" {
			errResp.StatusCode = resp.StatusCode
			return &errResp
		}
		return &domain.MailerServiceError{
			StatusCode: resp.StatusCode,
			Code:       "UNEXPECTED_STATUS",
			Message:    string(respBody),
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func buildResetHTML(displayName, resetURL string) string {
	return fmt.Sprintf(`<html><body>
<h1>MonoPay</h1>
<p>Hi %s,</p>
<p>We received a request to reset your MonoPay password. Click the link below to create a new password:</p>
<p><a href="%s">Reset Password</a></p>
<p>This link expires in 1 hour. If you didn't request this, you can safely ignore this email.</p>
</body></html>`, displayName, resetURL)
}

func buildResetText(displayName, resetURL string) string {
	return fmt.Sprintf(`Hi %s,

We received a request to reset your MonoPay password.

Click this link to reset your password: %s

This link expires in 1 hour.

If you didn't request this, you can safely ignore this email.

- The MonoPay Team
`, displayName, resetURL)
}
