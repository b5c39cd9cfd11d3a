package domain

import "fmt"

// MailerMessage is the payload sent to the mail relay
type MailerMessage struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
	TextBody string `json:"text_body"`
}

// MailerResponse is the relay's acknowledgement
type MailerResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}

// MailerService defines the interface for the outbound mail relay
type MailerService interface {
	SendPasswordReset(email, resetToken, displayName string) error
}

// MailerServiceError represents an error returned by the mail relay
type MailerServiceError struct {
	StatusCode int    `json:"status_code"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface
func (e *MailerServiceError) Error() string {
	return fmt.Sprintf("mailer service error %d: %s - %s", e.StatusCode, e.Code, e.Message)
}

// Is4xxError checks if the error is a client error
func (e *MailerServiceError) Is4xxError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
