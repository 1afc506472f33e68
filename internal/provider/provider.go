package provider

import "context"

// Email is a single outbound operator notification.
type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
	ReplyTo string
}

// EmailSender is the outbound notification delivery port.
type EmailSender interface {
	Send(ctx context.Context, email Email) (*SendResponse, error)
}

// SendResponse stores provider call metadata for audit and logging.
type SendResponse struct {
	StatusCode int
	MessageID  string
}
