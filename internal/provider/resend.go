package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultResendBaseURL = "https://api.resend.com"
	defaultSendTimeout   = 10 * time.Second
)

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type resendResponse struct {
	ID string `json:"id"`
}

// ResendProvider delivers emails through the Resend transactional API.
type ResendProvider struct {
	client  *resty.Client
	baseURL string
}

func NewResendProvider(apiKey string) (*ResendProvider, error) {
	client := resty.New()
	client.SetTimeout(defaultSendTimeout)
	client.SetRetryCount(0)

	return NewResendProviderWithClient(apiKey, defaultResendBaseURL, client)
}

func NewResendProviderWithClient(apiKey string, baseURL string, client *resty.Client) (*ResendProvider, error) {
	trimmedKey := strings.TrimSpace(apiKey)
	if trimmedKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	trimmedBaseURL := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmedBaseURL == "" {
		return nil, fmt.Errorf("resend base url is required")
	}
	if client == nil {
		return nil, fmt.Errorf("resty client is required")
	}

	if client.GetClient().Timeout == 0 {
		client.SetTimeout(defaultSendTimeout)
	}
	client.SetRetryCount(0)
	client.SetAuthToken(trimmedKey)

	return &ResendProvider{
		client:  client,
		baseURL: trimmedBaseURL,
	}, nil
}

func (p *ResendProvider) Send(ctx context.Context, email Email) (*SendResponse, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("provider is not initialized")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	reqBody := resendRequest{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		HTML:    email.HTML,
		ReplyTo: email.ReplyTo,
	}

	response, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post(p.baseURL + "/emails")
	if err != nil {
		return nil, &ProviderError{
			Message:   "provider request failed",
			Transient: !errors.Is(err, context.Canceled),
			Cause:     err,
		}
	}
	if response == nil {
		return nil, &ProviderError{
			Message:   "provider returned empty response",
			Transient: true,
		}
	}

	statusCode := response.StatusCode()
	responseBody := strings.TrimSpace(response.String())

	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		var parsed resendResponse
		if err := json.Unmarshal(response.Body(), &parsed); err != nil || strings.TrimSpace(parsed.ID) == "" {
			return nil, &ProviderError{
				StatusCode: statusCode,
				Message:    "provider response missing message id",
				Transient:  false,
			}
		}

		return &SendResponse{
			StatusCode: statusCode,
			MessageID:  parsed.ID,
		}, nil
	}

	return nil, &ProviderError{
		StatusCode: statusCode,
		Message:    providerErrorMessage(statusCode, responseBody),
		Transient:  isTransientHTTPStatus(statusCode),
	}
}

func validateEmail(email Email) error {
	if strings.TrimSpace(email.From) == "" {
		return fmt.Errorf("email sender is required")
	}
	if strings.TrimSpace(email.To) == "" {
		return fmt.Errorf("email recipient is required")
	}
	if strings.TrimSpace(email.Subject) == "" {
		return fmt.Errorf("email subject is required")
	}
	if strings.TrimSpace(email.HTML) == "" {
		return fmt.Errorf("email body is required")
	}
	return nil
}

func isTransientHTTPStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || (statusCode >= http.StatusInternalServerError && statusCode <= 599)
}

func providerErrorMessage(statusCode int, body string) string {
	base := fmt.Sprintf("provider returned status %d", statusCode)
	if body == "" {
		return base
	}
	return fmt.Sprintf("%s: %s", base, body)
}
