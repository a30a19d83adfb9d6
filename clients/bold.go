package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBoldBaseURL = "https://integrations.api.bold.co"

// BoldClientWrapper provides an interface for Bold payment-link operations.
// This interface allows for easier testing by mocking Bold interactions.
type BoldClientWrapper interface {
	CreatePaymentLink(ctx context.Context, req BoldPaymentLinkRequest) (*BoldPaymentLinkResponse, error)
}

// BoldClient implements BoldClientWrapper against the Bold integrations API.
// Credentials are per salon, so a client is built from the salon record
// rather than from ambient environment variables.
type BoldClient struct {
	APIKey     string
	BaseURL    string
	HttpClient *http.Client
}

// BoldPaymentLinkRequest represents the payment-link creation request.
type BoldPaymentLinkRequest struct {
	AmountType  string         `json:"amount_type"`
	Amount      BoldLinkAmount `json:"amount"`
	Description string         `json:"description,omitempty"`
	Reference   string         `json:"reference"`
}

type BoldLinkAmount struct {
	Currency    string  `json:"currency"`
	TotalAmount float64 `json:"total_amount"`
}

// BoldPaymentLinkResponse represents the payment-link creation response.
type BoldPaymentLinkResponse struct {
	PaymentLink string `json:"payment_link"`
	URL         string `json:"url"`
}

// NewBoldClient creates and returns a new instance of BoldClient.
func NewBoldClient(apiKey string) *BoldClient {
	return &BoldClient{
		APIKey:     apiKey,
		BaseURL:    defaultBoldBaseURL,
		HttpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// CreatePaymentLink creates a new Bold payment link for a deposit charge.
func (b *BoldClient) CreatePaymentLink(ctx context.Context, linkReq BoldPaymentLinkRequest) (*BoldPaymentLinkResponse, error) {
	if linkReq.Reference == "" {
		return nil, fmt.Errorf("payment reference is required")
	}
	if linkReq.Amount.TotalAmount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	if linkReq.AmountType == "" {
		linkReq.AmountType = "CLOSE"
	}
	if linkReq.Amount.Currency == "" {
		linkReq.Amount.Currency = "COP"
	}

	jsonData, err := json.Marshal(linkReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment link request: %w", err)
	}

	url := fmt.Sprintf("%s/online/link/v1", b.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("x-api-key %s", b.APIKey))

	resp, err := b.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bold request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return nil, fmt.Errorf("bold API error: %d - %s", resp.StatusCode, string(body))
	}

	var result BoldPaymentLinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode bold response: %w", err)
	}

	return &result, nil
}
